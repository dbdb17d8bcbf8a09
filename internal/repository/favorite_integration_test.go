//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/climaplus/climaplus/internal/model"
)

func createTestUser(t *testing.T, ctx context.Context, repo *Repository, email string) *model.User {
	t.Helper()
	user := newTestUser(email)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestIntegrationFavoriteRepository_AddAndList(t *testing.T) {
	ctx, repo := newTestEnv(t)
	user := createTestUser(t, ctx, repo, "fav@example.com")

	for _, city := range []string{"London", "Paris", "Madrid"} {
		if err := repo.AddFavorite(ctx, user.ID, city); err != nil {
			t.Fatalf("AddFavorite(%s) failed: %v", city, err)
		}
	}

	cities, err := repo.ListFavoriteCities(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListFavoriteCities failed: %v", err)
	}

	// Most-recently-added first
	want := []string{"Madrid", "Paris", "London"}
	if len(cities) != len(want) {
		t.Fatalf("expected %d cities, got %d", len(want), len(cities))
	}
	for i := range want {
		if cities[i] != want[i] {
			t.Errorf("cities[%d] = %q, want %q", i, cities[i], want[i])
		}
	}
}

func TestIntegrationFavoriteRepository_AddIdempotent(t *testing.T) {
	ctx, repo := newTestEnv(t)
	user := createTestUser(t, ctx, repo, "idem@example.com")

	if err := repo.AddFavorite(ctx, user.ID, "London"); err != nil {
		t.Fatalf("first AddFavorite failed: %v", err)
	}
	if err := repo.AddFavorite(ctx, user.ID, "London"); err != nil {
		t.Fatalf("duplicate AddFavorite must succeed, got %v", err)
	}

	var count int
	if err := repo.Pool().QueryRow(ctx,
		"SELECT COUNT(*) FROM favorites WHERE user_id = $1 AND city = $2", user.ID, "London",
	).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 favorite row, got %d", count)
	}
}

func TestIntegrationFavoriteRepository_AddUnknownUser(t *testing.T) {
	ctx, repo := newTestEnv(t)

	err := repo.AddFavorite(ctx, 999999, "London")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestIntegrationFavoriteRepository_Remove(t *testing.T) {
	ctx, repo := newTestEnv(t)
	user := createTestUser(t, ctx, repo, "remove@example.com")

	if err := repo.AddFavorite(ctx, user.ID, "London"); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}

	if err := repo.RemoveFavorite(ctx, user.ID, "London"); err != nil {
		t.Fatalf("RemoveFavorite failed: %v", err)
	}

	cities, err := repo.ListFavoriteCities(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListFavoriteCities failed: %v", err)
	}
	if len(cities) != 0 {
		t.Errorf("expected no favorites after removal, got %v", cities)
	}

	if err := repo.RemoveFavorite(ctx, user.ID, "London"); !errors.Is(err, ErrFavoriteNotFound) {
		t.Errorf("expected ErrFavoriteNotFound, got %v", err)
	}
}

func TestIntegrationFavoriteRepository_ListEmpty(t *testing.T) {
	ctx, repo := newTestEnv(t)
	user := createTestUser(t, ctx, repo, "empty@example.com")

	cities, err := repo.ListFavoriteCities(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListFavoriteCities failed: %v", err)
	}
	if cities == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(cities) != 0 {
		t.Errorf("expected no favorites, got %v", cities)
	}
}

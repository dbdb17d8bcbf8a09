package service

import (
	"context"
	"errors"
	"testing"

	"github.com/climaplus/climaplus/internal/repository"
)

// fakeFavoriteStore implements FavoriteStore in memory, newest first.
type fakeFavoriteStore struct {
	knownUsers map[int64]bool
	cities     map[int64][]string
	listErr    error
	calls      int
}

func newFakeFavoriteStore(userIDs ...int64) *fakeFavoriteStore {
	known := make(map[int64]bool, len(userIDs))
	for _, id := range userIDs {
		known[id] = true
	}
	return &fakeFavoriteStore{
		knownUsers: known,
		cities:     make(map[int64][]string),
	}
}

func (f *fakeFavoriteStore) ListFavoriteCities(ctx context.Context, userID int64) ([]string, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]string(nil), f.cities[userID]...), nil
}

func (f *fakeFavoriteStore) AddFavorite(ctx context.Context, userID int64, city string) error {
	f.calls++
	if !f.knownUsers[userID] {
		return repository.ErrUserNotFound
	}
	for _, existing := range f.cities[userID] {
		if existing == city {
			// Upsert semantics: silently keep the single existing row
			return nil
		}
	}
	f.cities[userID] = append([]string{city}, f.cities[userID]...)
	return nil
}

func (f *fakeFavoriteStore) RemoveFavorite(ctx context.Context, userID int64, city string) error {
	f.calls++
	for i, existing := range f.cities[userID] {
		if existing == city {
			f.cities[userID] = append(f.cities[userID][:i], f.cities[userID][i+1:]...)
			return nil
		}
	}
	return repository.ErrFavoriteNotFound
}

func TestFavoriteService_List_Ordering(t *testing.T) {
	store := newFakeFavoriteStore(1)
	svc := NewFavoriteService(store, nil)
	ctx := context.Background()

	for _, city := range []string{"London", "Paris", "Madrid"} {
		if err := svc.Add(ctx, 1, city); err != nil {
			t.Fatalf("Add(%s) failed: %v", city, err)
		}
	}

	cities, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

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

func TestFavoriteService_List_Empty(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteStore(1), nil)

	cities, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(cities) != 0 {
		t.Errorf("expected empty list, got %v", cities)
	}
}

func TestFavoriteService_List_MissingUserID(t *testing.T) {
	store := newFakeFavoriteStore(1)
	svc := NewFavoriteService(store, nil)

	if _, err := svc.List(context.Background(), 0); !errors.Is(err, ErrMissingUserID) {
		t.Fatalf("expected ErrMissingUserID, got %v", err)
	}
	if store.calls != 0 {
		t.Errorf("expected no store call, got %d", store.calls)
	}
}

func TestFavoriteService_Add_Idempotent(t *testing.T) {
	store := newFakeFavoriteStore(1)
	svc := NewFavoriteService(store, nil)
	ctx := context.Background()

	if err := svc.Add(ctx, 1, "London"); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if err := svc.Add(ctx, 1, "London"); err != nil {
		t.Fatalf("duplicate Add must succeed silently, got %v", err)
	}

	cities, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(cities) != 1 {
		t.Errorf("expected exactly one row, got %d", len(cities))
	}
}

func TestFavoriteService_Add_UserNotFound(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteStore(1), nil)

	err := svc.Add(context.Background(), 99, "London")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFavoriteService_Add_Validation(t *testing.T) {
	store := newFakeFavoriteStore(1)
	svc := NewFavoriteService(store, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		userID int64
		city   string
	}{
		{"missing_user", 0, "London"},
		{"missing_city", 1, ""},
		{"blank_city", 1, "   "},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := svc.Add(ctx, test.userID, test.city); !errors.Is(err, ErrMissingCity) {
				t.Fatalf("expected ErrMissingCity, got %v", err)
			}
		})
	}

	if store.calls != 0 {
		t.Errorf("expected no store call, got %d", store.calls)
	}
}

func TestFavoriteService_Remove(t *testing.T) {
	store := newFakeFavoriteStore(1)
	svc := NewFavoriteService(store, nil)
	ctx := context.Background()

	if err := svc.Add(ctx, 1, "London"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := svc.Remove(ctx, 1, "London"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	cities, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, city := range cities {
		if city == "London" {
			t.Error("removed city still listed")
		}
	}

	// Removing again reports not found
	if err := svc.Remove(ctx, 1, "London"); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("expected ErrFavoriteNotFound, got %v", err)
	}
}

func TestFavoriteService_Remove_Validation(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteStore(1), nil)

	if err := svc.Remove(context.Background(), 0, ""); !errors.Is(err, ErrMissingCity) {
		t.Fatalf("expected ErrMissingCity, got %v", err)
	}
}

func TestFavoriteService_List_StoreFailure(t *testing.T) {
	store := newFakeFavoriteStore(1)
	store.listErr = errors.New("connection reset")
	svc := NewFavoriteService(store, nil)

	_, err := svc.List(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrMissingUserID) || errors.Is(err, ErrUserNotFound) {
		t.Fatalf("store failure misclassified: %v", err)
	}
}

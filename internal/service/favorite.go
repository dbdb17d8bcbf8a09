package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/climaplus/climaplus/internal/metrics"
	"github.com/climaplus/climaplus/internal/repository"
)

// Favorites errors.
var (
	ErrMissingUserID    = errors.New("userId is required")
	ErrMissingCity      = errors.New("userId and city are required")
	ErrUserNotFound     = errors.New("user not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// FavoriteStore defines the persistence operations required by FavoriteService.
type FavoriteStore interface {
	// ListFavoriteCities returns city names, most-recently-added first.
	ListFavoriteCities(ctx context.Context, userID int64) ([]string, error)
	// AddFavorite is idempotent; returns repository.ErrUserNotFound
	// when the user id references no existing user.
	AddFavorite(ctx context.Context, userID int64, city string) error
	// RemoveFavorite returns repository.ErrFavoriteNotFound when no
	// (user, city) row matched.
	RemoveFavorite(ctx context.Context, userID int64, city string) error
}

// FavoriteService manages a user's saved cities.
type FavoriteService struct {
	store   FavoriteStore
	metrics metrics.Recorder
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(store FavoriteStore, recorder metrics.Recorder) *FavoriteService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &FavoriteService{
		store:   store,
		metrics: recorder,
	}
}

// List returns the user's favorite cities, most-recently-added first.
// An empty slice means the user has no favorites.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]string, error) {
	if userID <= 0 {
		return nil, ErrMissingUserID
	}

	cities, err := s.store.ListFavoriteCities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	return cities, nil
}

// Add saves a city for the user. Adding a city the user already has is
// not an error: the store's upsert leaves the single existing row in
// place and the call succeeds. City strings are stored as given; no
// case-folding or trimming beyond rejecting blank input.
func (s *FavoriteService) Add(ctx context.Context, userID int64, city string) error {
	if userID <= 0 || strings.TrimSpace(city) == "" {
		return ErrMissingCity
	}

	if err := s.store.AddFavorite(ctx, userID, city); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	s.metrics.IncFavoriteAdded()

	return nil
}

// Remove deletes the (user, city) favorite, matching by city name.
func (s *FavoriteService) Remove(ctx context.Context, userID int64, city string) error {
	if userID <= 0 || strings.TrimSpace(city) == "" {
		return ErrMissingCity
	}

	if err := s.store.RemoveFavorite(ctx, userID, city); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return ErrFavoriteNotFound
		}
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	s.metrics.IncFavoriteRemoved()

	return nil
}

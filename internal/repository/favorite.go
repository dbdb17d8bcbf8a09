package repository

import (
	"context"
	"errors"
	"fmt"
)

// ErrFavoriteNotFound is returned when no matching (user, city) row exists.
var ErrFavoriteNotFound = errors.New("favorite not found")

// ListFavoriteCities returns the user's favorite city names,
// most-recently-added first. An empty slice means no favorites.
func (r *Repository) ListFavoriteCities(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT city
		FROM favorites
		WHERE user_id = $1
		ORDER BY id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	cities := make([]string, 0)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		cities = append(cities, city)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}

	return cities, nil
}

// AddFavorite saves a city for the user. The insert is idempotent:
// ON CONFLICT DO NOTHING means a duplicate (user_id, city) pair
// succeeds silently without creating a second row. A foreign key
// violation means the user does not exist and maps to ErrUserNotFound.
func (r *Repository) AddFavorite(ctx context.Context, userID int64, city string) error {
	query := `
		INSERT INTO favorites (user_id, city)
		VALUES ($1, $2)
		ON CONFLICT (user_id, city) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, userID, city)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

// RemoveFavorite deletes the (user, city) row.
// Returns ErrFavoriteNotFound when no row matched.
func (r *Repository) RemoveFavorite(ctx context.Context, userID int64, city string) error {
	query := `
		DELETE FROM favorites
		WHERE user_id = $1 AND city = $2
	`

	tag, err := r.pool.Exec(ctx, query, userID, city)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

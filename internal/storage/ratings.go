package storage

import (
	"context"
	"database/sql"
	"errors"

	"campus-cafeteria/internal/domain"
)

const ratingColumns = "id, menu_id, user_id, rating, comment, created_at, updated_at"

func scanRating(row rowScanner) (*domain.MenuRating, error) {
	var rt domain.MenuRating
	if err := row.Scan(&rt.ID, &rt.MenuID, &rt.UserID, &rt.Rating, &rt.Comment, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *PostgresRepository) GetRatingByMenuAndUser(ctx context.Context, menuID, userID string) (*domain.MenuRating, error) {
	rt, err := scanRating(r.DB.QueryRowContext(ctx,
		"SELECT "+ratingColumns+" FROM menu_ratings WHERE menu_id = $1 AND user_id = $2", menuID, userID))
	if err != nil {
		return nil, notFound(err, "rating for menu %s by user %s not found", menuID, userID)
	}
	return rt, nil
}

func (r *PostgresRepository) InsertRating(ctx context.Context, rating *domain.MenuRating) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_ratings (id, menu_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		rating.ID, rating.MenuID, rating.UserID, rating.Rating, rating.Comment).
		Scan(&rating.CreatedAt, &rating.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.InvalidStatef("menu %s is already rated by user %s", rating.MenuID, rating.UserID)
	}
	return err
}

func (r *PostgresRepository) UpdateRating(ctx context.Context, rating *domain.MenuRating) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE menu_ratings SET rating = $1, comment = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at`,
		rating.Rating, rating.Comment, rating.ID).Scan(&rating.UpdatedAt)
	return notFound(err, "rating %s not found", rating.ID)
}

func (r *PostgresRepository) ListRatingsByMenu(ctx context.Context, menuID string) ([]domain.MenuRating, error) {
	return r.listRatings(ctx, "SELECT "+ratingColumns+" FROM menu_ratings WHERE menu_id = $1 ORDER BY created_at DESC", menuID)
}

func (r *PostgresRepository) ListRatingsByUser(ctx context.Context, userID string) ([]domain.MenuRating, error) {
	return r.listRatings(ctx, "SELECT "+ratingColumns+" FROM menu_ratings WHERE user_id = $1 ORDER BY created_at DESC", userID)
}

func (r *PostgresRepository) listRatings(ctx context.Context, query string, arg string) ([]domain.MenuRating, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := []domain.MenuRating{}
	for rows.Next() {
		rt, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, *rt)
	}
	return ratings, rows.Err()
}

func (r *PostgresRepository) DeleteRating(ctx context.Context, id string) (string, error) {
	var menuID string
	err := r.DB.QueryRowContext(ctx, "DELETE FROM menu_ratings WHERE id = $1 RETURNING menu_id", id).Scan(&menuID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return menuID, err
}

package storage

import (
	"context"
	"database/sql"

	"campus-cafeteria/internal/domain"

	"github.com/lib/pq"
)

const menuColumns = `id, name, description, price, restaurant_name, image_url, is_available,
	available_date, nutrition, allergy_ingredients, created_at, updated_at`

func scanMenu(row rowScanner) (*domain.Menu, error) {
	var (
		m             domain.Menu
		availableDate sql.NullTime
		nutrition     []byte
		allergies     []string
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.RestaurantName, &m.ImageURL, &m.IsAvailable,
		&availableDate, &nutrition, pq.Array(&allergies), &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	if availableDate.Valid {
		m.AvailableDate = &availableDate.Time
	}
	if len(nutrition) > 0 && string(nutrition) != "null" {
		m.Nutrition = &domain.NutritionInfo{}
		if err := decodeJSON(nutrition, m.Nutrition); err != nil {
			return nil, err
		}
	}
	if allergies == nil {
		allergies = []string{}
	}
	m.AllergyIngredients = allergies
	return &m, nil
}

func menuArgs(m *domain.Menu) ([]any, error) {
	var nutrition any
	if m.Nutrition != nil {
		b, err := jsonColumn(m.Nutrition)
		if err != nil {
			return nil, err
		}
		nutrition = b
	}
	var availableDate sql.NullTime
	if m.AvailableDate != nil {
		availableDate = sql.NullTime{Time: *m.AvailableDate, Valid: true}
	}
	allergies := m.AllergyIngredients
	if allergies == nil {
		allergies = []string{}
	}
	return []any{m.ID, m.Name, m.Description, m.Price, m.RestaurantName, m.ImageURL, m.IsAvailable,
		availableDate, nutrition, pq.Array(allergies)}, nil
}

func (r *PostgresRepository) CreateMenu(ctx context.Context, menu *domain.Menu) error {
	args, err := menuArgs(menu)
	if err != nil {
		return err
	}
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menus (id, name, description, price, restaurant_name, image_url, is_available,
			available_date, nutrition, allergy_ingredients)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`, args...).
		Scan(&menu.CreatedAt, &menu.UpdatedAt)
}

func (r *PostgresRepository) UpdateMenu(ctx context.Context, menu *domain.Menu) error {
	args, err := menuArgs(menu)
	if err != nil {
		return err
	}
	err = r.DB.QueryRowContext(ctx, `
		UPDATE menus
		SET name = $2, description = $3, price = $4, restaurant_name = $5, image_url = $6, is_available = $7,
			available_date = $8, nutrition = $9, allergy_ingredients = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`, args...).
		Scan(&menu.CreatedAt, &menu.UpdatedAt)
	return notFound(err, "menu %s not found", menu.ID)
}

func (r *PostgresRepository) DeleteMenu(ctx context.Context, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menus WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	return r.listMenus(ctx, "SELECT "+menuColumns+" FROM menus ORDER BY restaurant_name, name")
}

func (r *PostgresRepository) ListMenusByRestaurant(ctx context.Context, restaurantName string) ([]domain.Menu, error) {
	return r.listMenus(ctx, "SELECT "+menuColumns+" FROM menus WHERE restaurant_name = $1 ORDER BY name", restaurantName)
}

func (r *PostgresRepository) listMenus(ctx context.Context, query string, args ...any) ([]domain.Menu, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := []domain.Menu{}
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, *m)
	}
	return menus, rows.Err()
}

func (r *PostgresRepository) GetMenu(ctx context.Context, id string) (*domain.Menu, error) {
	m, err := scanMenu(r.DB.QueryRowContext(ctx, "SELECT "+menuColumns+" FROM menus WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "menu %s not found", id)
	}
	return m, nil
}

// RatingSummary averages the stored ratings of a menu, rounded to two
// places. A menu without ratings averages zero.
func (r *PostgresRepository) RatingSummary(ctx context.Context, menuID string) (domain.RatingSummary, error) {
	summary := domain.RatingSummary{MenuID: menuID}
	err := r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(ROUND(AVG(rating::numeric), 2), 0)::float8, COUNT(*)
		FROM menu_ratings
		WHERE menu_id = $1`, menuID).Scan(&summary.AvgRating, &summary.Count)
	return summary, err
}

package storage

import (
	"context"

	"campus-cafeteria/internal/domain"
)

func (r *PostgresRepository) TopOrderHistory(ctx context.Context, userID string, limit int) ([]domain.OrderHistory, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT user_id, menu_id, menu_name, order_count, last_ordered_at
		FROM order_history
		WHERE user_id = $1
		ORDER BY order_count DESC, last_ordered_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []domain.OrderHistory{}
	for rows.Next() {
		var h domain.OrderHistory
		if err := rows.Scan(&h.UserID, &h.MenuID, &h.MenuName, &h.OrderCount, &h.LastOrderedAt); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

// PopularMenus ranks menus by the total quantity ordered across all users.
func (r *PostgresRepository) PopularMenus(ctx context.Context, limit int) ([]domain.PopularMenu, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT menu_id, SUM(order_count)::float8 AS total
		FROM order_history
		GROUP BY menu_id
		ORDER BY total DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	popular := []domain.PopularMenu{}
	for rows.Next() {
		var p domain.PopularMenu
		if err := rows.Scan(&p.MenuID, &p.Score); err != nil {
			return nil, err
		}
		popular = append(popular, p)
	}
	return popular, rows.Err()
}

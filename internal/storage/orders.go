package storage

import (
	"context"
	"database/sql"
	"fmt"

	"campus-cafeteria/internal/domain"
)

const orderColumns = "id, user_id, table_id, table_number, items, total_price, status, ordered_at, completed_at, created_at, updated_at"

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		o           domain.Order
		items       []byte
		completedAt sql.NullTime
	)
	if err := row.Scan(&o.ID, &o.UserID, &o.TableID, &o.TableNumber, &items, &o.TotalPrice, &o.Status,
		&o.OrderedAt, &completedAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	if err := decodeJSON(items, &o.Items); err != nil {
		return nil, err
	}
	if o.Items == nil {
		o.Items = []domain.LineItem{}
	}
	if completedAt.Valid {
		o.CompletedAt = &completedAt.Time
	}
	return &o, nil
}

// CreateOrder stores the order and accumulates the user's order history in
// one transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertOrder(ctx, tx, order); err != nil {
		return err
	}
	if err := accumulateHistory(ctx, tx, order); err != nil {
		return err
	}
	return tx.Commit()
}

func insertOrder(ctx context.Context, q queryer, order *domain.Order) error {
	items, err := lineItemsColumn(order.Items)
	if err != nil {
		return err
	}
	if err := q.QueryRowContext(ctx, `
		INSERT INTO orders (id, user_id, table_id, table_number, items, total_price, status, ordered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		order.ID, order.UserID, order.TableID, order.TableNumber, items, order.TotalPrice, order.Status, order.OrderedAt).
		Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// accumulateHistory bumps the (user, menu) counters by the ordered
// quantities. The stored menu name is the one seen first.
func accumulateHistory(ctx context.Context, q queryer, order *domain.Order) error {
	for _, item := range order.Items {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO order_history (user_id, menu_id, menu_name, order_count, last_ordered_at)
			VALUES ($1, $2, $3, $4, NOW())
			ON CONFLICT (user_id, menu_id) DO UPDATE
			SET order_count = order_history.order_count + EXCLUDED.order_count,
				last_ordered_at = NOW()`,
			order.UserID, item.MenuID, item.MenuName, item.Quantity); err != nil {
			return fmt.Errorf("accumulate order history: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(r.DB.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "order %s not found", id)
	}
	return o, nil
}

func (r *PostgresRepository) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY ordered_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, order *domain.Order) error {
	var completedAt sql.NullTime
	if order.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *order.CompletedAt, Valid: true}
	}
	err := r.DB.QueryRowContext(ctx, `
		UPDATE orders SET status = $1, completed_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at`,
		order.Status, completedAt, order.ID).Scan(&order.UpdatedAt)
	return notFound(err, "order %s not found", order.ID)
}

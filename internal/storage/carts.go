package storage

import (
	"context"

	"campus-cafeteria/internal/domain"
)

const cartColumns = "id, user_id, table_id, table_number, items, total_price, created_at, updated_at"

func scanCart(row rowScanner) (*domain.Cart, error) {
	var (
		c     domain.Cart
		items []byte
	)
	if err := row.Scan(&c.ID, &c.UserID, &c.TableID, &c.TableNumber, &items, &c.TotalPrice, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if err := decodeJSON(items, &c.Items); err != nil {
		return nil, err
	}
	if c.Items == nil {
		c.Items = []domain.LineItem{}
	}
	return &c, nil
}

func lineItemsColumn(items []domain.LineItem) ([]byte, error) {
	if items == nil {
		items = []domain.LineItem{}
	}
	return jsonColumn(items)
}

func (r *PostgresRepository) GetCart(ctx context.Context, userID, tableID string) (*domain.Cart, error) {
	c, err := scanCart(r.DB.QueryRowContext(ctx,
		"SELECT "+cartColumns+" FROM carts WHERE user_id = $1 AND table_id = $2", userID, tableID))
	if err != nil {
		return nil, notFound(err, "cart for user %s at table %s not found", userID, tableID)
	}
	return c, nil
}

// CreateCartIfAbsent inserts the cart unless one already exists for the
// (user, table) pair and returns whichever row is stored.
func (r *PostgresRepository) CreateCartIfAbsent(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	items, err := lineItemsColumn(cart.Items)
	if err != nil {
		return nil, err
	}
	if _, err := r.DB.ExecContext(ctx, `
		INSERT INTO carts (id, user_id, table_id, table_number, items, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, table_id) DO NOTHING`,
		cart.ID, cart.UserID, cart.TableID, cart.TableNumber, items, cart.TotalPrice); err != nil {
		return nil, err
	}
	return r.GetCart(ctx, cart.UserID, cart.TableID)
}

func (r *PostgresRepository) SaveCart(ctx context.Context, cart *domain.Cart) error {
	items, err := lineItemsColumn(cart.Items)
	if err != nil {
		return err
	}
	err = r.DB.QueryRowContext(ctx, `
		UPDATE carts SET items = $1, total_price = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at`,
		items, cart.TotalPrice, cart.ID).Scan(&cart.UpdatedAt)
	return notFound(err, "cart %s not found", cart.ID)
}

func (r *PostgresRepository) DeleteCart(ctx context.Context, userID, tableID string) error {
	return deleteCart(ctx, r.DB, userID, tableID)
}

func deleteCart(ctx context.Context, q queryer, userID, tableID string) error {
	_, err := q.ExecContext(ctx, "DELETE FROM carts WHERE user_id = $1 AND table_id = $2", userID, tableID)
	return err
}

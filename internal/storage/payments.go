package storage

import (
	"context"
	"database/sql"
	"fmt"

	"campus-cafeteria/internal/domain"
)

const paymentColumns = "id, order_id, user_id, table_id, amount, payment_method, status, paid_at, created_at, updated_at"

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var (
		p      domain.Payment
		paidAt sql.NullTime
	)
	if err := row.Scan(&p.ID, &p.OrderID, &p.UserID, &p.TableID, &p.Amount, &p.Method, &p.Status,
		&paidAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if paidAt.Valid {
		p.PaidAt = &paidAt.Time
	}
	return &p, nil
}

// Checkout writes the order, its history counters and the payment, marks the
// table occupied and removes the paid cart. Nothing is stored unless every step
// succeeds.
func (r *PostgresRepository) Checkout(ctx context.Context, checkout *domain.Checkout) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertOrder(ctx, tx, &checkout.Order); err != nil {
		return err
	}
	if err := accumulateHistory(ctx, tx, &checkout.Order); err != nil {
		return err
	}
	if err := insertPayment(ctx, tx, &checkout.Payment); err != nil {
		return err
	}
	if _, err := setTableAvailability(ctx, tx, checkout.TableID, false); err != nil {
		return err
	}
	if err := deleteCheckedOutCart(ctx, tx, checkout); err != nil {
		return err
	}
	return tx.Commit()
}

// deleteCheckedOutCart removes the cart only if it is still the version whose
// total was paid.
func deleteCheckedOutCart(ctx context.Context, q queryer, checkout *domain.Checkout) error {
	result, err := q.ExecContext(ctx, "DELETE FROM carts WHERE id = $1 AND updated_at = $2",
		checkout.CartID, checkout.CartVersion)
	if err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	if rows == 0 {
		return domain.InvalidStatef("cart %s changed during checkout", checkout.CartID)
	}
	return nil
}

func insertPayment(ctx context.Context, q queryer, p *domain.Payment) error {
	var paidAt sql.NullTime
	if p.PaidAt != nil {
		paidAt = sql.NullTime{Time: *p.PaidAt, Valid: true}
	}
	err := q.QueryRowContext(ctx, `
		INSERT INTO payments (id, order_id, user_id, table_id, amount, payment_method, status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		p.ID, p.OrderID, p.UserID, p.TableID, p.Amount, p.Method, p.Status, paidAt).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.InvalidStatef("order %s is already paid", p.OrderID)
	}
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetPaymentByOrder(ctx context.Context, orderID string) (*domain.Payment, error) {
	p, err := scanPayment(r.DB.QueryRowContext(ctx, "SELECT "+paymentColumns+" FROM payments WHERE order_id = $1", orderID))
	if err != nil {
		return nil, notFound(err, "payment for order %s not found", orderID)
	}
	return p, nil
}

func (r *PostgresRepository) ListPaymentsByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

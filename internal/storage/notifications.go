package storage

import (
	"context"

	"campus-cafeteria/internal/domain"
)

const notificationColumns = "id, user_id, order_id, title, message, type, is_read, created_at"

func scanNotification(row rowScanner) (*domain.Notification, error) {
	var n domain.Notification
	if err := row.Scan(&n.ID, &n.UserID, &n.OrderID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *PostgresRepository) CreateNotification(ctx context.Context, n *domain.Notification) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO notifications (id, user_id, order_id, title, message, type, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		n.ID, n.UserID, n.OrderID, n.Title, n.Message, n.Type, n.IsRead).
		Scan(&n.CreatedAt)
}

func (r *PostgresRepository) ListNotificationsByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return r.listNotifications(ctx,
		"SELECT "+notificationColumns+" FROM notifications WHERE user_id = $1 ORDER BY created_at DESC", userID)
}

func (r *PostgresRepository) ListUnreadNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	return r.listNotifications(ctx,
		"SELECT "+notificationColumns+" FROM notifications WHERE user_id = $1 AND is_read = FALSE ORDER BY created_at DESC", userID)
}

func (r *PostgresRepository) listNotifications(ctx context.Context, query, userID string) ([]domain.Notification, error) {
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *n)
	}
	return notifications, rows.Err()
}

func (r *PostgresRepository) MarkNotificationRead(ctx context.Context, id string) (*domain.Notification, error) {
	n, err := scanNotification(r.DB.QueryRowContext(ctx,
		"UPDATE notifications SET is_read = TRUE WHERE id = $1 RETURNING "+notificationColumns, id))
	if err != nil {
		return nil, notFound(err, "notification %s not found", id)
	}
	return n, nil
}

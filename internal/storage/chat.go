package storage

import (
	"context"

	"campus-cafeteria/internal/domain"
)

const chatColumns = "id, user_id, session_id, message, response, role, created_at"

func (r *PostgresRepository) SaveChatMessage(ctx context.Context, m *domain.ChatMessage) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO chat_messages (id, user_id, session_id, message, response, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		m.ID, m.UserID, m.SessionID, m.Message, m.Response, m.Role, m.CreatedAt).
		Scan(&m.CreatedAt)
}

func (r *PostgresRepository) ListChatBySession(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	return r.listChat(ctx, "SELECT "+chatColumns+" FROM chat_messages WHERE session_id = $1 ORDER BY created_at", sessionID)
}

func (r *PostgresRepository) ListChatByUser(ctx context.Context, userID string) ([]domain.ChatMessage, error) {
	return r.listChat(ctx, "SELECT "+chatColumns+" FROM chat_messages WHERE user_id = $1 ORDER BY created_at", userID)
}

func (r *PostgresRepository) listChat(ctx context.Context, query, arg string) ([]domain.ChatMessage, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.ChatMessage{}
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.SessionID, &m.Message, &m.Response, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

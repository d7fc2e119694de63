package repository

import (
	"context"

	"playzio-api/core/database"
	"playzio-api/core/logger"
	"playzio-api/modules/message/entity"

	"github.com/google/uuid"
)

// MessageRepository handles direct message database operations
type MessageRepository struct {
	DB database.Database
}

func NewMessageRepository(db database.Database) *MessageRepository {
	return &MessageRepository{DB: db}
}

// MessageRepositoryInterface defines the repository contract
type MessageRepositoryInterface interface {
	Create(ctx context.Context, msg *entity.Message) error
	GetConversation(ctx context.Context, a uuid.UUID, b uuid.UUID) ([]entity.Message, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, recipientID uuid.UUID, senderID uuid.UUID) (int64, error)
}

const messageColumns = `
	m.id, m.sender_id, m.recipient_id, m.content, m.read, m.created_at,
	s.username AS sender_username, r.username AS recipient_username
`

const messageJoins = `
	FROM messages m
	JOIN users s ON s.id = m.sender_id
	JOIN users r ON r.id = m.recipient_id
`

func (r *MessageRepository) Create(ctx context.Context, msg *entity.Message) error {
	query := `
		INSERT INTO messages (sender_id, recipient_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	row := r.DB.QueryRowContext(ctx, query, msg.SenderID, msg.RecipientID, msg.Content)
	if err := row.Scan(&msg.ID, &msg.CreatedAt); err != nil {
		logger.Error("MessageRepository:Create", "error", err)
		return err
	}
	return nil
}

// GetConversation returns both directions of the exchange, oldest first.
func (r *MessageRepository) GetConversation(ctx context.Context, a uuid.UUID, b uuid.UUID) ([]entity.Message, error) {
	query := `SELECT ` + messageColumns + messageJoins + `
		WHERE (m.sender_id = $1 AND m.recipient_id = $2)
		   OR (m.sender_id = $2 AND m.recipient_id = $1)
		ORDER BY m.created_at
	`

	var messages []entity.Message
	err := r.DB.SelectContext(ctx, &messages, query, a, b)
	if err != nil {
		logger.Error("MessageRepository:GetConversation", "error", err)
		return nil, err
	}

	return messages, nil
}

func (r *MessageRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM messages WHERE recipient_id = $1 AND read = false`
	err := r.DB.GetContext(ctx, &count, query, userID)
	if err != nil {
		logger.Error("MessageRepository:CountUnread", "error", err)
		return 0, err
	}
	return count, nil
}

// MarkRead flags every unread message from one sender to one recipient.
func (r *MessageRepository) MarkRead(ctx context.Context, recipientID uuid.UUID, senderID uuid.UUID) (int64, error) {
	query := `
		UPDATE messages
		SET read = true
		WHERE recipient_id = $1 AND sender_id = $2 AND read = false
	`

	result, err := r.DB.ExecContext(ctx, query, recipientID, senderID)
	if err != nil {
		logger.Error("MessageRepository:MarkRead", "error", err)
		return 0, err
	}

	return result.RowsAffected()
}

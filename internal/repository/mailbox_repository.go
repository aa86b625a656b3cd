package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwellist/dwellist-backend/internal/models"
	"gorm.io/gorm"
)

// MailboxRepository defines the interface for mailbox message access.
// Messages are append-only; there is no update or delete.
type MailboxRepository interface {
	Create(ctx context.Context, message *models.MailboxMessage) error
	ListByUser(ctx context.Context, userID uint) ([]models.MailboxListItem, error)
}

// mailboxRepository implements MailboxRepository using GORM
type mailboxRepository struct {
	db *gorm.DB
}

// NewMailboxRepository creates a new MailboxRepository instance
func NewMailboxRepository(db *gorm.DB) MailboxRepository {
	return &mailboxRepository{db: db}
}

// Create appends a message. Both parties must be existing users.
func (r *mailboxRepository) Create(ctx context.Context, message *models.MailboxMessage) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id IN ?", []uint{message.SenderID, message.ReceiverID}).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to verify message parties: %w", err)
	}
	expected := int64(2)
	if message.SenderID == message.ReceiverID {
		expected = 1
	}
	if count != expected {
		return fmt.Errorf("sender or receiver does not exist: %w", ErrInvalidInput)
	}

	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create mailbox message: %w", err)
	}
	return nil
}

// ListByUser retrieves every message where the user is sender or receiver,
// newest first, with both party names resolved for display.
func (r *mailboxRepository) ListByUser(ctx context.Context, userID uint) ([]models.MailboxListItem, error) {
	if err := r.userExists(ctx, userID); err != nil {
		return nil, err
	}

	var items []models.MailboxListItem

	query := `
		SELECT
			m.id, m.sender_id, m.receiver_id,
			s.name AS sender_name, s.email AS sender_email,
			rcv.name AS receiver_name, rcv.email AS receiver_email,
			m.subject, m.message_content, m.sent_at
		FROM mailbox m
		JOIN users s ON s.id = m.sender_id
		JOIN users rcv ON rcv.id = m.receiver_id
		WHERE m.sender_id = ? OR m.receiver_id = ?
		ORDER BY m.sent_at DESC, m.id DESC
	`

	if err := r.db.WithContext(ctx).Raw(query, userID, userID).Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list mailbox messages: %w", err)
	}
	return items, nil
}

func (r *mailboxRepository) userExists(ctx context.Context, userID uint) error {
	var user models.User
	err := r.db.WithContext(ctx).Select("id").First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	return nil
}

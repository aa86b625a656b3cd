package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/dwellist/dwellist-backend/internal/errors"
	"github.com/dwellist/dwellist-backend/internal/models"
	"github.com/dwellist/dwellist-backend/internal/repository"
	"github.com/dwellist/dwellist-backend/internal/websocket"
)

// RecipientAll is the compose-form sentinel that expands to every tenant
// linked to the sender.
const RecipientAll = "all"

// MailNotifier pushes a live notification to a receiver's open dashboard.
// Satisfied by the websocket Hub.
type MailNotifier interface {
	NotifyNewMail(userID uint, payload *websocket.MailNotification)
}

// SendReport summarizes a compose submission. Delivery is per-recipient:
// one bad address does not roll back messages already written.
type SendReport struct {
	Delivered int
	Failed    []string
}

// MailboxService handles the internal messaging between tenants and landlords
type MailboxService interface {
	// Send writes one mailbox row per resolved recipient. Recipients are
	// email addresses, or the single sentinel "all" for the sender's
	// linked tenants.
	Send(ctx context.Context, senderID uint, recipients []string, subject, content string) (*SendReport, error)

	// List returns the user's mailbox, sent and received, newest first
	List(ctx context.Context, userID uint) ([]models.MailboxListItem, error)
}

// mailboxService implements MailboxService
type mailboxService struct {
	mailbox  repository.MailboxRepository
	users    repository.UserRepository
	links    repository.LinkRepository
	notifier MailNotifier
}

// NewMailboxService creates a new MailboxService instance. notifier may be
// nil when live notifications are not wanted.
func NewMailboxService(
	mailbox repository.MailboxRepository,
	users repository.UserRepository,
	links repository.LinkRepository,
	notifier MailNotifier,
) MailboxService {
	return &mailboxService{
		mailbox:  mailbox,
		users:    users,
		links:    links,
		notifier: notifier,
	}
}

// Send resolves each recipient and inserts messages one at a time
func (s *mailboxService) Send(ctx context.Context, senderID uint, recipients []string, subject, content string) (*SendReport, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message content is empty: %w", apperrors.ErrInvalidInput)
	}

	sender, err := s.users.GetByID(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sender: %w", err)
	}

	receivers, err := s.resolveRecipients(ctx, sender, recipients)
	if err != nil {
		return nil, err
	}

	report := &SendReport{}
	for _, receiver := range receivers {
		message := &models.MailboxMessage{
			SenderID:       senderID,
			ReceiverID:     receiver.ID,
			Subject:        subject,
			MessageContent: content,
		}
		if err := s.mailbox.Create(ctx, message); err != nil {
			report.Failed = append(report.Failed, receiver.Email)
			continue
		}
		report.Delivered++

		if s.notifier != nil {
			s.notifier.NotifyNewMail(receiver.ID, &websocket.MailNotification{
				ID:         message.ID,
				SenderID:   senderID,
				SenderName: sender.Name,
				Subject:    subject,
				SentAt:     message.SentAt.Format(time.RFC3339),
			})
		}
	}

	return report, nil
}

// List returns the user's mailbox, newest first
func (s *mailboxService) List(ctx context.Context, userID uint) ([]models.MailboxListItem, error) {
	items, err := s.mailbox.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mailbox: %w", err)
	}
	return items, nil
}

// resolveRecipients turns the compose form's recipient list into user rows.
// Every address must resolve before anything is written.
func (s *mailboxService) resolveRecipients(ctx context.Context, sender *models.User, recipients []string) ([]models.User, error) {
	if len(recipients) == 1 && strings.EqualFold(strings.TrimSpace(recipients[0]), RecipientAll) {
		tenants, err := s.links.ListTenants(ctx, sender.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list linked tenants: %w", err)
		}
		return tenants, nil
	}

	receivers := make([]models.User, 0, len(recipients))
	for _, raw := range recipients {
		email := strings.TrimSpace(strings.ToLower(raw))
		if email == "" {
			continue
		}
		receiver, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", email, apperrors.ErrRecipientNotFound)
			}
			return nil, fmt.Errorf("failed to resolve recipient %s: %w", email, err)
		}
		receivers = append(receivers, *receiver)
	}

	if len(receivers) == 0 {
		return nil, fmt.Errorf("no recipients given: %w", apperrors.ErrInvalidInput)
	}
	return receivers, nil
}

package mocks

import (
	"sync"

	"github.com/dwellist/dwellist-backend/internal/websocket"
)

// NotificationRecord records a notification sent through the mock notifier
type NotificationRecord struct {
	UserID  uint
	Payload *websocket.MailNotification
}

// MockMailNotifier implements services.MailNotifier and records every
// notification for assertions.
type MockMailNotifier struct {
	mu            sync.Mutex
	Notifications []NotificationRecord
}

// NewMockMailNotifier creates a new MockMailNotifier instance
func NewMockMailNotifier() *MockMailNotifier {
	return &MockMailNotifier{
		Notifications: make([]NotificationRecord, 0),
	}
}

// NotifyNewMail records a mailbox notification
func (m *MockMailNotifier) NotifyNewMail(userID uint, payload *websocket.MailNotification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notifications = append(m.Notifications, NotificationRecord{
		UserID:  userID,
		Payload: payload,
	})
}

// GetNotifications returns all recorded notifications
func (m *MockMailNotifier) GetNotifications() []NotificationRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]NotificationRecord, len(m.Notifications))
	copy(out, m.Notifications)
	return out
}

// ClearNotifications clears all recorded notifications
func (m *MockMailNotifier) ClearNotifications() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notifications = make([]NotificationRecord, 0)
}

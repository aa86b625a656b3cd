package models

import (
	"time"
)

// MailboxMessage is an internal message between two users. Rows are
// append-only: never edited or deleted once sent.
type MailboxMessage struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SenderID       uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID     uint      `gorm:"not null;index" json:"receiver_id"`
	Subject        string    `gorm:"size:255" json:"subject"`
	MessageContent string    `gorm:"type:text" json:"message_content"`
	SentAt         time.Time `gorm:"autoCreateTime;index" json:"sent_at"`

	// Relationships
	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}

// TableName returns the table name for MailboxMessage
func (MailboxMessage) TableName() string {
	return "mailbox"
}

// MailboxListItem carries a message plus the resolved counterpart names for
// display in the mailbox view.
type MailboxListItem struct {
	ID             uint      `json:"id"`
	SenderID       uint      `json:"sender_id"`
	ReceiverID     uint      `json:"receiver_id"`
	SenderName     string    `json:"sender_name"`
	SenderEmail    string    `json:"sender_email"`
	ReceiverName   string    `json:"receiver_name"`
	ReceiverEmail  string    `json:"receiver_email"`
	Subject        string    `json:"subject"`
	MessageContent string    `json:"message_content"`
	SentAt         time.Time `json:"sent_at"`
}

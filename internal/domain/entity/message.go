package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageCategory classifies an inbound contact message.
type MessageCategory string

const (
	MessageCategoryFeedback   MessageCategory = "feedback"
	MessageCategoryComplaint  MessageCategory = "complaint"
	MessageCategorySuggestion MessageCategory = "suggestion"
	MessageCategorySupport    MessageCategory = "support"
)

// IsValid checks if the category is a valid value.
func (c MessageCategory) IsValid() bool {
	switch c {
	case MessageCategoryFeedback, MessageCategoryComplaint, MessageCategorySuggestion, MessageCategorySupport:
		return true
	default:
		return false
	}
}

// MessageStatus is the triage state of a contact message.
type MessageStatus string

const (
	MessageStatusUnread     MessageStatus = "unread"
	MessageStatusInProgress MessageStatus = "in-progress"
	MessageStatusResolved   MessageStatus = "resolved"
)

// IsValid checks if the status is a valid value.
func (s MessageStatus) IsValid() bool {
	switch s {
	case MessageStatusUnread, MessageStatusInProgress, MessageStatusResolved:
		return true
	default:
		return false
	}
}

// MessageSenderType distinguishes visitor messages from messages exchanged
// between registered accounts.
type MessageSenderType string

const (
	MessageSenderExternal MessageSenderType = "external"
	MessageSenderUser     MessageSenderType = "user"
)

// SenderInfo identifies an external (unregistered) message sender.
type SenderInfo struct {
	Name  string
	Email string
	Phone string
}

// Message is one entry of the message store. External visitors may create
// messages without authentication; registered users may message each other;
// triage of the inbox is an admin concern.
//
// External messages carry SenderInfo and a category. Internal messages carry
// SenderID/ReceiverID and optional attachment references instead.
type Message struct {
	ID          uuid.UUID
	SenderType  MessageSenderType
	SenderInfo  SenderInfo
	SenderID    *uuid.UUID // Set for internal messages only.
	ReceiverID  *uuid.UUID // Set for internal messages only.
	Content     string
	Category    MessageCategory
	Attachments []string // Opaque ordered references, like request images.
	Status      MessageStatus
	Response    string // Admin reply, empty until answered.
	IsFeatured  bool   // Surfaced on the public site when set.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

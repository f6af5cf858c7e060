package repository

import (
	"context"
	"errors"

	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a contact message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageFilter is an equality filter over messages. ParticipantID matches
// messages sent or received by that user.
type MessageFilter struct {
	Status        *entity.MessageStatus
	Category      *entity.MessageCategory
	Featured      *bool
	SenderType    *entity.MessageSenderType
	ParticipantID *uuid.UUID
}

// MessagePatch is the whitelisted set of fields message triage may touch.
type MessagePatch struct {
	Status     *entity.MessageStatus
	Response   *string
	IsFeatured *bool
}

// MessageRepository defines persistence for the contact-message inbox.
type MessageRepository interface {
	Create(ctx context.Context, msg *entity.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)
	FindMany(ctx context.Context, filter MessageFilter) ([]*entity.Message, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch MessagePatch) (*entity.Message, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

package usecase

import (
	"context"

	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageUsecase is the message store. CreateExternal is the one
// unauthenticated entry point of the whole system; SendInternal exchanges
// messages between registered accounts; triage is admin-only.
type MessageUsecase interface {
	CreateExternal(ctx context.Context, input *CreateMessageInput) (*entity.Message, error)
	SendInternal(ctx context.Context, p entity.Principal, input *SendInternalInput) (*entity.Message, error)
	List(ctx context.Context, p entity.Principal, filter *MessageListFilter) ([]*entity.Message, error)
	ListForUser(ctx context.Context, p entity.Principal, userID uuid.UUID) ([]*entity.Message, error)
	ListExternal(ctx context.Context, p entity.Principal) ([]*entity.Message, error)
	GetByID(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.Message, error)
	ChangeStatus(ctx context.Context, p entity.Principal, id uuid.UUID, status string) (*entity.Message, error)
	Reply(ctx context.Context, p entity.Principal, id uuid.UUID, response string) (*entity.Message, error)
	SetFeatured(ctx context.Context, p entity.Principal, id uuid.UUID, featured bool) (*entity.Message, error)
	Delete(ctx context.Context, p entity.Principal, id uuid.UUID) error
}

// CreateMessageInput defines an external visitor's contact message.
type CreateMessageInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// SendInternalInput defines a message from one registered user to another.
// The sender is always the authenticated principal.
type SendInternalInput struct {
	ReceiverID  uuid.UUID `json:"receiverId" validate:"required"`
	Content     string    `json:"content" validate:"required"`
	Attachments []string  `json:"attachments,omitempty"`
}

// MessageListFilter is the admin inbox filter.
type MessageListFilter struct {
	Status     *string `query:"status"`
	Category   *string `query:"category"`
	Featured   *bool   `query:"featured"`
	SenderType *string `query:"senderType"`
}

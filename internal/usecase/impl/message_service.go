package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "fixflow/internal/delivery/context"
	"fixflow/internal/domain/authz"
	"fixflow/internal/domain/entity"
	domainerrors "fixflow/internal/domain/errors"
	"fixflow/internal/domain/repository"
	"fixflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// MessageServiceParams holds dependencies for messageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MsgRepo  repository.MessageRepository
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		msgRepo:  params.MsgRepo,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateExternal files a contact message from an unauthenticated visitor.
func (srv *messageService) CreateExternal(ctx context.Context, input *usecase.CreateMessageInput) (*entity.Message, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "request body is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "content is required")
	}

	category := entity.MessageCategory(input.Category)
	if !category.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown category %q", input.Category)
	}

	msg := &entity.Message{
		SenderType: entity.MessageSenderExternal,
		SenderInfo: entity.SenderInfo{
			Name:  input.Name,
			Email: strings.ToLower(strings.TrimSpace(input.Email)),
			Phone: input.Phone,
		},
		Content:  input.Content,
		Category: category,
		Status:   entity.MessageStatusUnread,
	}

	if err := srv.msgRepo.Create(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "failed to create message")
	}

	srv.log(ctx).Info("Contact message received",
		slog.Any("messageID", msg.ID),
		slog.String("category", input.Category),
	)

	return msg, nil
}

// SendInternal records a message from the authenticated principal to another
// registered user. The receiver must exist; the sender is never taken from
// the request body.
func (srv *messageService) SendInternal(ctx context.Context, p entity.Principal, input *usecase.SendInternalInput) (*entity.Message, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "request body is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "content is required")
	}
	if input.ReceiverID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "receiverId is required")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.ReceiverID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "receiver not found")
		}

		return nil, errors.Wrap(err, "failed to look up receiver")
	}

	senderID := p.ID
	msg := &entity.Message{
		SenderType:  entity.MessageSenderUser,
		SenderID:    &senderID,
		ReceiverID:  &input.ReceiverID,
		Content:     input.Content,
		Attachments: input.Attachments,
		Status:      entity.MessageStatusUnread,
	}

	if err := srv.msgRepo.Create(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	srv.log(ctx).Info("Internal message sent",
		slog.Any("messageID", msg.ID),
		slog.Any("senderID", p.ID),
		slog.Any("receiverID", input.ReceiverID),
	)

	return msg, nil
}

// List returns inbox messages matching the filter. Admin only.
func (srv *messageService) List(ctx context.Context, p entity.Principal, filter *usecase.MessageListFilter) ([]*entity.Message, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}

	repoFilter := repository.MessageFilter{}
	if filter != nil {
		if filter.Status != nil {
			status := entity.MessageStatus(*filter.Status)
			if !status.IsValid() {
				return nil, errors.Wrapf(domainerrors.ErrInvalidStatus, "unknown status %q", *filter.Status)
			}
			repoFilter.Status = &status
		}
		if filter.Category != nil {
			category := entity.MessageCategory(*filter.Category)
			if !category.IsValid() {
				return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown category %q", *filter.Category)
			}
			repoFilter.Category = &category
		}
		repoFilter.Featured = filter.Featured
		if filter.SenderType != nil {
			senderType := entity.MessageSenderType(*filter.SenderType)
			if senderType != entity.MessageSenderExternal && senderType != entity.MessageSenderUser {
				return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown sender type %q", *filter.SenderType)
			}
			repoFilter.SenderType = &senderType
		}
	}

	msgs, err := srv.msgRepo.FindMany(ctx, repoFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return msgs, nil
}

// ListForUser returns the messages a user has sent or received. The principal
// must be that same user or an admin.
func (srv *messageService) ListForUser(ctx context.Context, p entity.Principal, userID uuid.UUID) ([]*entity.Message, error) {
	if err := authz.RequireSelfOrAdmin(p, userID); err != nil {
		return nil, err
	}

	msgs, err := srv.msgRepo.FindMany(ctx, repository.MessageFilter{ParticipantID: &userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user messages")
	}

	return msgs, nil
}

// ListExternal returns every visitor message. Admin only.
func (srv *messageService) ListExternal(ctx context.Context, p entity.Principal) ([]*entity.Message, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}

	external := entity.MessageSenderExternal
	msgs, err := srv.msgRepo.FindMany(ctx, repository.MessageFilter{SenderType: &external})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list external messages")
	}

	return msgs, nil
}

// GetByID returns one message. Admin only.
func (srv *messageService) GetByID(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.Message, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}

	return srv.loadMessage(ctx, id)
}

// ChangeStatus moves a message through the triage enum. Admin only.
func (srv *messageService) ChangeStatus(ctx context.Context, p entity.Principal, id uuid.UUID, status string) (*entity.Message, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}

	newStatus := entity.MessageStatus(status)
	if !newStatus.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidStatus, "unknown status %q", status)
	}

	msg, err := srv.updateMessage(ctx, id, repository.MessagePatch{Status: &newStatus})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Message status changed", slog.Any("messageID", id), slog.String("status", status))

	return msg, nil
}

// Reply records the admin's response and marks the message resolved.
func (srv *messageService) Reply(ctx context.Context, p entity.Principal, id uuid.UUID, response string) (*entity.Message, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(response) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "response is required")
	}

	resolved := entity.MessageStatusResolved

	return srv.updateMessage(ctx, id, repository.MessagePatch{Response: &response, Status: &resolved})
}

// SetFeatured toggles the featured flag used for public testimonials.
func (srv *messageService) SetFeatured(ctx context.Context, p entity.Principal, id uuid.UUID, featured bool) (*entity.Message, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}

	return srv.updateMessage(ctx, id, repository.MessagePatch{IsFeatured: &featured})
}

// Delete removes a message from the inbox. Admin only.
func (srv *messageService) Delete(ctx context.Context, p entity.Principal, id uuid.UUID) error {
	if err := authz.RequireAdmin(p); err != nil {
		return err
	}

	if err := srv.msgRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return errors.Wrapf(domainerrors.ErrMessageNotFound, "message %s", id)
		}

		return errors.Wrap(err, "failed to delete message")
	}

	return nil
}

func (srv *messageService) updateMessage(ctx context.Context, id uuid.UUID, patch repository.MessagePatch) (*entity.Message, error) {
	msg, err := srv.msgRepo.UpdateByID(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrMessageNotFound, "message %s", id)
		}

		return nil, errors.Wrap(err, "failed to update message")
	}

	return msg, nil
}

func (srv *messageService) loadMessage(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	msg, err := srv.msgRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrMessageNotFound, "message %s", id)
		}

		return nil, errors.Wrap(err, "failed to load message")
	}

	return msg, nil
}

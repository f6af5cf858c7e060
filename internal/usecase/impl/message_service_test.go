package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fixflow/internal/domain/entity"
	domainerrors "fixflow/internal/domain/errors"
	"fixflow/internal/domain/repository"
	mockRepo "fixflow/internal/mocks/repository"
	"fixflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageServiceFixtures struct {
	service  usecase.MessageUsecase
	msgRepo  *mockRepo.MockMessageRepository
	userRepo *mockRepo.MockUserRepository
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	msgRepo := mockRepo.NewMockMessageRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewMessageService(MessageServiceParams{
		MsgRepo:  msgRepo,
		UserRepo: userRepo,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return messageServiceFixtures{
		service:  service,
		msgRepo:  msgRepo,
		userRepo: userRepo,
	}
}

func TestMessageService_CreateExternal_StartsUnread(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	input := &usecase.CreateMessageInput{
		Name:     "Omar",
		Email:    "Omar@Example.com",
		Content:  "Water pressure is very low in our area",
		Category: "complaint",
	}

	fx.msgRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(msg *entity.Message) bool {
			return msg.Status == entity.MessageStatusUnread &&
				msg.SenderInfo.Email == "omar@example.com" &&
				msg.Category == entity.MessageCategoryComplaint
		})).
		Return(nil)

	msg, err := fx.service.CreateExternal(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.MessageStatusUnread, msg.Status)
	assert.False(t, msg.IsFeatured)
}

func TestMessageService_CreateExternal_UnknownCategory(t *testing.T) {
	fx := createTestMessageService(t)

	input := &usecase.CreateMessageInput{
		Name:     "Omar",
		Email:    "omar@example.com",
		Content:  "hello",
		Category: "billing",
	}

	_, err := fx.service.CreateExternal(context.Background(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMessageService_SendInternal_SenderIsPrincipal(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	sender := userPrincipal()
	receiverID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, receiverID).
		Return(&entity.User{ID: receiverID}, nil)
	fx.msgRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(msg *entity.Message) bool {
			return msg.SenderType == entity.MessageSenderUser &&
				msg.SenderID != nil && *msg.SenderID == sender.ID &&
				msg.ReceiverID != nil && *msg.ReceiverID == receiverID &&
				msg.Status == entity.MessageStatusUnread
		})).
		Return(nil)

	msg, err := fx.service.SendInternal(ctx, sender, &usecase.SendInternalInput{
		ReceiverID:  receiverID,
		Content:     "Can you check the pump on your next visit?",
		Attachments: []string{"uploads/pump.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MessageSenderUser, msg.SenderType)
	assert.Equal(t, []string{"uploads/pump.jpg"}, msg.Attachments)
}

func TestMessageService_SendInternal_ReceiverNotFound(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	receiverID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, receiverID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.SendInternal(ctx, userPrincipal(), &usecase.SendInternalInput{
		ReceiverID: receiverID,
		Content:    "hello",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestMessageService_SendInternal_BlankContent(t *testing.T) {
	fx := createTestMessageService(t)

	_, err := fx.service.SendInternal(context.Background(), userPrincipal(), &usecase.SendInternalInput{
		ReceiverID: uuid.New(),
		Content:    "   ",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMessageService_ListForUser_SelfSeesBothDirections(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	p := userPrincipal()

	fx.msgRepo.EXPECT().
		FindMany(ctx, mock.MatchedBy(func(filter repository.MessageFilter) bool {
			return filter.ParticipantID != nil && *filter.ParticipantID == p.ID
		})).
		Return([]*entity.Message{{ID: uuid.New()}}, nil)

	msgs, err := fx.service.ListForUser(ctx, p, p.ID)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestMessageService_ListForUser_ForeignUserForbidden(t *testing.T) {
	fx := createTestMessageService(t)

	_, err := fx.service.ListForUser(context.Background(), userPrincipal(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestMessageService_ListExternal_FiltersSenderType(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()

	fx.msgRepo.EXPECT().
		FindMany(ctx, mock.MatchedBy(func(filter repository.MessageFilter) bool {
			return filter.SenderType != nil && *filter.SenderType == entity.MessageSenderExternal
		})).
		Return([]*entity.Message{}, nil)

	_, err := fx.service.ListExternal(ctx, adminPrincipal())
	require.NoError(t, err)
}

func TestMessageService_ListExternal_NonAdminForbidden(t *testing.T) {
	fx := createTestMessageService(t)

	_, err := fx.service.ListExternal(context.Background(), userPrincipal())
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestMessageService_List_NonAdminForbidden(t *testing.T) {
	fx := createTestMessageService(t)

	_, err := fx.service.List(context.Background(), userPrincipal(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestMessageService_Reply_MarksResolved(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.msgRepo.EXPECT().
		UpdateByID(ctx, id, mock.MatchedBy(func(patch repository.MessagePatch) bool {
			return patch.Response != nil && *patch.Response == "Thanks, a crew is on its way." &&
				patch.Status != nil && *patch.Status == entity.MessageStatusResolved
		})).
		Return(&entity.Message{ID: id, Status: entity.MessageStatusResolved}, nil)

	msg, err := fx.service.Reply(ctx, adminPrincipal(), id, "Thanks, a crew is on its way.")
	require.NoError(t, err)
	assert.Equal(t, entity.MessageStatusResolved, msg.Status)
}

func TestMessageService_Reply_BlankResponse(t *testing.T) {
	fx := createTestMessageService(t)

	_, err := fx.service.Reply(context.Background(), adminPrincipal(), uuid.New(), "  ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMessageService_SetFeatured(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.msgRepo.EXPECT().
		UpdateByID(ctx, id, mock.MatchedBy(func(patch repository.MessagePatch) bool {
			return patch.IsFeatured != nil && *patch.IsFeatured
		})).
		Return(&entity.Message{ID: id, IsFeatured: true}, nil)

	msg, err := fx.service.SetFeatured(ctx, adminPrincipal(), id, true)
	require.NoError(t, err)
	assert.True(t, msg.IsFeatured)
}

func TestMessageService_Delete_NotFound(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.msgRepo.EXPECT().DeleteByID(ctx, id).Return(repository.ErrMessageNotFound)

	err := fx.service.Delete(ctx, adminPrincipal(), id)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageNotFound))
}

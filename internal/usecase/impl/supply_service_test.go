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

type supplyServiceFixtures struct {
	service    usecase.SupplyUsecase
	supplyRepo *mockRepo.MockSupplyRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestSupplyService(t *testing.T) supplyServiceFixtures {
	supplyRepo := mockRepo.NewMockSupplyRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := &mockRepo.StubTransactionManager{Supply: supplyRepo, User: userRepo}

	service := NewSupplyService(SupplyServiceParams{
		TxManager:  txManager,
		SupplyRepo: supplyRepo,
		UserRepo:   userRepo,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return supplyServiceFixtures{
		service:    service,
		supplyRepo: supplyRepo,
		userRepo:   userRepo,
	}
}

func pendingSupply(requesterID uuid.UUID) *entity.SupplyRequest {
	return &entity.SupplyRequest{
		ID:            uuid.New(),
		RequesterID:   requesterID,
		Description:   "Tanker delivery for three days",
		Location:      entity.Location{Lat: 31.95, Lng: 35.91},
		PaymentMethod: entity.PaymentCashOnDelivery,
		Status:        entity.SupplyStatusPending,
	}
}

func TestSupplyService_Create_DefaultsPaymentMethod(t *testing.T) {
	fx := createTestSupplyService(t)

	ctx := context.Background()
	p := userPrincipal()
	input := &usecase.CreateSupplyInput{
		Description: "Water outage on our street",
		Location:    &usecase.LocationInput{Lat: f64(31.95), Lng: f64(35.91)},
	}

	fx.supplyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SupplyRequest")).
		Return(nil)

	req, err := fx.service.Create(ctx, p, input)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCashOnDelivery, req.PaymentMethod)
	assert.Equal(t, entity.SupplyStatusPending, req.Status)
}

func TestSupplyService_Create_UnknownPaymentMethod(t *testing.T) {
	fx := createTestSupplyService(t)

	input := &usecase.CreateSupplyInput{
		Description:   "desc",
		Location:      &usecase.LocationInput{Lat: f64(0), Lng: f64(0)},
		PaymentMethod: "barter",
	}

	_, err := fx.service.Create(context.Background(), userPrincipal(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSupplyService_Assign_SetsAssignedStatus(t *testing.T) {
	fx := createTestSupplyService(t)

	ctx := context.Background()
	req := pendingSupply(uuid.New())
	techID := uuid.New()

	fx.supplyRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, techID).
		Return(&entity.User{ID: techID, Role: entity.RoleTechnician}, nil)
	fx.supplyRepo.EXPECT().
		UpdateByID(ctx, req.ID, mock.MatchedBy(func(patch repository.SupplyPatch) bool {
			return patch.TechnicianID != nil && *patch.TechnicianID == techID &&
				patch.Status != nil && *patch.Status == entity.SupplyStatusAssigned
		})).
		Return(&entity.SupplyRequest{ID: req.ID, Status: entity.SupplyStatusAssigned, TechnicianID: &techID}, nil)

	got, err := fx.service.Assign(ctx, adminPrincipal(), req.ID, &usecase.AssignTechnicianInput{TechnicianID: techID})
	require.NoError(t, err)
	assert.Equal(t, entity.SupplyStatusAssigned, got.Status)
}

func TestSupplyService_Assign_RejectsNonTechnician(t *testing.T) {
	fx := createTestSupplyService(t)

	ctx := context.Background()
	req := pendingSupply(uuid.New())
	targetID := uuid.New()

	fx.supplyRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, Role: entity.RoleAdmin}, nil)

	_, err := fx.service.Assign(ctx, adminPrincipal(), req.ID, &usecase.AssignTechnicianInput{TechnicianID: targetID})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTechnician))
}

func TestSupplyService_ChangeStatus_FullDeliveryCycle(t *testing.T) {
	fx := createTestSupplyService(t)

	ctx := context.Background()
	req := pendingSupply(uuid.New())
	techID := uuid.New()
	req.Status = entity.SupplyStatusInProgress
	req.TechnicianID = &techID

	fx.supplyRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.supplyRepo.EXPECT().
		UpdateByID(ctx, req.ID, mock.MatchedBy(func(patch repository.SupplyPatch) bool {
			return patch.Status != nil && *patch.Status == entity.SupplyStatusDelivered
		})).
		Return(&entity.SupplyRequest{ID: req.ID, Status: entity.SupplyStatusDelivered, TechnicianID: &techID}, nil)

	got, err := fx.service.ChangeStatus(ctx, adminPrincipal(), req.ID, "delivered")
	require.NoError(t, err)
	assert.Equal(t, entity.SupplyStatusDelivered, got.Status)
}

func TestSupplyService_ChangeStatus_UnknownStatus(t *testing.T) {
	fx := createTestSupplyService(t)

	ctx := context.Background()
	req := pendingSupply(uuid.New())

	fx.supplyRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	_, err := fx.service.ChangeStatus(ctx, adminPrincipal(), req.ID, "resolved")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus))
}

func TestSupplyService_ChangeStatus_MissingRequestWinsOverBadStatus(t *testing.T) {
	fx := createTestSupplyService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.supplyRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrSupplyRequestNotFound)

	_, err := fx.service.ChangeStatus(ctx, adminPrincipal(), id, "resolved")
	assert.True(t, errors.Is(err, domainerrors.ErrSupplyRequestNotFound))
}

func TestSupplyService_AddNote_AdminRecordsAuthorEmail(t *testing.T) {
	fx := createTestSupplyService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	req := pendingSupply(uuid.New())

	fx.supplyRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, admin.ID).
		Return(&entity.User{ID: admin.ID, Email: "ops@example.com", Role: entity.RoleAdmin}, nil)
	fx.supplyRepo.EXPECT().
		AppendNote(ctx, mock.MatchedBy(func(note *entity.SupplyNote) bool {
			return note.RequestID == req.ID && note.Note == "driver dispatched" && note.AddedBy == "ops@example.com"
		})).
		Return(nil)

	got, err := fx.service.AddNote(ctx, admin, req.ID, "driver dispatched")
	require.NoError(t, err)
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "ops@example.com", got.Notes[0].AddedBy)
}

func TestSupplyService_AddNote_RequesterForbidden(t *testing.T) {
	fx := createTestSupplyService(t)

	p := userPrincipal()

	_, err := fx.service.AddNote(context.Background(), p, uuid.New(), "note")
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSupplyService_ListForUser_SelfAllowed(t *testing.T) {
	fx := createTestSupplyService(t)

	ctx := context.Background()
	p := userPrincipal()

	fx.supplyRepo.EXPECT().
		FindMany(ctx, repository.SupplyFilter{RequesterID: &p.ID}).
		Return([]*entity.SupplyRequest{pendingSupply(p.ID)}, nil)

	reqs, err := fx.service.ListForUser(ctx, p, p.ID)
	require.NoError(t, err)
	assert.Len(t, reqs, 1)
}

func TestSupplyService_Delete_NotFound(t *testing.T) {
	fx := createTestSupplyService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.supplyRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrSupplyRequestNotFound)

	err := fx.service.Delete(ctx, adminPrincipal(), id)
	assert.True(t, errors.Is(err, domainerrors.ErrSupplyRequestNotFound))
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

// requestServiceFixtures holds all test dependencies for request service tests.
type requestServiceFixtures struct {
	service  usecase.RequestUsecase
	reqRepo  *mockRepo.MockMaintenanceRepository
	userRepo *mockRepo.MockUserRepository
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	reqRepo := mockRepo.NewMockMaintenanceRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := &mockRepo.StubTransactionManager{Maintenance: reqRepo, User: userRepo}

	service := NewRequestService(RequestServiceParams{
		TxManager: txManager,
		ReqRepo:   reqRepo,
		UserRepo:  userRepo,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return requestServiceFixtures{
		service:  service,
		reqRepo:  reqRepo,
		userRepo: userRepo,
	}
}

func userPrincipal() entity.Principal {
	return entity.Principal{ID: uuid.New(), Role: entity.RoleUser}
}

func adminPrincipal() entity.Principal {
	return entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}
}

func f64(v float64) *float64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func pendingRequest(requesterID uuid.UUID) *entity.MaintenanceRequest {
	return &entity.MaintenanceRequest{
		ID:          uuid.New(),
		RequesterID: requesterID,
		Description: "Burst pipe in the kitchen",
		Category:    "plumbing",
		Location:    entity.Location{Lat: 31.95, Lng: 35.91},
		Status:      entity.RequestStatusPending,
		CreatedAt:   time.Now().Add(-time.Hour),
	}
}

func TestRequestService_Create_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	p := userPrincipal()
	input := &usecase.CreateRequestInput{
		Description: "Water leaking through the ceiling",
		Category:    "plumbing",
		Location:    &usecase.LocationInput{Lat: f64(31.95), Lng: f64(35.91)},
	}

	fx.reqRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MaintenanceRequest")).
		Return(nil)

	req, err := fx.service.Create(ctx, p, input)
	require.NoError(t, err)
	assert.Equal(t, p.ID, req.RequesterID)
	assert.Equal(t, entity.RequestStatusPending, req.Status)
	assert.Nil(t, req.TechnicianID)
	assert.Nil(t, req.ResolvedAt)
	assert.Empty(t, req.Notes)
}

func TestRequestService_Create_AdminForbidden(t *testing.T) {
	fx := createTestRequestService(t)

	input := &usecase.CreateRequestInput{
		Description: "desc",
		Category:    "plumbing",
		Location:    &usecase.LocationInput{Lat: f64(0), Lng: f64(0)},
	}

	_, err := fx.service.Create(context.Background(), adminPrincipal(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRequestService_Create_MissingLatitude(t *testing.T) {
	fx := createTestRequestService(t)

	input := &usecase.CreateRequestInput{
		Description: "desc",
		Category:    "plumbing",
		Location:    &usecase.LocationInput{Lng: f64(35.91)},
	}

	_, err := fx.service.Create(context.Background(), userPrincipal(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))
}

func TestRequestService_Create_CoordinatesOutOfRange(t *testing.T) {
	fx := createTestRequestService(t)

	input := &usecase.CreateRequestInput{
		Description: "desc",
		Category:    "plumbing",
		Location:    &usecase.LocationInput{Lat: f64(95), Lng: f64(35.91)},
	}

	_, err := fx.service.Create(context.Background(), userPrincipal(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))
}

func TestRequestService_Create_BlankDescription(t *testing.T) {
	fx := createTestRequestService(t)

	input := &usecase.CreateRequestInput{
		Description: "   ",
		Category:    "plumbing",
		Location:    &usecase.LocationInput{Lat: f64(0), Lng: f64(0)},
	}

	_, err := fx.service.Create(context.Background(), userPrincipal(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRequestService_GetByID_Requester(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	p := userPrincipal()
	req := pendingRequest(p.ID)

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	got, err := fx.service.GetByID(ctx, p, req.ID)
	require.NoError(t, err)
	assert.Equal(t, req.ID, got.ID)
}

func TestRequestService_GetByID_ForeignUserForbidden(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	_, err := fx.service.GetByID(ctx, userPrincipal(), req.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRequestService_GetByID_UnassignedTechnicianForbidden(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())
	tech := entity.Principal{ID: uuid.New(), Role: entity.RoleTechnician}

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	_, err := fx.service.GetByID(ctx, tech, req.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

// A missing request reports not-found before any permission check, so a 403
// never reveals which IDs exist.
func TestRequestService_GetByID_NotFoundBeforeGuard(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.reqRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRequestNotFound)

	_, err := fx.service.GetByID(ctx, userPrincipal(), id)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
	assert.False(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRequestService_ListAll_NonAdminForbidden(t *testing.T) {
	fx := createTestRequestService(t)

	_, err := fx.service.ListAll(context.Background(), userPrincipal(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRequestService_ListForUser_SelfAllowed(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	p := userPrincipal()

	fx.reqRepo.EXPECT().
		FindMany(ctx, repository.RequestFilter{RequesterID: &p.ID}).
		Return([]*entity.MaintenanceRequest{pendingRequest(p.ID)}, nil)

	reqs, err := fx.service.ListForUser(ctx, p, p.ID)
	require.NoError(t, err)
	assert.Len(t, reqs, 1)
}

func TestRequestService_ListForUser_OtherUserForbidden(t *testing.T) {
	fx := createTestRequestService(t)

	_, err := fx.service.ListForUser(context.Background(), userPrincipal(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRequestService_Assign_PendingAdvancesToAssigned(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	req := pendingRequest(uuid.New())
	techID := uuid.New()

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, techID).
		Return(&entity.User{ID: techID, Role: entity.RoleTechnician}, nil)
	fx.reqRepo.EXPECT().
		UpdateByID(ctx, req.ID, mock.MatchedBy(func(patch repository.RequestPatch) bool {
			return patch.TechnicianID != nil && *patch.TechnicianID == techID &&
				patch.Status != nil && *patch.Status == entity.RequestStatusAssigned
		})).
		Return(&entity.MaintenanceRequest{ID: req.ID, Status: entity.RequestStatusAssigned, TechnicianID: &techID}, nil)

	got, err := fx.service.Assign(ctx, admin, req.ID, &usecase.AssignTechnicianInput{TechnicianID: techID})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAssigned, got.Status)
	require.NotNil(t, got.TechnicianID)
	assert.Equal(t, techID, *got.TechnicianID)
}

func TestRequestService_Assign_RejectsNonTechnician(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())
	targetID := uuid.New()

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, Role: entity.RoleUser}, nil)

	_, err := fx.service.Assign(ctx, adminPrincipal(), req.ID, &usecase.AssignTechnicianInput{TechnicianID: targetID})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTechnician))
}

func TestRequestService_Assign_ConflictWithoutReassignFlag(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())
	current := uuid.New()
	req.TechnicianID = &current
	req.Status = entity.RequestStatusAssigned
	replacement := uuid.New()

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, replacement).
		Return(&entity.User{ID: replacement, Role: entity.RoleTechnician}, nil)

	_, err := fx.service.Assign(ctx, adminPrincipal(), req.ID, &usecase.AssignTechnicianInput{TechnicianID: replacement})
	assert.True(t, errors.Is(err, domainerrors.ErrTechnicianAlreadyAssigned))
}

func TestRequestService_Assign_ReassignFlagOverrides(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())
	current := uuid.New()
	req.TechnicianID = &current
	req.Status = entity.RequestStatusInProgress
	replacement := uuid.New()

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, replacement).
		Return(&entity.User{ID: replacement, Role: entity.RoleTechnician}, nil)
	fx.reqRepo.EXPECT().
		UpdateByID(ctx, req.ID, mock.MatchedBy(func(patch repository.RequestPatch) bool {
			// Already past pending, so the status is untouched.
			return patch.TechnicianID != nil && *patch.TechnicianID == replacement && patch.Status == nil
		})).
		Return(&entity.MaintenanceRequest{ID: req.ID, Status: req.Status, TechnicianID: &replacement}, nil)

	_, err := fx.service.Assign(ctx, adminPrincipal(), req.ID, &usecase.AssignTechnicianInput{TechnicianID: replacement, Reassign: true})
	require.NoError(t, err)
}

func TestRequestService_Assign_NonAdminForbidden(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	p := userPrincipal()
	req := pendingRequest(p.ID)

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	_, err := fx.service.Assign(ctx, p, req.ID, &usecase.AssignTechnicianInput{TechnicianID: uuid.New()})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRequestService_ChangeStatus_UnknownStatus(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	_, err := fx.service.ChangeStatus(ctx, adminPrincipal(), req.ID, "closed")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus))
}

func TestRequestService_ChangeStatus_MissingRequestWinsOverBadStatus(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.reqRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRequestNotFound)

	_, err := fx.service.ChangeStatus(ctx, adminPrincipal(), id, "closed")
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestRequestService_ChangeStatus_ForbiddenWinsOverBadStatus(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	p := userPrincipal()
	req := pendingRequest(p.ID)

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	_, err := fx.service.ChangeStatus(ctx, p, req.ID, "closed")
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRequestService_Assign_MissingTechnicianID(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	_, err := fx.service.Assign(ctx, adminPrincipal(), req.ID, &usecase.AssignTechnicianInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRequestService_Assign_MissingRequestWinsOverBadInput(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.reqRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRequestNotFound)

	_, err := fx.service.Assign(ctx, adminPrincipal(), id, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestRequestService_ChangeStatus_ToResolvedStampsTime(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())
	req.Status = entity.RequestStatusInProgress

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.reqRepo.EXPECT().
		UpdateByID(ctx, req.ID, mock.MatchedBy(func(patch repository.RequestPatch) bool {
			return patch.Status != nil && *patch.Status == entity.RequestStatusResolved && patch.ResolvedAt != nil
		})).
		Return(&entity.MaintenanceRequest{ID: req.ID, Status: entity.RequestStatusResolved}, nil)

	_, err := fx.service.ChangeStatus(ctx, adminPrincipal(), req.ID, "resolved")
	require.NoError(t, err)
}

func TestRequestService_ChangeStatus_AwayFromResolvedClearsTime(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())
	techID := uuid.New()
	resolvedAt := time.Now().Add(-time.Minute)
	req.Status = entity.RequestStatusResolved
	req.TechnicianID = &techID
	req.ResolvedAt = &resolvedAt

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.reqRepo.EXPECT().
		UpdateByID(ctx, req.ID, mock.MatchedBy(func(patch repository.RequestPatch) bool {
			return patch.Status != nil && *patch.Status == entity.RequestStatusInProgress &&
				patch.ResolvedAt == nil && patch.ClearResolvedAt
		})).
		Return(&entity.MaintenanceRequest{ID: req.ID, Status: entity.RequestStatusInProgress, TechnicianID: &techID}, nil)

	got, err := fx.service.ChangeStatus(ctx, adminPrincipal(), req.ID, "in-progress")
	require.NoError(t, err)
	assert.Nil(t, got.ResolvedAt)
}

func TestRequestService_ChangeStatus_PendingWithTechnicianRefused(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())
	techID := uuid.New()
	req.Status = entity.RequestStatusAssigned
	req.TechnicianID = &techID

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	_, err := fx.service.ChangeStatus(ctx, adminPrincipal(), req.ID, "pending")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRequestService_Resolve_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())
	req.Status = entity.RequestStatusInProgress

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.reqRepo.EXPECT().
		UpdateByID(ctx, req.ID, mock.MatchedBy(func(patch repository.RequestPatch) bool {
			return patch.Status != nil && *patch.Status == entity.RequestStatusResolved && patch.ResolvedAt != nil
		})).
		Return(&entity.MaintenanceRequest{ID: req.ID, Status: entity.RequestStatusResolved}, nil)

	got, err := fx.service.Resolve(ctx, adminPrincipal(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusResolved, got.Status)
}

// Resolving twice is a no-op: the second call returns the terminal state
// without writing, so the original resolution time survives.
func TestRequestService_Resolve_Idempotent(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())
	resolvedAt := time.Now().Add(-time.Hour)
	req.Status = entity.RequestStatusResolved
	req.ResolvedAt = &resolvedAt

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	got, err := fx.service.Resolve(ctx, adminPrincipal(), req.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ResolvedAt)
	assert.Equal(t, resolvedAt, *got.ResolvedAt)
}

func TestRequestService_AddNote_RequesterAppends(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	p := userPrincipal()
	req := pendingRequest(p.ID)

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.reqRepo.EXPECT().
		AppendNote(ctx, mock.MatchedBy(func(note *entity.RequestNote) bool {
			return note.RequestID == req.ID && note.Text == "still leaking" &&
				note.AuthorID == p.ID && note.AuthorRole == entity.RoleUser
		})).
		Return(nil)

	got, err := fx.service.AddNote(ctx, p, req.ID, "still leaking")
	require.NoError(t, err)
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "still leaking", got.Notes[0].Text)
}

func TestRequestService_AddNote_BlankRejected(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	p := userPrincipal()
	req := pendingRequest(p.ID)

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	_, err := fx.service.AddNote(ctx, p, req.ID, "  \t ")
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyNote))
}

func TestRequestService_AddNote_ForeignUserForbidden(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	_, err := fx.service.AddNote(ctx, userPrincipal(), req.ID, "note")
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRequestService_Update_WhitelistedFields(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.reqRepo.EXPECT().
		UpdateByID(ctx, req.ID, mock.MatchedBy(func(patch repository.RequestPatch) bool {
			return patch.Description != nil && *patch.Description == "corrected" &&
				patch.Category == nil && patch.Status == nil && patch.TechnicianID == nil
		})).
		Return(&entity.MaintenanceRequest{ID: req.ID, Description: "corrected"}, nil)

	got, err := fx.service.Update(ctx, adminPrincipal(), req.ID, &usecase.UpdateRequestInput{Description: strPtr("corrected")})
	require.NoError(t, err)
	assert.Equal(t, "corrected", got.Description)
}

func TestRequestService_Update_BlankCategoryRejected(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	_, err := fx.service.Update(ctx, adminPrincipal(), req.ID, &usecase.UpdateRequestInput{Category: strPtr(" ")})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRequestService_Delete_AdminOnly(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	p := userPrincipal()
	req := pendingRequest(p.ID)

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)

	err := fx.service.Delete(ctx, p, req.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRequestService_Delete_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	req := pendingRequest(uuid.New())

	fx.reqRepo.EXPECT().FindByID(ctx, req.ID).Return(req, nil)
	fx.reqRepo.EXPECT().DeleteByID(ctx, req.ID).Return(nil)

	err := fx.service.Delete(ctx, adminPrincipal(), req.ID)
	require.NoError(t, err)
}

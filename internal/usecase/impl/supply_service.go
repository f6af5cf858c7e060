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

// supplyService implements the SupplyUsecase interface. It mirrors the
// maintenance engine's load-then-guard shape with the supply status enum.
type supplyService struct {
	txManager  repository.TransactionManager
	supplyRepo repository.SupplyRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// SupplyServiceParams holds dependencies for supplyService, injected by Fx.
type SupplyServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	SupplyRepo repository.SupplyRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewSupplyService is the constructor for supplyService.
func NewSupplyService(params SupplyServiceParams) usecase.SupplyUsecase {
	return &supplyService{
		txManager:  params.TxManager,
		supplyRepo: params.SupplyRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *supplyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a supply request in the pending state. The payment method
// defaults to cash on delivery when omitted.
func (srv *supplyService) Create(ctx context.Context, p entity.Principal, input *usecase.CreateSupplyInput) (*entity.SupplyRequest, error) {
	if err := authz.Authorize(p, authz.OperationCreate, nil); err != nil {
		return nil, err
	}

	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "request body is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "description is required")
	}

	loc, err := parseLocation(input.Location)
	if err != nil {
		return nil, err
	}

	payment := entity.PaymentCashOnDelivery
	if input.PaymentMethod != "" {
		payment = entity.PaymentMethod(input.PaymentMethod)
		if !payment.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown payment method %q", input.PaymentMethod)
		}
	}

	req := &entity.SupplyRequest{
		RequesterID:   p.ID,
		Description:   input.Description,
		Location:      loc,
		PaymentMethod: payment,
		Status:        entity.SupplyStatusPending,
	}

	if err := srv.supplyRepo.Create(ctx, req); err != nil {
		return nil, errors.Wrap(err, "failed to create supply request")
	}

	srv.log(ctx).Info("Supply request created",
		slog.Any("requestID", req.ID),
		slog.Any("requesterID", p.ID),
	)

	return req, nil
}

// GetByID returns a supply request to its requester, its technician or an admin.
func (srv *supplyService) GetByID(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.SupplyRequest, error) {
	req, err := srv.loadSupply(ctx, srv.supplyRepo, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(p, authz.OperationGet, supplyResource(req)); err != nil {
		return nil, err
	}

	return req, nil
}

// ListAll returns every supply request matching the filter. Admin only.
func (srv *supplyService) ListAll(ctx context.Context, p entity.Principal, filter *usecase.SupplyListFilter) ([]*entity.SupplyRequest, error) {
	if err := authz.Authorize(p, authz.OperationListAll, nil); err != nil {
		return nil, err
	}

	repoFilter := repository.SupplyFilter{}
	if filter != nil && filter.Status != nil {
		status := entity.SupplyStatus(*filter.Status)
		if !status.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrInvalidStatus, "unknown status %q", *filter.Status)
		}
		repoFilter.Status = &status
	}

	reqs, err := srv.supplyRepo.FindMany(ctx, repoFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list supply requests")
	}

	return reqs, nil
}

// ListForUser returns all supply requests owned by userID.
func (srv *supplyService) ListForUser(ctx context.Context, p entity.Principal, userID uuid.UUID) ([]*entity.SupplyRequest, error) {
	if err := authz.Authorize(p, authz.OperationListForUser, &authz.Resource{RequesterID: userID}); err != nil {
		return nil, err
	}

	reqs, err := srv.supplyRepo.FindMany(ctx, repository.SupplyFilter{RequesterID: &userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user supply requests")
	}

	return reqs, nil
}

// Assign links a technician to a supply request and advances it to assigned.
func (srv *supplyService) Assign(ctx context.Context, p entity.Principal, id uuid.UUID, input *usecase.AssignTechnicianInput) (*entity.SupplyRequest, error) {
	var updated *entity.SupplyRequest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplyRepo := repoFactory.SupplyRepo()

		req, err := srv.loadSupply(ctx, supplyRepo, id)
		if err != nil {
			return err
		}
		if err := authz.Authorize(p, authz.OperationAssign, supplyResource(req)); err != nil {
			return err
		}

		// Input checks come after the load and the guard so a missing request
		// or a forbidden caller wins over a malformed body.
		if input == nil || input.TechnicianID == uuid.Nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "technicianId is required")
		}

		tech, err := repoFactory.UserRepo().FindByID(ctx, input.TechnicianID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidTechnician, "technician does not exist")
			}

			return errors.Wrap(err, "failed to look up technician")
		}
		if tech.Role != entity.RoleTechnician {
			return errors.Wrapf(domainerrors.ErrInvalidTechnician, "user %s has role %q", tech.ID, tech.Role)
		}

		if req.TechnicianID != nil && *req.TechnicianID != input.TechnicianID && !input.Reassign {
			return errors.Wrap(domainerrors.ErrTechnicianAlreadyAssigned, "reassign flag not set")
		}

		assigned := entity.SupplyStatusAssigned
		patch := repository.SupplyPatch{TechnicianID: &input.TechnicianID}
		if req.Status == entity.SupplyStatusPending {
			patch.Status = &assigned
		}

		updated, err = supplyRepo.UpdateByID(ctx, id, patch)
		if err != nil {
			return errors.Wrap(err, "failed to assign technician")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Supply technician assigned",
		slog.Any("requestID", id),
		slog.Any("technicianID", input.TechnicianID),
	)

	return updated, nil
}

// ChangeStatus moves a supply request to any value of its status enum.
func (srv *supplyService) ChangeStatus(ctx context.Context, p entity.Principal, id uuid.UUID, status string) (*entity.SupplyRequest, error) {
	newStatus := entity.SupplyStatus(status)

	var updated *entity.SupplyRequest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplyRepo := repoFactory.SupplyRepo()

		req, err := srv.loadSupply(ctx, supplyRepo, id)
		if err != nil {
			return err
		}
		if err := authz.Authorize(p, authz.OperationChangeStatus, supplyResource(req)); err != nil {
			return err
		}

		// Input checks come after the load and the guard so a missing request
		// or a forbidden caller wins over a malformed body.
		if !newStatus.IsValid() {
			return errors.Wrapf(domainerrors.ErrInvalidStatus, "unknown status %q", status)
		}

		if newStatus == entity.SupplyStatusPending && req.TechnicianID != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "cannot return to pending while a technician is assigned")
		}

		updated, err = supplyRepo.UpdateByID(ctx, id, repository.SupplyPatch{Status: &newStatus})
		if err != nil {
			return errors.Wrap(err, "failed to change supply status")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Supply status changed", slog.Any("requestID", id), slog.String("status", status))

	return updated, nil
}

// AddNote appends an administrative note to the supply trail. The author is
// recorded by email so the trail stays readable after account changes.
func (srv *supplyService) AddNote(ctx context.Context, p entity.Principal, id uuid.UUID, text string) (*entity.SupplyRequest, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}

	req, err := srv.loadSupply(ctx, srv.supplyRepo, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, errors.Wrap(domainerrors.ErrEmptyNote, "blank note rejected")
	}

	admin, err := srv.userRepo.FindByID(ctx, p.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve note author")
	}

	note := &entity.SupplyNote{
		RequestID: id,
		Note:      text,
		AddedBy:   admin.Email,
	}
	if err := srv.supplyRepo.AppendNote(ctx, note); err != nil {
		return nil, errors.Wrap(err, "failed to append supply note")
	}

	req.Notes = append(req.Notes, *note)

	return req, nil
}

// Delete permanently removes a supply request.
func (srv *supplyService) Delete(ctx context.Context, p entity.Principal, id uuid.UUID) error {
	req, err := srv.loadSupply(ctx, srv.supplyRepo, id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(p, authz.OperationDelete, supplyResource(req)); err != nil {
		return err
	}

	if err := srv.supplyRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSupplyRequestNotFound) {
			return errors.Wrap(domainerrors.ErrSupplyRequestNotFound, "supply request already deleted")
		}

		return errors.Wrap(err, "failed to delete supply request")
	}

	srv.log(ctx).Info("Supply request deleted", slog.Any("requestID", id), slog.Any("adminID", p.ID))

	return nil
}

func (srv *supplyService) loadSupply(ctx context.Context, repo repository.SupplyRepository, id uuid.UUID) (*entity.SupplyRequest, error) {
	req, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSupplyRequestNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrSupplyRequestNotFound, "supply request %s", id)
		}

		return nil, errors.Wrap(err, "failed to load supply request")
	}

	return req, nil
}

func supplyResource(req *entity.SupplyRequest) *authz.Resource {
	return &authz.Resource{RequesterID: req.RequesterID, TechnicianID: req.TechnicianID}
}

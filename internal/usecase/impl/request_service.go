// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// requestService implements the RequestUsecase interface. It is request-scoped
// and stateless between operations: every call resolves the persisted state,
// consults the guard, validates the transition and writes back.
type requestService struct {
	txManager repository.TransactionManager
	reqRepo   repository.MaintenanceRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// RequestServiceParams holds dependencies for requestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ReqRepo   repository.MaintenanceRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		txManager: params.TxManager,
		reqRepo:   params.ReqRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a new maintenance request in the pending state.
func (srv *requestService) Create(ctx context.Context, p entity.Principal, input *usecase.CreateRequestInput) (*entity.MaintenanceRequest, error) {
	if err := authz.Authorize(p, authz.OperationCreate, nil); err != nil {
		return nil, err
	}

	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "request body is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "description is required")
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "category is required")
	}

	loc, err := parseLocation(input.Location)
	if err != nil {
		return nil, err
	}

	req := &entity.MaintenanceRequest{
		RequesterID: p.ID,
		Description: input.Description,
		Category:    input.Category,
		Location:    loc,
		Images:      input.Images,
		Status:      entity.RequestStatusPending,
	}

	if err := srv.reqRepo.Create(ctx, req); err != nil {
		return nil, errors.Wrap(err, "failed to create maintenance request")
	}

	srv.log(ctx).Info("Maintenance request created",
		slog.Any("requestID", req.ID),
		slog.Any("requesterID", p.ID),
		slog.String("category", req.Category),
	)

	return req, nil
}

// GetByID returns a request to its requester, its assigned technician or an admin.
func (srv *requestService) GetByID(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.MaintenanceRequest, error) {
	req, err := srv.loadRequest(ctx, srv.reqRepo, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(p, authz.OperationGet, requestResource(req)); err != nil {
		return nil, err
	}

	return req, nil
}

// ListAll returns every request matching the filter. Admin only.
func (srv *requestService) ListAll(ctx context.Context, p entity.Principal, filter *usecase.RequestListFilter) ([]*entity.MaintenanceRequest, error) {
	if err := authz.Authorize(p, authz.OperationListAll, nil); err != nil {
		return nil, err
	}

	repoFilter := repository.RequestFilter{}
	if filter != nil {
		if filter.Status != nil {
			status := entity.RequestStatus(*filter.Status)
			if !status.IsValid() {
				return nil, errors.Wrapf(domainerrors.ErrInvalidStatus, "unknown status %q", *filter.Status)
			}
			repoFilter.Status = &status
		}
		repoFilter.Category = filter.Category
	}

	reqs, err := srv.reqRepo.FindMany(ctx, repoFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list maintenance requests")
	}

	return reqs, nil
}

// ListForUser returns all requests owned by userID. The principal must be
// that same user or an admin.
func (srv *requestService) ListForUser(ctx context.Context, p entity.Principal, userID uuid.UUID) ([]*entity.MaintenanceRequest, error) {
	if err := authz.Authorize(p, authz.OperationListForUser, &authz.Resource{RequesterID: userID}); err != nil {
		return nil, err
	}

	reqs, err := srv.reqRepo.FindMany(ctx, repository.RequestFilter{RequesterID: &userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user requests")
	}

	return reqs, nil
}

// Assign links a technician to a request. A pending request advances to
// assigned; overwriting an existing assignment requires the explicit
// reassign flag.
func (srv *requestService) Assign(ctx context.Context, p entity.Principal, id uuid.UUID, input *usecase.AssignTechnicianInput) (*entity.MaintenanceRequest, error) {
	var updated *entity.MaintenanceRequest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reqRepo := repoFactory.MaintenanceRepo()

		req, err := srv.loadRequest(ctx, reqRepo, id)
		if err != nil {
			return err
		}
		if err := authz.Authorize(p, authz.OperationAssign, requestResource(req)); err != nil {
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

		patch := repository.RequestPatch{TechnicianID: &input.TechnicianID}
		if req.Status == entity.RequestStatusPending {
			assigned := entity.RequestStatusAssigned
			patch.Status = &assigned
		}

		updated, err = reqRepo.UpdateByID(ctx, id, patch)
		if err != nil {
			return errors.Wrap(err, "failed to assign technician")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Technician assigned",
		slog.Any("requestID", id),
		slog.Any("technicianID", input.TechnicianID),
	)

	return updated, nil
}

// ChangeStatus moves a request to any value of the status enum. No ordering
// is imposed between enum values, but the engine keeps its invariants: a
// request with a technician cannot return to pending, and resolvedAt tracks
// the resolved state exactly.
func (srv *requestService) ChangeStatus(ctx context.Context, p entity.Principal, id uuid.UUID, status string) (*entity.MaintenanceRequest, error) {
	newStatus := entity.RequestStatus(status)

	var updated *entity.MaintenanceRequest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reqRepo := repoFactory.MaintenanceRepo()

		req, err := srv.loadRequest(ctx, reqRepo, id)
		if err != nil {
			return err
		}
		if err := authz.Authorize(p, authz.OperationChangeStatus, requestResource(req)); err != nil {
			return err
		}

		// Input checks come after the load and the guard so a missing request
		// or a forbidden caller wins over a malformed body.
		if !newStatus.IsValid() {
			return errors.Wrapf(domainerrors.ErrInvalidStatus, "unknown status %q", status)
		}

		if newStatus == entity.RequestStatusPending && req.TechnicianID != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "cannot return to pending while a technician is assigned")
		}

		patch := repository.RequestPatch{Status: &newStatus}
		switch {
		case newStatus == entity.RequestStatusResolved && req.ResolvedAt == nil:
			now := time.Now().UTC()
			patch.ResolvedAt = &now
		case newStatus != entity.RequestStatusResolved && req.ResolvedAt != nil:
			patch.ClearResolvedAt = true
		}

		updated, err = reqRepo.UpdateByID(ctx, id, patch)
		if err != nil {
			return errors.Wrap(err, "failed to change status")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Request status changed", slog.Any("requestID", id), slog.String("status", status))

	return updated, nil
}

// Resolve marks a request resolved and stamps the resolution time in one
// step. Resolving an already-resolved request is a no-op that returns the
// existing terminal state.
func (srv *requestService) Resolve(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.MaintenanceRequest, error) {
	var result *entity.MaintenanceRequest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reqRepo := repoFactory.MaintenanceRepo()

		req, err := srv.loadRequest(ctx, reqRepo, id)
		if err != nil {
			return err
		}
		if err := authz.Authorize(p, authz.OperationResolve, requestResource(req)); err != nil {
			return err
		}

		if req.IsResolved() {
			result = req

			return nil
		}

		resolved := entity.RequestStatusResolved
		now := time.Now().UTC()
		result, err = reqRepo.UpdateByID(ctx, id, repository.RequestPatch{Status: &resolved, ResolvedAt: &now})
		if err != nil {
			return errors.Wrap(err, "failed to resolve request")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Request resolved", slog.Any("requestID", id))

	return result, nil
}

// AddNote appends one note to the request's trail. The trail is append-only;
// the store primitive is an atomic insert so concurrent notes both survive.
func (srv *requestService) AddNote(ctx context.Context, p entity.Principal, id uuid.UUID, text string) (*entity.MaintenanceRequest, error) {
	req, err := srv.loadRequest(ctx, srv.reqRepo, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(p, authz.OperationAddNote, requestResource(req)); err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, errors.Wrap(domainerrors.ErrEmptyNote, "blank note rejected")
	}

	note := &entity.RequestNote{
		RequestID:  id,
		Text:       text,
		AuthorID:   p.ID,
		AuthorRole: p.Role,
	}
	if err := srv.reqRepo.AppendNote(ctx, note); err != nil {
		return nil, errors.Wrap(err, "failed to append note")
	}

	req.Notes = append(req.Notes, *note)

	return req, nil
}

// Update applies an administrative correction to descriptive fields only.
func (srv *requestService) Update(ctx context.Context, p entity.Principal, id uuid.UUID, input *usecase.UpdateRequestInput) (*entity.MaintenanceRequest, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "request body is required")
	}

	var updated *entity.MaintenanceRequest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reqRepo := repoFactory.MaintenanceRepo()

		req, err := srv.loadRequest(ctx, reqRepo, id)
		if err != nil {
			return err
		}
		if err := authz.Authorize(p, authz.OperationUpdate, requestResource(req)); err != nil {
			return err
		}

		patch := repository.RequestPatch{}
		if input.Description != nil {
			if strings.TrimSpace(*input.Description) == "" {
				return errors.Wrap(domainerrors.ErrValidationFailed, "description cannot be blank")
			}
			patch.Description = input.Description
		}
		if input.Category != nil {
			if strings.TrimSpace(*input.Category) == "" {
				return errors.Wrap(domainerrors.ErrValidationFailed, "category cannot be blank")
			}
			patch.Category = input.Category
		}
		if input.Location != nil {
			loc, err := parseLocation(input.Location)
			if err != nil {
				return err
			}
			patch.Location = &loc
		}

		updated, err = reqRepo.UpdateByID(ctx, id, patch)
		if err != nil {
			return errors.Wrap(err, "failed to update request")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete permanently removes a request. Terminal and irreversible.
func (srv *requestService) Delete(ctx context.Context, p entity.Principal, id uuid.UUID) error {
	req, err := srv.loadRequest(ctx, srv.reqRepo, id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(p, authz.OperationDelete, requestResource(req)); err != nil {
		return err
	}

	if err := srv.reqRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return errors.Wrap(domainerrors.ErrRequestNotFound, "request already deleted")
		}

		return errors.Wrap(err, "failed to delete request")
	}

	srv.log(ctx).Info("Request deleted", slog.Any("requestID", id), slog.Any("adminID", p.ID))

	return nil
}

// loadRequest fetches a request, translating the store's not-found sentinel
// into the domain error.
func (srv *requestService) loadRequest(ctx context.Context, repo repository.MaintenanceRepository, id uuid.UUID) (*entity.MaintenanceRequest, error) {
	req, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrRequestNotFound, "request %s", id)
		}

		return nil, errors.Wrap(err, "failed to load request")
	}

	return req, nil
}

// requestResource extracts the ownership facts the guard needs.
func requestResource(req *entity.MaintenanceRequest) *authz.Resource {
	return &authz.Resource{RequesterID: req.RequesterID, TechnicianID: req.TechnicianID}
}

// parseLocation validates that both coordinates are present and in range.
func parseLocation(input *usecase.LocationInput) (entity.Location, error) {
	if input == nil || input.Lat == nil || input.Lng == nil {
		return entity.Location{}, errors.Wrap(domainerrors.ErrInvalidCoordinates, "lat and lng are required")
	}

	loc := entity.Location{Lat: *input.Lat, Lng: *input.Lng}
	if !loc.InRange() {
		return entity.Location{}, errors.Wrapf(domainerrors.ErrInvalidCoordinates, "out of range: %f,%f", loc.Lat, loc.Lng)
	}

	return loc, nil
}

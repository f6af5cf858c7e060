// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"fixflow/internal/domain/entity"
	domainerrors "fixflow/internal/domain/errors"
	"fixflow/internal/domain/repository"
	"fixflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// maintenanceRepository implements the repository.MaintenanceRepository interface.
type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository is the constructor for maintenanceRepository.
func NewMaintenanceRepository(db *gorm.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{
		db: db,
	}
}

// Create persists a new maintenance request.
func (repo *maintenanceRepository) Create(ctx context.Context, req *entity.MaintenanceRequest) error {
	reqM := model.FromRequestDomain(req)

	if err := repo.db.WithContext(ctx).Create(reqM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid requester reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required request fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create maintenance request")
	}

	// Update the entity with generated values
	req.ID = reqM.ID
	req.CreatedAt = reqM.CreatedAt
	req.UpdatedAt = reqM.UpdatedAt

	return nil
}

// FindByID retrieves a single request with its note trail and both parties.
func (repo *maintenanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceRequest, error) {
	var reqM model.RequestModel

	if err := repo.db.WithContext(ctx).
		Preload("Requester").
		Preload("Technician").
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("maintenance_request_notes.created_at ASC")
		}).
		Where("id = ?", id).
		First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find maintenance request by ID")
	}

	return reqM.ToDomain(), nil
}

// FindMany retrieves all requests matching the filter, newest first.
func (repo *maintenanceRepository) FindMany(ctx context.Context, filter repository.RequestFilter) ([]*entity.MaintenanceRequest, error) {
	var reqModels []*model.RequestModel

	query := repo.db.WithContext(ctx).
		Preload("Requester").
		Preload("Technician").
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("maintenance_request_notes.created_at ASC")
		})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}
	if filter.TechnicianID != nil {
		query = query.Where("technician_id = ?", *filter.TechnicianID)
	}

	if err := query.Order("created_at DESC").Find(&reqModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find maintenance requests")
	}

	reqs := make([]*entity.MaintenanceRequest, 0, len(reqModels))
	for _, reqM := range reqModels {
		reqs = append(reqs, reqM.ToDomain())
	}

	return reqs, nil
}

// UpdateByID applies a patch and returns the updated request. A patch only
// ever touches the columns it names; the note trail is out of reach here.
func (repo *maintenanceRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch repository.RequestPatch) (*entity.MaintenanceRequest, error) {
	updates := map[string]any{}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Location != nil {
		updates["lat"] = patch.Location.Lat
		updates["lng"] = patch.Location.Lng
	}
	if patch.Status != nil {
		updates["status"] = patch.Status.String()
	}
	if patch.TechnicianID != nil {
		updates["technician_id"] = *patch.TechnicianID
	}
	if patch.ResolvedAt != nil {
		updates["resolved_at"] = *patch.ResolvedAt
	}
	if patch.ClearResolvedAt {
		updates["resolved_at"] = nil
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.RequestModel{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			if isForeignKeyConstraintViolation(result.Error) {
				return nil, domainerrors.ErrInvalidTechnician.WrapMessage("technician does not exist")
			}

			return nil, errors.Wrap(result.Error, "failed to update maintenance request")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrRequestNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// DeleteByID permanently removes a request; its notes go with it via cascade.
func (repo *maintenanceRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RequestModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete maintenance request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// AppendNote inserts one note row. A single INSERT is atomic, so concurrent
// appends to the same request both land.
func (repo *maintenanceRepository) AppendNote(ctx context.Context, note *entity.RequestNote) error {
	noteM := model.FromRequestNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRequestNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt

	return nil
}

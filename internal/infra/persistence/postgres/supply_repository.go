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

// supplyRepository implements the repository.SupplyRepository interface.
type supplyRepository struct {
	db *gorm.DB
}

// NewSupplyRepository is the constructor for supplyRepository.
func NewSupplyRepository(db *gorm.DB) repository.SupplyRepository {
	return &supplyRepository{
		db: db,
	}
}

// Create persists a new supply request.
func (repo *supplyRepository) Create(ctx context.Context, req *entity.SupplyRequest) error {
	reqM := model.FromSupplyDomain(req)

	if err := repo.db.WithContext(ctx).Create(reqM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid requester reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required request fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supply request")
	}

	req.ID = reqM.ID
	req.CreatedAt = reqM.CreatedAt
	req.UpdatedAt = reqM.UpdatedAt

	return nil
}

// FindByID retrieves a single supply request with notes and both parties.
func (repo *supplyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupplyRequest, error) {
	var reqM model.SupplyModel

	if err := repo.db.WithContext(ctx).
		Preload("Requester").
		Preload("Technician").
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("supply_request_notes.created_at ASC")
		}).
		Where("id = ?", id).
		First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplyRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find supply request by ID")
	}

	return reqM.ToDomain(), nil
}

// FindMany retrieves all supply requests matching the filter, newest first.
func (repo *supplyRepository) FindMany(ctx context.Context, filter repository.SupplyFilter) ([]*entity.SupplyRequest, error) {
	var reqModels []*model.SupplyModel

	query := repo.db.WithContext(ctx).
		Preload("Requester").
		Preload("Technician").
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("supply_request_notes.created_at ASC")
		})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}

	if err := query.Order("created_at DESC").Find(&reqModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find supply requests")
	}

	reqs := make([]*entity.SupplyRequest, 0, len(reqModels))
	for _, reqM := range reqModels {
		reqs = append(reqs, reqM.ToDomain())
	}

	return reqs, nil
}

// UpdateByID applies a patch and returns the updated supply request.
func (repo *supplyRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch repository.SupplyPatch) (*entity.SupplyRequest, error) {
	updates := map[string]any{}
	if patch.Description != nil {
		updates["description"] = *patch.Description
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

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.SupplyModel{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			if isForeignKeyConstraintViolation(result.Error) {
				return nil, domainerrors.ErrInvalidTechnician.WrapMessage("technician does not exist")
			}

			return nil, errors.Wrap(result.Error, "failed to update supply request")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrSupplyRequestNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// DeleteByID permanently removes a supply request and its notes via cascade.
func (repo *supplyRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SupplyModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete supply request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplyRequestNotFound
	}

	return nil
}

// AppendNote inserts one administrative note row.
func (repo *supplyRepository) AppendNote(ctx context.Context, note *entity.SupplyNote) error {
	noteM := model.FromSupplyNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSupplyRequestNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append supply note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt

	return nil
}

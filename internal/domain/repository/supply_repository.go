package repository

import (
	"context"
	"errors"

	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSupplyRequestNotFound is a domain-specific error returned when a supply request is not found.
var ErrSupplyRequestNotFound = errors.New("supply request not found")

// SupplyFilter is an equality filter over supply requests.
type SupplyFilter struct {
	Status      *entity.SupplyStatus
	RequesterID *uuid.UUID
}

// SupplyPatch is the whitelisted set of fields a supply update may touch.
type SupplyPatch struct {
	Description  *string
	Location     *entity.Location
	Status       *entity.SupplyStatus
	TechnicianID *uuid.UUID
}

// SupplyRepository is the store contract of the alternative supply workflow,
// structurally parallel to MaintenanceRepository.
type SupplyRepository interface {
	Create(ctx context.Context, req *entity.SupplyRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SupplyRequest, error)
	FindMany(ctx context.Context, filter SupplyFilter) ([]*entity.SupplyRequest, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch SupplyPatch) (*entity.SupplyRequest, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// AppendNote atomically appends one administrative note.
	AppendNote(ctx context.Context, note *entity.SupplyNote) error
}

// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestUsecase is the maintenance request lifecycle engine: it owns the
// state machine and consults the authorization guard before every operation.
// The acting principal is always an explicit argument.
type RequestUsecase interface {
	Create(ctx context.Context, p entity.Principal, input *CreateRequestInput) (*entity.MaintenanceRequest, error)
	GetByID(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.MaintenanceRequest, error)
	ListAll(ctx context.Context, p entity.Principal, filter *RequestListFilter) ([]*entity.MaintenanceRequest, error)
	ListForUser(ctx context.Context, p entity.Principal, userID uuid.UUID) ([]*entity.MaintenanceRequest, error)
	Assign(ctx context.Context, p entity.Principal, id uuid.UUID, input *AssignTechnicianInput) (*entity.MaintenanceRequest, error)
	ChangeStatus(ctx context.Context, p entity.Principal, id uuid.UUID, status string) (*entity.MaintenanceRequest, error)
	Resolve(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.MaintenanceRequest, error)
	AddNote(ctx context.Context, p entity.Principal, id uuid.UUID, text string) (*entity.MaintenanceRequest, error)
	Update(ctx context.Context, p entity.Principal, id uuid.UUID, input *UpdateRequestInput) (*entity.MaintenanceRequest, error)
	Delete(ctx context.Context, p entity.Principal, id uuid.UUID) error
}

// --- Input DTOs ---

// LocationInput carries coordinates as pointers so that missing or null
// values are distinguishable from zero and can be rejected.
type LocationInput struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// CreateRequestInput defines the data required to open a maintenance request.
type CreateRequestInput struct {
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Location    *LocationInput `json:"location"`
	Images      []string       `json:"images,omitempty"`
}

// AssignTechnicianInput defines the data required to assign a technician.
// Reassign must be set to overwrite an existing assignment.
type AssignTechnicianInput struct {
	TechnicianID uuid.UUID `json:"technicianId"`
	Reassign     bool      `json:"reassign,omitempty"`
}

// UpdateRequestInput is the administrative correction patch. Only descriptive
// fields are patchable; requester and notes are immutable by construction.
type UpdateRequestInput struct {
	Description *string        `json:"description,omitempty"`
	Category    *string        `json:"category,omitempty"`
	Location    *LocationInput `json:"location,omitempty"`
}

// RequestListFilter is the admin listing filter.
type RequestListFilter struct {
	Status   *string `query:"status"`
	Category *string `query:"category"`
}

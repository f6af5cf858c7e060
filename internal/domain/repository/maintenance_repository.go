// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRequestNotFound is a domain-specific error returned when a maintenance request is not found.
var ErrRequestNotFound = errors.New("maintenance request not found")

// RequestFilter is an equality filter over maintenance requests. Nil fields
// are ignored; set fields are ANDed together.
type RequestFilter struct {
	Status       *entity.RequestStatus
	Category     *string
	RequesterID  *uuid.UUID
	TechnicianID *uuid.UUID
}

// RequestPatch is the whitelisted set of fields an update may touch. The
// requester and the note trail are deliberately not representable here, which
// makes them immutable through this contract.
type RequestPatch struct {
	Description     *string
	Category        *string
	Location        *entity.Location
	Status          *entity.RequestStatus
	TechnicianID    *uuid.UUID
	ResolvedAt      *time.Time
	ClearResolvedAt bool
}

// MaintenanceRepository defines the store contract the lifecycle engine
// depends on. Reads return entities with requester/technician identity
// expanded and notes ordered by creation time.
type MaintenanceRepository interface {
	// Create persists a new request and fills in store-assigned fields.
	Create(ctx context.Context, req *entity.MaintenanceRequest) error

	// FindByID retrieves a single request with its note trail and parties.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceRequest, error)

	// FindMany retrieves all requests matching the filter, newest first.
	FindMany(ctx context.Context, filter RequestFilter) ([]*entity.MaintenanceRequest, error)

	// UpdateByID applies a patch and returns the updated request.
	UpdateByID(ctx context.Context, id uuid.UUID, patch RequestPatch) (*entity.MaintenanceRequest, error)

	// DeleteByID permanently removes a request and its notes.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// AppendNote atomically appends one note to a request's trail. Concurrent
	// appends must both survive; notes are never updated or removed.
	AppendNote(ctx context.Context, note *entity.RequestNote) error
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the workflow state of a maintenance request.
type RequestStatus string

const (
	// RequestStatusPending is the initial state of every new request.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusAssigned means a technician has been linked to the request.
	RequestStatusAssigned RequestStatus = "assigned"
	// RequestStatusInProgress means the technician is actively working on it.
	RequestStatusInProgress RequestStatus = "in-progress"
	// RequestStatusResolved is the terminal state.
	RequestStatusResolved RequestStatus = "resolved"
)

// String returns the string representation of the status.
func (s RequestStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a member of the maintenance enum.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAssigned, RequestStatusInProgress, RequestStatusResolved:
		return true
	default:
		return false
	}
}

// Location is a bare geographic coordinate pair attached to a request.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// InRange checks that the coordinates are within valid geographic bounds.
func (l Location) InRange() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// RequestNote is one entry of a request's append-only note trail.
// Notes are never edited or removed once written.
type RequestNote struct {
	ID         uuid.UUID // Store-assigned identifier.
	RequestID  uuid.UUID // The request this note belongs to.
	Text       string    // Free-form note text.
	AuthorID   uuid.UUID // The principal that wrote the note.
	AuthorRole Role      // The author's role at the time of writing.
	CreatedAt  time.Time
}

// MaintenanceRequest is the central entity of the system: a customer-submitted
// facility maintenance ticket moving through the pending → assigned →
// in-progress → resolved workflow.
type MaintenanceRequest struct {
	ID           uuid.UUID     // Store-assigned, immutable.
	RequesterID  uuid.UUID     // Owning user; set once at creation, immutable.
	Description  string        // Non-empty issue description.
	Category     string        // Non-empty category tag.
	Location     Location      // Required coordinates.
	Images       []string      // Ordered opaque blob references; immutable after creation.
	Status       RequestStatus // Workflow state, see RequestStatus.
	TechnicianID *uuid.UUID    // Nil until an admin assigns a technician.
	ResolvedAt   *time.Time    // Non-nil exactly when Status is resolved.
	Notes        []RequestNote // Append-only note trail.
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Requester and Technician are expanded identity snapshots, populated on
	// reads that join the parties (admin listings, report export). They are
	// read-only conveniences and never written back.
	Requester  *User
	Technician *User
}

// IsResolved reports whether the request reached its terminal state.
func (r *MaintenanceRequest) IsResolved() bool {
	return r.Status == RequestStatusResolved
}

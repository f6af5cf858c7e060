package entity

import (
	"time"

	"github.com/google/uuid"
)

// SupplyStatus represents the workflow state of an alternative supply request.
// The delivery workflow carries more states than maintenance, including two
// terminal ones (completed, cancelled).
type SupplyStatus string

const (
	SupplyStatusPending    SupplyStatus = "pending"
	SupplyStatusAssigned   SupplyStatus = "assigned"
	SupplyStatusInProgress SupplyStatus = "in_progress"
	SupplyStatusDelivered  SupplyStatus = "delivered"
	SupplyStatusCompleted  SupplyStatus = "completed"
	SupplyStatusCancelled  SupplyStatus = "cancelled"
)

// String returns the string representation of the status.
func (s SupplyStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a member of the supply enum.
func (s SupplyStatus) IsValid() bool {
	switch s {
	case SupplyStatusPending, SupplyStatusAssigned, SupplyStatusInProgress,
		SupplyStatusDelivered, SupplyStatusCompleted, SupplyStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentMethod is how the customer pays for an alternative supply delivery.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentElectronic     PaymentMethod = "electronic"
)

// IsValid checks if the payment method is a valid value.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCashOnDelivery || m == PaymentElectronic
}

// SupplyNote is one entry of a supply request's append-only administrative
// note trail. AddedBy is a display reference (the author's email), matching
// the lighter note capability of this subsystem.
type SupplyNote struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	Note      string
	AddedBy   string
	CreatedAt time.Time
}

// SupplyRequest is an alternative water supply delivery request. It mirrors
// the maintenance workflow: owned by a requester, assigned to a technician by
// an admin, tracked through a status enum, annotated with append-only notes.
type SupplyRequest struct {
	ID            uuid.UUID
	RequesterID   uuid.UUID // Set once at creation, immutable.
	Description   string
	Location      Location
	PaymentMethod PaymentMethod
	Status        SupplyStatus
	TechnicianID  *uuid.UUID
	Notes         []SupplyNote
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Expanded identity snapshots, populated on joined reads only.
	Requester  *User
	Technician *User
}

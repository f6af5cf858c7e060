package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a registered account: a customer, a field technician or an
// administrator, distinguished by Role.
type User struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	Email          string // Unique login identifier.
	Phone          string
	PasswordHash   string // Bcrypt hash; never serialized outward.
	Role           Role
	ProfilePicture string // Opaque blob reference, may be empty.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName returns the display name for listings and reports.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

package entity

import "github.com/google/uuid"

// Principal is the resolved identity performing an operation. It is built
// per-request by the identity resolver and passed explicitly into every
// use case; it is never persisted.
type Principal struct {
	ID   uuid.UUID // The user account the credential resolved to.
	Role Role      // The account's current role, read from the identity store.
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

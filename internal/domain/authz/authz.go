// Package authz is the single authorization guard of the system. Every
// operation on a request resource is checked here, against one policy table,
// before any mutation reaches the store. The guard is a pure function of the
// principal, the operation and the resource's ownership facts.
package authz

import (
	"fixflow/internal/domain/entity"
	domainerrors "fixflow/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Operation names a guarded action on a request resource. The same operation
// set covers both maintenance and supply requests.
type Operation string

const (
	OperationCreate       Operation = "create"
	OperationGet          Operation = "get"
	OperationListAll      Operation = "list_all"
	OperationListForUser  Operation = "list_for_user"
	OperationAssign       Operation = "assign"
	OperationChangeStatus Operation = "change_status"
	OperationResolve      Operation = "resolve"
	OperationAddNote      Operation = "add_note"
	OperationUpdate       Operation = "update"
	OperationDelete       Operation = "delete"
)

// Resource carries the ownership facts of the object an operation targets.
// For list_for_user, RequesterID is the target user of the listing.
type Resource struct {
	RequesterID  uuid.UUID
	TechnicianID *uuid.UUID
}

// policy is one row of the table: which roles may attempt the operation, and
// whether non-admin roles are additionally gated by resource ownership.
type policy struct {
	roles          entity.Roles
	ownershipGated bool
}

var policies = map[Operation]policy{
	OperationCreate:       {roles: entity.Roles{entity.RoleUser}},
	OperationGet:          {roles: entity.Roles{entity.RoleUser, entity.RoleTechnician, entity.RoleAdmin}, ownershipGated: true},
	OperationListAll:      {roles: entity.Roles{entity.RoleAdmin}},
	OperationListForUser:  {roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}, ownershipGated: true},
	OperationAssign:       {roles: entity.Roles{entity.RoleAdmin}},
	OperationChangeStatus: {roles: entity.Roles{entity.RoleAdmin}},
	OperationResolve:      {roles: entity.Roles{entity.RoleAdmin}},
	OperationAddNote:      {roles: entity.Roles{entity.RoleUser, entity.RoleTechnician, entity.RoleAdmin}, ownershipGated: true},
	OperationUpdate:       {roles: entity.Roles{entity.RoleAdmin}},
	OperationDelete:       {roles: entity.Roles{entity.RoleAdmin}},
}

// Authorize allows or denies an operation for a principal. A nil resource is
// acceptable only for operations that are not ownership-gated. The returned
// error, when non-nil, always wraps ErrForbidden.
func Authorize(p entity.Principal, op Operation, res *Resource) error {
	pol, ok := policies[op]
	if !ok {
		return errors.Wrapf(domainerrors.ErrForbidden, "unknown operation %q", op)
	}

	if !pol.roles.Contains(p.Role) {
		return errors.Wrapf(domainerrors.ErrForbidden, "role %q may not %s", p.Role, op)
	}

	if !pol.ownershipGated || p.Role == entity.RoleAdmin {
		return nil
	}

	if res == nil {
		return errors.Wrapf(domainerrors.ErrForbidden, "%s requires resource ownership", op)
	}

	switch p.Role {
	case entity.RoleUser:
		if res.RequesterID != p.ID {
			return errors.Wrapf(domainerrors.ErrForbidden, "user is not the requester")
		}
	case entity.RoleTechnician:
		if res.TechnicianID == nil || *res.TechnicianID != p.ID {
			return errors.Wrapf(domainerrors.ErrForbidden, "technician is not assigned to this request")
		}
	}

	return nil
}

// RequireAdmin gates operations outside the request workflow (user
// administration, message inbox) behind the admin role.
func RequireAdmin(p entity.Principal) error {
	if p.Role != entity.RoleAdmin {
		return errors.Wrapf(domainerrors.ErrForbidden, "role %q is not admin", p.Role)
	}

	return nil
}

// RequireSelfOrAdmin allows a principal to act on its own account, or any
// account when it is an admin.
func RequireSelfOrAdmin(p entity.Principal, target uuid.UUID) error {
	if p.Role == entity.RoleAdmin || p.ID == target {
		return nil
	}

	return errors.Wrap(domainerrors.ErrForbidden, "principal may only act on its own account")
}

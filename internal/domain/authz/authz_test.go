package authz

import (
	"testing"

	"fixflow/internal/domain/entity"
	domainerrors "fixflow/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_PolicyTable(t *testing.T) {
	requester := uuid.New()
	technician := uuid.New()
	stranger := uuid.New()

	res := &Resource{RequesterID: requester, TechnicianID: &technician}

	tests := []struct {
		name    string
		p       entity.Principal
		op      Operation
		res     *Resource
		allowed bool
	}{
		{"user creates", entity.Principal{ID: requester, Role: entity.RoleUser}, OperationCreate, nil, true},
		{"admin cannot create", entity.Principal{ID: stranger, Role: entity.RoleAdmin}, OperationCreate, nil, false},
		{"technician cannot create", entity.Principal{ID: technician, Role: entity.RoleTechnician}, OperationCreate, nil, false},
		{"requester reads own", entity.Principal{ID: requester, Role: entity.RoleUser}, OperationGet, res, true},
		{"other user cannot read", entity.Principal{ID: stranger, Role: entity.RoleUser}, OperationGet, res, false},
		{"assigned technician reads", entity.Principal{ID: technician, Role: entity.RoleTechnician}, OperationGet, res, true},
		{"unassigned technician cannot read", entity.Principal{ID: stranger, Role: entity.RoleTechnician}, OperationGet, res, false},
		{"admin reads anything", entity.Principal{ID: stranger, Role: entity.RoleAdmin}, OperationGet, res, true},
		{"admin lists all", entity.Principal{ID: stranger, Role: entity.RoleAdmin}, OperationListAll, nil, true},
		{"user cannot list all", entity.Principal{ID: requester, Role: entity.RoleUser}, OperationListAll, nil, false},
		{"user lists own requests", entity.Principal{ID: requester, Role: entity.RoleUser}, OperationListForUser, &Resource{RequesterID: requester}, true},
		{"user cannot list another's", entity.Principal{ID: stranger, Role: entity.RoleUser}, OperationListForUser, &Resource{RequesterID: requester}, false},
		{"technician cannot list for user", entity.Principal{ID: technician, Role: entity.RoleTechnician}, OperationListForUser, &Resource{RequesterID: requester}, false},
		{"only admin assigns", entity.Principal{ID: requester, Role: entity.RoleUser}, OperationAssign, res, false},
		{"admin assigns", entity.Principal{ID: stranger, Role: entity.RoleAdmin}, OperationAssign, res, true},
		{"non-admin cannot change status", entity.Principal{ID: technician, Role: entity.RoleTechnician}, OperationChangeStatus, res, false},
		{"non-admin cannot resolve", entity.Principal{ID: requester, Role: entity.RoleUser}, OperationResolve, res, false},
		{"requester adds note", entity.Principal{ID: requester, Role: entity.RoleUser}, OperationAddNote, res, true},
		{"assigned technician adds note", entity.Principal{ID: technician, Role: entity.RoleTechnician}, OperationAddNote, res, true},
		{"foreign user cannot add note", entity.Principal{ID: stranger, Role: entity.RoleUser}, OperationAddNote, res, false},
		{"only admin updates", entity.Principal{ID: requester, Role: entity.RoleUser}, OperationUpdate, res, false},
		{"only admin deletes", entity.Principal{ID: technician, Role: entity.RoleTechnician}, OperationDelete, res, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.p, tt.op, tt.res)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
			}
		})
	}
}

func TestAuthorize_OwnershipGatedWithoutResource(t *testing.T) {
	p := entity.Principal{ID: uuid.New(), Role: entity.RoleUser}

	err := Authorize(p, OperationGet, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAuthorize_UnknownOperation(t *testing.T) {
	p := entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}

	err := Authorize(p, Operation("drop_table"), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRequireSelfOrAdmin(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	assert.NoError(t, RequireSelfOrAdmin(entity.Principal{ID: self, Role: entity.RoleUser}, self))
	assert.NoError(t, RequireSelfOrAdmin(entity.Principal{ID: other, Role: entity.RoleAdmin}, self))
	assert.Error(t, RequireSelfOrAdmin(entity.Principal{ID: other, Role: entity.RoleUser}, self))
	assert.Error(t, RequireSelfOrAdmin(entity.Principal{ID: other, Role: entity.RoleTechnician}, self))
}

package usecase

import (
	"context"

	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
)

// SupplyUsecase is the alternative supply workflow engine, parallel in shape
// to RequestUsecase but parameterized by its own status enum and an
// admin-only note capability.
type SupplyUsecase interface {
	Create(ctx context.Context, p entity.Principal, input *CreateSupplyInput) (*entity.SupplyRequest, error)
	GetByID(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.SupplyRequest, error)
	ListAll(ctx context.Context, p entity.Principal, filter *SupplyListFilter) ([]*entity.SupplyRequest, error)
	ListForUser(ctx context.Context, p entity.Principal, userID uuid.UUID) ([]*entity.SupplyRequest, error)
	Assign(ctx context.Context, p entity.Principal, id uuid.UUID, input *AssignTechnicianInput) (*entity.SupplyRequest, error)
	ChangeStatus(ctx context.Context, p entity.Principal, id uuid.UUID, status string) (*entity.SupplyRequest, error)
	AddNote(ctx context.Context, p entity.Principal, id uuid.UUID, text string) (*entity.SupplyRequest, error)
	Delete(ctx context.Context, p entity.Principal, id uuid.UUID) error
}

// CreateSupplyInput defines the data required to open a supply request.
type CreateSupplyInput struct {
	Description   string         `json:"description"`
	Location      *LocationInput `json:"location"`
	PaymentMethod string         `json:"paymentMethod,omitempty"`
}

// SupplyListFilter is the admin listing filter for supply requests.
type SupplyListFilter struct {
	Status *string `query:"status"`
}

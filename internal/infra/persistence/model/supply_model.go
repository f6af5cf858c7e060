package model

import (
	"time"

	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
)

// SupplyModel mirrors the 'supply_requests' table.
type SupplyModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequesterID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Description   string     `gorm:"type:text;not null"`
	Lat           float64    `gorm:"not null"`
	Lng           float64    `gorm:"not null"`
	PaymentMethod string     `gorm:"type:varchar(32);not null;default:'cash_on_delivery'"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	TechnicianID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Requester  *UserModel        `gorm:"foreignKey:RequesterID"`
	Technician *UserModel        `gorm:"foreignKey:TechnicianID"`
	Notes      []SupplyNoteModel `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SupplyModel) TableName() string {
	return "supply_requests"
}

// SupplyNoteModel mirrors the 'supply_request_notes' table. Insert-only.
type SupplyNoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	Note      string    `gorm:"type:text;not null"`
	AddedBy   string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplyNoteModel) TableName() string {
	return "supply_request_notes"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *SupplyModel) ToDomain() *entity.SupplyRequest {
	if m == nil {
		return nil
	}

	notes := make([]entity.SupplyNote, 0, len(m.Notes))
	for i := range m.Notes {
		notes = append(notes, *m.Notes[i].ToDomain())
	}

	return &entity.SupplyRequest{
		ID:            m.ID,
		RequesterID:   m.RequesterID,
		Description:   m.Description,
		Location:      entity.Location{Lat: m.Lat, Lng: m.Lng},
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Status:        entity.SupplyStatus(m.Status),
		TechnicianID:  m.TechnicianID,
		Notes:         notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Requester:     m.Requester.ToDomain(),
		Technician:    m.Technician.ToDomain(),
	}
}

// ToDomain maps a note row to its domain entity.
func (m *SupplyNoteModel) ToDomain() *entity.SupplyNote {
	return &entity.SupplyNote{
		ID:        m.ID,
		RequestID: m.RequestID,
		Note:      m.Note,
		AddedBy:   m.AddedBy,
		CreatedAt: m.CreatedAt,
	}
}

// FromSupplyDomain maps a domain entity to the persistence model. Notes are
// excluded; they are written through their own insert path.
func FromSupplyDomain(req *entity.SupplyRequest) *SupplyModel {
	return &SupplyModel{
		ID:            req.ID,
		RequesterID:   req.RequesterID,
		Description:   req.Description,
		Lat:           req.Location.Lat,
		Lng:           req.Location.Lng,
		PaymentMethod: string(req.PaymentMethod),
		Status:        req.Status.String(),
		TechnicianID:  req.TechnicianID,
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}

// FromSupplyNoteDomain maps a domain note to its persistence row.
func FromSupplyNoteDomain(note *entity.SupplyNote) *SupplyNoteModel {
	return &SupplyNoteModel{
		ID:        note.ID,
		RequestID: note.RequestID,
		Note:      note.Note,
		AddedBy:   note.AddedBy,
		CreatedAt: note.CreatedAt,
	}
}

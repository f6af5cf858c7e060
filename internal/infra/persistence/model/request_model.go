package model

import (
	"encoding/json"
	"time"

	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RequestModel mirrors the 'maintenance_requests' table.
type RequestModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequesterID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Description  string         `gorm:"type:text;not null"`
	Category     string         `gorm:"type:varchar(100);not null;index"`
	Lat          float64        `gorm:"not null"`
	Lng          float64        `gorm:"not null"`
	Images       datatypes.JSON `gorm:"type:jsonb"`
	Status       string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	TechnicianID *uuid.UUID     `gorm:"type:uuid;index"`
	ResolvedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Requester  *UserModel         `gorm:"foreignKey:RequesterID"`
	Technician *UserModel         `gorm:"foreignKey:TechnicianID"`
	Notes      []RequestNoteModel `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "maintenance_requests"
}

// RequestNoteModel mirrors the 'maintenance_request_notes' table. Rows are
// insert-only; the trail is never updated in place.
type RequestNoteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequestID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Text       string    `gorm:"type:text;not null"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	AuthorRole string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RequestNoteModel) TableName() string {
	return "maintenance_request_notes"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *RequestModel) ToDomain() *entity.MaintenanceRequest {
	if m == nil {
		return nil
	}

	var images []string
	if len(m.Images) > 0 {
		// A corrupted column falls back to an empty list rather than failing the read.
		_ = json.Unmarshal(m.Images, &images)
	}

	notes := make([]entity.RequestNote, 0, len(m.Notes))
	for i := range m.Notes {
		notes = append(notes, *m.Notes[i].ToDomain())
	}

	return &entity.MaintenanceRequest{
		ID:           m.ID,
		RequesterID:  m.RequesterID,
		Description:  m.Description,
		Category:     m.Category,
		Location:     entity.Location{Lat: m.Lat, Lng: m.Lng},
		Images:       images,
		Status:       entity.RequestStatus(m.Status),
		TechnicianID: m.TechnicianID,
		ResolvedAt:   m.ResolvedAt,
		Notes:        notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Requester:    m.Requester.ToDomain(),
		Technician:   m.Technician.ToDomain(),
	}
}

// ToDomain maps a note row to its domain entity.
func (m *RequestNoteModel) ToDomain() *entity.RequestNote {
	return &entity.RequestNote{
		ID:         m.ID,
		RequestID:  m.RequestID,
		Text:       m.Text,
		AuthorID:   m.AuthorID,
		AuthorRole: entity.Role(m.AuthorRole),
		CreatedAt:  m.CreatedAt,
	}
}

// FromRequestDomain maps a domain entity to the persistence model. Notes are
// excluded: the trail is written through its own insert path only.
func FromRequestDomain(req *entity.MaintenanceRequest) *RequestModel {
	images := datatypes.JSON("[]")
	if len(req.Images) > 0 {
		if raw, err := json.Marshal(req.Images); err == nil {
			images = datatypes.JSON(raw)
		}
	}

	return &RequestModel{
		ID:           req.ID,
		RequesterID:  req.RequesterID,
		Description:  req.Description,
		Category:     req.Category,
		Lat:          req.Location.Lat,
		Lng:          req.Location.Lng,
		Images:       images,
		Status:       req.Status.String(),
		TechnicianID: req.TechnicianID,
		ResolvedAt:   req.ResolvedAt,
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
	}
}

// FromRequestNoteDomain maps a domain note to its persistence row.
func FromRequestNoteDomain(note *entity.RequestNote) *RequestNoteModel {
	return &RequestNoteModel{
		ID:         note.ID,
		RequestID:  note.RequestID,
		Text:       note.Text,
		AuthorID:   note.AuthorID,
		AuthorRole: note.AuthorRole.String(),
		CreatedAt:  note.CreatedAt,
	}
}

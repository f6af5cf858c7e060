package model

import (
	"encoding/json"
	"time"

	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MessageModel mirrors the 'contact_messages' table. External and internal
// messages share the table; the sender columns that do not apply stay empty.
type MessageModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderType  string         `gorm:"type:varchar(20);not null;default:'external';index"`
	SenderName  string         `gorm:"type:varchar(100)"`
	SenderEmail string         `gorm:"type:varchar(255)"`
	SenderPhone string         `gorm:"type:varchar(32)"`
	SenderID    *uuid.UUID     `gorm:"type:uuid;index"`
	ReceiverID  *uuid.UUID     `gorm:"type:uuid;index"`
	Content     string         `gorm:"type:text;not null"`
	Category    string         `gorm:"type:varchar(20);index"`
	Attachments datatypes.JSON `gorm:"type:jsonb"`
	Status      string         `gorm:"type:varchar(20);not null;default:'unread';index"`
	Response    string         `gorm:"type:text"`
	IsFeatured  bool           `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Sender   *UserModel `gorm:"foreignKey:SenderID"`
	Receiver *UserModel `gorm:"foreignKey:ReceiverID"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "contact_messages"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *MessageModel) ToDomain() *entity.Message {
	if m == nil {
		return nil
	}

	var attachments []string
	if len(m.Attachments) > 0 {
		// A corrupted column falls back to an empty list rather than failing the read.
		_ = json.Unmarshal(m.Attachments, &attachments)
	}

	return &entity.Message{
		ID:         m.ID,
		SenderType: entity.MessageSenderType(m.SenderType),
		SenderInfo: entity.SenderInfo{
			Name:  m.SenderName,
			Email: m.SenderEmail,
			Phone: m.SenderPhone,
		},
		SenderID:    m.SenderID,
		ReceiverID:  m.ReceiverID,
		Content:     m.Content,
		Category:    entity.MessageCategory(m.Category),
		Attachments: attachments,
		Status:      entity.MessageStatus(m.Status),
		Response:    m.Response,
		IsFeatured:  m.IsFeatured,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromMessageDomain maps a domain entity to the persistence model.
func FromMessageDomain(msg *entity.Message) *MessageModel {
	attachments := datatypes.JSON("[]")
	if len(msg.Attachments) > 0 {
		if raw, err := json.Marshal(msg.Attachments); err == nil {
			attachments = datatypes.JSON(raw)
		}
	}

	return &MessageModel{
		ID:          msg.ID,
		SenderType:  string(msg.SenderType),
		SenderName:  msg.SenderInfo.Name,
		SenderEmail: msg.SenderInfo.Email,
		SenderPhone: msg.SenderInfo.Phone,
		SenderID:    msg.SenderID,
		ReceiverID:  msg.ReceiverID,
		Content:     msg.Content,
		Category:    string(msg.Category),
		Attachments: attachments,
		Status:      string(msg.Status),
		Response:    msg.Response,
		IsFeatured:  msg.IsFeatured,
		CreatedAt:   msg.CreatedAt,
		UpdatedAt:   msg.UpdatedAt,
	}
}

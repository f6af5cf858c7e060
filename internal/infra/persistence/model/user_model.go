// Package model contains the GORM persistence models and their mappings to
// the domain entities.
package model

import (
	"time"

	"fixflow/internal/domain/entity"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName      string    `gorm:"type:varchar(100);not null"`
	LastName       string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	Phone          string    `gorm:"type:varchar(32)"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(20);not null;default:'user';index"`
	ProfilePicture string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *UserModel) ToDomain() *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:             m.ID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		Phone:          m.Phone,
		PasswordHash:   m.PasswordHash,
		Role:           entity.Role(m.Role),
		ProfilePicture: m.ProfilePicture,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromUserDomain maps a domain entity to the persistence model.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		ID:             user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		Phone:          user.Phone,
		PasswordHash:   user.PasswordHash,
		Role:           user.Role.String(),
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

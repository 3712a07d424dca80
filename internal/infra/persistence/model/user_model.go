package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
// The verification code and reset token columns are nullable pairs: both members
// of a pair are either set or NULL together.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsVerified   bool      `gorm:"not null;default:false"`

	VerificationCode          *string    `gorm:"type:varchar(6);index"`
	VerificationCodeExpiresAt *time.Time

	ResetToken          *string    `gorm:"type:varchar(40);index"`
	ResetTokenExpiresAt *time.Time

	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

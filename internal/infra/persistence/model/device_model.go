package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel mirrors the 'user_devices' table. One row per issued session.
type UserDeviceModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash        string    `gorm:"type:varchar(64);not null"`
	RefreshTokenHash string    `gorm:"type:varchar(64);not null;index"`
	TokenExpiresAt   time.Time `gorm:"not null"`
	RefreshExpiresAt time.Time `gorm:"not null"`
	DeviceType       string    `gorm:"type:varchar(20)"`
	DeviceName       string    `gorm:"type:varchar(100)"`
	UserAgent        string    `gorm:"type:varchar(255)"`
	IPAddress        string    `gorm:"type:varchar(45)"`
	FCMToken         string    `gorm:"type:varchar(512)"`
	IsActive         bool      `gorm:"not null;default:true;index"`
	LastUsedAt       time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}

// VerificationCodeModel mirrors the 'verification_codes' table.
type VerificationCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind      string    `gorm:"type:varchar(20);not null"`
	Code      string    `gorm:"type:varchar(10);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time
	CreatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (VerificationCodeModel) TableName() string {
	return "verification_codes"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string     `gorm:"type:varchar(255);unique;not null"`
	Name            string     `gorm:"type:varchar(100)"`
	PasswordHash    string     `gorm:"type:varchar(255);not null"`
	UserType        string     `gorm:"type:varchar(20);not null;index"`
	RoleID          int        `gorm:"not null;default:2"`
	ProfileCreated  bool       `gorm:"not null;default:false"`
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time `gorm:"index"`

	Permissions       *UserPermissionsModel   `gorm:"foreignKey:UserID"`
	HomeownerProfile  *HomeownerProfileModel  `gorm:"foreignKey:UserID"`
	DesignerProfile   *DesignerProfileModel   `gorm:"foreignKey:UserID"`
	ContractorProfile *ContractorProfileModel `gorm:"foreignKey:UserID"`
	Devices           []UserDeviceModel       `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserPermissionsModel mirrors the 'user_permissions' table; exactly one row per user.
type UserPermissionsModel struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CalendarAccess     bool      `gorm:"not null;default:false"`
	NotificationAccess bool      `gorm:"not null;default:false"`
	ContactsAccess     bool      `gorm:"not null;default:false"`
	LocationAccess     bool      `gorm:"not null;default:false"`
	MarketingOptIn     bool      `gorm:"not null;default:true"`
	RitualOptIn        bool      `gorm:"not null;default:true"`
	CommunityOptIn     bool      `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPermissionsModel) TableName() string {
	return "user_permissions"
}

// RoleModel mirrors the 'roles' lookup table, seeded with admin and user.
type RoleModel struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(50);unique;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// HomeownerProfileModel mirrors the 'homeowner_profiles' table.
type HomeownerProfileModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone     string    `gorm:"type:varchar(30)"`
	City      string    `gorm:"type:varchar(100)"`
	Bio       string    `gorm:"type:text"`
	AvatarKey string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HomeownerProfileModel) TableName() string {
	return "homeowner_profiles"
}

// DesignerProfileModel mirrors the 'designer_profiles' table.
type DesignerProfileModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone     string    `gorm:"type:varchar(30)"`
	City      string    `gorm:"type:varchar(100);index"`
	Bio       string    `gorm:"type:text"`
	AvatarKey string    `gorm:"type:varchar(255)"`
	Styles    []string  `gorm:"type:jsonb;serializer:json"`
	BudgetMin int
	BudgetMax int
	Verified  bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DesignerProfileModel) TableName() string {
	return "designer_profiles"
}

// ContractorProfileModel mirrors the 'contractor_profiles' table.
type ContractorProfileModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone     string    `gorm:"type:varchar(30)"`
	City      string    `gorm:"type:varchar(100);index"`
	Bio       string    `gorm:"type:text"`
	AvatarKey string    `gorm:"type:varchar(255)"`
	Trades    []string  `gorm:"type:jsonb;serializer:json"`
	BudgetMin int
	BudgetMax int
	Verified  bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContractorProfileModel) TableName() string {
	return "contractor_profiles"
}

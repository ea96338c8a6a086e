package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyModel mirrors the 'properties' table.
type PropertyModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HomeownerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Label        string    `gorm:"type:varchar(100)"`
	AddressLine  string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100)"`
	PostalCode   string    `gorm:"type:varchar(20)"`
	PropertyType string    `gorm:"type:varchar(30)"`
	Rooms        int
	AreaSqm      float64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Homeowner *UserModel `gorm:"foreignKey:HomeownerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}

// ProjectModel mirrors the 'projects' table.
type ProjectModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PropertyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	HomeownerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(150);not null"`
	Description string    `gorm:"type:text"`
	BudgetMin   int
	BudgetMax   int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Property *PropertyModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestModel mirrors the 'requests' table.
type RequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	HomeownerID uuid.UUID `gorm:"type:uuid;not null;index"`
	DesignerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Message     string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'sent'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Project *ProjectModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "requests"
}

// ProposalModel mirrors the 'proposals' table.
type ProposalModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequestID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DesignerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Summary      string    `gorm:"type:text"`
	PriceCents   int64
	LeadTimeDays int
	Status       string `gorm:"type:varchar(20);not null;default:'sent'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Request *RequestModel `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProposalModel) TableName() string {
	return "proposals"
}

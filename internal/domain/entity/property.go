// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Property is a home owned by a homeowner. Projects, and through them
// requests, are always scoped to a property.
type Property struct {
	ID           uuid.UUID
	HomeownerID  uuid.UUID // References the owning user; cascade-deleted with them.
	Label        string    // e.g. "Lake house".
	AddressLine  string
	City         string
	PostalCode   string
	PropertyType string // e.g. "house", "apartment", "condo".
	Rooms        int
	AreaSqm      float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Project is a renovation or design undertaking on a single property.
type Project struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	HomeownerID uuid.UUID
	Title       string
	Description string
	BudgetMin   int
	BudgetMax   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

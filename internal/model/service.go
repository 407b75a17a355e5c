package model

import (
	"time"

	"github.com/google/uuid"
)

// Service is a catalog entry shown on the booking page and managed from the
// admin dashboard. Independent of any user.
type Service struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Duration    int       `db:"duration" json:"duration"` // minutes
	Price       float64   `db:"price" json:"price"`
	Icon        string    `db:"icon" json:"icon"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ServiceUsage carries the usage figure shown on the reports page. The
// usage count is a per-row constant of 1, not appointments per service;
// the figure is kept for report compatibility.
type ServiceUsage struct {
	Service
	UsageCount int `db:"usage_count" json:"usage_count"`
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"min=0"`
	Icon        string  `json:"icon" binding:"max=50"`
}

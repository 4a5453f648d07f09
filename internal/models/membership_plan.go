package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MembershipPlan struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string          `gorm:"size:150;uniqueIndex;not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationDays int             `gorm:"not null" json:"duration_days"`
	Features     string          `gorm:"type:text" json:"features"`
	IsActive     bool            `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

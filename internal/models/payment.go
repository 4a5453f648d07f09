package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SubscriptionID uint         `gorm:"not null" json:"subscription_id"`
	Subscription   Subscription `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"subscription"`

	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"size:20;default:'cash';index" json:"payment_method"`
	Status        string          `gorm:"size:20;default:'pending';index" json:"status"`

	TransactionID string `gorm:"size:255;uniqueIndex;not null" json:"transaction_id"`

	// eSewa correlation fields, filled in by the gateway callback when the
	// payment method is esewa. Passive metadata only.
	EsewaTransactionCode string `gorm:"size:255" json:"esewa_transaction_code,omitempty"`
	EsewaRefID           string `gorm:"size:255" json:"esewa_ref_id,omitempty"`

	InitiatedAt time.Time  `gorm:"<-:create" json:"initiated_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Notes       string     `gorm:"type:text" json:"notes"`
}

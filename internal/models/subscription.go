package models

import "time"

type Subscription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MemberID uint    `gorm:"index:idx_subscriptions_member_status;not null" json:"member_id"`
	Member   Profile `gorm:"foreignKey:MemberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"member"`

	PlanID uint           `gorm:"not null" json:"plan_id"`
	Plan   MembershipPlan `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"plan"`

	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null;index" json:"end_date"`

	Status string `gorm:"size:20;default:'pending';index:idx_subscriptions_member_status" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

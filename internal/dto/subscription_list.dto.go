package dto

import "github.com/shopspring/decimal"

type SubscriptionListDTO struct {
	ID            uint            `json:"id"`
	MemberName    string          `json:"member_name"`
	PlanName      string          `json:"plan_name"`
	PlanPrice     decimal.Decimal `json:"plan_price"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Status        string          `json:"status"`
	DaysRemaining int             `json:"days_remaining"`
}

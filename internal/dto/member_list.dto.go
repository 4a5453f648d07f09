package dto

type MemberListDTO struct {
	ID                 uint   `json:"id"`
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	JoinedDate         string `json:"joined_date"`
	SubscriptionStatus string `json:"subscription_status"`
}

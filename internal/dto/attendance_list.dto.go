package dto

import "time"

type AttendanceListDTO struct {
	ID            uint       `json:"id"`
	MemberName    string     `json:"member_name"`
	CheckIn       time.Time  `json:"check_in"`
	CheckOut      *time.Time `json:"check_out"`
	Date          string     `json:"date"`
	DurationHours *float64   `json:"duration_hours"`
}

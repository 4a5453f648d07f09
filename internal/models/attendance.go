package models

import "time"

type Attendance struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MemberID uint    `gorm:"index:idx_attendance_member_date;not null" json:"member_id"`
	Member   Profile `gorm:"foreignKey:MemberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"member"`

	CheckIn  time.Time  `gorm:"<-:create;not null" json:"check_in"`
	CheckOut *time.Time `json:"check_out"`

	// Calendar date of the check-in, kept denormalized for date-based queries.
	Date time.Time `gorm:"type:date;index:idx_attendance_member_date;index" json:"date"`

	Notes string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

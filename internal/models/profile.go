package models

import "time"

// Profile is the single role record attached to a user. The unique index on
// user_id guarantees at most one role per user; the Role column discriminates
// which variant fields are meaningful.
type Profile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Role string `gorm:"size:20;not null" json:"role"`

	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth"`
	Address     string     `gorm:"type:text" json:"address"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	JoinedDate  time.Time  `gorm:"type:date;<-:create" json:"joined_date"`

	// member
	EmergencyContact string `gorm:"size:150" json:"emergency_contact,omitempty"`

	// trainer
	Specialization  string `gorm:"size:200" json:"specialization,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty"`
	Bio             string `gorm:"type:text" json:"bio,omitempty"`

	// staff
	Department string `gorm:"size:100" json:"department,omitempty"`

	// admin
	AccessLevel       string `gorm:"size:20" json:"access_level,omitempty"`
	CanManageUsers    bool   `gorm:"default:false" json:"can_manage_users"`
	CanManagePayments bool   `gorm:"default:false" json:"can_manage_payments"`
	CanViewReports    bool   `gorm:"default:false" json:"can_view_reports"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Age in whole years at the given date, nil when date_of_birth is unset.
func (p *Profile) Age(today time.Time) *int {
	if p.DateOfBirth == nil {
		return nil
	}
	dob := *p.DateOfBirth
	years := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		years--
	}
	return &years
}

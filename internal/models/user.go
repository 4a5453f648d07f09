package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	FullName string `gorm:"size:150;not null" json:"full_name"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:17" json:"phone"`

	IsVerified  bool `gorm:"default:false" json:"is_verified"`
	IsSuperuser bool `gorm:"default:false" json:"is_superuser"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

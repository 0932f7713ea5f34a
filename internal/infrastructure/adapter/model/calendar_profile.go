package model

import (
	"time"
)

// CalendarProfile represents the database model for calendar profiles
type CalendarProfile struct {
	Name        string    `gorm:"primaryKey;type:varchar(63)"`
	TimeZone    string    `gorm:"type:varchar(64);not null"`
	Description string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for CalendarProfile
func (CalendarProfile) TableName() string {
	return "calendar_profiles"
}

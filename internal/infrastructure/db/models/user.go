package models

import "time"

type User struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	FirstName   string    `gorm:"size:255;not null"`
	LastName    string    `gorm:"size:255;not null"`
	Email       string    `gorm:"size:320;not null;uniqueIndex"`
	PhoneNumber string    `gorm:"size:10;not null"`
	PANNumber   string    `gorm:"column:pan_number;size:10;not null"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (User) TableName() string {
	return "users"
}

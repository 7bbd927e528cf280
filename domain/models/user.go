package models

import "time"

type User struct {
	ID         uint   `gorm:"primaryKey"`
	TelegramID int64  `gorm:"uniqueIndex;not null"` // external identity key
	Username   string `gorm:"size:100"`
	FirstName  string `gorm:"size:100;not null"`
	LastName   string `gorm:"size:100"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string {
	return "users"
}

package models

import "time"

type Task struct {
	ID          uint     `gorm:"primaryKey"`
	Description string   `gorm:"size:500;not null"`
	CategoryID  uint     `gorm:"not null;index"`
	Category    Category `gorm:"constraint:OnDelete:CASCADE"` // ลบ category แล้ว tasks หายตาม
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}

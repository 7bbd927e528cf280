package models

import "time"

const (
	UserTaskStatusAssigned  = "assigned"
	UserTaskStatusCompleted = "completed"
)

// UserTask คือ assignment record ผูก user กับ task
// (user, task) pair เดียวกันมีได้หลาย record, assign ซ้ำคือ history ไม่ใช่ upsert
type UserTask struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	TaskID      uint   `gorm:"not null;index"`
	Status      string `gorm:"size:20;not null;default:'assigned'"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	User User `gorm:"constraint:OnDelete:CASCADE"`
	Task Task `gorm:"constraint:OnDelete:CASCADE"`
}

func (UserTask) TableName() string {
	return "user_tasks"
}

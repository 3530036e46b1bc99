package models

import (
	"gorm.io/gorm"
)

// WeekAssignment places one task onto one calendar day of the current week,
// independent of the task's due date. A task has at most one assignment per
// day but may appear on several days via separate rows. AssignedDate is an
// ISO calendar date (YYYY-MM-DD); OrderIndex is unique within the
// (user, assigned date) pair.
type WeekAssignment struct {
	ID           string `json:"id" gorm:"primaryKey"`
	TaskID       string `json:"task_id" gorm:"column:task_id;index"`
	AssignedDate string `json:"assigned_date" gorm:"column:assigned_date;index"`
	OrderIndex   int    `json:"order_index" gorm:"column:order_index"`
	UserID       string `json:"-" gorm:"column:user_id;index"`
	gorm.Model
}

// TableName specifies the table name for WeekAssignment Model
func (WeekAssignment) TableName() string {
	return "week_assignments"
}

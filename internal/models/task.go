package models

import (
	"gorm.io/gorm"
)

// Task represents a single todo item in the system.
// DueDate holds an ISO calendar date (YYYY-MM-DD) with no time component;
// empty means no due date. Order indices are global across the owner's
// active task set, not per project.
type Task struct {
	ID         string `json:"id" gorm:"primaryKey"`
	ProjectID  string `json:"project_id" gorm:"column:project_id;index"`
	Title      string `json:"title" gorm:"not null"`
	DueDate    string `json:"due_date" gorm:"column:due_date"`
	Completed  bool   `json:"completed" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"column:order_index"`
	Archived   bool   `json:"archived" gorm:"default:false"`
	UserID     string `json:"-" gorm:"column:user_id;index"`
	gorm.Model
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}

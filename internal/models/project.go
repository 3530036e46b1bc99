package models

import (
	"gorm.io/gorm"
)

// ProjectColor is one of the 8 palette values a project can be tagged with.
type ProjectColor string

const (
	ColorPurple ProjectColor = "purple"
	ColorRed    ProjectColor = "red"
	ColorYellow ProjectColor = "yellow"
	ColorIndigo ProjectColor = "indigo"
	ColorPink   ProjectColor = "pink"
	ColorGreen  ProjectColor = "green"
	ColorBlue   ProjectColor = "blue"
	ColorOrange ProjectColor = "orange"
)

// ProjectColors lists the palette in assignment order; new projects cycle
// through it by active project count.
var ProjectColors = []ProjectColor{
	ColorPurple, ColorRed, ColorYellow, ColorIndigo,
	ColorPink, ColorGreen, ColorBlue, ColorOrange,
}

// Project represents a user's project grouping tasks
type Project struct {
	ID         string       `json:"id" gorm:"primaryKey"`
	Name       string       `json:"name" gorm:"not null"`
	Color      ProjectColor `json:"color" gorm:"default:'purple'"`
	OrderIndex int          `json:"order_index" gorm:"column:order_index"`
	Archived   bool         `json:"archived" gorm:"default:false"`
	UserID     string       `json:"-" gorm:"column:user_id;index"`
	gorm.Model
}

// TableName specifies the table name for Project Model
func (Project) TableName() string {
	return "projects"
}

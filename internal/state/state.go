package state

import (
	"sort"

	"todo-planner-api/internal/models"
)

// AppState holds one user's in-memory collections plus the user-facing error
// banner. It replaces the original client's top-level component state: the
// projector reads it, and only the sync gateway mutates it, so there is
// exactly one logical writer at a time.
type AppState struct {
	Projects    []models.Project
	Tasks       []models.Task
	Assignments []models.WeekAssignment // current week only
	Banner      string
}

func New() *AppState {
	return &AppState{
		Projects:    []models.Project{},
		Tasks:       []models.Task{},
		Assignments: []models.WeekAssignment{},
	}
}

func (s *AppState) ProjectByID(id string) (*models.Project, bool) {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i], true
		}
	}
	return nil, false
}

func (s *AppState) TaskByID(id string) (*models.Task, bool) {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i], true
		}
	}
	return nil, false
}

func (s *AppState) AssignmentByID(id string) (*models.WeekAssignment, bool) {
	for i := range s.Assignments {
		if s.Assignments[i].ID == id {
			return &s.Assignments[i], true
		}
	}
	return nil, false
}

// DayAssignments returns the assignments for one date in rendered order.
// Slice order alone is not enough: a cross-day move updates the row in place,
// leaving it at its old slice position with the target day's highest index.
func (s *AppState) DayAssignments(date string) []models.WeekAssignment {
	var day []models.WeekAssignment
	for _, a := range s.Assignments {
		if a.AssignedDate == date {
			day = append(day, a)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		return day[i].OrderIndex < day[j].OrderIndex
	})
	return day
}

// TaskAssignedOn reports whether the task already has an assignment on date.
func (s *AppState) TaskAssignedOn(taskID, date string) bool {
	for _, a := range s.Assignments {
		if a.TaskID == taskID && a.AssignedDate == date {
			return true
		}
	}
	return false
}

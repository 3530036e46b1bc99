package store

import (
	"todo-planner-api/internal/models"
)

// Store is the persistence surface the sync gateway writes through: the
// three record collections, every operation scoped by the owning user.
type Store interface {
	// Projects returns the user's projects with the given archived flag.
	// Active projects come back ordered by order index then creation time;
	// archived ones newest first (the archive view's order).
	Projects(userID string, archived bool) ([]models.Project, error)

	// Tasks returns the user's tasks with the given archived flag, ordered
	// by order index (active) or newest first (archived).
	Tasks(userID string, archived bool) ([]models.Task, error)

	// WeekAssignments returns the user's assignments with assigned dates in
	// [from, to], ordered by date then order index.
	WeekAssignments(userID, from, to string) ([]models.WeekAssignment, error)

	InsertProject(p *models.Project) error
	UpdateProject(id, userID string, fields map[string]any) error
	DeleteProject(id, userID string) error

	InsertTask(t *models.Task) error
	UpdateTask(id, userID string, fields map[string]any) error
	// UpdateTasksByProject applies fields to every task of one project
	// (cascading archive/restore).
	UpdateTasksByProject(projectID, userID string, fields map[string]any) error
	DeleteTask(id, userID string) error
	DeleteTasksByProject(projectID, userID string) error

	InsertAssignment(a *models.WeekAssignment) error
	UpdateAssignment(id, userID string, fields map[string]any) error
	DeleteAssignment(id, userID string) error
	DeleteAssignmentsByTask(taskID, userID string) error
	DeleteAssignmentsInRange(userID, from, to string) error
}

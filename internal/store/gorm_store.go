package store

import (
	"todo-planner-api/internal/models"

	"gorm.io/gorm"
)

// GormStore implements Store over the gorm connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Projects(userID string, archived bool) ([]models.Project, error) {
	var projects []models.Project
	q := s.db.Where("user_id = ? AND archived = ?", userID, archived)
	if archived {
		q = q.Order("created_at desc")
	} else {
		q = q.Order("order_index asc").Order("created_at asc")
	}
	if err := q.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *GormStore) Tasks(userID string, archived bool) ([]models.Task, error) {
	var tasks []models.Task
	q := s.db.Where("user_id = ? AND archived = ?", userID, archived)
	if archived {
		q = q.Order("created_at desc")
	} else {
		q = q.Order("order_index asc")
	}
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *GormStore) WeekAssignments(userID, from, to string) ([]models.WeekAssignment, error) {
	var assignments []models.WeekAssignment
	err := s.db.
		Where("user_id = ? AND assigned_date >= ? AND assigned_date <= ?", userID, from, to).
		Order("assigned_date asc").Order("order_index asc").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *GormStore) InsertProject(p *models.Project) error {
	return s.db.Create(p).Error
}

func (s *GormStore) UpdateProject(id, userID string, fields map[string]any) error {
	return s.db.Model(&models.Project{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}

func (s *GormStore) DeleteProject(id, userID string) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Project{}).Error
}

func (s *GormStore) InsertTask(t *models.Task) error {
	return s.db.Create(t).Error
}

func (s *GormStore) UpdateTask(id, userID string, fields map[string]any) error {
	return s.db.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}

func (s *GormStore) UpdateTasksByProject(projectID, userID string, fields map[string]any) error {
	return s.db.Model(&models.Task{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Updates(fields).Error
}

func (s *GormStore) DeleteTask(id, userID string) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Task{}).Error
}

func (s *GormStore) DeleteTasksByProject(projectID, userID string) error {
	return s.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.Task{}).Error
}

func (s *GormStore) InsertAssignment(a *models.WeekAssignment) error {
	return s.db.Create(a).Error
}

func (s *GormStore) UpdateAssignment(id, userID string, fields map[string]any) error {
	return s.db.Model(&models.WeekAssignment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}

func (s *GormStore) DeleteAssignment(id, userID string) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.WeekAssignment{}).Error
}

func (s *GormStore) DeleteAssignmentsByTask(taskID, userID string) error {
	return s.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&models.WeekAssignment{}).Error
}

func (s *GormStore) DeleteAssignmentsInRange(userID, from, to string) error {
	return s.db.Where("user_id = ? AND assigned_date >= ? AND assigned_date <= ?", userID, from, to).
		Delete(&models.WeekAssignment{}).Error
}

var _ Store = (*GormStore)(nil)

package handlers

import (
	"net/http"
	"time"

	"todo-planner-api/internal/sync"

	"github.com/gin-gonic/gin"
)

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	DueDate   string `json:"due_date"`
}

// CreateTask handles POST /api/tasks
func CreateTask(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DueDate != "" && !validDate(req.DueDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be YYYY-MM-DD"})
		return
	}

	s.Lock()
	defer s.Unlock()
	if _, found := s.Gateway.State().ProjectByID(req.ProjectID); !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown project"})
		return
	}
	t := s.Gateway.AddTask(req.ProjectID, req.Title, req.DueDate)
	if t == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task title must not be empty"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"task":   t,
		"banner": s.Gateway.State().Banner,
	})
}

// UpdateTask handles PATCH /api/tasks/:id
func UpdateTask(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	var req sync.TaskUpdates
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DueDate != nil && *req.DueDate != "" && !validDate(*req.DueDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be YYYY-MM-DD"})
		return
	}

	s.Lock()
	defer s.Unlock()
	if !s.Gateway.UpdateTask(c.Param("id"), req) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banner": s.Gateway.State().Banner})
}

// ToggleTask handles POST /api/tasks/:id/toggle
func ToggleTask(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	if !s.Gateway.ToggleTask(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banner": s.Gateway.State().Banner})
}

// ArchiveTask handles POST /api/tasks/:id/archive
func ArchiveTask(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	if !s.Gateway.ArchiveTask(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banner": s.Gateway.State().Banner})
}

// RestoreTask handles POST /api/tasks/:id/restore
func RestoreTask(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	s.Gateway.RestoreTask(c.Param("id"), time.Now())
	c.JSON(http.StatusOK, gin.H{"banner": s.Gateway.State().Banner})
}

// PurgeTask handles DELETE /api/tasks/:id
// Permanently deletes a task and its week assignments.
func PurgeTask(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	s.Gateway.PurgeTask(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted permanently",
		"id":      c.Param("id"),
		"banner":  s.Gateway.State().Banner,
	})
}

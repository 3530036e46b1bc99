package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AssignTaskRequest places an existing task onto a day of the current week.
type AssignTaskRequest struct {
	TaskID string `json:"task_id" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

// CreateTaskOnDayRequest creates a new task directly within a day cell.
type CreateTaskOnDayRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Date      string `json:"date" binding:"required"`
}

// AssignTask handles POST /api/week/assignments
// Assigning a task to a day it is already on is silently skipped.
func AssignTask(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	var req AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	s.Lock()
	defer s.Unlock()
	if _, found := s.Gateway.State().TaskByID(req.TaskID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	a := s.Gateway.AssignTaskToDay(req.TaskID, req.Date)
	if a == nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "Task already assigned to this day",
			"banner":  s.Gateway.State().Banner,
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"assignment": a,
		"banner":     s.Gateway.State().Banner,
	})
}

// CreateTaskOnDay handles POST /api/week/tasks
func CreateTaskOnDay(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	var req CreateTaskOnDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	s.Lock()
	defer s.Unlock()
	if _, found := s.Gateway.State().ProjectByID(req.ProjectID); !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown project"})
		return
	}
	t := s.Gateway.AddTaskOnDay(req.ProjectID, req.Title, req.Date)
	if t == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task title must not be empty"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"task":   t,
		"banner": s.Gateway.State().Banner,
	})
}

// RemoveAssignment handles DELETE /api/week/assignments/:id
func RemoveAssignment(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	if !s.Gateway.RemoveAssignment(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banner": s.Gateway.State().Banner})
}

// ClearWeek handles POST /api/week/clear
func ClearWeek(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	s.Gateway.ClearWeek(time.Now())
	c.JSON(http.StatusOK, gin.H{"banner": s.Gateway.State().Banner})
}

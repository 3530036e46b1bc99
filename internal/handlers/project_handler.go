package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// UpdateProjectRequest renames a project.
type UpdateProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateProject handles POST /api/projects
func CreateProject(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.Lock()
	defer s.Unlock()
	p := s.Gateway.AddProject(req.Name)
	c.JSON(http.StatusCreated, gin.H{
		"project": p,
		"banner":  s.Gateway.State().Banner,
	})
}

// UpdateProject handles PATCH /api/projects/:id
func UpdateProject(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.Lock()
	defer s.Unlock()
	if !s.Gateway.RenameProject(c.Param("id"), req.Name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banner": s.Gateway.State().Banner})
}

// ArchiveProject handles POST /api/projects/:id/archive
// Archiving cascades to the project's tasks; both stay restorable.
func ArchiveProject(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	if !s.Gateway.ArchiveProject(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banner": s.Gateway.State().Banner})
}

// RestoreProject handles POST /api/projects/:id/restore
func RestoreProject(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	s.Gateway.RestoreProject(c.Param("id"), time.Now())
	c.JSON(http.StatusOK, gin.H{"banner": s.Gateway.State().Banner})
}

// PurgeProject handles DELETE /api/projects/:id
// Permanently deletes an archived project and all its tasks.
func PurgeProject(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	s.Gateway.PurgeProject(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted permanently",
		"id":      c.Param("id"),
		"banner":  s.Gateway.State().Banner,
	})
}

package handlers

import (
	"net/http"
	"time"

	"todo-planner-api/internal/view"

	"github.com/gin-gonic/gin"
)

// ProjectView handles GET /api/views/projects?display=auto|1|2|3
func ProjectView(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	display := view.DisplayMode(c.DefaultQuery("display", string(view.DisplayAuto)))

	s.Lock()
	defer s.Unlock()
	st := s.Gateway.State()
	c.JSON(http.StatusOK, gin.H{
		"groups":  view.ProjectGroups(st.Projects, st.Tasks),
		"columns": view.Columns(display),
		"banner":  st.Banner,
	})
}

// TaskView handles GET /api/views/tasks?sort=custom|created|due
func TaskView(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	mode := view.SortMode(c.DefaultQuery("sort", string(view.SortCustom)))

	s.Lock()
	defer s.Unlock()
	st := s.Gateway.State()
	c.JSON(http.StatusOK, gin.H{
		"entries": view.TaskList(st.Tasks, mode),
		"banner":  st.Banner,
	})
}

// WeekView handles GET /api/views/week
// The week is always the one containing the server's current local time.
func WeekView(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	now := time.Now()
	from, to := view.WeekRange(now)

	s.Lock()
	defer s.Unlock()
	st := s.Gateway.State()
	c.JSON(http.StatusOK, gin.H{
		"from":    from,
		"to":      to,
		"buckets": view.WeekBuckets(st.Assignments, now),
		"banner":  st.Banner,
	})
}

// ArchiveView handles GET /api/archive
func ArchiveView(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	projects, tasks := s.Gateway.ArchivedItems()
	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"tasks":    tasks,
		"banner":   s.Gateway.State().Banner,
	})
}

// DismissBanner handles POST /api/banner/dismiss
func DismissBanner(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	s.Gateway.DismissBanner()
	c.Status(http.StatusNoContent)
}

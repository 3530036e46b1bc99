package handlers

import (
	"net/http"

	"todo-planner-api/internal/drag"
	"todo-planner-api/internal/sync"

	"github.com/gin-gonic/gin"
)

// DragStartRequest begins a drag gesture for a task, project, or assignment.
type DragStartRequest struct {
	Kind string `json:"kind" binding:"required,oneof=task project assignment"`
	ID   string `json:"id" binding:"required"`
}

// DragHoverRequest reports the candidate drop target: either another item of
// the source's kind (target_id) or a week-view day cell (day).
type DragHoverRequest struct {
	TargetID string `json:"target_id"`
	Day      string `json:"day"`
}

func phaseName(p drag.Phase) string {
	switch p {
	case drag.Dragging:
		return "dragging"
	case drag.HoveringValid:
		return "valid"
	case drag.HoveringInvalid:
		return "invalid"
	default:
		return "idle"
	}
}

// DragStart handles POST /api/drag/start
func DragStart(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	var req DragStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.Lock()
	defer s.Unlock()
	st := s.Gateway.State()

	var src drag.Source
	switch drag.SourceKind(req.Kind) {
	case drag.SourceTask:
		t, found := st.TaskByID(req.ID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		// serialize the task so a drop on a day cell can carry it across contexts
		src = drag.Source{Kind: drag.SourceTask, ID: t.ID, Completed: t.Completed, Payload: sync.SerializeTask(t)}
	case drag.SourceProject:
		if _, found := st.ProjectByID(req.ID); !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		src = drag.Source{Kind: drag.SourceProject, ID: req.ID}
	case drag.SourceAssignment:
		a, found := st.AssignmentByID(req.ID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		src = drag.Source{Kind: drag.SourceAssignment, ID: a.ID, Day: a.AssignedDate}
	}

	if !s.Drag.Start(src) {
		c.JSON(http.StatusConflict, gin.H{"error": "A drag is already in progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phase": phaseName(s.Drag.Phase())})
}

// DragHover handles POST /api/drag/hover
func DragHover(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	var req DragHoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.Lock()
	defer s.Unlock()
	st := s.Gateway.State()

	if req.Day != "" {
		if !validDate(req.Day) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "day must be YYYY-MM-DD"})
			return
		}
		occupied := st.TaskAssignedOn(s.Drag.Source().ID, req.Day)
		s.Drag.HoverDay(req.Day, occupied)
		c.JSON(http.StatusOK, gin.H{"phase": phaseName(s.Drag.Phase())})
		return
	}

	completed := false
	targetDay := ""
	if t, found := st.TaskByID(req.TargetID); found {
		completed = t.Completed
	}
	if a, found := st.AssignmentByID(req.TargetID); found {
		targetDay = a.AssignedDate
	}
	s.Drag.HoverItem(req.TargetID, completed, targetDay)
	c.JSON(http.StatusOK, gin.H{"phase": phaseName(s.Drag.Phase())})
}

// DragDrop handles POST /api/drag/drop
// A drop outside a valid target is a silent no-op, mirroring a browser drop
// on an invalid zone.
func DragDrop(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	commit, committed := s.Drag.Drop()
	if !committed {
		c.JSON(http.StatusOK, gin.H{"committed": false})
		return
	}

	switch commit.Context {
	case drag.CtxTaskReorder:
		s.Gateway.ReorderTasks(commit.SourceID, commit.TargetID)
	case drag.CtxProjectReorder:
		s.Gateway.ReorderProjects(commit.SourceID, commit.TargetID)
	case drag.CtxAssignmentReorder:
		s.Gateway.ReorderDay(commit.SourceID, commit.TargetID)
	case drag.CtxTaskToDay:
		s.Gateway.AssignTaskToDay(commit.SourceID, commit.Day)
	case drag.CtxAssignmentMove:
		s.Gateway.MoveAssignment(commit.SourceID, commit.Day)
	}

	c.JSON(http.StatusOK, gin.H{
		"committed": true,
		"context":   commit.Context,
		"banner":    s.Gateway.State().Banner,
	})
}

// DragCancel handles POST /api/drag/cancel
func DragCancel(c *gin.Context) {
	s, _, ok := currentSession(c)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	s.Drag.Cancel()
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo-planner-api/internal/auth"
	"todo-planner-api/internal/database"
	"todo-planner-api/internal/middleware"
	"todo-planner-api/internal/session"
	"todo-planner-api/internal/store"
	"todo-planner-api/internal/testutil"
	"todo-planner-api/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// setupRouter binds a fresh in-memory DB and session manager and wires every
// handler under test. Routes are registered here rather than through the
// routes package to avoid an import cycle.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db
	session.SetManager(session.NewManager(store.NewGormStore(db), zerolog.Nop()))

	r := gin.New()
	api := r.Group("/api")
	api.POST("/signup", SignUp)
	api.POST("/login", Login)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.GET("/me", Me)
	protected.GET("/views/projects", ProjectView)
	protected.GET("/views/tasks", TaskView)
	protected.GET("/views/week", WeekView)
	protected.GET("/archive", ArchiveView)
	protected.POST("/banner/dismiss", DismissBanner)
	protected.POST("/projects", CreateProject)
	protected.PATCH("/projects/:id", UpdateProject)
	protected.POST("/projects/:id/archive", ArchiveProject)
	protected.POST("/projects/:id/restore", RestoreProject)
	protected.DELETE("/projects/:id", PurgeProject)
	protected.POST("/tasks", CreateTask)
	protected.PATCH("/tasks/:id", UpdateTask)
	protected.POST("/tasks/:id/toggle", ToggleTask)
	protected.POST("/tasks/:id/archive", ArchiveTask)
	protected.POST("/tasks/:id/restore", RestoreTask)
	protected.DELETE("/tasks/:id", PurgeTask)
	protected.POST("/week/assignments", AssignTask)
	protected.DELETE("/week/assignments/:id", RemoveAssignment)
	protected.POST("/week/tasks", CreateTaskOnDay)
	protected.POST("/week/clear", ClearWeek)
	protected.POST("/drag/start", DragStart)
	protected.POST("/drag/hover", DragHover)
	protected.POST("/drag/drop", DragDrop)
	protected.POST("/drag/cancel", DragCancel)
	return r
}

func testToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, userID+"@example.com")
	require.NoError(t, err)
	return token
}

// do issues a request with an optional JSON payload and bearer token.
func do(r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// weekDate returns the ISO date of day i (0 = Sunday) of the current week,
// matching the range the week view serves.
func weekDate(i int) string {
	return view.WeekDates(time.Now())[i].Format("2006-01-02")
}

// weekAssignmentCount sums the visible assignments across the week view's
// seven buckets.
func weekAssignmentCount(t *testing.T, r *gin.Engine, token string) int {
	t.Helper()
	w := do(r, http.MethodGet, "/api/views/week", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	total := 0
	for _, b := range decode(t, w)["buckets"].([]any) {
		bucket := b.(map[string]any)
		total += len(bucket["visible"].([]any))
		total += int(bucket["more"].(float64))
	}
	return total
}

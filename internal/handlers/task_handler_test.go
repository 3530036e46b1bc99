package handlers

import (
	"net/http"
	"testing"

	"todo-planner-api/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func createProject(t *testing.T, r *gin.Engine, token, name string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/projects", token, map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode(t, w)["project"].(map[string]any)["id"].(string)
}

func createTask(t *testing.T, r *gin.Engine, token, projectID, title string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/tasks", token, map[string]string{
		"project_id": projectID, "title": title,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode(t, w)["task"].(map[string]any)["id"].(string)
}

func taskViewIDs(t *testing.T, r *gin.Engine, token, sort string) []string {
	t.Helper()
	w := do(r, http.MethodGet, "/api/views/tasks?sort="+sort, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ids []string
	for _, e := range decode(t, w)["entries"].([]any) {
		entry := e.(map[string]any)
		if entry["divider"] == true {
			ids = append(ids, "---")
			continue
		}
		ids = append(ids, entry["task"].(map[string]any)["id"].(string))
	}
	return ids
}

func TestCreateTask_Success(t *testing.T) {
	r := setupRouter(t)
	token := testToken(t, "u-t1")
	pid := createProject(t, r, token, "Inbox")

	w := do(r, http.MethodPost, "/api/tasks", token, map[string]string{
		"project_id": pid, "title": "Write report", "due_date": "2025-06-12",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	task := decode(t, w)["task"].(map[string]any)
	require.Equal(t, "Write report", task["title"])
	require.Equal(t, "2025-06-12", task["due_date"])
	require.Equal(t, float64(0), task["order_index"])
}

func TestCreateTask_UnknownProject(t *testing.T) {
	r := setupRouter(t)
	token := testToken(t, "u-t2")

	w := do(r, http.MethodPost, "/api/tasks", token, map[string]string{
		"project_id": "missing", "title": "orphan",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTask_BadDueDate(t *testing.T) {
	r := setupRouter(t)
	token := testToken(t, "u-t3")
	pid := createProject(t, r, token, "Inbox")

	w := do(r, http.MethodPost, "/api/tasks", token, map[string]string{
		"project_id": pid, "title": "x", "due_date": "12/06/2025",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleTask_MovesAcrossDivider(t *testing.T) {
	r := setupRouter(t)
	token := testToken(t, "u-t4")
	pid := createProject(t, r, token, "Inbox")
	a := createTask(t, r, token, pid, "first")
	b := createTask(t, r, token, pid, "second")

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/tasks/"+a+"/toggle", token, nil).Code)

	// completed task drops below the divider
	require.Equal(t, []string{b, "---", a}, taskViewIDs(t, r, token, "custom"))

	// toggling back restores the single active partition
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/tasks/"+a+"/toggle", token, nil).Code)
	require.Equal(t, []string{a, b}, taskViewIDs(t, r, token, "custom"))
}

func TestUpdateTask_PartialEdit(t *testing.T) {
	r := setupRouter(t)
	token := testToken(t, "u-t5")
	pid := createProject(t, r, token, "Inbox")
	id := createTask(t, r, token, pid, "before")

	w := do(r, http.MethodPatch, "/api/tasks/"+id, token, map[string]any{"title": "after"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/views/tasks", token, nil)
	entries := decode(t, w)["entries"].([]any)
	require.Len(t, entries, 1)
	task := entries[0].(map[string]any)["task"].(map[string]any)
	require.Equal(t, "after", task["title"])
	require.Equal(t, "", task["due_date"]) // untouched fields stay
}

func TestUpdateTask_NotFound(t *testing.T) {
	r := setupRouter(t)
	token := testToken(t, "u-t6")

	w := do(r, http.MethodPatch, "/api/tasks/missing", token, map[string]any{"title": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestArchiveAndRestoreTask(t *testing.T) {
	r := setupRouter(t)
	token := testToken(t, "u-t7")
	pid := createProject(t, r, token, "Inbox")
	id := createTask(t, r, token, pid, "flaky")

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/tasks/"+id+"/archive", token, nil).Code)
	require.Empty(t, taskViewIDs(t, r, token, "custom"))

	archive := decode(t, do(r, http.MethodGet, "/api/archive", token, nil))
	require.Len(t, archive["tasks"], 1)

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/tasks/"+id+"/restore", token, nil).Code)
	require.Equal(t, []string{id}, taskViewIDs(t, r, token, "custom"))
}

func TestPurgeTask_RemovesAssignments(t *testing.T) {
	r := setupRouter(t)
	token := testToken(t, "u-t8")
	pid := createProject(t, r, token, "Inbox")
	id := createTask(t, r, token, pid, "doomed")

	w := do(r, http.MethodPost, "/api/week/assignments", token, map[string]string{
		"task_id": id, "date": weekDate(0),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	require.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/api/tasks/"+id, token, nil).Code)

	// a fresh session reloads from the store, which no longer has the
	// assignment rows
	session.GetManager().Drop("u-t8")
	require.Zero(t, weekAssignmentCount(t, r, token))
}

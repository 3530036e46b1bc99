package sync

import (
	"encoding/json"
	"strings"
	"time"

	"todo-planner-api/internal/models"
	"todo-planner-api/internal/ordering"
	"todo-planner-api/internal/state"
	"todo-planner-api/internal/store"
	"todo-planner-api/internal/view"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Gateway owns one user's AppState. Every mutation is applied to the local
// state first (optimistic update) and then persisted through the store; a
// persistence failure surfaces a banner and leaves local state as applied.
// Multi-row reorders persist each row sequentially and stop at the first
// failure, so the remote store can end up behind local state. That window is
// deliberate: nothing here rolls back or reconciles.
type Gateway struct {
	userID string
	store  store.Store
	state  *state.AppState
	log    zerolog.Logger
	notify func(event, id string)
}

// New creates a gateway for one user. notify is invoked after each committed
// mutation with an event name and the affected entity id; it may be nil.
func New(userID string, st store.Store, logger zerolog.Logger, notify func(event, id string)) *Gateway {
	return &Gateway{
		userID: userID,
		store:  st,
		state:  state.New(),
		log:    logger.With().Str("user_id", userID).Logger(),
		notify: notify,
	}
}

// State exposes the collections for projection. Callers must not mutate it.
func (g *Gateway) State() *state.AppState {
	return g.state
}

func (g *Gateway) emit(event, id string) {
	if g.notify != nil {
		g.notify(event, id)
	}
}

// fail converts a persistence error into the single user-facing banner and
// logs the underlying cause. Local state is never touched here.
func (g *Gateway) fail(banner string, err error) {
	g.state.Banner = banner
	g.log.Warn().Err(err).Msg(banner)
}

// DismissBanner clears the current error banner.
func (g *Gateway) DismissBanner() {
	g.state.Banner = ""
}

// Load fetches the active collections and the current week's assignments.
// On failure the affected collection falls back to empty and a banner is set.
func (g *Gateway) Load(ref time.Time) {
	projects, err := g.store.Projects(g.userID, false)
	if err != nil {
		g.fail("Failed to load data. Please check your connection.", err)
		projects = []models.Project{}
	}
	tasks, err := g.store.Tasks(g.userID, false)
	if err != nil {
		g.fail("Failed to load data. Please check your connection.", err)
		tasks = []models.Task{}
	}
	from, to := view.WeekRange(ref)
	assignments, err := g.store.WeekAssignments(g.userID, from, to)
	if err != nil {
		g.fail("Failed to load week assignments.", err)
		assignments = []models.WeekAssignment{}
	}

	// Rows that predate manual ordering come back with a zero index. A
	// missing index and a stored zero are indistinguishable here, so this
	// backfill also rewrites a genuine zero-index tie on any row after the
	// first.
	for i := range projects {
		if projects[i].OrderIndex == 0 && i > 0 {
			projects[i].OrderIndex = i
		}
	}

	g.state.Projects = projects
	g.state.Tasks = tasks
	g.state.Assignments = assignments
}

// --- project operations ---

// AddProject creates a project at the end of the active sequence, cycling
// through the color palette by active project count.
func (g *Gateway) AddProject(name string) *models.Project {
	if strings.TrimSpace(name) == "" {
		name = "New Project"
	}
	p := models.Project{
		ID:         uuid.NewString(),
		Name:       name,
		Color:      models.ProjectColors[len(g.state.Projects)%len(models.ProjectColors)],
		OrderIndex: len(g.state.Projects),
		UserID:     g.userID,
	}
	g.state.Projects = append(g.state.Projects, p)
	if err := g.store.InsertProject(&p); err != nil {
		g.fail("Failed to add project", err)
		return &g.state.Projects[len(g.state.Projects)-1]
	}
	g.emit("project_created", p.ID)
	return &g.state.Projects[len(g.state.Projects)-1]
}

// RenameProject updates a project's display name.
func (g *Gateway) RenameProject(id, name string) bool {
	p, ok := g.state.ProjectByID(id)
	if !ok {
		return false
	}
	p.Name = name
	if err := g.store.UpdateProject(id, g.userID, map[string]any{"name": name}); err != nil {
		g.fail("Failed to update project", err)
		return true
	}
	g.emit("project_renamed", id)
	return true
}

// ArchiveProject soft-deletes a project and cascades the archive flag to all
// its tasks. Archived rows leave the active collections but stay restorable.
func (g *Gateway) ArchiveProject(id string) bool {
	if _, ok := g.state.ProjectByID(id); !ok {
		return false
	}
	kept := g.state.Projects[:0]
	for _, p := range g.state.Projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	g.state.Projects = kept
	keptTasks := g.state.Tasks[:0]
	for _, t := range g.state.Tasks {
		if t.ProjectID != id {
			keptTasks = append(keptTasks, t)
		}
	}
	g.state.Tasks = keptTasks

	if err := g.store.UpdateTasksByProject(id, g.userID, map[string]any{"archived": true}); err != nil {
		g.fail("Failed to archive project", err)
		return true
	}
	if err := g.store.UpdateProject(id, g.userID, map[string]any{"archived": true}); err != nil {
		g.fail("Failed to archive project", err)
		return true
	}
	g.emit("project_archived", id)
	return true
}

// RestoreProject un-archives a project and its tasks, then reloads the
// active collections so the restored rows rejoin local state.
func (g *Gateway) RestoreProject(id string, ref time.Time) {
	if err := g.store.UpdateProject(id, g.userID, map[string]any{"archived": false}); err != nil {
		g.fail("Failed to restore project", err)
		return
	}
	if err := g.store.UpdateTasksByProject(id, g.userID, map[string]any{"archived": false}); err != nil {
		g.fail("Failed to restore project", err)
		return
	}
	g.Load(ref)
	g.emit("project_restored", id)
}

// PurgeProject permanently deletes an archived project and its tasks.
func (g *Gateway) PurgeProject(id string) {
	if err := g.store.DeleteTasksByProject(id, g.userID); err != nil {
		g.fail("Failed to permanently delete project", err)
		return
	}
	if err := g.store.DeleteProject(id, g.userID); err != nil {
		g.fail("Failed to permanently delete project", err)
		return
	}
	g.emit("project_purged", id)
}

// --- task operations ---

// AddTask creates a task at the end of the global custom order. A blank
// title is rejected without touching state.
func (g *Gateway) AddTask(projectID, title, dueDate string) *models.Task {
	if strings.TrimSpace(title) == "" {
		return nil
	}
	t := models.Task{
		ID:         uuid.NewString(),
		ProjectID:  projectID,
		Title:      title,
		DueDate:    dueDate,
		OrderIndex: len(g.state.Tasks),
		UserID:     g.userID,
	}
	g.state.Tasks = append(g.state.Tasks, t)
	if err := g.store.InsertTask(&t); err != nil {
		g.fail("Failed to add task", err)
		return &g.state.Tasks[len(g.state.Tasks)-1]
	}
	g.emit("task_created", t.ID)
	return &g.state.Tasks[len(g.state.Tasks)-1]
}

// ToggleTask flips a task's completed flag.
func (g *Gateway) ToggleTask(id string) bool {
	t, ok := g.state.TaskByID(id)
	if !ok {
		return false
	}
	t.Completed = !t.Completed
	if err := g.store.UpdateTask(id, g.userID, map[string]any{"completed": t.Completed}); err != nil {
		g.fail("Failed to update task", err)
		return true
	}
	g.emit("task_toggled", id)
	return true
}

// TaskUpdates carries the optional fields of a task edit.
type TaskUpdates struct {
	Title     *string `json:"title"`
	DueDate   *string `json:"due_date"`
	ProjectID *string `json:"project_id"`
}

// UpdateTask applies a partial edit to a task.
func (g *Gateway) UpdateTask(id string, updates TaskUpdates) bool {
	t, ok := g.state.TaskByID(id)
	if !ok {
		return false
	}
	fields := map[string]any{}
	if updates.Title != nil && strings.TrimSpace(*updates.Title) != "" {
		t.Title = *updates.Title
		fields["title"] = *updates.Title
	}
	if updates.DueDate != nil {
		t.DueDate = *updates.DueDate
		fields["due_date"] = *updates.DueDate
	}
	if updates.ProjectID != nil {
		t.ProjectID = *updates.ProjectID
		fields["project_id"] = *updates.ProjectID
	}
	if len(fields) == 0 {
		return true
	}
	if err := g.store.UpdateTask(id, g.userID, fields); err != nil {
		g.fail("Failed to update task", err)
		return true
	}
	g.emit("task_updated", id)
	return true
}

// ArchiveTask soft-deletes a task. Its week assignments are left in place;
// days simply stop rendering them while the task is archived.
func (g *Gateway) ArchiveTask(id string) bool {
	if _, ok := g.state.TaskByID(id); !ok {
		return false
	}
	kept := g.state.Tasks[:0]
	for _, t := range g.state.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	g.state.Tasks = kept
	if err := g.store.UpdateTask(id, g.userID, map[string]any{"archived": true}); err != nil {
		g.fail("Failed to archive task", err)
		return true
	}
	g.emit("task_archived", id)
	return true
}

// RestoreTask un-archives a task and reloads the active collections.
func (g *Gateway) RestoreTask(id string, ref time.Time) {
	if err := g.store.UpdateTask(id, g.userID, map[string]any{"archived": false}); err != nil {
		g.fail("Failed to restore task", err)
		return
	}
	g.Load(ref)
	g.emit("task_restored", id)
}

// PurgeTask permanently deletes a task and its week assignments.
func (g *Gateway) PurgeTask(id string) {
	if err := g.store.DeleteAssignmentsByTask(id, g.userID); err != nil {
		g.fail("Failed to permanently delete task", err)
		return
	}
	if err := g.store.DeleteTask(id, g.userID); err != nil {
		g.fail("Failed to permanently delete task", err)
		return
	}
	g.emit("task_purged", id)
}

// --- reorders ---

// ReorderTasks commits a task drag. The full resequenced collection is
// applied locally, then every row's order index is persisted one by one.
func (g *Gateway) ReorderTasks(sourceID, targetID string) bool {
	reordered, changed := ordering.ReorderTasks(g.state.Tasks, sourceID, targetID)
	if !changed {
		return false
	}
	g.state.Tasks = reordered
	for _, t := range reordered {
		if err := g.store.UpdateTask(t.ID, g.userID, map[string]any{"order_index": t.OrderIndex}); err != nil {
			g.fail("Failed to save task order", err)
			return true
		}
	}
	g.emit("tasks_reordered", sourceID)
	return true
}

// ReorderProjects commits a project drag.
func (g *Gateway) ReorderProjects(sourceID, targetID string) bool {
	reordered, changed := ordering.ReorderProjects(g.state.Projects, sourceID, targetID)
	if !changed {
		return false
	}
	g.state.Projects = reordered
	for _, p := range reordered {
		if err := g.store.UpdateProject(p.ID, g.userID, map[string]any{"order_index": p.OrderIndex}); err != nil {
			g.fail("Failed to save project order", err)
			return true
		}
	}
	g.emit("projects_reordered", sourceID)
	return true
}

// --- week assignments ---

// AssignTaskToDay places a task at the end of a day's bucket. A duplicate
// assignment of the same task to the same day is silently skipped.
func (g *Gateway) AssignTaskToDay(taskID, date string) *models.WeekAssignment {
	if g.state.TaskAssignedOn(taskID, date) {
		return nil
	}
	a := models.WeekAssignment{
		ID:           uuid.NewString(),
		TaskID:       taskID,
		AssignedDate: date,
		OrderIndex:   len(g.state.DayAssignments(date)),
		UserID:       g.userID,
	}
	g.state.Assignments = append(g.state.Assignments, a)
	if err := g.store.InsertAssignment(&a); err != nil {
		g.fail("Failed to assign task to day", err)
		return &g.state.Assignments[len(g.state.Assignments)-1]
	}
	g.emit("week_assigned", a.ID)
	return &g.state.Assignments[len(g.state.Assignments)-1]
}

// MoveAssignment drags an assignment onto a different day: it leaves its old
// bucket and is appended at the end of the target day's bucket. A same-day
// move is a no-op.
func (g *Gateway) MoveAssignment(id, date string) bool {
	a, ok := g.state.AssignmentByID(id)
	if !ok || a.AssignedDate == date {
		return false
	}
	a.OrderIndex = len(g.state.DayAssignments(date)) // appended at the end of the target bucket
	a.AssignedDate = date
	if err := g.store.UpdateAssignment(id, g.userID, map[string]any{
		"assigned_date": date,
		"order_index":   a.OrderIndex,
	}); err != nil {
		g.fail("Failed to move assignment", err)
		return true
	}
	g.emit("assignment_moved", id)
	return true
}

// ReorderDay commits an assignment drag within the source's day.
func (g *Gateway) ReorderDay(sourceID, targetID string) bool {
	src, ok := g.state.AssignmentByID(sourceID)
	if !ok {
		return false
	}
	day := g.state.DayAssignments(src.AssignedDate)
	reordered, changed := ordering.ReorderAssignments(day, sourceID, targetID)
	if !changed {
		return false
	}
	for _, ra := range reordered {
		if a, ok := g.state.AssignmentByID(ra.ID); ok {
			a.OrderIndex = ra.OrderIndex
		}
	}
	for _, ra := range reordered {
		if err := g.store.UpdateAssignment(ra.ID, g.userID, map[string]any{"order_index": ra.OrderIndex}); err != nil {
			g.fail("Failed to save day order", err)
			return true
		}
	}
	g.emit("day_reordered", sourceID)
	return true
}

// RemoveAssignment unassigns a task from a day.
func (g *Gateway) RemoveAssignment(id string) bool {
	if _, ok := g.state.AssignmentByID(id); !ok {
		return false
	}
	kept := g.state.Assignments[:0]
	for _, a := range g.state.Assignments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	g.state.Assignments = kept
	if err := g.store.DeleteAssignment(id, g.userID); err != nil {
		g.fail("Failed to remove assignment", err)
		return true
	}
	g.emit("assignment_removed", id)
	return true
}

// ClearWeek removes every assignment of the week containing ref.
func (g *Gateway) ClearWeek(ref time.Time) {
	g.state.Assignments = []models.WeekAssignment{}
	from, to := view.WeekRange(ref)
	if err := g.store.DeleteAssignmentsInRange(g.userID, from, to); err != nil {
		g.fail("Failed to clear assignments", err)
		return
	}
	g.emit("week_cleared", "")
}

// AddTaskOnDay creates a task and immediately assigns it to the given day
// (the week view's inline add form).
func (g *Gateway) AddTaskOnDay(projectID, title, date string) *models.Task {
	t := g.AddTask(projectID, title, date)
	if t == nil {
		return nil
	}
	g.AssignTaskToDay(t.ID, date)
	return t
}

// --- archive view ---

// ArchivedItems reads the archived projects and tasks, newest first. A read
// failure degrades to empty listings plus a banner.
func (g *Gateway) ArchivedItems() ([]models.Project, []models.Task) {
	projects, err := g.store.Projects(g.userID, true)
	if err != nil {
		g.fail("Failed to load archived items", err)
		return []models.Project{}, []models.Task{}
	}
	tasks, err := g.store.Tasks(g.userID, true)
	if err != nil {
		g.fail("Failed to load archived items", err)
		return projects, []models.Task{}
	}
	return projects, tasks
}

// SerializeTask marshals a task for cross-context drag transfer.
func SerializeTask(t *models.Task) []byte {
	b, err := json.Marshal(t)
	if err != nil {
		return nil
	}
	return b
}

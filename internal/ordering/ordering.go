package ordering

import (
	"todo-planner-api/internal/models"
)

// reorder moves the element with sourceID to the position the element with
// targetID occupied in the input sequence, then reassigns every element's
// order index to its positional index starting at 0.
//
// The insertion point is the target's index in the input sequence (before the
// source is removed): dragging down lands the source after the target,
// dragging up lands it before. Elements not touched keep their relative
// order. Returns (items, false) untouched when sourceID == targetID or
// either id is absent.
func reorder[T any](items []T, idOf func(T) string, withIndex func(T, int) T, sourceID, targetID string) ([]T, bool) {
	if sourceID == targetID {
		return items, false
	}

	src, tgt := -1, -1
	for i, it := range items {
		switch idOf(it) {
		case sourceID:
			src = i
		case targetID:
			tgt = i
		}
	}
	if src < 0 || tgt < 0 {
		return items, false
	}

	moved := items[src]
	rest := make([]T, 0, len(items)-1)
	rest = append(rest, items[:src]...)
	rest = append(rest, items[src+1:]...)

	pos := tgt
	if pos > len(rest) {
		pos = len(rest)
	}

	out := make([]T, 0, len(items))
	out = append(out, rest[:pos]...)
	out = append(out, moved)
	out = append(out, rest[pos:]...)

	for i := range out {
		out[i] = withIndex(out[i], i)
	}
	return out, true
}

// ReorderProjects applies a drag of sourceID onto targetID to the project
// sequence. The returned sequence carries contiguous 0..N-1 order indices.
func ReorderProjects(projects []models.Project, sourceID, targetID string) ([]models.Project, bool) {
	return reorder(projects,
		func(p models.Project) string { return p.ID },
		func(p models.Project, i int) models.Project { p.OrderIndex = i; return p },
		sourceID, targetID)
}

// ReorderTasks applies a drag of sourceID onto targetID to the task sequence.
// Completed and uncompleted tasks are reorder-isolated: a drag across the
// completion boundary is rejected with no state change.
func ReorderTasks(tasks []models.Task, sourceID, targetID string) ([]models.Task, bool) {
	var src, tgt *models.Task
	for i := range tasks {
		switch tasks[i].ID {
		case sourceID:
			src = &tasks[i]
		case targetID:
			tgt = &tasks[i]
		}
	}
	if src != nil && tgt != nil && src.Completed != tgt.Completed {
		return tasks, false
	}
	return reorder(tasks,
		func(t models.Task) string { return t.ID },
		func(t models.Task, i int) models.Task { t.OrderIndex = i; return t },
		sourceID, targetID)
}

// ReorderAssignments applies a drag within one day's assignment sequence.
func ReorderAssignments(assignments []models.WeekAssignment, sourceID, targetID string) ([]models.WeekAssignment, bool) {
	return reorder(assignments,
		func(a models.WeekAssignment) string { return a.ID },
		func(a models.WeekAssignment, i int) models.WeekAssignment { a.OrderIndex = i; return a },
		sourceID, targetID)
}

// ChangedTaskIDs reports which ids carry a different order index in after
// than in before. Correctness of a reorder requires all indices be
// recomputed; callers may use this to persist only the rows that moved.
func ChangedTaskIDs(before, after []models.Task) []string {
	prev := make(map[string]int, len(before))
	for _, t := range before {
		prev[t.ID] = t.OrderIndex
	}
	var changed []string
	for _, t := range after {
		if idx, ok := prev[t.ID]; !ok || idx != t.OrderIndex {
			changed = append(changed, t.ID)
		}
	}
	return changed
}

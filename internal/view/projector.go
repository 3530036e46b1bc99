package view

import (
	"sort"
	"time"

	"todo-planner-api/internal/models"
)

// SortMode selects how the flat task view is ordered.
type SortMode string

const (
	SortCustom  SortMode = "custom"  // by manual order index
	SortCreated SortMode = "created" // newest first
	SortDue     SortMode = "due"     // earliest due date first, undated last
)

// DisplayMode selects the project grid column count.
type DisplayMode string

const (
	DisplayAuto         DisplayMode = "auto"
	DisplayOneColumn    DisplayMode = "1"
	DisplayTwoColumns   DisplayMode = "2"
	DisplayThreeColumns DisplayMode = "3"
)

const dateLayout = "2006-01-02"

// maxVisiblePerDay is how many assignments a day cell renders before
// collapsing the rest into a "+N more" count. Display-only, not a data limit.
const maxVisiblePerDay = 5

// TaskEntry is one element of the rendered task view: either a task or the
// single divider separating uncompleted from completed tasks.
type TaskEntry struct {
	Divider bool         `json:"divider,omitempty"`
	Task    *models.Task `json:"task,omitempty"`
}

// ProjectGroup is one project with its tasks in rendered order.
type ProjectGroup struct {
	Project models.Project `json:"project"`
	Tasks   []models.Task  `json:"tasks"`
}

// DayBucket is one day cell of the week view.
type DayBucket struct {
	Date    string                  `json:"date"`
	Weekday string                  `json:"weekday"`
	Visible []models.WeekAssignment `json:"visible"`
	More    int                     `json:"more"` // assignments truncated from display
}

// SortTasks returns the tasks in rendered order for the given sort mode:
// uncompleted first, completed after, each partition sorted independently.
// All sorts are stable, so order-index ties and undated tasks keep their
// relative (insertion) order.
func SortTasks(tasks []models.Task, mode SortMode) []models.Task {
	uncompleted := make([]models.Task, 0, len(tasks))
	completed := make([]models.Task, 0)
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			uncompleted = append(uncompleted, t)
		}
	}

	sortPartition(uncompleted, mode)
	sortPartition(completed, mode)

	return append(uncompleted, completed...)
}

func sortPartition(tasks []models.Task, mode SortMode) {
	switch mode {
	case SortCreated:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	case SortDue:
		sort.SliceStable(tasks, func(i, j int) bool {
			// ISO dates compare lexicographically; empty sorts after all dated.
			if tasks[i].DueDate == "" {
				return false
			}
			if tasks[j].DueDate == "" {
				return true
			}
			return tasks[i].DueDate < tasks[j].DueDate
		})
	default: // SortCustom
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].OrderIndex < tasks[j].OrderIndex
		})
	}
}

// TaskList projects the flat task view: the sorted sequence with one divider
// entry at the completed boundary. No divider is emitted when either
// partition is empty.
func TaskList(tasks []models.Task, mode SortMode) []TaskEntry {
	sorted := SortTasks(tasks, mode)
	entries := make([]TaskEntry, 0, len(sorted)+1)
	for i := range sorted {
		if i > 0 && sorted[i].Completed && !sorted[i-1].Completed {
			entries = append(entries, TaskEntry{Divider: true})
		}
		entries = append(entries, TaskEntry{Task: &sorted[i]})
	}
	return entries
}

// ProjectGroups projects the project view: projects by their own order index,
// each group's tasks completed-last then by order index.
func ProjectGroups(projects []models.Project, tasks []models.Task) []ProjectGroup {
	ordered := make([]models.Project, len(projects))
	copy(ordered, projects)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	groups := make([]ProjectGroup, 0, len(ordered))
	for _, p := range ordered {
		group := ProjectGroup{Project: p, Tasks: []models.Task{}}
		for _, t := range tasks {
			if t.ProjectID == p.ID {
				group.Tasks = append(group.Tasks, t)
			}
		}
		group.Tasks = SortTasks(group.Tasks, SortCustom)
		groups = append(groups, group)
	}
	return groups
}

// Columns maps a display mode to a fixed grid column count. Auto returns 0,
// meaning the client picks by responsive breakpoint.
func Columns(mode DisplayMode) int {
	switch mode {
	case DisplayOneColumn:
		return 1
	case DisplayTwoColumns:
		return 2
	case DisplayThreeColumns:
		return 3
	default:
		return 0
	}
}

// WeekDates returns the 7 dates of the calendar week containing ref,
// Sunday through Saturday, in the reference time's location.
func WeekDates(ref time.Time) [7]time.Time {
	sunday := time.Date(ref.Year(), ref.Month(), ref.Day()-int(ref.Weekday()), 0, 0, 0, 0, ref.Location())
	var dates [7]time.Time
	for i := range dates {
		dates[i] = sunday.AddDate(0, 0, i)
	}
	return dates
}

// WeekRange returns the ISO dates of the first and last day of the week
// containing ref.
func WeekRange(ref time.Time) (string, string) {
	dates := WeekDates(ref)
	return dates[0].Format(dateLayout), dates[6].Format(dateLayout)
}

// WeekBuckets projects the week view: exactly 7 day buckets Sunday..Saturday,
// each day's assignments ordered by order index, with display truncation
// after 5 entries.
func WeekBuckets(assignments []models.WeekAssignment, ref time.Time) [7]DayBucket {
	byDate := make(map[string][]models.WeekAssignment)
	for _, a := range assignments {
		byDate[a.AssignedDate] = append(byDate[a.AssignedDate], a)
	}

	var buckets [7]DayBucket
	for i, date := range WeekDates(ref) {
		key := date.Format(dateLayout)
		day := byDate[key]
		sort.SliceStable(day, func(a, b int) bool {
			return day[a].OrderIndex < day[b].OrderIndex
		})
		visible := day
		more := 0
		if len(day) > maxVisiblePerDay {
			visible = day[:maxVisiblePerDay]
			more = len(day) - maxVisiblePerDay
		}
		if visible == nil {
			visible = []models.WeekAssignment{}
		}
		buckets[i] = DayBucket{
			Date:    key,
			Weekday: date.Weekday().String()[:3],
			Visible: visible,
			More:    more,
		}
	}
	return buckets
}

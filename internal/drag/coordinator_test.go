package drag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStart_RejectedWhileActive(t *testing.T) {
	c := New()
	require.True(t, c.Start(Source{Kind: SourceTask, ID: "t1"}))
	require.Equal(t, Dragging, c.Phase())
	require.False(t, c.Start(Source{Kind: SourceTask, ID: "t2"}))
	require.Equal(t, "t1", c.Source().ID)
}

func TestHoverItem_IgnoredWhenIdle(t *testing.T) {
	c := New()
	c.HoverItem("t2", false, "")
	require.Equal(t, Idle, c.Phase())
}

func TestTaskHover_SameCompletionValid(t *testing.T) {
	c := New()
	c.Start(Source{Kind: SourceTask, ID: "t1", Completed: false})
	c.HoverItem("t2", false, "")
	require.Equal(t, HoveringValid, c.Phase())
}

func TestTaskHover_CrossPartitionInvalid(t *testing.T) {
	c := New()
	c.Start(Source{Kind: SourceTask, ID: "t1", Completed: false})
	c.HoverItem("t2", true, "")
	require.Equal(t, HoveringInvalid, c.Phase())

	// dropping from an invalid hover is a silent no-op and resets
	_, committed := c.Drop()
	require.False(t, committed)
	require.Equal(t, Idle, c.Phase())
}

func TestTaskHover_SelfInvalid(t *testing.T) {
	c := New()
	c.Start(Source{Kind: SourceTask, ID: "t1"})
	c.HoverItem("t1", false, "")
	require.Equal(t, HoveringInvalid, c.Phase())
}

func TestProjectDrag_NoCompletionPredicate(t *testing.T) {
	c := New()
	c.Start(Source{Kind: SourceProject, ID: "p1"})
	c.HoverItem("p2", true, "") // completed flag irrelevant for projects
	require.Equal(t, HoveringValid, c.Phase())

	commit, committed := c.Drop()
	require.True(t, committed)
	require.Equal(t, CtxProjectReorder, commit.Context)
	require.Equal(t, "p1", commit.SourceID)
	require.Equal(t, "p2", commit.TargetID)
}

func TestTaskDropOnDay_CarriesPayload(t *testing.T) {
	c := New()
	payload := []byte(`{"id":"t1"}`)
	c.Start(Source{Kind: SourceTask, ID: "t1", Payload: payload})
	c.HoverDay("2025-06-09", false)
	require.Equal(t, HoveringValid, c.Phase())

	commit, committed := c.Drop()
	require.True(t, committed)
	require.Equal(t, CtxTaskToDay, commit.Context)
	require.Equal(t, "2025-06-09", commit.Day)
	require.Equal(t, payload, commit.Payload)
}

func TestTaskDropOnOccupiedDay_Invalid(t *testing.T) {
	c := New()
	c.Start(Source{Kind: SourceTask, ID: "t1"})
	c.HoverDay("2025-06-09", true)
	require.Equal(t, HoveringInvalid, c.Phase())
}

func TestAssignmentMove_SameDayInvalid(t *testing.T) {
	c := New()
	c.Start(Source{Kind: SourceAssignment, ID: "a1", Day: "2025-06-09"})
	c.HoverDay("2025-06-09", false)
	require.Equal(t, HoveringInvalid, c.Phase())

	c.HoverDay("2025-06-11", false)
	require.Equal(t, HoveringValid, c.Phase())

	commit, committed := c.Drop()
	require.True(t, committed)
	require.Equal(t, CtxAssignmentMove, commit.Context)
	require.Equal(t, "2025-06-11", commit.Day)
}

func TestAssignmentReorder_WithinDay(t *testing.T) {
	c := New()
	c.Start(Source{Kind: SourceAssignment, ID: "a1", Day: "2025-06-09"})
	c.HoverItem("a2", false, "2025-06-09")
	require.Equal(t, HoveringValid, c.Phase())

	commit, committed := c.Drop()
	require.True(t, committed)
	require.Equal(t, CtxAssignmentReorder, commit.Context)
	require.Equal(t, "a2", commit.TargetID)
	require.Equal(t, "2025-06-09", commit.Day)
}

func TestAssignmentHover_CrossDayItemInvalid(t *testing.T) {
	c := New()
	c.Start(Source{Kind: SourceAssignment, ID: "a1", Day: "2025-06-09"})

	// an item on another day is not a reorder target; cross-day placement
	// only goes through the day-cell hover
	c.HoverItem("a2", false, "2025-06-11")
	require.Equal(t, HoveringInvalid, c.Phase())

	_, committed := c.Drop()
	require.False(t, committed)
	require.Equal(t, Idle, c.Phase())
}

func TestProjectHoverDay_Invalid(t *testing.T) {
	c := New()
	c.Start(Source{Kind: SourceProject, ID: "p1"})
	c.HoverDay("2025-06-09", false)
	require.Equal(t, HoveringInvalid, c.Phase())
}

func TestDropWithoutHover_NoOp(t *testing.T) {
	c := New()
	c.Start(Source{Kind: SourceTask, ID: "t1"})
	_, committed := c.Drop()
	require.False(t, committed)
	require.Equal(t, Idle, c.Phase())
}

func TestCancel_ResetsToIdle(t *testing.T) {
	c := New()
	c.Start(Source{Kind: SourceTask, ID: "t1"})
	c.HoverItem("t2", false, "")
	c.Cancel()
	require.Equal(t, Idle, c.Phase())
	// a new drag can start after cancel
	require.True(t, c.Start(Source{Kind: SourceTask, ID: "t2"}))
}

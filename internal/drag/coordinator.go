package drag

// Phase is the coordinator's current state. Exactly one drag can be active;
// starting another while one is in progress is not a reachable transition.
type Phase int

const (
	Idle Phase = iota
	Dragging
	HoveringValid
	HoveringInvalid
)

// SourceKind identifies what is being dragged.
type SourceKind string

const (
	SourceTask       SourceKind = "task"
	SourceProject    SourceKind = "project"
	SourceAssignment SourceKind = "assignment"
)

// Context identifies the operation a drop commits to.
type Context string

const (
	CtxTaskReorder       Context = "task_reorder"
	CtxProjectReorder    Context = "project_reorder"
	CtxAssignmentReorder Context = "assignment_reorder"
	CtxTaskToDay         Context = "task_to_day"
	CtxAssignmentMove    Context = "assignment_move"
)

// Source describes the dragged item. Completed feeds the task-reorder
// validity predicate; Day is the assignment's current date; Payload carries
// the serialized task for cross-context (task onto day cell) drops, the way
// the browser original stuffed the task into dataTransfer.
type Source struct {
	Kind      SourceKind
	ID        string
	Completed bool
	Day       string
	Payload   []byte
}

// target is the candidate drop location tracked during hover.
type target struct {
	id        string
	completed bool
	day       string
	isDay     bool
}

// Commit is the instruction emitted on a valid drop, handed to the ordering
// engine / sync gateway.
type Commit struct {
	Context  Context
	SourceID string
	TargetID string
	Day      string
	Payload  []byte
}

// Coordinator tracks one in-progress drag gesture.
type Coordinator struct {
	phase  Phase
	source Source
	over   target
}

func New() *Coordinator {
	return &Coordinator{}
}

func (c *Coordinator) Phase() Phase {
	return c.phase
}

func (c *Coordinator) Source() Source {
	return c.source
}

// Start begins a drag. It reports false, changing nothing, if a drag is
// already active.
func (c *Coordinator) Start(src Source) bool {
	if c.phase != Idle {
		return false
	}
	c.phase = Dragging
	c.source = src
	return true
}

// HoverItem records hovering over another draggable of the same kind.
// Validity: tasks must share completion state, assignments must share their
// day (cross-day placement goes through a day-cell hover, not an item hover),
// a project target only needs to differ from the source. day is the target
// assignment's date and is ignored for other kinds. Hovering anything while
// no drag is active is ignored.
func (c *Coordinator) HoverItem(id string, completed bool, day string) {
	if c.phase == Idle {
		return
	}
	c.over = target{id: id, completed: completed, day: day}
	switch {
	case id == c.source.ID:
		c.phase = HoveringInvalid
	case c.source.Kind == SourceTask && completed != c.source.Completed:
		c.phase = HoveringInvalid
	case c.source.Kind == SourceAssignment && day != c.source.Day:
		c.phase = HoveringInvalid
	default:
		c.phase = HoveringValid
	}
}

// HoverDay records hovering over a week-view day cell. occupied reports
// whether the dragged task already has an assignment on that day. A project
// drag has no day target; an assignment drag onto its own day is a no-op.
func (c *Coordinator) HoverDay(date string, occupied bool) {
	if c.phase == Idle {
		return
	}
	c.over = target{day: date, isDay: true}
	switch c.source.Kind {
	case SourceTask:
		if occupied {
			c.phase = HoveringInvalid
		} else {
			c.phase = HoveringValid
		}
	case SourceAssignment:
		if date == c.source.Day {
			c.phase = HoveringInvalid
		} else {
			c.phase = HoveringValid
		}
	default:
		c.phase = HoveringInvalid
	}
}

// Drop ends the gesture. It emits a commit instruction only from
// HoveringValid; an invalid or targetless drop is a silent no-op. The
// coordinator always returns to Idle.
func (c *Coordinator) Drop() (Commit, bool) {
	phase, src, over := c.phase, c.source, c.over
	c.reset()
	if phase != HoveringValid {
		return Commit{}, false
	}

	commit := Commit{SourceID: src.ID, Payload: src.Payload}
	switch {
	case src.Kind == SourceTask && over.isDay:
		commit.Context = CtxTaskToDay
		commit.Day = over.day
	case src.Kind == SourceTask:
		commit.Context = CtxTaskReorder
		commit.TargetID = over.id
	case src.Kind == SourceProject:
		commit.Context = CtxProjectReorder
		commit.TargetID = over.id
	case src.Kind == SourceAssignment && over.isDay:
		commit.Context = CtxAssignmentMove
		commit.Day = over.day
	default:
		commit.Context = CtxAssignmentReorder
		commit.TargetID = over.id
		commit.Day = src.Day
	}
	return commit, true
}

// Cancel aborts the gesture (drag end without a drop).
func (c *Coordinator) Cancel() {
	c.reset()
}

func (c *Coordinator) reset() {
	c.phase = Idle
	c.source = Source{}
	c.over = target{}
}

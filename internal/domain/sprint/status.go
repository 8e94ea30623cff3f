package sprint

// Status is a sprint's lifecycle state. The legal transitions are
// Planning -> Active -> Review -> Retrospective, Active -> Completed, and
// any non-terminal state -> Cancelled. Completing is only legal directly
// from Active: review and retrospective are phases that happen before the
// sprint is formally closed out.
type Status string

const (
	StatusPlanning      Status = "planning"
	StatusActive        Status = "active"
	StatusReview        Status = "review"
	StatusRetrospective Status = "retrospective"
	StatusCompleted     Status = "completed"
	StatusCancelled     Status = "cancelled"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPlanning, StatusActive, StatusReview, StatusRetrospective, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the sprint has finished, one way or the other.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// TaskStatus is a task's lifecycle state. The legal transitions are
// ToDo -> InProgress -> Done, and ToDo|InProgress -> Blocked -> back to
// wherever the task was. Done is terminal.
type TaskStatus string

const (
	TaskToDo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
	TaskBlocked    TaskStatus = "blocked"
)

// IsValid returns true if the status is one of the defined constants.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskToDo, TaskInProgress, TaskDone, TaskBlocked:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s TaskStatus) String() string {
	return string(s)
}

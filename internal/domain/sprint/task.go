package sprint

import (
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain"
)

// Task is a unit of sprint execution work owned by a sprint backlog item.
// Remaining hours hitting zero completes the task automatically; a task that
// is not Done must always have remaining hours above zero.
type Task struct {
	id               TaskID
	itemID           ItemID
	title            TaskTitle
	description      TaskDescription
	status           TaskStatus
	originalEstimate EstimateHours
	remainingHours   Hours
	everStarted      bool
	createdAt        time.Time
	startedAt        *time.Time
	completedAt      *time.Time
}

// NewTask creates a task in ToDo with remaining hours equal to the estimate.
func NewTask(id TaskID, itemID ItemID, title TaskTitle, description TaskDescription, estimate EstimateHours) (*Task, error) {
	if id.IsZero() {
		return nil, domain.Validationf("task id must not be zero")
	}
	if itemID.IsZero() {
		return nil, domain.Validationf("task item id must not be zero")
	}
	return &Task{
		id:               id,
		itemID:           itemID,
		title:            title,
		description:      description,
		status:           TaskToDo,
		originalEstimate: estimate,
		remainingHours:   Hours(estimate),
		createdAt:        time.Now().UTC(),
	}, nil
}

// RehydrateTask reconstructs a task from persisted state. Intended for
// repository use only.
func RehydrateTask(
	id TaskID, itemID ItemID, title TaskTitle, description TaskDescription,
	status TaskStatus, originalEstimate EstimateHours, remainingHours Hours,
	everStarted bool, createdAt time.Time, startedAt, completedAt *time.Time,
) *Task {
	return &Task{
		id:               id,
		itemID:           itemID,
		title:            title,
		description:      description,
		status:           status,
		originalEstimate: originalEstimate,
		remainingHours:   remainingHours,
		everStarted:      everStarted,
		createdAt:        createdAt,
		startedAt:        startedAt,
		completedAt:      completedAt,
	}
}

func (t *Task) ID() TaskID                      { return t.id }
func (t *Task) ItemID() ItemID                  { return t.itemID }
func (t *Task) Title() TaskTitle                { return t.title }
func (t *Task) Description() TaskDescription    { return t.description }
func (t *Task) Status() TaskStatus              { return t.status }
func (t *Task) OriginalEstimate() EstimateHours { return t.originalEstimate }
func (t *Task) RemainingHours() Hours           { return t.remainingHours }
func (t *Task) CreatedAt() time.Time            { return t.createdAt }

// EverStarted reports whether Start was ever called, which decides where an
// unblocked task returns to.
func (t *Task) EverStarted() bool { return t.everStarted }

// StartedAt returns the time the task was first started, or nil.
func (t *Task) StartedAt() *time.Time {
	if t.startedAt == nil {
		return nil
	}
	at := *t.startedAt
	return &at
}

// CompletedAt returns the time the task was completed, or nil.
func (t *Task) CompletedAt() *time.Time {
	if t.completedAt == nil {
		return nil
	}
	at := *t.completedAt
	return &at
}

// Start moves a ToDo task into InProgress.
func (t *Task) Start() error {
	switch t.status {
	case TaskInProgress:
		return domain.Statef("task already started")
	case TaskDone:
		return domain.Statef("task is already done")
	case TaskBlocked:
		return domain.Statef("a blocked task cannot be started")
	}
	t.status = TaskInProgress
	t.everStarted = true
	now := time.Now().UTC()
	t.startedAt = &now
	return nil
}

// Complete finishes the task, zeroing its remaining hours. Completing an
// already-done task is a no-op; a blocked task must be unblocked first.
func (t *Task) Complete() error {
	if t.status == TaskDone {
		return nil
	}
	if t.status == TaskBlocked {
		return domain.Statef("a blocked task cannot be completed")
	}
	t.status = TaskDone
	t.remainingHours = 0
	now := time.Now().UTC()
	t.completedAt = &now
	return nil
}

// Block marks the task blocked. Done tasks cannot be blocked.
func (t *Task) Block() error {
	if t.status == TaskDone {
		return domain.Statef("a done task cannot be blocked")
	}
	if t.status == TaskBlocked {
		return domain.Statef("task is already blocked")
	}
	t.status = TaskBlocked
	return nil
}

// Unblock returns a blocked task to InProgress if it had been started, or
// ToDo if it never was.
func (t *Task) Unblock() error {
	if t.status != TaskBlocked {
		return domain.Statef("task is not blocked")
	}
	if t.everStarted {
		t.status = TaskInProgress
	} else {
		t.status = TaskToDo
	}
	return nil
}

// UpdateRemainingHours replaces the remaining hours. Reaching zero while not
// Done completes the task automatically. A done task can only be set to zero;
// a blocked task cannot be driven to completion this way.
func (t *Task) UpdateRemainingHours(hours Hours) error {
	if t.status == TaskDone {
		if !hours.IsZero() {
			return domain.Statef("a done task cannot have remaining hours")
		}
		return nil
	}
	if hours.IsZero() {
		if t.status == TaskBlocked {
			return domain.Statef("a blocked task cannot be completed")
		}
		t.remainingHours = 0
		return t.Complete()
	}
	t.remainingHours = hours
	return nil
}

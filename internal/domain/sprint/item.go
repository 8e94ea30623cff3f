package sprint

import (
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/backlog"
)

// Item is a product backlog item committed to a sprint. It references the
// product item by id only and carries the sprint-scoped execution data:
// estimate, remaining work, and the tasks it is broken down into.
//
// Task mutation goes through the item's wrapper methods so the item can
// complete itself the moment its last task is done.
type Item struct {
	id               ItemID
	sprintID         ID
	productItemID    backlog.ItemID
	storyPoints      StoryPoints
	originalEstimate Hours
	remainingWork    Hours
	addedAt          time.Time
	completedAt      *time.Time
	tasks            []*Task
}

// NewItem creates a sprint backlog item with remaining work equal to the
// original estimate.
func NewItem(id ItemID, sprintID ID, productItemID backlog.ItemID, points StoryPoints, originalEstimate Hours) (*Item, error) {
	if id.IsZero() {
		return nil, domain.Validationf("sprint item id must not be zero")
	}
	if sprintID.IsZero() {
		return nil, domain.Validationf("sprint item sprint id must not be zero")
	}
	if productItemID.IsZero() {
		return nil, domain.Validationf("sprint item product backlog item id must not be zero")
	}
	return &Item{
		id:               id,
		sprintID:         sprintID,
		productItemID:    productItemID,
		storyPoints:      points,
		originalEstimate: originalEstimate,
		remainingWork:    originalEstimate,
		addedAt:          time.Now().UTC(),
	}, nil
}

// RehydrateItem reconstructs a sprint backlog item from persisted state.
// Intended for repository use only.
func RehydrateItem(
	id ItemID, sprintID ID, productItemID backlog.ItemID,
	points StoryPoints, originalEstimate, remainingWork Hours,
	addedAt time.Time, completedAt *time.Time, tasks []*Task,
) *Item {
	return &Item{
		id:               id,
		sprintID:         sprintID,
		productItemID:    productItemID,
		storyPoints:      points,
		originalEstimate: originalEstimate,
		remainingWork:    remainingWork,
		addedAt:          addedAt,
		completedAt:      completedAt,
		tasks:            tasks,
	}
}

func (i *Item) ID() ItemID                     { return i.id }
func (i *Item) SprintID() ID                   { return i.sprintID }
func (i *Item) ProductItemID() backlog.ItemID  { return i.productItemID }
func (i *Item) StoryPoints() StoryPoints       { return i.storyPoints }
func (i *Item) OriginalEstimate() Hours        { return i.originalEstimate }
func (i *Item) RemainingWork() Hours           { return i.remainingWork }
func (i *Item) AddedAt() time.Time             { return i.addedAt }

// IsCompleted reports whether the item has been completed.
func (i *Item) IsCompleted() bool { return i.completedAt != nil }

// CompletedAt returns the completion time, or nil if the item is still open.
func (i *Item) CompletedAt() *time.Time {
	if i.completedAt == nil {
		return nil
	}
	at := *i.completedAt
	return &at
}

// Tasks returns a copy of the task list in insertion order.
func (i *Item) Tasks() []*Task {
	out := make([]*Task, len(i.tasks))
	copy(out, i.tasks)
	return out
}

// Task returns the task with the given id, or a not-found violation.
func (i *Item) Task(id TaskID) (*Task, error) {
	for _, t := range i.tasks {
		if t.id == id {
			return t, nil
		}
	}
	return nil, domain.NotFoundf("task %s not found", id)
}

// AddTask appends a task. Completed items accept no new tasks, and task
// titles must be unique case-insensitively within the item.
func (i *Item) AddTask(t *Task) error {
	if i.IsCompleted() {
		return domain.Statef("cannot add tasks to a completed item")
	}
	for _, existing := range i.tasks {
		if existing.title.EqualFold(t.title) {
			return domain.Conflictf("task with title %q already exists", t.title)
		}
	}
	i.tasks = append(i.tasks, t)
	return nil
}

// RemoveTask removes the task with the given id. Done tasks represent
// completed work and cannot be removed; neither can tasks on a completed
// item.
func (i *Item) RemoveTask(id TaskID) error {
	if i.IsCompleted() {
		return domain.Statef("cannot remove tasks from a completed item")
	}
	for idx, t := range i.tasks {
		if t.id != id {
			continue
		}
		if t.status == TaskDone {
			return domain.Statef("cannot remove a done task")
		}
		i.tasks = append(i.tasks[:idx], i.tasks[idx+1:]...)
		return nil
	}
	return domain.NotFoundf("task %s not found", id)
}

// StartTask starts the given task.
func (i *Item) StartTask(id TaskID) error {
	t, err := i.Task(id)
	if err != nil {
		return err
	}
	return t.Start()
}

// CompleteTask completes the given task. If it was the last open task, the
// item completes itself.
func (i *Item) CompleteTask(id TaskID) error {
	t, err := i.Task(id)
	if err != nil {
		return err
	}
	if err := t.Complete(); err != nil {
		return err
	}
	i.completeIfAllTasksDone()
	return nil
}

// BlockTask blocks the given task.
func (i *Item) BlockTask(id TaskID) error {
	t, err := i.Task(id)
	if err != nil {
		return err
	}
	return t.Block()
}

// UnblockTask unblocks the given task.
func (i *Item) UnblockTask(id TaskID) error {
	t, err := i.Task(id)
	if err != nil {
		return err
	}
	return t.Unblock()
}

// UpdateTaskRemainingHours updates a task's remaining hours. A task driven to
// zero completes, and if it was the last open task the item completes too.
func (i *Item) UpdateTaskRemainingHours(id TaskID, hours Hours) error {
	t, err := i.Task(id)
	if err != nil {
		return err
	}
	if err := t.UpdateRemainingHours(hours); err != nil {
		return err
	}
	i.completeIfAllTasksDone()
	return nil
}

// UpdateRemainingWork replaces the item's remaining work. Reaching zero
// auto-completes the item, which requires every task to be done.
func (i *Item) UpdateRemainingWork(hours Hours) error {
	if i.IsCompleted() && !hours.IsZero() {
		return domain.Statef("a completed item cannot have remaining work")
	}
	if hours.IsZero() {
		return i.Complete()
	}
	i.remainingWork = hours
	return nil
}

// Complete finishes the item, zeroing its remaining work. Every owned task
// must be done; completing an already-completed item is a no-op.
func (i *Item) Complete() error {
	if i.IsCompleted() {
		return nil
	}
	for _, t := range i.tasks {
		if t.status != TaskDone {
			return domain.Statef("all tasks must be done before the item can be completed")
		}
	}
	i.remainingWork = 0
	now := time.Now().UTC()
	i.completedAt = &now
	return nil
}

// completeIfAllTasksDone completes the item when its last open task finishes.
// Items without tasks never complete implicitly.
func (i *Item) completeIfAllTasksDone() {
	if i.IsCompleted() || len(i.tasks) == 0 {
		return
	}
	for _, t := range i.tasks {
		if t.status != TaskDone {
			return
		}
	}
	// All preconditions hold, Complete cannot fail here.
	_ = i.Complete()
}

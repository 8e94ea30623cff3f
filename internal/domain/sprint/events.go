package sprint

import (
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/backlog"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
)

// Created is recorded when a sprint is created.
type Created struct {
	domain.EventMeta
	SprintID ID
	TeamID   team.ID
	Goal     Goal
	Start    time.Time
	End      time.Time
}

// EventName implements domain.Event.
func (Created) EventName() string { return "sprint.created" }

// Started is recorded when a sprint moves from planning to active.
type Started struct {
	domain.EventMeta
	SprintID ID
	At       time.Time
}

// EventName implements domain.Event.
func (Started) EventName() string { return "sprint.started" }

// BacklogItemAdded is recorded when a product backlog item is committed to
// the sprint.
type BacklogItemAdded struct {
	domain.EventMeta
	SprintID      ID
	ItemID        ItemID
	ProductItemID backlog.ItemID
	StoryPoints   StoryPoints
}

// EventName implements domain.Event.
func (BacklogItemAdded) EventName() string { return "sprint.backlog_item_added" }

// Completed is recorded when a sprint finishes. Cancellation records nothing.
type Completed struct {
	domain.EventMeta
	SprintID       ID
	ActualVelocity ActualVelocity
	CompletedItems int
}

// EventName implements domain.Event.
func (Completed) EventName() string { return "sprint.completed" }

package backlog

import (
	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
)

// Created is recorded when a product backlog is created for a team.
type Created struct {
	domain.EventMeta
	BacklogID ID
	TeamID    team.ID
}

// EventName implements domain.Event.
func (Created) EventName() string { return "backlog.created" }

// ItemAdded is recorded when an item is added to the backlog.
type ItemAdded struct {
	domain.EventMeta
	BacklogID ID
	ItemID    ItemID
	Title     Title
	Priority  Priority
}

// EventName implements domain.Event.
func (ItemAdded) EventName() string { return "backlog.item_added" }

// Reordered is recorded once per reorder operation and carries every priority
// change applied.
type Reordered struct {
	domain.EventMeta
	BacklogID ID
	Changes   []PriorityChange
}

// EventName implements domain.Event.
func (Reordered) EventName() string { return "backlog.reordered" }

// ItemRemoved is recorded when an item is removed from the backlog.
type ItemRemoved struct {
	domain.EventMeta
	BacklogID ID
	ItemID    ItemID
}

// EventName implements domain.Event.
func (ItemRemoved) EventName() string { return "backlog.item_removed" }

// Refined is recorded when a refinement session is logged.
type Refined struct {
	domain.EventMeta
	BacklogID ID
	Notes     string
}

// EventName implements domain.Event.
func (Refined) EventName() string { return "backlog.refined" }

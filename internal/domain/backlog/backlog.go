// Package backlog implements the ProductBacklog aggregate: the ordered,
// prioritized list of work items for one team, its owned Item entities, and
// their validated value types.
package backlog

import (
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
)

// PriorityChange pairs an item with its new priority for reorder operations.
type PriorityChange struct {
	ItemID   ItemID
	Priority Priority
}

// ProductBacklog is the aggregate root for a team's backlog. Each team has
// exactly one; the one-backlog-per-team rule is enforced by the application
// layer, which is the only place that sees more than one backlog at a time.
//
// The backlog owns its items: it enforces case-insensitive title uniqueness,
// assigns priorities on insertion, and gates removal on item state.
type ProductBacklog struct {
	id            ID
	teamID        team.ID
	createdAt     time.Time
	lastRefinedAt *time.Time
	notes         string
	items         []*Item
	events        domain.EventLog
}

// Create creates an empty backlog for a team and records a Created event.
func Create(id ID, teamID team.ID, notes string) (*ProductBacklog, error) {
	if id.IsZero() {
		return nil, domain.Validationf("backlog id must not be zero")
	}
	if teamID.IsZero() {
		return nil, domain.Validationf("backlog team id must not be zero")
	}
	b := &ProductBacklog{
		id:        id,
		teamID:    teamID,
		createdAt: time.Now().UTC(),
		notes:     notes,
	}
	b.events.Record(Created{EventMeta: domain.NewEventMeta(), BacklogID: id, TeamID: teamID})
	return b, nil
}

// Rehydrate reconstructs a backlog from persisted state. No events are
// recorded. Intended for repository use only.
func Rehydrate(
	id ID, teamID team.ID, createdAt time.Time, lastRefinedAt *time.Time,
	notes string, items []*Item,
) *ProductBacklog {
	return &ProductBacklog{
		id:            id,
		teamID:        teamID,
		createdAt:     createdAt,
		lastRefinedAt: lastRefinedAt,
		notes:         notes,
		items:         items,
	}
}

func (b *ProductBacklog) ID() ID               { return b.id }
func (b *ProductBacklog) TeamID() team.ID      { return b.teamID }
func (b *ProductBacklog) CreatedAt() time.Time { return b.createdAt }
func (b *ProductBacklog) Notes() string        { return b.notes }

// LastRefinedAt returns the time of the last refinement session, or nil if
// the backlog has never been refined.
func (b *ProductBacklog) LastRefinedAt() *time.Time {
	if b.lastRefinedAt == nil {
		return nil
	}
	t := *b.lastRefinedAt
	return &t
}

// Items returns a copy of the item list in insertion order.
func (b *ProductBacklog) Items() []*Item {
	out := make([]*Item, len(b.items))
	copy(out, b.items)
	return out
}

// Item returns the item with the given id, or a not-found violation.
func (b *ProductBacklog) Item(id ItemID) (*Item, error) {
	for _, it := range b.items {
		if it.id == id {
			return it, nil
		}
	}
	return nil, domain.NotFoundf("item %s not found", id)
}

// AddItem appends an item, assigning it the next priority (highest existing
// priority plus one). Titles must be unique case-insensitively.
func (b *ProductBacklog) AddItem(item *Item) error {
	for _, existing := range b.items {
		if existing.title.EqualFold(item.title) {
			return domain.Conflictf("item with title %q already exists", item.title)
		}
	}

	next, err := NewPriority(b.maxPriority() + 1)
	if err != nil {
		return err
	}
	item.setPriority(next)

	b.items = append(b.items, item)
	b.events.Record(ItemAdded{
		EventMeta: domain.NewEventMeta(),
		BacklogID: b.id,
		ItemID:    item.id,
		Title:     item.title,
		Priority:  next,
	})
	return nil
}

// ReorderItems applies the given priority changes. Every referenced item must
// exist; the whole operation fails before any change is applied otherwise.
// Priorities are set exactly as given, last write wins per item, and no
// renumbering or collision check is performed: duplicate priorities across
// items are permitted.
func (b *ProductBacklog) ReorderItems(changes []PriorityChange) error {
	for _, ch := range changes {
		if _, err := b.Item(ch.ItemID); err != nil {
			return err
		}
	}
	for _, ch := range changes {
		it, _ := b.Item(ch.ItemID)
		it.setPriority(ch.Priority)
	}
	b.events.Record(Reordered{
		EventMeta: domain.NewEventMeta(),
		BacklogID: b.id,
		Changes:   changes,
	})
	return nil
}

// RemoveItem removes the item with the given id. An item that is InProgress
// cannot be removed.
func (b *ProductBacklog) RemoveItem(id ItemID) error {
	for i, it := range b.items {
		if it.id != id {
			continue
		}
		if it.status == StatusInProgress {
			return domain.Statef("cannot remove an item that is in progress")
		}
		b.items = append(b.items[:i], b.items[i+1:]...)
		b.events.Record(ItemRemoved{
			EventMeta: domain.NewEventMeta(),
			BacklogID: b.id,
			ItemID:    id,
		})
		return nil
	}
	return domain.NotFoundf("item %s not found", id)
}

// MarkAsRefined logs a refinement session, updating the refinement timestamp
// and notes.
func (b *ProductBacklog) MarkAsRefined(at time.Time, notes string) {
	t := at.UTC()
	b.lastRefinedAt = &t
	b.notes = notes
	b.events.Record(Refined{
		EventMeta: domain.NewEventMeta(),
		BacklogID: b.id,
		Notes:     notes,
	})
}

// ItemsByStatus returns the items currently in the given status, in insertion
// order.
func (b *ProductBacklog) ItemsByStatus(status Status) []*Item {
	var out []*Item
	for _, it := range b.items {
		if it.status == status {
			out = append(out, it)
		}
	}
	return out
}

// TotalStoryPointsByStatus sums the estimates of items in the given status.
// Unestimated items contribute nothing.
func (b *ProductBacklog) TotalStoryPointsByStatus(status Status) int {
	total := 0
	for _, it := range b.items {
		if it.status == status && it.storyPoints != nil {
			total += it.storyPoints.Points()
		}
	}
	return total
}

// maxPriority returns the highest priority currently assigned, or 0 for an
// empty backlog.
func (b *ProductBacklog) maxPriority() int {
	max := 0
	for _, it := range b.items {
		if it.priority.Value() > max {
			max = it.priority.Value()
		}
	}
	return max
}

// DrainEvents returns and clears the recorded events. Called by the
// persistence collaborator exactly once after a successful save.
func (b *ProductBacklog) DrainEvents() []domain.Event {
	return b.events.Drain()
}

// UncommittedEvents returns a copy of the recorded events without clearing.
func (b *ProductBacklog) UncommittedEvents() []domain.Event {
	return b.events.Uncommitted()
}

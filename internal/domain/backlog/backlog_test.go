package backlog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
)

func newTestBacklog(t *testing.T) *ProductBacklog {
	t.Helper()
	b, err := Create(NewID(), team.NewID(), "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	b.DrainEvents()
	return b
}

func newTestItem(t *testing.T, b *ProductBacklog, title string) *Item {
	t.Helper()
	tt, err := NewTitle(title)
	if err != nil {
		t.Fatalf("NewTitle(%q) error = %v", title, err)
	}
	item, err := NewItem(NewItemID(), b.ID(), tt, "", TypeUserStory, "ann")
	if err != nil {
		t.Fatalf("NewItem() error = %v", err)
	}
	return item
}

func addItem(t *testing.T, b *ProductBacklog, title string) *Item {
	t.Helper()
	item := newTestItem(t, b, title)
	if err := b.AddItem(item); err != nil {
		t.Fatalf("AddItem(%q) error = %v", title, err)
	}
	return item
}

func mustPriority(t *testing.T, v int) Priority {
	t.Helper()
	p, err := NewPriority(v)
	if err != nil {
		t.Fatalf("NewPriority(%d) error = %v", v, err)
	}
	return p
}

func TestCreate_RecordsEvent(t *testing.T) {
	t.Parallel()

	teamID := team.NewID()
	b, err := Create(NewID(), teamID, "initial notes")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	events := b.DrainEvents()
	if len(events) != 1 {
		t.Fatalf("Create recorded %d events, want 1", len(events))
	}
	created, ok := events[0].(Created)
	if !ok {
		t.Fatalf("event = %T, want Created", events[0])
	}
	if created.TeamID != teamID {
		t.Error("Created event should carry the owning team id")
	}
}

func TestAddItem_PriorityAssignment(t *testing.T) {
	t.Parallel()

	b := newTestBacklog(t)

	first := addItem(t, b, "Login flow")
	second := addItem(t, b, "Signup flow")
	third := addItem(t, b, "Password reset")

	for i, item := range []*Item{first, second, third} {
		if item.Priority().Value() != i+1 {
			t.Errorf("item %d priority = %d, want %d", i, item.Priority().Value(), i+1)
		}
	}

	// After reordering item 2 to priority 10, the next insertion gets
	// max(1, 10, 3) + 1 = 11.
	if err := b.ReorderItems([]PriorityChange{{ItemID: second.ID(), Priority: mustPriority(t, 10)}}); err != nil {
		t.Fatalf("ReorderItems() error = %v", err)
	}
	fourth := addItem(t, b, "Profile page")
	if fourth.Priority().Value() != 11 {
		t.Errorf("fourth item priority = %d, want 11", fourth.Priority().Value())
	}
}

func TestAddItem_TitleCollision(t *testing.T) {
	t.Parallel()

	b := newTestBacklog(t)
	addItem(t, b, "Login flow")

	err := b.AddItem(newTestItem(t, b, "LOGIN FLOW"))
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("AddItem(case-insensitive duplicate) error = %v, want ErrConflict", err)
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %q, want substring %q", err, "already exists")
	}
}

func TestReorderItems(t *testing.T) {
	t.Parallel()

	t.Run("absent item fails whole operation", func(t *testing.T) {
		t.Parallel()
		b := newTestBacklog(t)
		item := addItem(t, b, "Login flow")
		b.DrainEvents()

		err := b.ReorderItems([]PriorityChange{
			{ItemID: item.ID(), Priority: mustPriority(t, 5)},
			{ItemID: NewItemID(), Priority: mustPriority(t, 6)},
		})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("ReorderItems(absent id) error = %v, want ErrNotFound", err)
		}
		// No partial application.
		if item.Priority().Value() != 1 {
			t.Errorf("priority after failed reorder = %d, want 1", item.Priority().Value())
		}
		if got := b.DrainEvents(); len(got) != 0 {
			t.Errorf("failed reorder recorded %d events, want 0", len(got))
		}
	})

	t.Run("duplicate priorities are permitted", func(t *testing.T) {
		t.Parallel()
		b := newTestBacklog(t)
		a := addItem(t, b, "Login flow")
		c := addItem(t, b, "Signup flow")
		b.DrainEvents()

		err := b.ReorderItems([]PriorityChange{
			{ItemID: a.ID(), Priority: mustPriority(t, 7)},
			{ItemID: c.ID(), Priority: mustPriority(t, 7)},
		})
		if err != nil {
			t.Fatalf("ReorderItems() error = %v", err)
		}
		if a.Priority().Value() != 7 || c.Priority().Value() != 7 {
			t.Error("both items should hold priority 7 after reorder")
		}

		events := b.DrainEvents()
		if len(events) != 1 {
			t.Fatalf("reorder recorded %d events, want 1", len(events))
		}
		re, ok := events[0].(Reordered)
		if !ok {
			t.Fatalf("event = %T, want Reordered", events[0])
		}
		if len(re.Changes) != 2 {
			t.Errorf("Reordered carries %d changes, want 2", len(re.Changes))
		}
	})
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()

	t.Run("removes and records event", func(t *testing.T) {
		t.Parallel()
		b := newTestBacklog(t)
		item := addItem(t, b, "Login flow")
		b.DrainEvents()

		if err := b.RemoveItem(item.ID()); err != nil {
			t.Fatalf("RemoveItem() error = %v", err)
		}
		if len(b.Items()) != 0 {
			t.Errorf("Items() len = %d, want 0", len(b.Items()))
		}
		events := b.DrainEvents()
		if len(events) != 1 {
			t.Fatalf("RemoveItem recorded %d events, want 1", len(events))
		}
		if _, ok := events[0].(ItemRemoved); !ok {
			t.Errorf("event = %T, want ItemRemoved", events[0])
		}
	})

	t.Run("absent item fails", func(t *testing.T) {
		t.Parallel()
		b := newTestBacklog(t)
		if err := b.RemoveItem(NewItemID()); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("RemoveItem(absent) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("in-progress item cannot be removed", func(t *testing.T) {
		t.Parallel()
		b := newTestBacklog(t)
		item := addItem(t, b, "Login flow")
		points, _ := NewStoryPoints(5)
		item.EstimateStoryPoints(points)
		if err := item.MarkAsInProgress(); err != nil {
			t.Fatalf("MarkAsInProgress() error = %v", err)
		}

		err := b.RemoveItem(item.ID())
		if !errors.Is(err, domain.ErrState) {
			t.Errorf("RemoveItem(in-progress) error = %v, want ErrState", err)
		}
	})
}

func TestMarkAsRefined(t *testing.T) {
	t.Parallel()

	b := newTestBacklog(t)
	if b.LastRefinedAt() != nil {
		t.Error("new backlog LastRefinedAt should be nil")
	}

	at := time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC)
	b.MarkAsRefined(at, "split the epics")

	if got := b.LastRefinedAt(); got == nil || !got.Equal(at) {
		t.Errorf("LastRefinedAt() = %v, want %v", got, at)
	}
	if b.Notes() != "split the epics" {
		t.Errorf("Notes() = %q, want refinement notes", b.Notes())
	}

	events := b.DrainEvents()
	if len(events) != 1 {
		t.Fatalf("MarkAsRefined recorded %d events, want 1", len(events))
	}
	if _, ok := events[0].(Refined); !ok {
		t.Errorf("event = %T, want Refined", events[0])
	}
}

func TestQueries(t *testing.T) {
	t.Parallel()

	b := newTestBacklog(t)
	a := addItem(t, b, "Login flow")
	c := addItem(t, b, "Signup flow")
	addItem(t, b, "Unestimated chore")

	five, _ := NewStoryPoints(5)
	eight, _ := NewStoryPoints(8)
	a.EstimateStoryPoints(five)
	c.EstimateStoryPoints(eight)

	ready := b.ItemsByStatus(StatusReady)
	if len(ready) != 2 {
		t.Fatalf("ItemsByStatus(Ready) len = %d, want 2", len(ready))
	}
	if got := b.TotalStoryPointsByStatus(StatusReady); got != 13 {
		t.Errorf("TotalStoryPointsByStatus(Ready) = %d, want 13", got)
	}
	// The unestimated New item contributes nothing.
	if got := b.TotalStoryPointsByStatus(StatusNew); got != 0 {
		t.Errorf("TotalStoryPointsByStatus(New) = %d, want 0", got)
	}
}

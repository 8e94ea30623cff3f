package backlog

import (
	"github.com/google/uuid"

	"github.com/sprintdeck/scrumcore/internal/domain"
)

// ID uniquely identifies a ProductBacklog aggregate.
type ID uuid.UUID

// NewID generates a random backlog id.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID parses a backlog id from its string form.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, domain.Validationf("backlog id %q is not a valid UUID", s)
	}
	return ID(u), nil
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the id is the zero UUID.
func (id ID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler so ids serialize as their
// canonical string form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// ItemID uniquely identifies a ProductBacklogItem. Sprints reference items by
// this id only; they never hold the item itself.
type ItemID uuid.UUID

// NewItemID generates a random item id.
func NewItemID() ItemID {
	return ItemID(uuid.New())
}

// ParseItemID parses an item id from its string form.
func ParseItemID(s string) (ItemID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ItemID{}, domain.Validationf("backlog item id %q is not a valid UUID", s)
	}
	return ItemID(u), nil
}

func (id ItemID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the id is the zero UUID.
func (id ItemID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler so ids serialize as their
// canonical string form.
func (id ItemID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

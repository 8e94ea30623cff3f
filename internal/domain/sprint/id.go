package sprint

import (
	"github.com/google/uuid"

	"github.com/sprintdeck/scrumcore/internal/domain"
)

// ID uniquely identifies a Sprint aggregate.
type ID uuid.UUID

// NewID generates a random sprint id.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID parses a sprint id from its string form.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, domain.Validationf("sprint id %q is not a valid UUID", s)
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

// ItemID uniquely identifies a sprint backlog item.
type ItemID uuid.UUID

// NewItemID generates a random sprint backlog item id.
func NewItemID() ItemID {
	return ItemID(uuid.New())
}

// ParseItemID parses a sprint backlog item id from its string form.
func ParseItemID(s string) (ItemID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ItemID{}, domain.Validationf("sprint item id %q is not a valid UUID", s)
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

// TaskID uniquely identifies a task within a sprint backlog item.
type TaskID uuid.UUID

// NewTaskID generates a random task id.
func NewTaskID() TaskID {
	return TaskID(uuid.New())
}

// ParseTaskID parses a task id from its string form.
func ParseTaskID(s string) (TaskID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return TaskID{}, domain.Validationf("task id %q is not a valid UUID", s)
	}
	return TaskID(u), nil
}

func (id TaskID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the id is the zero UUID.
func (id TaskID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler so ids serialize as their
// canonical string form.
func (id TaskID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

package team

import (
	"github.com/google/uuid"

	"github.com/sprintdeck/scrumcore/internal/domain"
)

// ID uniquely identifies a Team aggregate. It is a distinct type so that
// identifiers of other aggregates cannot be passed where a team id is
// expected.
type ID uuid.UUID

// NewID generates a random team id.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID parses a team id from its string form.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, domain.Validationf("team id %q is not a valid UUID", s)
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

// MemberID uniquely identifies a Member within a team.
type MemberID uuid.UUID

// NewMemberID generates a random member id.
func NewMemberID() MemberID {
	return MemberID(uuid.New())
}

// ParseMemberID parses a member id from its string form.
func ParseMemberID(s string) (MemberID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return MemberID{}, domain.Validationf("member id %q is not a valid UUID", s)
	}
	return MemberID(u), nil
}

func (id MemberID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the id is the zero UUID.
func (id MemberID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler so ids serialize as their
// canonical string form.
func (id MemberID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

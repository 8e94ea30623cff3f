package team

import (
	"net/mail"
	"strings"

	"github.com/sprintdeck/scrumcore/internal/domain"
)

const (
	nameMinLen = 3
	nameMaxLen = 50

	descriptionMaxLen = 500

	memberNameMinLen = 2
	memberNameMaxLen = 100

	sprintLengthMinWeeks = 1
	sprintLengthMaxWeeks = 4

	velocityMax = 1000
)

// Name is a team's display name, 3-50 characters after trimming.
// Uniqueness across teams is enforced by the application layer, which is the
// only place that can see more than one team at a time.
type Name string

// NewName validates and creates a team name.
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if len(s) < nameMinLen || len(s) > nameMaxLen {
		return "", domain.Validationf("team name must be between %d and %d characters, got %d",
			nameMinLen, nameMaxLen, len(s))
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Description is an optional free-text team description, at most 500
// characters after trimming. The empty string is valid.
type Description string

// NewDescription validates and creates a team description.
func NewDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if len(s) > descriptionMaxLen {
		return "", domain.Validationf("team description must be at most %d characters, got %d",
			descriptionMaxLen, len(s))
	}
	return Description(s), nil
}

func (d Description) String() string { return string(d) }

// SprintLength is the team's iteration length in whole weeks, 1-4.
type SprintLength int

// NewSprintLength validates and creates a sprint length.
func NewSprintLength(weeks int) (SprintLength, error) {
	if weeks < sprintLengthMinWeeks || weeks > sprintLengthMaxWeeks {
		return 0, domain.Validationf("sprint length must be between %d and %d weeks, got %d",
			sprintLengthMinWeeks, sprintLengthMaxWeeks, weeks)
	}
	return SprintLength(weeks), nil
}

// Weeks returns the length in weeks.
func (l SprintLength) Weeks() int { return int(l) }

// Days returns the length in days.
func (l SprintLength) Days() int { return int(l) * 7 }

// Velocity is the team's current velocity in story points per sprint, 0-1000.
type Velocity int

// NewVelocity validates and creates a velocity.
func NewVelocity(points int) (Velocity, error) {
	if points < 0 || points > velocityMax {
		return 0, domain.Validationf("velocity must be between 0 and %d, got %d", velocityMax, points)
	}
	return Velocity(points), nil
}

// Points returns the velocity in story points.
func (v Velocity) Points() int { return int(v) }

// MemberName is a member's display name, 2-100 characters after trimming.
type MemberName string

// NewMemberName validates and creates a member name.
func NewMemberName(s string) (MemberName, error) {
	s = strings.TrimSpace(s)
	if len(s) < memberNameMinLen || len(s) > memberNameMaxLen {
		return "", domain.Validationf("member name must be between %d and %d characters, got %d",
			memberNameMinLen, memberNameMaxLen, len(s))
	}
	return MemberName(s), nil
}

func (n MemberName) String() string { return string(n) }

// Email is an RFC 5322 address, stored lower-cased so that uniqueness checks
// are case-insensitive.
type Email string

// NewEmail validates and creates an email address.
func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return "", domain.Validationf("email %q is not a valid address", s)
	}
	return Email(strings.ToLower(s)), nil
}

func (e Email) String() string { return string(e) }

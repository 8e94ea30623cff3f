package backlog

import (
	"strings"

	"github.com/sprintdeck/scrumcore/internal/domain"
)

const (
	titleMinLen = 3
	titleMaxLen = 200

	descriptionMaxLen = 2000

	acceptanceMinLen = 10
	acceptanceMaxLen = 5000

	priorityMax = 1000
)

// Title is a backlog item's title, 3-200 characters after trimming.
// The owning backlog treats titles as case-insensitively unique.
type Title string

// NewTitle validates and creates an item title.
func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if len(s) < titleMinLen || len(s) > titleMaxLen {
		return "", domain.Validationf("item title must be between %d and %d characters, got %d",
			titleMinLen, titleMaxLen, len(s))
	}
	return Title(s), nil
}

func (t Title) String() string { return string(t) }

// EqualFold reports whether two titles match case-insensitively.
func (t Title) EqualFold(other Title) bool {
	return strings.EqualFold(string(t), string(other))
}

// Description is an item's free-text description, at most 2000 characters
// after trimming. The empty string is valid.
type Description string

// NewDescription validates and creates an item description.
func NewDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if len(s) > descriptionMaxLen {
		return "", domain.Validationf("item description must be at most %d characters, got %d",
			descriptionMaxLen, len(s))
	}
	return Description(s), nil
}

func (d Description) String() string { return string(d) }

// AcceptanceCriteria is either empty (not yet written) or 10-5000 characters
// after trimming.
type AcceptanceCriteria string

// NewAcceptanceCriteria validates and creates acceptance criteria. The empty
// string is explicitly allowed and means "not set".
func NewAcceptanceCriteria(s string) (AcceptanceCriteria, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if len(s) < acceptanceMinLen || len(s) > acceptanceMaxLen {
		return "", domain.Validationf("acceptance criteria must be between %d and %d characters or empty, got %d",
			acceptanceMinLen, acceptanceMaxLen, len(s))
	}
	return AcceptanceCriteria(s), nil
}

func (a AcceptanceCriteria) String() string { return string(a) }

// IsSet reports whether criteria have been written.
func (a AcceptanceCriteria) IsSet() bool { return a != "" }

// fibonacciPoints is the valid story point scale for product backlog items.
var fibonacciPoints = []int{1, 2, 3, 5, 8, 13, 21, 34, 55, 89}

// StoryPoints is a Fibonacci-scale relative-effort estimate. Valid values are
// exactly {1, 2, 3, 5, 8, 13, 21, 34, 55, 89}.
type StoryPoints int

// NewStoryPoints validates and creates a story point estimate.
func NewStoryPoints(points int) (StoryPoints, error) {
	for _, p := range fibonacciPoints {
		if points == p {
			return StoryPoints(points), nil
		}
	}
	return 0, domain.Validationf("story points must be a Fibonacci value (1, 2, 3, 5, 8, 13, 21, 34, 55, 89), got %d", points)
}

// Points returns the numeric value.
func (p StoryPoints) Points() int { return int(p) }

// Complexity classifies an estimate into a coarse effort bucket.
type Complexity string

const (
	ComplexityLow      Complexity = "low"
	ComplexityModerate Complexity = "moderate"
	ComplexityHigh     Complexity = "high"
	ComplexityVeryHigh Complexity = "very_high"
)

// Complexity returns the effort bucket for this estimate: 1-3 low, 5-8
// moderate, 13-21 high, 34+ very high.
func (p StoryPoints) Complexity() Complexity {
	switch {
	case p <= 3:
		return ComplexityLow
	case p <= 8:
		return ComplexityModerate
	case p <= 21:
		return ComplexityHigh
	default:
		return ComplexityVeryHigh
	}
}

// Priority orders items within a backlog, 0-1000. Lower numbers rank earlier;
// the aggregate assigns priorities, items never assign their own.
type Priority int

// NewPriority validates and creates a priority.
func NewPriority(value int) (Priority, error) {
	if value < 0 || value > priorityMax {
		return 0, domain.Validationf("priority must be between 0 and %d, got %d", priorityMax, value)
	}
	return Priority(value), nil
}

// Value returns the numeric priority.
func (p Priority) Value() int { return int(p) }

// Before reports whether p ranks ahead of other.
func (p Priority) Before(other Priority) bool { return p < other }

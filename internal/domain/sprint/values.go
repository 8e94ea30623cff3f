package sprint

import (
	"strings"

	"github.com/sprintdeck/scrumcore/internal/domain"
)

const (
	goalMinLen = 10
	goalMaxLen = 200

	capacityMaxHours = 1000

	velocityMax = 500

	taskTitleMinLen = 3
	taskTitleMaxLen = 100

	taskDescriptionMaxLen = 1000

	estimateMaxHours = 40
)

// Goal is the sprint goal, 10-200 characters after trimming.
type Goal string

// NewGoal validates and creates a sprint goal.
func NewGoal(s string) (Goal, error) {
	s = strings.TrimSpace(s)
	if len(s) < goalMinLen || len(s) > goalMaxLen {
		return "", domain.Validationf("sprint goal must be between %d and %d characters, got %d",
			goalMinLen, goalMaxLen, len(s))
	}
	return Goal(s), nil
}

func (g Goal) String() string { return string(g) }

// Capacity is the team's available working hours for the sprint, 0-1000.
type Capacity int

// NewCapacity validates and creates a sprint capacity.
func NewCapacity(hours int) (Capacity, error) {
	if hours < 0 || hours > capacityMaxHours {
		return 0, domain.Validationf("capacity must be between 0 and %d hours, got %d", capacityMaxHours, hours)
	}
	return Capacity(hours), nil
}

// Hours returns the capacity in hours.
func (c Capacity) Hours() int { return int(c) }

// ActualVelocity is the story points completed in a sprint, 0-500. It is set
// only when the sprint completes.
type ActualVelocity int

// NewActualVelocity validates and creates an actual velocity.
func NewActualVelocity(points int) (ActualVelocity, error) {
	if points < 0 || points > velocityMax {
		return 0, domain.Validationf("actual velocity must be between 0 and %d, got %d", velocityMax, points)
	}
	return ActualVelocity(points), nil
}

// Points returns the velocity in story points.
func (v ActualVelocity) Points() int { return int(v) }

// sprintPoints is the valid story point scale inside a sprint. It is
// deliberately narrower than the product backlog scale: items larger than 34
// points are expected to be split before being committed to a sprint.
var sprintPoints = []int{1, 2, 3, 5, 8, 13, 21, 34}

// StoryPoints is the Fibonacci-scale estimate carried by a sprint backlog
// item. Valid values are exactly {1, 2, 3, 5, 8, 13, 21, 34}.
type StoryPoints int

// NewStoryPoints validates and creates a sprint story point value.
func NewStoryPoints(points int) (StoryPoints, error) {
	for _, p := range sprintPoints {
		if points == p {
			return StoryPoints(points), nil
		}
	}
	return 0, domain.Validationf("story points must be a Fibonacci value (1, 2, 3, 5, 8, 13, 21, 34), got %d", points)
}

// Points returns the numeric value.
func (p StoryPoints) Points() int { return int(p) }

// Hours is a non-negative amount of work, in hours. Fractions are allowed.
type Hours float64

// NewHours validates and creates an hour amount.
func NewHours(h float64) (Hours, error) {
	if h < 0 {
		return 0, domain.Validationf("hours must not be negative, got %v", h)
	}
	return Hours(h), nil
}

// Value returns the numeric hour amount.
func (h Hours) Value() float64 { return float64(h) }

// IsZero reports whether no work remains.
func (h Hours) IsZero() bool { return h == 0 }

// EstimateHours is a task's original estimate, 0-40 hours. Anything above a
// working week should be split into smaller tasks.
type EstimateHours float64

// NewEstimateHours validates and creates a task estimate.
func NewEstimateHours(h float64) (EstimateHours, error) {
	if h < 0 || h > estimateMaxHours {
		return 0, domain.Validationf("task estimate must be between 0 and %d hours, got %v", estimateMaxHours, h)
	}
	return EstimateHours(h), nil
}

// Value returns the numeric hour amount.
func (h EstimateHours) Value() float64 { return float64(h) }

// TaskTitle is a task's title, 3-100 characters after trimming. Titles are
// unique case-insensitively within a sprint backlog item.
type TaskTitle string

// NewTaskTitle validates and creates a task title.
func NewTaskTitle(s string) (TaskTitle, error) {
	s = strings.TrimSpace(s)
	if len(s) < taskTitleMinLen || len(s) > taskTitleMaxLen {
		return "", domain.Validationf("task title must be between %d and %d characters, got %d",
			taskTitleMinLen, taskTitleMaxLen, len(s))
	}
	return TaskTitle(s), nil
}

func (t TaskTitle) String() string { return string(t) }

// EqualFold reports whether two titles match case-insensitively.
func (t TaskTitle) EqualFold(other TaskTitle) bool {
	return strings.EqualFold(string(t), string(other))
}

// TaskDescription is a task's free-text description, at most 1000 characters
// after trimming. The empty string is valid.
type TaskDescription string

// NewTaskDescription validates and creates a task description.
func NewTaskDescription(s string) (TaskDescription, error) {
	s = strings.TrimSpace(s)
	if len(s) > taskDescriptionMaxLen {
		return "", domain.Validationf("task description must be at most %d characters, got %d",
			taskDescriptionMaxLen, len(s))
	}
	return TaskDescription(s), nil
}

func (d TaskDescription) String() string { return string(d) }

// Package sprint implements the Sprint aggregate: a fixed-length iteration
// owning SprintBacklogItem entities, which in turn own Task entities. It
// enforces the sprint lifecycle, capacity and velocity accounting, and the
// completion gating between tasks, items, and the sprint itself.
package sprint

import (
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
)

const (
	minDuration = 7 * 24 * time.Hour
	maxDuration = 28 * 24 * time.Hour
)

// Sprint is the aggregate root for one iteration of a team. It references
// the team and the committed product backlog items by id only.
type Sprint struct {
	id             ID
	teamID         team.ID
	goal           Goal
	startDate      time.Time
	endDate        time.Time
	status         Status
	capacity       Capacity
	actualVelocity *ActualVelocity
	createdAt      time.Time
	actualStart    *time.Time
	actualEnd      *time.Time
	cancelReason   string
	items          []*Item
	events         domain.EventLog
}

// Create creates a sprint in Planning and records a Created event. The end
// date must come after the start date, and the duration must be between 7
// and 28 days inclusive.
func Create(id ID, teamID team.ID, goal Goal, start, end time.Time, capacity Capacity) (*Sprint, error) {
	if id.IsZero() {
		return nil, domain.Validationf("sprint id must not be zero")
	}
	if teamID.IsZero() {
		return nil, domain.Validationf("sprint team id must not be zero")
	}
	if !end.After(start) {
		return nil, domain.Validationf("sprint end date must be after the start date")
	}
	if d := end.Sub(start); d < minDuration || d > maxDuration {
		return nil, domain.Validationf("sprint duration must be between 7 and 28 days, got %.1f", d.Hours()/24)
	}
	s := &Sprint{
		id:        id,
		teamID:    teamID,
		goal:      goal,
		startDate: start.UTC(),
		endDate:   end.UTC(),
		status:    StatusPlanning,
		capacity:  capacity,
		createdAt: time.Now().UTC(),
	}
	s.events.Record(Created{
		EventMeta: domain.NewEventMeta(),
		SprintID:  id,
		TeamID:    teamID,
		Goal:      goal,
		Start:     s.startDate,
		End:       s.endDate,
	})
	return s, nil
}

// Rehydrate reconstructs a sprint from persisted state. No events are
// recorded. Intended for repository use only.
func Rehydrate(
	id ID, teamID team.ID, goal Goal, start, end time.Time,
	status Status, capacity Capacity, actualVelocity *ActualVelocity,
	createdAt time.Time, actualStart, actualEnd *time.Time,
	cancelReason string, items []*Item,
) *Sprint {
	return &Sprint{
		id:             id,
		teamID:         teamID,
		goal:           goal,
		startDate:      start,
		endDate:        end,
		status:         status,
		capacity:       capacity,
		actualVelocity: actualVelocity,
		createdAt:      createdAt,
		actualStart:    actualStart,
		actualEnd:      actualEnd,
		cancelReason:   cancelReason,
		items:          items,
	}
}

func (s *Sprint) ID() ID               { return s.id }
func (s *Sprint) TeamID() team.ID      { return s.teamID }
func (s *Sprint) Goal() Goal           { return s.goal }
func (s *Sprint) StartDate() time.Time { return s.startDate }
func (s *Sprint) EndDate() time.Time   { return s.endDate }
func (s *Sprint) Status() Status       { return s.status }
func (s *Sprint) Capacity() Capacity   { return s.capacity }
func (s *Sprint) CreatedAt() time.Time { return s.createdAt }

// ActualVelocity returns the story points completed, set only when the
// sprint completes, or nil.
func (s *Sprint) ActualVelocity() *ActualVelocity {
	if s.actualVelocity == nil {
		return nil
	}
	v := *s.actualVelocity
	return &v
}

// ActualStart returns the time the sprint was started, or nil.
func (s *Sprint) ActualStart() *time.Time {
	if s.actualStart == nil {
		return nil
	}
	at := *s.actualStart
	return &at
}

// ActualEnd returns the time the sprint was completed or cancelled, or nil.
func (s *Sprint) ActualEnd() *time.Time {
	if s.actualEnd == nil {
		return nil
	}
	at := *s.actualEnd
	return &at
}

// Items returns a copy of the sprint backlog in insertion order.
func (s *Sprint) Items() []*Item {
	out := make([]*Item, len(s.items))
	copy(out, s.items)
	return out
}

// Item returns the sprint backlog item with the given id, or a not-found
// violation.
func (s *Sprint) Item(id ItemID) (*Item, error) {
	for _, it := range s.items {
		if it.id == id {
			return it, nil
		}
	}
	return nil, domain.NotFoundf("sprint item %s not found", id)
}

// Start moves a Planning sprint to Active, stamping the actual start time.
// Sprints with an empty backlog may start.
func (s *Sprint) Start() error {
	switch s.status {
	case StatusPlanning:
	case StatusActive:
		return domain.Statef("sprint already started")
	default:
		return domain.Statef("sprint is not in planning, current status is %s", s.status)
	}
	s.status = StatusActive
	now := time.Now().UTC()
	s.actualStart = &now
	s.events.Record(Started{EventMeta: domain.NewEventMeta(), SprintID: s.id, At: now})
	return nil
}

// AddItem commits a product backlog item to the sprint. Only Planning
// sprints accept items, and a product item may occupy only one slot per
// sprint.
func (s *Sprint) AddItem(item *Item) error {
	if s.status != StatusPlanning {
		return domain.Statef("items can only be added while the sprint is in planning")
	}
	for _, existing := range s.items {
		if existing.productItemID == item.productItemID {
			return domain.Conflictf("product backlog item %s already exists in this sprint", item.productItemID)
		}
	}
	s.items = append(s.items, item)
	s.events.Record(BacklogItemAdded{
		EventMeta:     domain.NewEventMeta(),
		SprintID:      s.id,
		ItemID:        item.id,
		ProductItemID: item.productItemID,
		StoryPoints:   item.storyPoints,
	})
	return nil
}

// RemoveItem removes a sprint backlog item. Only Planning sprints allow
// removal.
func (s *Sprint) RemoveItem(id ItemID) error {
	if s.status != StatusPlanning {
		return domain.Statef("items can only be removed while the sprint is in planning")
	}
	for i, it := range s.items {
		if it.id != id {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		return nil
	}
	return domain.NotFoundf("sprint item %s not found", id)
}

// StartReview moves an Active sprint into Review.
func (s *Sprint) StartReview() error {
	if s.status != StatusActive {
		return domain.Statef("review can only start from an active sprint, current status is %s", s.status)
	}
	s.status = StatusReview
	return nil
}

// StartRetrospective moves a Review sprint into Retrospective.
func (s *Sprint) StartRetrospective() error {
	if s.status != StatusReview {
		return domain.Statef("retrospective can only start from review, current status is %s", s.status)
	}
	s.status = StatusRetrospective
	return nil
}

// Complete finishes an Active sprint, recording the actual velocity and end
// time. Review and retrospective are phases on the way there; a sprint in
// either of those states cannot be completed directly.
func (s *Sprint) Complete(velocity ActualVelocity) error {
	if s.status != StatusActive {
		return domain.Statef("sprint is not active, current status is %s", s.status)
	}
	s.status = StatusCompleted
	s.actualVelocity = &velocity
	now := time.Now().UTC()
	s.actualEnd = &now

	completed := 0
	for _, it := range s.items {
		if it.IsCompleted() {
			completed++
		}
	}
	s.events.Record(Completed{
		EventMeta:      domain.NewEventMeta(),
		SprintID:       s.id,
		ActualVelocity: velocity,
		CompletedItems: completed,
	})
	return nil
}

// Cancel aborts a sprint from any non-terminal state, stamping the actual
// end time. No event is recorded.
func (s *Sprint) Cancel(reason string) error {
	if s.status.IsTerminal() {
		return domain.Statef("a %s sprint cannot be cancelled", s.status)
	}
	s.status = StatusCancelled
	s.cancelReason = reason
	now := time.Now().UTC()
	s.actualEnd = &now
	return nil
}

// CancelReason returns the reason given at cancellation, if any.
func (s *Sprint) CancelReason() string { return s.cancelReason }

// UpdateGoal replaces the sprint goal. Terminal sprints are frozen.
func (s *Sprint) UpdateGoal(goal Goal) error {
	if s.status.IsTerminal() {
		return domain.Statef("cannot update the goal of a %s sprint", s.status)
	}
	s.goal = goal
	return nil
}

// RemainingWork sums the remaining work across the sprint backlog.
func (s *Sprint) RemainingWork() Hours {
	var total Hours
	for _, it := range s.items {
		total += it.remainingWork
	}
	return total
}

// CommittedStoryPoints sums the story points of every committed item.
func (s *Sprint) CommittedStoryPoints() int {
	total := 0
	for _, it := range s.items {
		total += it.storyPoints.Points()
	}
	return total
}

// CompletedStoryPoints sums the story points of completed items.
func (s *Sprint) CompletedStoryPoints() int {
	total := 0
	for _, it := range s.items {
		if it.IsCompleted() {
			total += it.storyPoints.Points()
		}
	}
	return total
}

// ProgressPercentage is completed over committed story points, as a
// percentage. An empty sprint is at zero.
func (s *Sprint) ProgressPercentage() float64 {
	committed := s.CommittedStoryPoints()
	if committed == 0 {
		return 0
	}
	return float64(s.CompletedStoryPoints()) / float64(committed) * 100
}

// DrainEvents returns and clears the recorded events. Called by the
// persistence collaborator exactly once after a successful save.
func (s *Sprint) DrainEvents() []domain.Event {
	return s.events.Drain()
}

// UncommittedEvents returns a copy of the recorded events without clearing.
func (s *Sprint) UncommittedEvents() []domain.Event {
	return s.events.Uncommitted()
}

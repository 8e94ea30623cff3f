package domain

import "time"

// Event is a fact recorded by an aggregate when a mutating operation
// succeeds. Events are immutable records carrying the aggregate id and the
// changed values. Delivery is not the domain model's concern: the persistence
// collaborator drains each aggregate's buffer after a successful save and
// hands the events to a dispatcher.
type Event interface {
	// EventName returns a stable dotted identifier, e.g. "team.created".
	EventName() string

	// OccurredAt returns the time the event was recorded.
	OccurredAt() time.Time
}

// EventMeta provides the OccurredAt half of the Event interface. Concrete
// events embed it and add their own EventName.
type EventMeta struct {
	At time.Time
}

// NewEventMeta stamps an EventMeta with the current UTC time.
func NewEventMeta() EventMeta {
	return EventMeta{At: time.Now().UTC()}
}

// OccurredAt implements Event.
func (m EventMeta) OccurredAt() time.Time {
	return m.At
}

// EventLog is a per-aggregate, append-only buffer of recorded events.
// Aggregates hold it as an unexported field so external callers can only
// reach it through the root's Drain/Uncommitted methods. The zero value is
// ready to use.
type EventLog struct {
	events []Event
}

// Record appends an event to the buffer, preserving occurrence order.
func (l *EventLog) Record(e Event) {
	l.events = append(l.events, e)
}

// Drain returns all buffered events and clears the buffer. The persistence
// collaborator calls this exactly once per successful save.
func (l *EventLog) Drain() []Event {
	out := l.events
	l.events = nil
	return out
}

// Uncommitted returns a copy of the buffered events without clearing them.
func (l *EventLog) Uncommitted() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of buffered events.
func (l *EventLog) Len() int {
	return len(l.events)
}

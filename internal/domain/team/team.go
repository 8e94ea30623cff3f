// Package team implements the Team aggregate: the root entity, its owned
// Member entities, and the validated value types they are built from.
package team

import (
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain"
)

// Team is the aggregate root for a Scrum team. It owns its members and
// enforces membership rules: unique emails, singleton roles, and no new
// members on an inactive team. All mutation goes through the root's methods;
// external collaborators reference a team by ID only.
type Team struct {
	id           ID
	name         Name
	description  Description
	sprintLength SprintLength
	velocity     Velocity
	active       bool
	createdAt    time.Time
	members      []*Member
	events       domain.EventLog
}

// Create creates an active team with zero velocity and records a Created
// event.
func Create(id ID, name Name, description Description, sprintLength SprintLength) (*Team, error) {
	if id.IsZero() {
		return nil, domain.Validationf("team id must not be zero")
	}
	t := &Team{
		id:           id,
		name:         name,
		description:  description,
		sprintLength: sprintLength,
		velocity:     0,
		active:       true,
		createdAt:    time.Now().UTC(),
	}
	t.events.Record(Created{EventMeta: domain.NewEventMeta(), TeamID: id, Name: name})
	return t, nil
}

// Rehydrate reconstructs a team from persisted state. No events are recorded.
// Intended for repository use only.
func Rehydrate(
	id ID, name Name, description Description, sprintLength SprintLength,
	velocity Velocity, active bool, createdAt time.Time, members []*Member,
) *Team {
	return &Team{
		id:           id,
		name:         name,
		description:  description,
		sprintLength: sprintLength,
		velocity:     velocity,
		active:       active,
		createdAt:    createdAt,
		members:      members,
	}
}

func (t *Team) ID() ID                     { return t.id }
func (t *Team) Name() Name                 { return t.name }
func (t *Team) Description() Description   { return t.description }
func (t *Team) SprintLength() SprintLength { return t.sprintLength }
func (t *Team) Velocity() Velocity         { return t.velocity }
func (t *Team) IsActive() bool             { return t.active }
func (t *Team) CreatedAt() time.Time       { return t.createdAt }

// Members returns a copy of the member list in insertion order.
func (t *Team) Members() []*Member {
	out := make([]*Member, len(t.members))
	copy(out, t.members)
	return out
}

// Member returns the member with the given id, or a not-found violation.
func (t *Team) Member(id MemberID) (*Member, error) {
	for _, m := range t.members {
		if m.id == id {
			return m, nil
		}
	}
	return nil, domain.NotFoundf("member %s not found", id)
}

// AddMember appends a member to the team. It fails if the team is inactive,
// if another member already uses the same email, or if the member holds a
// singleton role that is already taken.
func (t *Team) AddMember(m *Member) error {
	if !t.active {
		return domain.Statef("cannot add members to an inactive team")
	}
	for _, existing := range t.members {
		if existing.email == m.email {
			return domain.Conflictf("member with email %q already exists", m.email)
		}
	}
	if m.role.IsSingleton() {
		for _, existing := range t.members {
			if existing.role == m.role {
				return domain.Conflictf("team already has a %s", m.role)
			}
		}
	}
	t.members = append(t.members, m)
	t.events.Record(MemberAdded{
		EventMeta: domain.NewEventMeta(),
		TeamID:    t.id,
		MemberID:  m.id,
		Email:     m.email,
		Role:      m.role,
	})
	return nil
}

// RemoveMember removes the member with the given id. There is deliberately no
// guard against removing the last Product Owner or Scrum Master; singleton
// enforcement applies on add only.
func (t *Team) RemoveMember(id MemberID) error {
	for i, m := range t.members {
		if m.id == id {
			t.members = append(t.members[:i], t.members[i+1:]...)
			t.events.Record(MemberRemoved{
				EventMeta: domain.NewEventMeta(),
				TeamID:    t.id,
				MemberID:  id,
			})
			return nil
		}
	}
	return domain.NotFoundf("member %s not found", id)
}

// UpdateVelocity replaces the team's current velocity and records a
// VelocityUpdated event carrying both values.
func (t *Team) UpdateVelocity(v Velocity) {
	old := t.velocity
	t.velocity = v
	t.events.Record(VelocityUpdated{
		EventMeta: domain.NewEventMeta(),
		TeamID:    t.id,
		Old:       old,
		New:       v,
	})
}

// UpdateInfo replaces the team's name, description and sprint length.
func (t *Team) UpdateInfo(name Name, description Description, sprintLength SprintLength) {
	t.name = name
	t.description = description
	t.sprintLength = sprintLength
}

// Deactivate marks the team inactive. Deactivating an already-inactive team
// is a no-op: the Deactivated event is recorded at most once per transition.
func (t *Team) Deactivate(reason string) {
	if !t.active {
		return
	}
	t.active = false
	t.events.Record(Deactivated{
		EventMeta: domain.NewEventMeta(),
		TeamID:    t.id,
		Reason:    reason,
	})
}

// Reactivate marks the team active again. Idempotent; records nothing.
func (t *Team) Reactivate() {
	t.active = true
}

// DrainEvents returns and clears the recorded events. Called by the
// persistence collaborator exactly once after a successful save.
func (t *Team) DrainEvents() []domain.Event {
	return t.events.Drain()
}

// UncommittedEvents returns a copy of the recorded events without clearing.
func (t *Team) UncommittedEvents() []domain.Event {
	return t.events.Uncommitted()
}

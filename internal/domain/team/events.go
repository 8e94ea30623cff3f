package team

import "github.com/sprintdeck/scrumcore/internal/domain"

// Created is recorded when a team is created.
type Created struct {
	domain.EventMeta
	TeamID ID
	Name   Name
}

// EventName implements domain.Event.
func (Created) EventName() string { return "team.created" }

// MemberAdded is recorded when a member joins a team.
type MemberAdded struct {
	domain.EventMeta
	TeamID   ID
	MemberID MemberID
	Email    Email
	Role     Role
}

// EventName implements domain.Event.
func (MemberAdded) EventName() string { return "team.member_added" }

// MemberRemoved is recorded when a member leaves a team.
type MemberRemoved struct {
	domain.EventMeta
	TeamID   ID
	MemberID MemberID
}

// EventName implements domain.Event.
func (MemberRemoved) EventName() string { return "team.member_removed" }

// VelocityUpdated is recorded when a team's current velocity is replaced.
type VelocityUpdated struct {
	domain.EventMeta
	TeamID ID
	Old    Velocity
	New    Velocity
}

// EventName implements domain.Event.
func (VelocityUpdated) EventName() string { return "team.velocity_updated" }

// Deactivated is recorded the first time a team is deactivated.
// Re-deactivating an inactive team is a no-op and records nothing.
type Deactivated struct {
	domain.EventMeta
	TeamID ID
	Reason string
}

// EventName implements domain.Event.
func (Deactivated) EventName() string { return "team.deactivated" }

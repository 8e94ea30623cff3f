package team

import (
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain"
)

// Member is a user belonging to a team. Members are owned by the Team
// aggregate: they are added and removed only through the root, and the root
// enforces email uniqueness and the singleton-role rules.
type Member struct {
	id        MemberID
	teamID    ID
	name      MemberName
	email     Email
	role      Role
	active    bool
	lastLogin *time.Time
	createdAt time.Time
}

// NewMember creates an active member. The id and teamID must be non-zero and
// the role must be a defined constant.
func NewMember(id MemberID, teamID ID, name MemberName, email Email, role Role) (*Member, error) {
	if id.IsZero() {
		return nil, domain.Validationf("member id must not be zero")
	}
	if teamID.IsZero() {
		return nil, domain.Validationf("member team id must not be zero")
	}
	if !role.IsValid() {
		return nil, domain.Validationf("role %q is not valid", role)
	}
	return &Member{
		id:        id,
		teamID:    teamID,
		name:      name,
		email:     email,
		role:      role,
		active:    true,
		createdAt: time.Now().UTC(),
	}, nil
}

// RehydrateMember reconstructs a member from persisted state without
// validation side effects. Intended for repository use only.
func RehydrateMember(
	id MemberID, teamID ID, name MemberName, email Email, role Role,
	active bool, lastLogin *time.Time, createdAt time.Time,
) *Member {
	return &Member{
		id:        id,
		teamID:    teamID,
		name:      name,
		email:     email,
		role:      role,
		active:    active,
		lastLogin: lastLogin,
		createdAt: createdAt,
	}
}

func (m *Member) ID() MemberID     { return m.id }
func (m *Member) TeamID() ID       { return m.teamID }
func (m *Member) Name() MemberName { return m.name }
func (m *Member) Email() Email     { return m.email }
func (m *Member) Role() Role       { return m.role }
func (m *Member) IsActive() bool   { return m.active }

// LastLogin returns the most recent login time, or nil if the member has
// never logged in.
func (m *Member) LastLogin() *time.Time {
	if m.lastLogin == nil {
		return nil
	}
	t := *m.lastLogin
	return &t
}

func (m *Member) CreatedAt() time.Time { return m.createdAt }

// RecordLogin stamps the member's last-login time.
func (m *Member) RecordLogin(at time.Time) {
	t := at.UTC()
	m.lastLogin = &t
}

package team

import "github.com/sprintdeck/scrumcore/internal/domain"

// Role is a member's Scrum role. Product Owner and Scrum Master are singleton
// roles: at most one active member of a team may hold each at a time.
type Role string

const (
	RoleProductOwner Role = "product_owner"
	RoleScrumMaster  Role = "scrum_master"
	RoleDeveloper    Role = "developer"
)

// NewRole validates and creates a role from its string form.
func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", domain.Validationf("role must be one of: product_owner, scrum_master, developer; got %q", s)
	}
	return r, nil
}

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleProductOwner, RoleScrumMaster, RoleDeveloper:
		return true
	default:
		return false
	}
}

// IsSingleton reports whether at most one member may hold this role.
func (r Role) IsSingleton() bool {
	return r == RoleProductOwner || r == RoleScrumMaster
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

package ports

import (
	"context"

	"github.com/sprintdeck/scrumcore/internal/domain/backlog"
	"github.com/sprintdeck/scrumcore/internal/domain/sprint"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
)

// TeamRepository persists Team aggregates. An aggregate is loaded in full
// (root plus members) and saved atomically; the aggregate is the unit of
// consistency. Save never drains the aggregate's events, that is the calling
// service's job after a successful save.
type TeamRepository interface {
	// Get returns the team with the given id.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id team.ID) (*team.Team, error)

	// GetByName returns the team with the given name.
	// Returns domain.ErrNotFound if it does not exist.
	GetByName(ctx context.Context, name team.Name) (*team.Team, error)

	// List returns all teams, members included, ordered by creation time.
	List(ctx context.Context) ([]*team.Team, error)

	// Save upserts the whole aggregate in one transaction.
	Save(ctx context.Context, t *team.Team) error
}

// BacklogRepository persists ProductBacklog aggregates. Each team has at most
// one backlog; the one-backlog-per-team rule is enforced through GetByTeam.
type BacklogRepository interface {
	// Get returns the backlog with the given id, items included.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id backlog.ID) (*backlog.ProductBacklog, error)

	// GetByTeam returns the backlog owned by the given team.
	// Returns domain.ErrNotFound if the team has no backlog.
	GetByTeam(ctx context.Context, teamID team.ID) (*backlog.ProductBacklog, error)

	// Save upserts the whole aggregate in one transaction.
	Save(ctx context.Context, b *backlog.ProductBacklog) error
}

// SprintRepository persists Sprint aggregates, including their items and
// tasks.
type SprintRepository interface {
	// Get returns the sprint with the given id, items and tasks included.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id sprint.ID) (*sprint.Sprint, error)

	// ListByTeam returns the given team's sprints ordered by start date.
	ListByTeam(ctx context.Context, teamID team.ID) ([]*sprint.Sprint, error)

	// Save upserts the whole aggregate in one transaction.
	Save(ctx context.Context, s *sprint.Sprint) error
}

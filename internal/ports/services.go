package ports

import (
	"context"
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain/backlog"
	"github.com/sprintdeck/scrumcore/internal/domain/sprint"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
)

// CreateTeamInput carries the raw fields for creating a team. Value
// validation happens in the application layer when the fields are converted
// to domain value types.
type CreateTeamInput struct {
	Name              string
	Description       string
	SprintLengthWeeks int
}

// UpdateTeamInput carries the raw fields for replacing a team's metadata.
type UpdateTeamInput struct {
	Name              string
	Description       string
	SprintLengthWeeks int
}

// AddMemberInput carries the raw fields for adding a team member.
type AddMemberInput struct {
	Name  string
	Email string
	Role  string
}

// TeamService defines the service port for Team aggregate operations.
// Implemented by the application layer; called by inbound adapters.
// All failures surface as domain.RuleViolation values unwrapping to the
// domain sentinel errors.
type TeamService interface {
	// CreateTeam creates a team. Team names are unique across the system;
	// returns domain.ErrConflict if the name is taken.
	CreateTeam(ctx context.Context, in CreateTeamInput) (*team.Team, error)

	// GetTeam returns a team by its id string.
	GetTeam(ctx context.Context, id string) (*team.Team, error)

	// ListTeams returns all teams.
	ListTeams(ctx context.Context) ([]*team.Team, error)

	// UpdateTeamInfo replaces a team's name, description and sprint length.
	UpdateTeamInfo(ctx context.Context, id string, in UpdateTeamInput) (*team.Team, error)

	// AddMember adds a member to a team, enforcing email uniqueness and the
	// singleton-role rules.
	AddMember(ctx context.Context, teamID string, in AddMemberInput) (*team.Team, error)

	// RemoveMember removes a member from a team.
	RemoveMember(ctx context.Context, teamID, memberID string) error

	// UpdateVelocity replaces a team's current velocity.
	UpdateVelocity(ctx context.Context, teamID string, points int) (*team.Team, error)

	// DeactivateTeam marks a team inactive. Idempotent.
	DeactivateTeam(ctx context.Context, id, reason string) error

	// ReactivateTeam marks a team active again. Idempotent.
	ReactivateTeam(ctx context.Context, id string) error
}

// AddBacklogItemInput carries the raw fields for adding a backlog item.
type AddBacklogItemInput struct {
	Title       string
	Description string
	Type        string
	CreatedBy   string
}

// UpdateBacklogItemInput carries optional content updates for a backlog
// item. Nil fields are left unchanged.
type UpdateBacklogItemInput struct {
	Title       *string
	Description *string
}

// ItemPriority pairs a backlog item id with its new priority for reorder
// requests.
type ItemPriority struct {
	ItemID   string
	Priority int
}

// BacklogService defines the service port for ProductBacklog aggregate
// operations, including the lifecycle of the items the backlog owns.
type BacklogService interface {
	// CreateBacklog creates the backlog for a team. Each team has exactly
	// one; returns domain.ErrConflict if the team already has a backlog and
	// domain.ErrNotFound if the team does not exist.
	CreateBacklog(ctx context.Context, teamID, notes string) (*backlog.ProductBacklog, error)

	// GetBacklog returns a backlog by its id string.
	GetBacklog(ctx context.Context, id string) (*backlog.ProductBacklog, error)

	// GetTeamBacklog returns the backlog owned by the given team.
	GetTeamBacklog(ctx context.Context, teamID string) (*backlog.ProductBacklog, error)

	// AddItem adds a new item to a backlog, assigning it the next priority.
	AddItem(ctx context.Context, backlogID string, in AddBacklogItemInput) (*backlog.ProductBacklog, error)

	// RemoveItem removes an item from a backlog. In-progress items cannot be
	// removed.
	RemoveItem(ctx context.Context, backlogID, itemID string) error

	// ReorderItems applies the given priorities. All referenced items must
	// exist; the operation is all-or-nothing.
	ReorderItems(ctx context.Context, backlogID string, changes []ItemPriority) (*backlog.ProductBacklog, error)

	// MarkAsRefined logs a refinement session on the backlog.
	MarkAsRefined(ctx context.Context, backlogID, notes string) (*backlog.ProductBacklog, error)

	// EstimateItem sets an item's story points, promoting a New item to
	// Ready.
	EstimateItem(ctx context.Context, backlogID, itemID string, points int) (*backlog.ProductBacklog, error)

	// SetAcceptanceCriteria replaces an item's acceptance criteria. The
	// empty string clears them.
	SetAcceptanceCriteria(ctx context.Context, backlogID, itemID, criteria string) (*backlog.ProductBacklog, error)

	// UpdateItem updates an item's title and/or description. Done items are
	// frozen.
	UpdateItem(ctx context.Context, backlogID, itemID string, in UpdateBacklogItemInput) (*backlog.ProductBacklog, error)

	// StartItem moves a Ready item to InProgress.
	StartItem(ctx context.Context, backlogID, itemID string) (*backlog.ProductBacklog, error)

	// CompleteItem moves an InProgress item to Done.
	CompleteItem(ctx context.Context, backlogID, itemID string) (*backlog.ProductBacklog, error)

	// ResetItem returns an item to Ready.
	ResetItem(ctx context.Context, backlogID, itemID string) (*backlog.ProductBacklog, error)
}

// CreateSprintInput carries the raw fields for creating a sprint.
type CreateSprintInput struct {
	TeamID        string
	Goal          string
	StartDate     time.Time
	EndDate       time.Time
	CapacityHours int
}

// AddSprintItemInput carries the raw fields for committing a product backlog
// item to a sprint.
type AddSprintItemInput struct {
	ProductItemID string
	StoryPoints   int
	EstimateHours float64
}

// AddTaskInput carries the raw fields for adding a task to a sprint backlog
// item.
type AddTaskInput struct {
	Title         string
	Description   string
	EstimateHours float64
}

// SprintProgress is a read model of a sprint's derived calculations.
type SprintProgress struct {
	SprintID             string
	Status               string
	RemainingWorkHours   float64
	CommittedStoryPoints int
	CompletedStoryPoints int
	ProgressPercentage   float64
}

// SprintService defines the service port for Sprint aggregate operations,
// including the sprint backlog items and tasks the sprint owns.
type SprintService interface {
	// CreateSprint creates a sprint in planning for an existing team.
	CreateSprint(ctx context.Context, in CreateSprintInput) (*sprint.Sprint, error)

	// GetSprint returns a sprint by its id string.
	GetSprint(ctx context.Context, id string) (*sprint.Sprint, error)

	// ListTeamSprints returns the given team's sprints.
	ListTeamSprints(ctx context.Context, teamID string) ([]*sprint.Sprint, error)

	// UpdateGoal replaces the sprint goal.
	UpdateGoal(ctx context.Context, sprintID, goal string) (*sprint.Sprint, error)

	// StartSprint moves a planning sprint to active.
	StartSprint(ctx context.Context, sprintID string) (*sprint.Sprint, error)

	// StartReview moves an active sprint to review.
	StartReview(ctx context.Context, sprintID string) (*sprint.Sprint, error)

	// StartRetrospective moves a review sprint to retrospective.
	StartRetrospective(ctx context.Context, sprintID string) (*sprint.Sprint, error)

	// CompleteSprint completes an active sprint with its actual velocity.
	CompleteSprint(ctx context.Context, sprintID string, actualVelocity int) (*sprint.Sprint, error)

	// CancelSprint aborts a non-terminal sprint.
	CancelSprint(ctx context.Context, sprintID, reason string) (*sprint.Sprint, error)

	// AddItem commits a ready product backlog item to a planning sprint. The
	// referenced item must exist in the team's backlog and satisfy its
	// readiness predicate.
	AddItem(ctx context.Context, sprintID string, in AddSprintItemInput) (*sprint.Sprint, error)

	// RemoveItem removes an item from a planning sprint.
	RemoveItem(ctx context.Context, sprintID, itemID string) error

	// AddTask adds a task to a sprint backlog item.
	AddTask(ctx context.Context, sprintID, itemID string, in AddTaskInput) (*sprint.Sprint, error)

	// RemoveTask removes a task from a sprint backlog item. Done tasks
	// cannot be removed.
	RemoveTask(ctx context.Context, sprintID, itemID, taskID string) error

	// StartTask moves a todo task to in progress.
	StartTask(ctx context.Context, sprintID, itemID, taskID string) (*sprint.Sprint, error)

	// CompleteTask finishes a task; the owning item completes with its last
	// task.
	CompleteTask(ctx context.Context, sprintID, itemID, taskID string) (*sprint.Sprint, error)

	// BlockTask marks a task blocked.
	BlockTask(ctx context.Context, sprintID, itemID, taskID string) (*sprint.Sprint, error)

	// UnblockTask returns a blocked task to where it was.
	UnblockTask(ctx context.Context, sprintID, itemID, taskID string) (*sprint.Sprint, error)

	// UpdateTaskRemainingHours replaces a task's remaining hours; zero
	// completes the task.
	UpdateTaskRemainingHours(ctx context.Context, sprintID, itemID, taskID string, hours float64) (*sprint.Sprint, error)

	// UpdateItemRemainingWork replaces an item's remaining work; zero
	// completes the item.
	UpdateItemRemainingWork(ctx context.Context, sprintID, itemID string, hours float64) (*sprint.Sprint, error)

	// Progress returns the sprint's derived calculations.
	Progress(ctx context.Context, sprintID string) (*SprintProgress, error)
}

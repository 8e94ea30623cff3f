package dto

import (
	"sort"
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain/backlog"
	"github.com/sprintdeck/scrumcore/internal/domain/sprint"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
	"github.com/sprintdeck/scrumcore/internal/ports"
)

// TeamResponse represents a team aggregate in HTTP responses.
type TeamResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description,omitempty"`
	SprintLengthWeeks int              `json:"sprint_length_weeks"`
	Velocity          int              `json:"velocity"`
	Active            bool             `json:"active"`
	CreatedAt         time.Time        `json:"created_at"`
	Members           []MemberResponse `json:"members"`
}

// MemberResponse represents a team member in HTTP responses.
type MemberResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Active    bool       `json:"active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TeamListResponse represents a list of teams.
type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
}

// ToTeamResponse converts a team aggregate to its HTTP representation.
func ToTeamResponse(t *team.Team) TeamResponse {
	members := make([]MemberResponse, 0, len(t.Members()))
	for _, m := range t.Members() {
		members = append(members, MemberResponse{
			ID:        m.ID().String(),
			Name:      m.Name().String(),
			Email:     m.Email().String(),
			Role:      m.Role().String(),
			Active:    m.IsActive(),
			LastLogin: m.LastLogin(),
			CreatedAt: m.CreatedAt(),
		})
	}
	return TeamResponse{
		ID:                t.ID().String(),
		Name:              t.Name().String(),
		Description:       t.Description().String(),
		SprintLengthWeeks: t.SprintLength().Weeks(),
		Velocity:          t.Velocity().Points(),
		Active:            t.IsActive(),
		CreatedAt:         t.CreatedAt(),
		Members:           members,
	}
}

// ToTeamListResponse converts a slice of teams to its HTTP representation.
func ToTeamListResponse(teams []*team.Team) TeamListResponse {
	out := make([]TeamResponse, len(teams))
	for i, t := range teams {
		out[i] = ToTeamResponse(t)
	}
	return TeamListResponse{Teams: out}
}

// BacklogResponse represents a product backlog aggregate in HTTP responses.
// Items are ordered by priority.
type BacklogResponse struct {
	ID            string                `json:"id"`
	TeamID        string                `json:"team_id"`
	CreatedAt     time.Time             `json:"created_at"`
	LastRefinedAt *time.Time            `json:"last_refined_at,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	Items         []BacklogItemResponse `json:"items"`
}

// BacklogItemResponse represents a single backlog item.
type BacklogItemResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	Type               string    `json:"type"`
	Priority           int       `json:"priority"`
	StoryPoints        *int      `json:"story_points,omitempty"`
	Status             string    `json:"status"`
	AcceptanceCriteria string    `json:"acceptance_criteria,omitempty"`
	ReadyForSprint     bool      `json:"ready_for_sprint"`
	CreatedBy          string    `json:"created_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ToBacklogResponse converts a backlog aggregate to its HTTP representation.
func ToBacklogResponse(b *backlog.ProductBacklog) BacklogResponse {
	items := b.Items()
	out := make([]BacklogItemResponse, len(items))
	for i, it := range items {
		out[i] = toBacklogItemResponse(it)
	}
	// Present items in priority order regardless of insertion order.
	sort.Slice(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return BacklogResponse{
		ID:            b.ID().String(),
		TeamID:        b.TeamID().String(),
		CreatedAt:     b.CreatedAt(),
		LastRefinedAt: b.LastRefinedAt(),
		Notes:         b.Notes(),
		Items:         out,
	}
}

func toBacklogItemResponse(it *backlog.Item) BacklogItemResponse {
	var points *int
	if sp := it.StoryPoints(); sp != nil {
		p := sp.Points()
		points = &p
	}
	return BacklogItemResponse{
		ID:                 it.ID().String(),
		Title:              it.Title().String(),
		Description:        it.Description().String(),
		Type:               it.Type().String(),
		Priority:           it.Priority().Value(),
		StoryPoints:        points,
		Status:             it.Status().String(),
		AcceptanceCriteria: it.AcceptanceCriteria().String(),
		ReadyForSprint:     it.IsReadyForSprint(),
		CreatedBy:          it.CreatedBy(),
		CreatedAt:          it.CreatedAt(),
		UpdatedAt:          it.UpdatedAt(),
	}
}

// SprintResponse represents a sprint aggregate in HTTP responses.
type SprintResponse struct {
	ID                   string               `json:"id"`
	TeamID               string               `json:"team_id"`
	Goal                 string               `json:"goal"`
	StartDate            time.Time            `json:"start_date"`
	EndDate              time.Time            `json:"end_date"`
	Status               string               `json:"status"`
	CapacityHours        int                  `json:"capacity_hours"`
	ActualVelocity       *int                 `json:"actual_velocity,omitempty"`
	ActualStart          *time.Time           `json:"actual_start,omitempty"`
	ActualEnd            *time.Time           `json:"actual_end,omitempty"`
	CancelReason         string               `json:"cancel_reason,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	CommittedStoryPoints int                  `json:"committed_story_points"`
	Items                []SprintItemResponse `json:"items"`
}

// SprintItemResponse represents a sprint backlog item.
type SprintItemResponse struct {
	ID               string         `json:"id"`
	ProductItemID    string         `json:"product_item_id"`
	StoryPoints      int            `json:"story_points"`
	OriginalEstimate float64        `json:"original_estimate_hours"`
	RemainingWork    float64        `json:"remaining_work_hours"`
	Completed        bool           `json:"completed"`
	AddedAt          time.Time      `json:"added_at"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	Tasks            []TaskResponse `json:"tasks"`
}

// TaskResponse represents a task within a sprint backlog item.
type TaskResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Status           string     `json:"status"`
	OriginalEstimate float64    `json:"original_estimate_hours"`
	RemainingHours   float64    `json:"remaining_hours"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// SprintListResponse represents a list of sprints.
type SprintListResponse struct {
	Sprints []SprintResponse `json:"sprints"`
}

// ToSprintResponse converts a sprint aggregate to its HTTP representation.
func ToSprintResponse(s *sprint.Sprint) SprintResponse {
	var velocity *int
	if v := s.ActualVelocity(); v != nil {
		p := v.Points()
		velocity = &p
	}
	items := s.Items()
	out := make([]SprintItemResponse, len(items))
	for i, it := range items {
		out[i] = toSprintItemResponse(it)
	}
	return SprintResponse{
		ID:                   s.ID().String(),
		TeamID:               s.TeamID().String(),
		Goal:                 s.Goal().String(),
		StartDate:            s.StartDate(),
		EndDate:              s.EndDate(),
		Status:               s.Status().String(),
		CapacityHours:        s.Capacity().Hours(),
		ActualVelocity:       velocity,
		ActualStart:          s.ActualStart(),
		ActualEnd:            s.ActualEnd(),
		CancelReason:         s.CancelReason(),
		CreatedAt:            s.CreatedAt(),
		CommittedStoryPoints: s.CommittedStoryPoints(),
		Items:                out,
	}
}

func toSprintItemResponse(it *sprint.Item) SprintItemResponse {
	tasks := it.Tasks()
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = TaskResponse{
			ID:               t.ID().String(),
			Title:            t.Title().String(),
			Description:      t.Description().String(),
			Status:           t.Status().String(),
			OriginalEstimate: t.OriginalEstimate().Value(),
			RemainingHours:   t.RemainingHours().Value(),
			StartedAt:        t.StartedAt(),
			CompletedAt:      t.CompletedAt(),
			CreatedAt:        t.CreatedAt(),
		}
	}
	return SprintItemResponse{
		ID:               it.ID().String(),
		ProductItemID:    it.ProductItemID().String(),
		StoryPoints:      it.StoryPoints().Points(),
		OriginalEstimate: it.OriginalEstimate().Value(),
		RemainingWork:    it.RemainingWork().Value(),
		Completed:        it.IsCompleted(),
		AddedAt:          it.AddedAt(),
		CompletedAt:      it.CompletedAt(),
		Tasks:            out,
	}
}

// ToSprintListResponse converts a slice of sprints to its HTTP representation.
func ToSprintListResponse(sprints []*sprint.Sprint) SprintListResponse {
	out := make([]SprintResponse, len(sprints))
	for i, s := range sprints {
		out[i] = ToSprintResponse(s)
	}
	return SprintListResponse{Sprints: out}
}

// ProgressResponse represents a sprint's derived calculations.
type ProgressResponse struct {
	SprintID             string  `json:"sprint_id"`
	Status               string  `json:"status"`
	RemainingWorkHours   float64 `json:"remaining_work_hours"`
	CommittedStoryPoints int     `json:"committed_story_points"`
	CompletedStoryPoints int     `json:"completed_story_points"`
	ProgressPercentage   float64 `json:"progress_percentage"`
}

// ToProgressResponse converts the service read model to its HTTP form.
func ToProgressResponse(p *ports.SprintProgress) ProgressResponse {
	return ProgressResponse{
		SprintID:             p.SprintID,
		Status:               p.Status,
		RemainingWorkHours:   p.RemainingWorkHours,
		CommittedStoryPoints: p.CommittedStoryPoints,
		CompletedStoryPoints: p.CompletedStoryPoints,
		ProgressPercentage:   p.ProgressPercentage,
	}
}

package dto

import (
	"strings"
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/ports"
)

// Request DTOs check structural validity only: required fields are present
// and references parse. Value rules (lengths, scales, state machines) belong
// to the domain and surface through the service as RuleViolations.

// CreateTeamRequest is the JSON body for creating a team.
type CreateTeamRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	SprintLengthWeeks int    `json:"sprint_length_weeks"`
}

func (r *CreateTeamRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.Validationf("name is required")
	}
	if r.SprintLengthWeeks == 0 {
		return domain.Validationf("sprint_length_weeks is required")
	}
	return nil
}

// ToInput converts the request to the service input.
func (r *CreateTeamRequest) ToInput() ports.CreateTeamInput {
	return ports.CreateTeamInput{
		Name:              r.Name,
		Description:       r.Description,
		SprintLengthWeeks: r.SprintLengthWeeks,
	}
}

// UpdateTeamRequest is the JSON body for replacing a team's metadata.
type UpdateTeamRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	SprintLengthWeeks int    `json:"sprint_length_weeks"`
}

func (r *UpdateTeamRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.Validationf("name is required")
	}
	if r.SprintLengthWeeks == 0 {
		return domain.Validationf("sprint_length_weeks is required")
	}
	return nil
}

func (r *UpdateTeamRequest) ToInput() ports.UpdateTeamInput {
	return ports.UpdateTeamInput{
		Name:              r.Name,
		Description:       r.Description,
		SprintLengthWeeks: r.SprintLengthWeeks,
	}
}

// AddMemberRequest is the JSON body for adding a team member.
type AddMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r *AddMemberRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.Validationf("name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return domain.Validationf("email is required")
	}
	if strings.TrimSpace(r.Role) == "" {
		return domain.Validationf("role is required")
	}
	return nil
}

func (r *AddMemberRequest) ToInput() ports.AddMemberInput {
	return ports.AddMemberInput{Name: r.Name, Email: r.Email, Role: r.Role}
}

// UpdateVelocityRequest is the JSON body for replacing a team's velocity.
type UpdateVelocityRequest struct {
	Velocity int `json:"velocity"`
}

func (r *UpdateVelocityRequest) Validate() error { return nil }

// DeactivateTeamRequest is the JSON body for deactivating a team.
type DeactivateTeamRequest struct {
	Reason string `json:"reason"`
}

func (r *DeactivateTeamRequest) Validate() error { return nil }

// CreateBacklogRequest is the JSON body for creating a team's backlog.
type CreateBacklogRequest struct {
	TeamID string `json:"team_id"`
	Notes  string `json:"notes"`
}

func (r *CreateBacklogRequest) Validate() error {
	if strings.TrimSpace(r.TeamID) == "" {
		return domain.Validationf("team_id is required")
	}
	return nil
}

// AddBacklogItemRequest is the JSON body for adding a backlog item.
type AddBacklogItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	CreatedBy   string `json:"created_by"`
}

func (r *AddBacklogItemRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return domain.Validationf("title is required")
	}
	if strings.TrimSpace(r.Type) == "" {
		return domain.Validationf("type is required")
	}
	if strings.TrimSpace(r.CreatedBy) == "" {
		return domain.Validationf("created_by is required")
	}
	return nil
}

func (r *AddBacklogItemRequest) ToInput() ports.AddBacklogItemInput {
	return ports.AddBacklogItemInput{
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		CreatedBy:   r.CreatedBy,
	}
}

// UpdateBacklogItemRequest is the JSON body for updating an item's content.
// Nil fields are left unchanged.
type UpdateBacklogItemRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateBacklogItemRequest) Validate() error {
	if r.Title == nil && r.Description == nil {
		return domain.Validationf("at least one of title or description is required")
	}
	return nil
}

func (r *UpdateBacklogItemRequest) ToInput() ports.UpdateBacklogItemInput {
	return ports.UpdateBacklogItemInput{Title: r.Title, Description: r.Description}
}

// EstimateItemRequest is the JSON body for estimating a backlog item.
type EstimateItemRequest struct {
	StoryPoints int `json:"story_points"`
}

func (r *EstimateItemRequest) Validate() error {
	if r.StoryPoints == 0 {
		return domain.Validationf("story_points is required")
	}
	return nil
}

// AcceptanceCriteriaRequest is the JSON body for replacing an item's
// acceptance criteria. An empty criteria string clears them.
type AcceptanceCriteriaRequest struct {
	Criteria string `json:"criteria"`
}

func (r *AcceptanceCriteriaRequest) Validate() error { return nil }

// ReorderItemsRequest is the JSON body for a bulk priority change.
type ReorderItemsRequest struct {
	Items []ItemPriorityRequest `json:"items"`
}

// ItemPriorityRequest pairs an item id with its new priority.
type ItemPriorityRequest struct {
	ItemID   string `json:"item_id"`
	Priority int    `json:"priority"`
}

func (r *ReorderItemsRequest) Validate() error {
	if len(r.Items) == 0 {
		return domain.Validationf("items must not be empty")
	}
	for _, it := range r.Items {
		if strings.TrimSpace(it.ItemID) == "" {
			return domain.Validationf("item_id is required for every entry")
		}
	}
	return nil
}

// ToChanges converts the request to service priority pairs.
func (r *ReorderItemsRequest) ToChanges() []ports.ItemPriority {
	changes := make([]ports.ItemPriority, len(r.Items))
	for i, it := range r.Items {
		changes[i] = ports.ItemPriority{ItemID: it.ItemID, Priority: it.Priority}
	}
	return changes
}

// RefineBacklogRequest is the JSON body for logging a refinement session.
type RefineBacklogRequest struct {
	Notes string `json:"notes"`
}

func (r *RefineBacklogRequest) Validate() error { return nil }

// CreateSprintRequest is the JSON body for creating a sprint.
type CreateSprintRequest struct {
	TeamID        string    `json:"team_id"`
	Goal          string    `json:"goal"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	CapacityHours int       `json:"capacity_hours"`
}

func (r *CreateSprintRequest) Validate() error {
	if strings.TrimSpace(r.TeamID) == "" {
		return domain.Validationf("team_id is required")
	}
	if strings.TrimSpace(r.Goal) == "" {
		return domain.Validationf("goal is required")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return domain.Validationf("start_date and end_date are required")
	}
	return nil
}

func (r *CreateSprintRequest) ToInput() ports.CreateSprintInput {
	return ports.CreateSprintInput{
		TeamID:        r.TeamID,
		Goal:          r.Goal,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		CapacityHours: r.CapacityHours,
	}
}

// UpdateGoalRequest is the JSON body for replacing a sprint goal.
type UpdateGoalRequest struct {
	Goal string `json:"goal"`
}

func (r *UpdateGoalRequest) Validate() error {
	if strings.TrimSpace(r.Goal) == "" {
		return domain.Validationf("goal is required")
	}
	return nil
}

// CompleteSprintRequest is the JSON body for completing a sprint.
type CompleteSprintRequest struct {
	ActualVelocity int `json:"actual_velocity"`
}

func (r *CompleteSprintRequest) Validate() error { return nil }

// CancelSprintRequest is the JSON body for cancelling a sprint.
type CancelSprintRequest struct {
	Reason string `json:"reason"`
}

func (r *CancelSprintRequest) Validate() error { return nil }

// AddSprintItemRequest is the JSON body for committing a product backlog item
// to a sprint.
type AddSprintItemRequest struct {
	ProductItemID string  `json:"product_item_id"`
	StoryPoints   int     `json:"story_points"`
	EstimateHours float64 `json:"estimate_hours"`
}

func (r *AddSprintItemRequest) Validate() error {
	if strings.TrimSpace(r.ProductItemID) == "" {
		return domain.Validationf("product_item_id is required")
	}
	if r.StoryPoints == 0 {
		return domain.Validationf("story_points is required")
	}
	return nil
}

func (r *AddSprintItemRequest) ToInput() ports.AddSprintItemInput {
	return ports.AddSprintItemInput{
		ProductItemID: r.ProductItemID,
		StoryPoints:   r.StoryPoints,
		EstimateHours: r.EstimateHours,
	}
}

// AddTaskRequest is the JSON body for adding a task to a sprint backlog item.
type AddTaskRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	EstimateHours float64 `json:"estimate_hours"`
}

func (r *AddTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return domain.Validationf("title is required")
	}
	return nil
}

func (r *AddTaskRequest) ToInput() ports.AddTaskInput {
	return ports.AddTaskInput{
		Title:         r.Title,
		Description:   r.Description,
		EstimateHours: r.EstimateHours,
	}
}

// UpdateRemainingRequest is the JSON body for replacing remaining hours on a
// task or a sprint backlog item. Zero completes the target.
type UpdateRemainingRequest struct {
	Hours float64 `json:"hours"`
}

func (r *UpdateRemainingRequest) Validate() error {
	if r.Hours < 0 {
		return domain.Validationf("hours must not be negative")
	}
	return nil
}

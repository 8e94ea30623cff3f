package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/backlog"
	"github.com/sprintdeck/scrumcore/internal/domain/sprint"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
	"github.com/sprintdeck/scrumcore/internal/ports"
)

// Compile-time check that SprintService implements ports.SprintService.
var _ ports.SprintService = (*SprintService)(nil)

// SprintService implements ports.SprintService. Cross-aggregate rules live
// here: a sprint is created only for an existing team, and a product backlog
// item must satisfy its readiness predicate in the team's backlog before it
// can be committed to a sprint.
type SprintService struct {
	sprints    ports.SprintRepository
	backlogs   ports.BacklogRepository
	teams      ports.TeamRepository
	dispatcher ports.EventDispatcher
	logger     *slog.Logger
}

// NewSprintService creates a SprintService.
func NewSprintService(
	sprints ports.SprintRepository,
	backlogs ports.BacklogRepository,
	teams ports.TeamRepository,
	dispatcher ports.EventDispatcher,
	logger *slog.Logger,
) *SprintService {
	return &SprintService{
		sprints:    sprints,
		backlogs:   backlogs,
		teams:      teams,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CreateSprint creates a sprint in planning for an existing team.
func (s *SprintService) CreateSprint(ctx context.Context, in ports.CreateSprintInput) (*sprint.Sprint, error) {
	s.logger.InfoContext(ctx, "creating sprint", slog.String("team_id", in.TeamID))

	teamID, err := team.ParseID(in.TeamID)
	if err != nil {
		return nil, err
	}
	goal, err := sprint.NewGoal(in.Goal)
	if err != nil {
		return nil, err
	}
	capacity, err := sprint.NewCapacity(in.CapacityHours)
	if err != nil {
		return nil, err
	}

	if _, err := s.teams.Get(ctx, teamID); err != nil {
		return nil, fmt.Errorf("verifying team: %w", err)
	}

	sp, err := sprint.Create(sprint.NewID(), teamID, goal, in.StartDate, in.EndDate, capacity)
	if err != nil {
		return nil, err
	}
	if err := s.saveAndDispatch(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// GetSprint returns a sprint by its id string.
func (s *SprintService) GetSprint(ctx context.Context, id string) (*sprint.Sprint, error) {
	sprintID, err := sprint.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.sprints.Get(ctx, sprintID)
}

// ListTeamSprints returns the given team's sprints.
func (s *SprintService) ListTeamSprints(ctx context.Context, teamID string) ([]*sprint.Sprint, error) {
	id, err := team.ParseID(teamID)
	if err != nil {
		return nil, err
	}
	return s.sprints.ListByTeam(ctx, id)
}

// UpdateGoal replaces the sprint goal.
func (s *SprintService) UpdateGoal(ctx context.Context, sprintID, goal string) (*sprint.Sprint, error) {
	g, err := sprint.NewGoal(goal)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sprintID, func(sp *sprint.Sprint) error {
		return sp.UpdateGoal(g)
	})
}

// StartSprint moves a planning sprint to active.
func (s *SprintService) StartSprint(ctx context.Context, sprintID string) (*sprint.Sprint, error) {
	s.logger.InfoContext(ctx, "starting sprint", slog.String("sprint_id", sprintID))
	return s.mutate(ctx, sprintID, func(sp *sprint.Sprint) error {
		return sp.Start()
	})
}

// StartReview moves an active sprint to review.
func (s *SprintService) StartReview(ctx context.Context, sprintID string) (*sprint.Sprint, error) {
	return s.mutate(ctx, sprintID, func(sp *sprint.Sprint) error {
		return sp.StartReview()
	})
}

// StartRetrospective moves a review sprint to retrospective.
func (s *SprintService) StartRetrospective(ctx context.Context, sprintID string) (*sprint.Sprint, error) {
	return s.mutate(ctx, sprintID, func(sp *sprint.Sprint) error {
		return sp.StartRetrospective()
	})
}

// CompleteSprint completes an active sprint with its actual velocity.
func (s *SprintService) CompleteSprint(ctx context.Context, sprintID string, actualVelocity int) (*sprint.Sprint, error) {
	s.logger.InfoContext(ctx, "completing sprint",
		slog.String("sprint_id", sprintID),
		slog.Int("actual_velocity", actualVelocity),
	)

	velocity, err := sprint.NewActualVelocity(actualVelocity)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sprintID, func(sp *sprint.Sprint) error {
		return sp.Complete(velocity)
	})
}

// CancelSprint aborts a non-terminal sprint.
func (s *SprintService) CancelSprint(ctx context.Context, sprintID, reason string) (*sprint.Sprint, error) {
	s.logger.InfoContext(ctx, "cancelling sprint", slog.String("sprint_id", sprintID))
	return s.mutate(ctx, sprintID, func(sp *sprint.Sprint) error {
		return sp.Cancel(reason)
	})
}

// AddItem commits a product backlog item to a planning sprint. The item must
// exist in the sprint team's backlog and be ready for sprint.
func (s *SprintService) AddItem(ctx context.Context, sprintID string, in ports.AddSprintItemInput) (*sprint.Sprint, error) {
	s.logger.InfoContext(ctx, "adding sprint item",
		slog.String("sprint_id", sprintID),
		slog.String("product_item_id", in.ProductItemID),
	)

	productItemID, err := backlog.ParseItemID(in.ProductItemID)
	if err != nil {
		return nil, err
	}
	points, err := sprint.NewStoryPoints(in.StoryPoints)
	if err != nil {
		return nil, err
	}
	estimate, err := sprint.NewHours(in.EstimateHours)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, sprintID, func(sp *sprint.Sprint) error {
		b, err := s.backlogs.GetByTeam(ctx, sp.TeamID())
		if err != nil {
			return fmt.Errorf("loading team backlog: %w", err)
		}
		productItem, err := b.Item(productItemID)
		if err != nil {
			return err
		}
		if !productItem.IsReadyForSprint() {
			return domain.Statef("item %q is not ready for sprint", productItem.Title())
		}

		item, err := sprint.NewItem(sprint.NewItemID(), sp.ID(), productItemID, points, estimate)
		if err != nil {
			return err
		}
		return sp.AddItem(item)
	})
}

// RemoveItem removes an item from a planning sprint.
func (s *SprintService) RemoveItem(ctx context.Context, sprintID, itemID string) error {
	id, err := sprint.ParseItemID(itemID)
	if err != nil {
		return err
	}
	_, err = s.mutate(ctx, sprintID, func(sp *sprint.Sprint) error {
		return sp.RemoveItem(id)
	})
	return err
}

// AddTask adds a task to a sprint backlog item.
func (s *SprintService) AddTask(ctx context.Context, sprintID, itemID string, in ports.AddTaskInput) (*sprint.Sprint, error) {
	s.logger.InfoContext(ctx, "adding task",
		slog.String("sprint_id", sprintID),
		slog.String("item_id", itemID),
	)

	title, err := sprint.NewTaskTitle(in.Title)
	if err != nil {
		return nil, err
	}
	description, err := sprint.NewTaskDescription(in.Description)
	if err != nil {
		return nil, err
	}
	estimate, err := sprint.NewEstimateHours(in.EstimateHours)
	if err != nil {
		return nil, err
	}

	return s.mutateItem(ctx, sprintID, itemID, func(item *sprint.Item) error {
		task, err := sprint.NewTask(sprint.NewTaskID(), item.ID(), title, description, estimate)
		if err != nil {
			return err
		}
		return item.AddTask(task)
	})
}

// RemoveTask removes a task from a sprint backlog item.
func (s *SprintService) RemoveTask(ctx context.Context, sprintID, itemID, taskID string) error {
	id, err := sprint.ParseTaskID(taskID)
	if err != nil {
		return err
	}
	_, err = s.mutateItem(ctx, sprintID, itemID, func(item *sprint.Item) error {
		return item.RemoveTask(id)
	})
	return err
}

// StartTask moves a todo task to in progress.
func (s *SprintService) StartTask(ctx context.Context, sprintID, itemID, taskID string) (*sprint.Sprint, error) {
	return s.mutateTask(ctx, sprintID, itemID, taskID, func(item *sprint.Item, id sprint.TaskID) error {
		return item.StartTask(id)
	})
}

// CompleteTask finishes a task.
func (s *SprintService) CompleteTask(ctx context.Context, sprintID, itemID, taskID string) (*sprint.Sprint, error) {
	return s.mutateTask(ctx, sprintID, itemID, taskID, func(item *sprint.Item, id sprint.TaskID) error {
		return item.CompleteTask(id)
	})
}

// BlockTask marks a task blocked.
func (s *SprintService) BlockTask(ctx context.Context, sprintID, itemID, taskID string) (*sprint.Sprint, error) {
	return s.mutateTask(ctx, sprintID, itemID, taskID, func(item *sprint.Item, id sprint.TaskID) error {
		return item.BlockTask(id)
	})
}

// UnblockTask returns a blocked task to where it was.
func (s *SprintService) UnblockTask(ctx context.Context, sprintID, itemID, taskID string) (*sprint.Sprint, error) {
	return s.mutateTask(ctx, sprintID, itemID, taskID, func(item *sprint.Item, id sprint.TaskID) error {
		return item.UnblockTask(id)
	})
}

// UpdateTaskRemainingHours replaces a task's remaining hours.
func (s *SprintService) UpdateTaskRemainingHours(ctx context.Context, sprintID, itemID, taskID string, hours float64) (*sprint.Sprint, error) {
	h, err := sprint.NewHours(hours)
	if err != nil {
		return nil, err
	}
	return s.mutateTask(ctx, sprintID, itemID, taskID, func(item *sprint.Item, id sprint.TaskID) error {
		return item.UpdateTaskRemainingHours(id, h)
	})
}

// UpdateItemRemainingWork replaces an item's remaining work.
func (s *SprintService) UpdateItemRemainingWork(ctx context.Context, sprintID, itemID string, hours float64) (*sprint.Sprint, error) {
	h, err := sprint.NewHours(hours)
	if err != nil {
		return nil, err
	}
	return s.mutateItem(ctx, sprintID, itemID, func(item *sprint.Item) error {
		return item.UpdateRemainingWork(h)
	})
}

// Progress returns the sprint's derived calculations.
func (s *SprintService) Progress(ctx context.Context, sprintID string) (*ports.SprintProgress, error) {
	sp, err := s.GetSprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	return &ports.SprintProgress{
		SprintID:             sp.ID().String(),
		Status:               sp.Status().String(),
		RemainingWorkHours:   sp.RemainingWork().Value(),
		CommittedStoryPoints: sp.CommittedStoryPoints(),
		CompletedStoryPoints: sp.CompletedStoryPoints(),
		ProgressPercentage:   sp.ProgressPercentage(),
	}, nil
}

// mutate loads a sprint, applies fn, saves, and dispatches drained events.
func (s *SprintService) mutate(ctx context.Context, sprintID string, fn func(*sprint.Sprint) error) (*sprint.Sprint, error) {
	id, err := sprint.ParseID(sprintID)
	if err != nil {
		return nil, err
	}
	sp, err := s.sprints.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(sp); err != nil {
		return nil, err
	}
	if err := s.saveAndDispatch(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// mutateItem is mutate scoped to one owned sprint backlog item.
func (s *SprintService) mutateItem(ctx context.Context, sprintID, itemID string, fn func(*sprint.Item) error) (*sprint.Sprint, error) {
	id, err := sprint.ParseItemID(itemID)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sprintID, func(sp *sprint.Sprint) error {
		item, err := sp.Item(id)
		if err != nil {
			return err
		}
		return fn(item)
	})
}

// mutateTask is mutateItem with the task id parsed as well.
func (s *SprintService) mutateTask(ctx context.Context, sprintID, itemID, taskID string, fn func(*sprint.Item, sprint.TaskID) error) (*sprint.Sprint, error) {
	id, err := sprint.ParseTaskID(taskID)
	if err != nil {
		return nil, err
	}
	return s.mutateItem(ctx, sprintID, itemID, func(item *sprint.Item) error {
		return fn(item, id)
	})
}

func (s *SprintService) saveAndDispatch(ctx context.Context, sp *sprint.Sprint) error {
	if err := s.sprints.Save(ctx, sp); err != nil {
		s.logger.ErrorContext(ctx, "failed to save sprint",
			slog.String("sprint_id", sp.ID().String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("saving sprint: %w", err)
	}
	if err := s.dispatcher.Dispatch(ctx, sp.DrainEvents()); err != nil {
		s.logger.WarnContext(ctx, "failed to dispatch sprint events",
			slog.String("sprint_id", sp.ID().String()),
			slog.Any("error", err),
		)
	}
	return nil
}

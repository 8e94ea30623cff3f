package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/backlog"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
	"github.com/sprintdeck/scrumcore/internal/ports"
)

// Compile-time check that BacklogService implements ports.BacklogService.
var _ ports.BacklogService = (*BacklogService)(nil)

// BacklogService implements ports.BacklogService. It enforces the
// one-backlog-per-team rule through the repository; everything else is the
// aggregate's business.
type BacklogService struct {
	backlogs   ports.BacklogRepository
	teams      ports.TeamRepository
	dispatcher ports.EventDispatcher
	logger     *slog.Logger
}

// NewBacklogService creates a BacklogService.
func NewBacklogService(
	backlogs ports.BacklogRepository,
	teams ports.TeamRepository,
	dispatcher ports.EventDispatcher,
	logger *slog.Logger,
) *BacklogService {
	return &BacklogService{
		backlogs:   backlogs,
		teams:      teams,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CreateBacklog creates the backlog for an existing team that has none yet.
func (s *BacklogService) CreateBacklog(ctx context.Context, teamID, notes string) (*backlog.ProductBacklog, error) {
	s.logger.InfoContext(ctx, "creating backlog", slog.String("team_id", teamID))

	id, err := team.ParseID(teamID)
	if err != nil {
		return nil, err
	}
	if _, err := s.teams.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("verifying team: %w", err)
	}
	if _, err := s.backlogs.GetByTeam(ctx, id); err == nil {
		return nil, domain.Conflictf("team %s already has a backlog", id)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking existing backlog: %w", err)
	}

	b, err := backlog.Create(backlog.NewID(), id, notes)
	if err != nil {
		return nil, err
	}
	if err := s.saveAndDispatch(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetBacklog returns a backlog by its id string.
func (s *BacklogService) GetBacklog(ctx context.Context, id string) (*backlog.ProductBacklog, error) {
	backlogID, err := backlog.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.backlogs.Get(ctx, backlogID)
}

// GetTeamBacklog returns the backlog owned by the given team.
func (s *BacklogService) GetTeamBacklog(ctx context.Context, teamID string) (*backlog.ProductBacklog, error) {
	id, err := team.ParseID(teamID)
	if err != nil {
		return nil, err
	}
	return s.backlogs.GetByTeam(ctx, id)
}

// AddItem adds a new item to a backlog.
func (s *BacklogService) AddItem(ctx context.Context, backlogID string, in ports.AddBacklogItemInput) (*backlog.ProductBacklog, error) {
	s.logger.InfoContext(ctx, "adding backlog item",
		slog.String("backlog_id", backlogID),
		slog.String("type", in.Type),
	)

	title, err := backlog.NewTitle(in.Title)
	if err != nil {
		return nil, err
	}
	description, err := backlog.NewDescription(in.Description)
	if err != nil {
		return nil, err
	}
	itemType, err := backlog.NewItemType(in.Type)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, backlogID, func(b *backlog.ProductBacklog) error {
		item, err := backlog.NewItem(backlog.NewItemID(), b.ID(), title, description, itemType, in.CreatedBy)
		if err != nil {
			return err
		}
		return b.AddItem(item)
	})
}

// RemoveItem removes an item from a backlog.
func (s *BacklogService) RemoveItem(ctx context.Context, backlogID, itemID string) error {
	s.logger.InfoContext(ctx, "removing backlog item",
		slog.String("backlog_id", backlogID),
		slog.String("item_id", itemID),
	)

	id, err := backlog.ParseItemID(itemID)
	if err != nil {
		return err
	}
	_, err = s.mutate(ctx, backlogID, func(b *backlog.ProductBacklog) error {
		return b.RemoveItem(id)
	})
	return err
}

// ReorderItems applies the given priorities to a backlog.
func (s *BacklogService) ReorderItems(ctx context.Context, backlogID string, changes []ports.ItemPriority) (*backlog.ProductBacklog, error) {
	s.logger.InfoContext(ctx, "reordering backlog",
		slog.String("backlog_id", backlogID),
		slog.Int("changes", len(changes)),
	)

	parsed := make([]backlog.PriorityChange, 0, len(changes))
	for _, ch := range changes {
		id, err := backlog.ParseItemID(ch.ItemID)
		if err != nil {
			return nil, err
		}
		priority, err := backlog.NewPriority(ch.Priority)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, backlog.PriorityChange{ItemID: id, Priority: priority})
	}

	return s.mutate(ctx, backlogID, func(b *backlog.ProductBacklog) error {
		return b.ReorderItems(parsed)
	})
}

// MarkAsRefined logs a refinement session on the backlog.
func (s *BacklogService) MarkAsRefined(ctx context.Context, backlogID, notes string) (*backlog.ProductBacklog, error) {
	s.logger.InfoContext(ctx, "marking backlog refined", slog.String("backlog_id", backlogID))

	return s.mutate(ctx, backlogID, func(b *backlog.ProductBacklog) error {
		b.MarkAsRefined(time.Now().UTC(), notes)
		return nil
	})
}

// EstimateItem sets an item's story points.
func (s *BacklogService) EstimateItem(ctx context.Context, backlogID, itemID string, points int) (*backlog.ProductBacklog, error) {
	s.logger.InfoContext(ctx, "estimating backlog item",
		slog.String("backlog_id", backlogID),
		slog.String("item_id", itemID),
		slog.Int("points", points),
	)

	sp, err := backlog.NewStoryPoints(points)
	if err != nil {
		return nil, err
	}
	return s.mutateItem(ctx, backlogID, itemID, func(item *backlog.Item) error {
		item.EstimateStoryPoints(sp)
		return nil
	})
}

// SetAcceptanceCriteria replaces an item's acceptance criteria.
func (s *BacklogService) SetAcceptanceCriteria(ctx context.Context, backlogID, itemID, criteria string) (*backlog.ProductBacklog, error) {
	s.logger.InfoContext(ctx, "setting acceptance criteria",
		slog.String("backlog_id", backlogID),
		slog.String("item_id", itemID),
	)

	ac, err := backlog.NewAcceptanceCriteria(criteria)
	if err != nil {
		return nil, err
	}
	return s.mutateItem(ctx, backlogID, itemID, func(item *backlog.Item) error {
		item.SetAcceptanceCriteria(ac)
		return nil
	})
}

// UpdateItem updates an item's title and/or description.
func (s *BacklogService) UpdateItem(ctx context.Context, backlogID, itemID string, in ports.UpdateBacklogItemInput) (*backlog.ProductBacklog, error) {
	s.logger.InfoContext(ctx, "updating backlog item",
		slog.String("backlog_id", backlogID),
		slog.String("item_id", itemID),
	)

	return s.mutateItem(ctx, backlogID, itemID, func(item *backlog.Item) error {
		if in.Title != nil {
			title, err := backlog.NewTitle(*in.Title)
			if err != nil {
				return err
			}
			if err := item.UpdateTitle(title); err != nil {
				return err
			}
		}
		if in.Description != nil {
			description, err := backlog.NewDescription(*in.Description)
			if err != nil {
				return err
			}
			if err := item.UpdateDescription(description); err != nil {
				return err
			}
		}
		return nil
	})
}

// StartItem moves a Ready item to InProgress.
func (s *BacklogService) StartItem(ctx context.Context, backlogID, itemID string) (*backlog.ProductBacklog, error) {
	return s.mutateItem(ctx, backlogID, itemID, func(item *backlog.Item) error {
		return item.MarkAsInProgress()
	})
}

// CompleteItem moves an InProgress item to Done.
func (s *BacklogService) CompleteItem(ctx context.Context, backlogID, itemID string) (*backlog.ProductBacklog, error) {
	return s.mutateItem(ctx, backlogID, itemID, func(item *backlog.Item) error {
		return item.MarkAsDone()
	})
}

// ResetItem returns an item to Ready.
func (s *BacklogService) ResetItem(ctx context.Context, backlogID, itemID string) (*backlog.ProductBacklog, error) {
	return s.mutateItem(ctx, backlogID, itemID, func(item *backlog.Item) error {
		return item.ResetToReady()
	})
}

// mutate loads a backlog, applies fn, saves, and dispatches drained events.
func (s *BacklogService) mutate(ctx context.Context, backlogID string, fn func(*backlog.ProductBacklog) error) (*backlog.ProductBacklog, error) {
	id, err := backlog.ParseID(backlogID)
	if err != nil {
		return nil, err
	}
	b, err := s.backlogs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(b); err != nil {
		return nil, err
	}
	if err := s.saveAndDispatch(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// mutateItem is mutate scoped to one owned item.
func (s *BacklogService) mutateItem(ctx context.Context, backlogID, itemID string, fn func(*backlog.Item) error) (*backlog.ProductBacklog, error) {
	id, err := backlog.ParseItemID(itemID)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, backlogID, func(b *backlog.ProductBacklog) error {
		item, err := b.Item(id)
		if err != nil {
			return err
		}
		return fn(item)
	})
}

func (s *BacklogService) saveAndDispatch(ctx context.Context, b *backlog.ProductBacklog) error {
	if err := s.backlogs.Save(ctx, b); err != nil {
		s.logger.ErrorContext(ctx, "failed to save backlog",
			slog.String("backlog_id", b.ID().String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("saving backlog: %w", err)
	}
	if err := s.dispatcher.Dispatch(ctx, b.DrainEvents()); err != nil {
		s.logger.WarnContext(ctx, "failed to dispatch backlog events",
			slog.String("backlog_id", b.ID().String()),
			slog.Any("error", err),
		)
	}
	return nil
}

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/backlog"
	"github.com/sprintdeck/scrumcore/internal/domain/sprint"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
	"github.com/sprintdeck/scrumcore/internal/ports"
)

func buildSprint(t *testing.T, teamID team.ID) *sprint.Sprint {
	t.Helper()
	goal, err := sprint.NewGoal("Ship the login flow")
	require.NoError(t, err)
	capacity, err := sprint.NewCapacity(80)
	require.NoError(t, err)
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sp, err := sprint.Create(sprint.NewID(), teamID, goal, start, start.AddDate(0, 0, 14), capacity)
	require.NoError(t, err)
	sp.DrainEvents()
	return sp
}

// readyBacklogItem returns a backlog holding one item that satisfies the
// readiness predicate.
func readyBacklogItem(t *testing.T, teamID team.ID) (*backlog.ProductBacklog, *backlog.Item) {
	t.Helper()
	b, err := backlog.Create(backlog.NewID(), teamID, "")
	require.NoError(t, err)
	title, _ := backlog.NewTitle("Login flow")
	item, err := backlog.NewItem(backlog.NewItemID(), b.ID(), title, "", backlog.TypeUserStory, "ann")
	require.NoError(t, err)
	require.NoError(t, b.AddItem(item))
	points, _ := backlog.NewStoryPoints(5)
	item.EstimateStoryPoints(points)
	criteria, _ := backlog.NewAcceptanceCriteria("Given a registered user, login succeeds")
	item.SetAcceptanceCriteria(criteria)
	b.DrainEvents()
	return b, item
}

func TestSprintService_CreateSprint(t *testing.T) {
	t.Parallel()

	t.Run("verifies team exists", func(t *testing.T) {
		t.Parallel()
		teams := &MockTeamRepository{}
		svc := NewSprintService(&MockSprintRepository{}, &MockBacklogRepository{}, teams, &MockEventDispatcher{}, discardLogger())

		id := team.NewID()
		teams.On("Get", mock.Anything, id).Return(nil, domain.NotFoundf("team not found"))

		start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		_, err := svc.CreateSprint(context.Background(), ports.CreateSprintInput{
			TeamID:        id.String(),
			Goal:          "Ship the login flow",
			StartDate:     start,
			EndDate:       start.AddDate(0, 0, 14),
			CapacityHours: 80,
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("creates and dispatches", func(t *testing.T) {
		t.Parallel()
		sprints := &MockSprintRepository{}
		teams := &MockTeamRepository{}
		dispatcher := &MockEventDispatcher{}
		svc := NewSprintService(sprints, &MockBacklogRepository{}, teams, dispatcher, discardLogger())

		tm := buildTeam(t, "Phoenix")
		teams.On("Get", mock.Anything, tm.ID()).Return(tm, nil)
		sprints.On("Save", mock.Anything, mock.Anything).Return(nil)
		dispatcher.On("Dispatch", mock.Anything, mock.MatchedBy(func(events []domain.Event) bool {
			return len(events) == 1 && events[0].EventName() == "sprint.created"
		})).Return(nil)

		start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		got, err := svc.CreateSprint(context.Background(), ports.CreateSprintInput{
			TeamID:        tm.ID().String(),
			Goal:          "Ship the login flow",
			StartDate:     start,
			EndDate:       start.AddDate(0, 0, 14),
			CapacityHours: 80,
		})
		require.NoError(t, err)
		require.Equal(t, sprint.StatusPlanning, got.Status())
		dispatcher.AssertExpectations(t)
	})
}

func TestSprintService_AddItem(t *testing.T) {
	t.Parallel()

	t.Run("rejects an item that is not ready", func(t *testing.T) {
		t.Parallel()
		sprints := &MockSprintRepository{}
		backlogs := &MockBacklogRepository{}
		svc := NewSprintService(sprints, backlogs, &MockTeamRepository{}, &MockEventDispatcher{}, discardLogger())

		teamID := team.NewID()
		sp := buildSprint(t, teamID)
		b, err := backlog.Create(backlog.NewID(), teamID, "")
		require.NoError(t, err)
		title, _ := backlog.NewTitle("Login flow")
		item, err := backlog.NewItem(backlog.NewItemID(), b.ID(), title, "", backlog.TypeUserStory, "ann")
		require.NoError(t, err)
		require.NoError(t, b.AddItem(item))

		sprints.On("Get", mock.Anything, sp.ID()).Return(sp, nil)
		backlogs.On("GetByTeam", mock.Anything, teamID).Return(b, nil)

		_, err = svc.AddItem(context.Background(), sp.ID().String(), ports.AddSprintItemInput{
			ProductItemID: item.ID().String(),
			StoryPoints:   5,
			EstimateHours: 8,
		})
		require.ErrorIs(t, err, domain.ErrState)
		require.ErrorContains(t, err, "not ready for sprint")
		sprints.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("commits a ready item", func(t *testing.T) {
		t.Parallel()
		sprints := &MockSprintRepository{}
		backlogs := &MockBacklogRepository{}
		dispatcher := &MockEventDispatcher{}
		svc := NewSprintService(sprints, backlogs, &MockTeamRepository{}, dispatcher, discardLogger())

		teamID := team.NewID()
		sp := buildSprint(t, teamID)
		b, item := readyBacklogItem(t, teamID)

		sprints.On("Get", mock.Anything, sp.ID()).Return(sp, nil)
		backlogs.On("GetByTeam", mock.Anything, teamID).Return(b, nil)
		sprints.On("Save", mock.Anything, sp).Return(nil)
		dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)

		got, err := svc.AddItem(context.Background(), sp.ID().String(), ports.AddSprintItemInput{
			ProductItemID: item.ID().String(),
			StoryPoints:   5,
			EstimateHours: 8,
		})
		require.NoError(t, err)
		require.Len(t, got.Items(), 1)
		require.Equal(t, item.ID(), got.Items()[0].ProductItemID())
	})

	t.Run("unknown product item", func(t *testing.T) {
		t.Parallel()
		sprints := &MockSprintRepository{}
		backlogs := &MockBacklogRepository{}
		svc := NewSprintService(sprints, backlogs, &MockTeamRepository{}, &MockEventDispatcher{}, discardLogger())

		teamID := team.NewID()
		sp := buildSprint(t, teamID)
		b, _ := readyBacklogItem(t, teamID)

		sprints.On("Get", mock.Anything, sp.ID()).Return(sp, nil)
		backlogs.On("GetByTeam", mock.Anything, teamID).Return(b, nil)

		_, err := svc.AddItem(context.Background(), sp.ID().String(), ports.AddSprintItemInput{
			ProductItemID: backlog.NewItemID().String(),
			StoryPoints:   5,
			EstimateHours: 8,
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSprintService_TaskFlow(t *testing.T) {
	t.Parallel()

	sprints := &MockSprintRepository{}
	backlogs := &MockBacklogRepository{}
	dispatcher := &MockEventDispatcher{}
	svc := NewSprintService(sprints, backlogs, &MockTeamRepository{}, dispatcher, discardLogger())

	teamID := team.NewID()
	sp := buildSprint(t, teamID)
	b, productItem := readyBacklogItem(t, teamID)

	sprints.On("Get", mock.Anything, sp.ID()).Return(sp, nil)
	backlogs.On("GetByTeam", mock.Anything, teamID).Return(b, nil)
	sprints.On("Save", mock.Anything, sp).Return(nil)
	dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)

	ctx := context.Background()
	sid := sp.ID().String()

	got, err := svc.AddItem(ctx, sid, ports.AddSprintItemInput{
		ProductItemID: productItem.ID().String(),
		StoryPoints:   5,
		EstimateHours: 8,
	})
	require.NoError(t, err)
	itemID := got.Items()[0].ID().String()

	_, err = svc.StartSprint(ctx, sid)
	require.NoError(t, err)

	got, err = svc.AddTask(ctx, sid, itemID, ports.AddTaskInput{
		Title:         "Implement form",
		EstimateHours: 4,
	})
	require.NoError(t, err)
	taskID := got.Items()[0].Tasks()[0].ID().String()

	_, err = svc.StartTask(ctx, sid, itemID, taskID)
	require.NoError(t, err)

	got, err = svc.UpdateTaskRemainingHours(ctx, sid, itemID, taskID, 0)
	require.NoError(t, err)
	require.True(t, got.Items()[0].IsCompleted())

	got, err = svc.CompleteSprint(ctx, sid, 5)
	require.NoError(t, err)
	require.Equal(t, sprint.StatusCompleted, got.Status())
	require.Equal(t, 5, got.CompletedStoryPoints())
}

func TestSprintService_Progress(t *testing.T) {
	t.Parallel()

	sprints := &MockSprintRepository{}
	svc := NewSprintService(sprints, &MockBacklogRepository{}, &MockTeamRepository{}, &MockEventDispatcher{}, discardLogger())

	teamID := team.NewID()
	sp := buildSprint(t, teamID)
	points, _ := sprint.NewStoryPoints(5)
	item, err := sprint.NewItem(sprint.NewItemID(), sp.ID(), backlog.NewItemID(), points, 8)
	require.NoError(t, err)
	require.NoError(t, sp.AddItem(item))
	sp.DrainEvents()

	sprints.On("Get", mock.Anything, sp.ID()).Return(sp, nil)

	progress, err := svc.Progress(context.Background(), sp.ID().String())
	require.NoError(t, err)
	require.Equal(t, 5, progress.CommittedStoryPoints)
	require.Equal(t, 0, progress.CompletedStoryPoints)
	require.Equal(t, 8.0, progress.RemainingWorkHours)
	require.Equal(t, "planning", progress.Status)
}

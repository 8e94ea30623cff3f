package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
	"github.com/sprintdeck/scrumcore/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func buildTeam(t *testing.T, name string) *team.Team {
	t.Helper()
	n, err := team.NewName(name)
	require.NoError(t, err)
	length, err := team.NewSprintLength(2)
	require.NoError(t, err)
	tm, err := team.Create(team.NewID(), n, "", length)
	require.NoError(t, err)
	tm.DrainEvents()
	return tm
}

func TestTeamService_CreateTeam(t *testing.T) {
	t.Parallel()

	t.Run("creates when name is free", func(t *testing.T) {
		t.Parallel()
		teams := &MockTeamRepository{}
		dispatcher := &MockEventDispatcher{}
		svc := NewTeamService(teams, dispatcher, discardLogger())

		teams.On("GetByName", mock.Anything, mock.Anything).Return(nil, domain.NotFoundf("team not found"))
		teams.On("Save", mock.Anything, mock.Anything).Return(nil)
		dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)

		got, err := svc.CreateTeam(context.Background(), ports.CreateTeamInput{
			Name:              "Phoenix",
			SprintLengthWeeks: 2,
		})
		require.NoError(t, err)
		require.Equal(t, "Phoenix", got.Name().String())
		require.True(t, got.IsActive())

		// Events must be drained and handed to the dispatcher after save.
		require.Empty(t, got.UncommittedEvents())
		dispatcher.AssertCalled(t, "Dispatch", mock.Anything, mock.MatchedBy(func(events []domain.Event) bool {
			return len(events) == 1 && events[0].EventName() == "team.created"
		}))
	})

	t.Run("rejects a taken name", func(t *testing.T) {
		t.Parallel()
		teams := &MockTeamRepository{}
		svc := NewTeamService(teams, &MockEventDispatcher{}, discardLogger())

		existing := buildTeam(t, "Phoenix")
		teams.On("GetByName", mock.Anything, mock.Anything).Return(existing, nil)

		_, err := svc.CreateTeam(context.Background(), ports.CreateTeamInput{
			Name:              "Phoenix",
			SprintLengthWeeks: 2,
		})
		require.ErrorIs(t, err, domain.ErrConflict)
		teams.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid input before touching the repository", func(t *testing.T) {
		t.Parallel()
		teams := &MockTeamRepository{}
		svc := NewTeamService(teams, &MockEventDispatcher{}, discardLogger())

		_, err := svc.CreateTeam(context.Background(), ports.CreateTeamInput{
			Name:              "ab",
			SprintLengthWeeks: 2,
		})
		require.ErrorIs(t, err, domain.ErrValidation)
		teams.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
	})
}

func TestTeamService_GetTeam(t *testing.T) {
	t.Parallel()

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()
		svc := NewTeamService(&MockTeamRepository{}, &MockEventDispatcher{}, discardLogger())
		_, err := svc.GetTeam(context.Background(), "not-a-uuid")
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("not found passes through", func(t *testing.T) {
		t.Parallel()
		teams := &MockTeamRepository{}
		svc := NewTeamService(teams, &MockEventDispatcher{}, discardLogger())

		teams.On("Get", mock.Anything, mock.Anything).Return(nil, domain.NotFoundf("team not found"))
		_, err := svc.GetTeam(context.Background(), team.NewID().String())
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTeamService_AddMember(t *testing.T) {
	t.Parallel()

	t.Run("adds and saves", func(t *testing.T) {
		t.Parallel()
		teams := &MockTeamRepository{}
		dispatcher := &MockEventDispatcher{}
		svc := NewTeamService(teams, dispatcher, discardLogger())

		tm := buildTeam(t, "Phoenix")
		teams.On("Get", mock.Anything, tm.ID()).Return(tm, nil)
		teams.On("Save", mock.Anything, tm).Return(nil)
		dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)

		got, err := svc.AddMember(context.Background(), tm.ID().String(), ports.AddMemberInput{
			Name:  "Ann",
			Email: "ann@example.com",
			Role:  "product_owner",
		})
		require.NoError(t, err)
		require.Len(t, got.Members(), 1)
	})

	t.Run("singleton violation propagates unsaved", func(t *testing.T) {
		t.Parallel()
		teams := &MockTeamRepository{}
		svc := NewTeamService(teams, &MockEventDispatcher{}, discardLogger())

		tm := buildTeam(t, "Phoenix")
		name, _ := team.NewMemberName("Ann")
		email, _ := team.NewEmail("ann@example.com")
		owner, err := team.NewMember(team.NewMemberID(), tm.ID(), name, email, team.RoleProductOwner)
		require.NoError(t, err)
		require.NoError(t, tm.AddMember(owner))
		tm.DrainEvents()

		teams.On("Get", mock.Anything, tm.ID()).Return(tm, nil)

		_, err = svc.AddMember(context.Background(), tm.ID().String(), ports.AddMemberInput{
			Name:  "Bob",
			Email: "bob@example.com",
			Role:  "product_owner",
		})
		require.ErrorIs(t, err, domain.ErrConflict)
		teams.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestTeamService_UpdateVelocity(t *testing.T) {
	t.Parallel()

	teams := &MockTeamRepository{}
	dispatcher := &MockEventDispatcher{}
	svc := NewTeamService(teams, dispatcher, discardLogger())

	tm := buildTeam(t, "Phoenix")
	teams.On("Get", mock.Anything, tm.ID()).Return(tm, nil)
	teams.On("Save", mock.Anything, tm).Return(nil)
	dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)

	got, err := svc.UpdateVelocity(context.Background(), tm.ID().String(), 42)
	require.NoError(t, err)
	require.Equal(t, 42, got.Velocity().Points())

	_, err = svc.UpdateVelocity(context.Background(), tm.ID().String(), 1001)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestTeamService_DispatchFailureDoesNotFailSave(t *testing.T) {
	t.Parallel()

	teams := &MockTeamRepository{}
	dispatcher := &MockEventDispatcher{}
	svc := NewTeamService(teams, dispatcher, discardLogger())

	tm := buildTeam(t, "Phoenix")
	teams.On("Get", mock.Anything, tm.ID()).Return(tm, nil)
	teams.On("Save", mock.Anything, tm).Return(nil)
	dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(errors.New("webhook down"))

	err := svc.DeactivateTeam(context.Background(), tm.ID().String(), "restructure")
	require.NoError(t, err)
	require.False(t, tm.IsActive())
}

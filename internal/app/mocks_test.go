package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/backlog"
	"github.com/sprintdeck/scrumcore/internal/domain/sprint"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Get(ctx context.Context, id team.ID) (*team.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*team.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name team.Name) (*team.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*team.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*team.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*team.Team), args.Error(1)
}

func (m *MockTeamRepository) Save(ctx context.Context, t *team.Team) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockBacklogRepository struct {
	mock.Mock
}

func (m *MockBacklogRepository) Get(ctx context.Context, id backlog.ID) (*backlog.ProductBacklog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backlog.ProductBacklog), args.Error(1)
}

func (m *MockBacklogRepository) GetByTeam(ctx context.Context, teamID team.ID) (*backlog.ProductBacklog, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backlog.ProductBacklog), args.Error(1)
}

func (m *MockBacklogRepository) Save(ctx context.Context, b *backlog.ProductBacklog) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

type MockSprintRepository struct {
	mock.Mock
}

func (m *MockSprintRepository) Get(ctx context.Context, id sprint.ID) (*sprint.Sprint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sprint.Sprint), args.Error(1)
}

func (m *MockSprintRepository) ListByTeam(ctx context.Context, teamID team.ID) ([]*sprint.Sprint, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sprint.Sprint), args.Error(1)
}

func (m *MockSprintRepository) Save(ctx context.Context, s *sprint.Sprint) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockEventDispatcher struct {
	mock.Mock
}

func (m *MockEventDispatcher) Dispatch(ctx context.Context, events []domain.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// Package app provides application services that orchestrate use cases by
// coordinating between domain aggregates and infrastructure through port
// interfaces. Each service follows the same shape: load the aggregate,
// invoke its methods, save it, then drain and dispatch its recorded events.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
	"github.com/sprintdeck/scrumcore/internal/ports"
)

// Compile-time check that TeamService implements ports.TeamService.
var _ ports.TeamService = (*TeamService)(nil)

// TeamService implements ports.TeamService. It resolves the cross-aggregate
// team-name uniqueness rule through the repository and contains no other
// business logic of its own.
type TeamService struct {
	teams      ports.TeamRepository
	dispatcher ports.EventDispatcher
	logger     *slog.Logger
}

// NewTeamService creates a TeamService.
func NewTeamService(teams ports.TeamRepository, dispatcher ports.EventDispatcher, logger *slog.Logger) *TeamService {
	return &TeamService{
		teams:      teams,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CreateTeam creates a team after checking that the name is not taken.
func (s *TeamService) CreateTeam(ctx context.Context, in ports.CreateTeamInput) (*team.Team, error) {
	s.logger.InfoContext(ctx, "creating team", slog.String("name", in.Name))

	name, err := team.NewName(in.Name)
	if err != nil {
		return nil, err
	}
	description, err := team.NewDescription(in.Description)
	if err != nil {
		return nil, err
	}
	length, err := team.NewSprintLength(in.SprintLengthWeeks)
	if err != nil {
		return nil, err
	}

	if _, err := s.teams.GetByName(ctx, name); err == nil {
		return nil, domain.Conflictf("team with name %q already exists", name)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking team name: %w", err)
	}

	t, err := team.Create(team.NewID(), name, description, length)
	if err != nil {
		return nil, err
	}
	if err := s.saveAndDispatch(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTeam returns a team by its id string.
func (s *TeamService) GetTeam(ctx context.Context, id string) (*team.Team, error) {
	teamID, err := team.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.teams.Get(ctx, teamID)
}

// ListTeams returns all teams.
func (s *TeamService) ListTeams(ctx context.Context) ([]*team.Team, error) {
	return s.teams.List(ctx)
}

// UpdateTeamInfo replaces a team's name, description and sprint length. A
// name change re-checks uniqueness against other teams.
func (s *TeamService) UpdateTeamInfo(ctx context.Context, id string, in ports.UpdateTeamInput) (*team.Team, error) {
	s.logger.InfoContext(ctx, "updating team info", slog.String("team_id", id))

	teamID, err := team.ParseID(id)
	if err != nil {
		return nil, err
	}
	name, err := team.NewName(in.Name)
	if err != nil {
		return nil, err
	}
	description, err := team.NewDescription(in.Description)
	if err != nil {
		return nil, err
	}
	length, err := team.NewSprintLength(in.SprintLengthWeeks)
	if err != nil {
		return nil, err
	}

	t, err := s.teams.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if name != t.Name() {
		if other, err := s.teams.GetByName(ctx, name); err == nil && other.ID() != t.ID() {
			return nil, domain.Conflictf("team with name %q already exists", name)
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("checking team name: %w", err)
		}
	}

	t.UpdateInfo(name, description, length)
	if err := s.saveAndDispatch(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// AddMember adds a member to a team.
func (s *TeamService) AddMember(ctx context.Context, teamID string, in ports.AddMemberInput) (*team.Team, error) {
	s.logger.InfoContext(ctx, "adding team member",
		slog.String("team_id", teamID),
		slog.String("role", in.Role),
	)

	id, err := team.ParseID(teamID)
	if err != nil {
		return nil, err
	}
	name, err := team.NewMemberName(in.Name)
	if err != nil {
		return nil, err
	}
	email, err := team.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	role, err := team.NewRole(in.Role)
	if err != nil {
		return nil, err
	}

	t, err := s.teams.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	member, err := team.NewMember(team.NewMemberID(), t.ID(), name, email, role)
	if err != nil {
		return nil, err
	}
	if err := t.AddMember(member); err != nil {
		return nil, err
	}
	if err := s.saveAndDispatch(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// RemoveMember removes a member from a team.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, memberID string) error {
	s.logger.InfoContext(ctx, "removing team member",
		slog.String("team_id", teamID),
		slog.String("member_id", memberID),
	)

	id, err := team.ParseID(teamID)
	if err != nil {
		return err
	}
	mid, err := team.ParseMemberID(memberID)
	if err != nil {
		return err
	}

	t, err := s.teams.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := t.RemoveMember(mid); err != nil {
		return err
	}
	return s.saveAndDispatch(ctx, t)
}

// UpdateVelocity replaces a team's current velocity.
func (s *TeamService) UpdateVelocity(ctx context.Context, teamID string, points int) (*team.Team, error) {
	s.logger.InfoContext(ctx, "updating team velocity",
		slog.String("team_id", teamID),
		slog.Int("points", points),
	)

	id, err := team.ParseID(teamID)
	if err != nil {
		return nil, err
	}
	velocity, err := team.NewVelocity(points)
	if err != nil {
		return nil, err
	}

	t, err := s.teams.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t.UpdateVelocity(velocity)
	if err := s.saveAndDispatch(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeactivateTeam marks a team inactive. Idempotent.
func (s *TeamService) DeactivateTeam(ctx context.Context, id, reason string) error {
	s.logger.InfoContext(ctx, "deactivating team", slog.String("team_id", id))

	teamID, err := team.ParseID(id)
	if err != nil {
		return err
	}
	t, err := s.teams.Get(ctx, teamID)
	if err != nil {
		return err
	}
	t.Deactivate(reason)
	return s.saveAndDispatch(ctx, t)
}

// ReactivateTeam marks a team active again. Idempotent.
func (s *TeamService) ReactivateTeam(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "reactivating team", slog.String("team_id", id))

	teamID, err := team.ParseID(id)
	if err != nil {
		return err
	}
	t, err := s.teams.Get(ctx, teamID)
	if err != nil {
		return err
	}
	t.Reactivate()
	return s.saveAndDispatch(ctx, t)
}

// saveAndDispatch saves the aggregate, then drains and dispatches its events.
// Dispatch failures are logged, not returned: the save has already committed.
func (s *TeamService) saveAndDispatch(ctx context.Context, t *team.Team) error {
	if err := s.teams.Save(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "failed to save team",
			slog.String("team_id", t.ID().String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("saving team: %w", err)
	}
	if err := s.dispatcher.Dispatch(ctx, t.DrainEvents()); err != nil {
		s.logger.WarnContext(ctx, "failed to dispatch team events",
			slog.String("team_id", t.ID().String()),
			slog.Any("error", err),
		)
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
)

// TeamRepository implements ports.TeamRepository on SQLite.
type TeamRepository struct {
	db *DB
}

func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Get(ctx context.Context, id team.ID) (*team.Team, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, sprint_length_weeks, velocity, active, created_at
		FROM teams WHERE id = ?`, id.String())

	t, err := scanTeam(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("team %s not found", id)
	}
	if err != nil {
		return nil, err
	}

	return r.withMembers(ctx, t)
}

func (r *TeamRepository) GetByName(ctx context.Context, name team.Name) (*team.Team, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, sprint_length_weeks, velocity, active, created_at
		FROM teams WHERE name = ?`, name.String())

	t, err := scanTeam(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("team %q not found", name)
	}
	if err != nil {
		return nil, err
	}

	return r.withMembers(ctx, t)
}

func (r *TeamRepository) List(ctx context.Context) ([]*team.Team, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, sprint_length_weeks, velocity, active, created_at
		FROM teams ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []*team.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teams: %w", err)
	}

	for i, t := range teams {
		full, err := r.withMembers(ctx, t)
		if err != nil {
			return nil, err
		}
		teams[i] = full
	}
	return teams, nil
}

func (r *TeamRepository) Save(ctx context.Context, t *team.Team) error {
	return inTx(ctx, r.db.DB, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO teams (id, name, description, sprint_length_weeks, velocity, active, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				description = excluded.description,
				sprint_length_weeks = excluded.sprint_length_weeks,
				velocity = excluded.velocity,
				active = excluded.active`,
			t.ID().String(), t.Name().String(), t.Description().String(),
			t.SprintLength().Weeks(), t.Velocity().Points(), t.IsActive(),
			fmtTime(t.CreatedAt()))
		if err != nil {
			return fmt.Errorf("upserting team: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM team_members WHERE team_id = ?`, t.ID().String()); err != nil {
			return fmt.Errorf("clearing team members: %w", err)
		}

		for _, m := range t.Members() {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO team_members (id, team_id, name, email, role, active, last_login, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				m.ID().String(), t.ID().String(), m.Name().String(), m.Email().String(),
				m.Role().String(), m.IsActive(), fmtTimePtr(m.LastLogin()), fmtTime(m.CreatedAt()))
			if err != nil {
				return fmt.Errorf("inserting team member: %w", err)
			}
		}
		return nil
	})
}

func (r *TeamRepository) withMembers(ctx context.Context, t *team.Team) (*team.Team, error) {
	members, err := r.loadMembers(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	return team.Rehydrate(
		t.ID(), t.Name(), t.Description(), t.SprintLength(),
		t.Velocity(), t.IsActive(), t.CreatedAt(), members,
	), nil
}

func (r *TeamRepository) loadMembers(ctx context.Context, id team.ID) ([]*team.Member, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, role, active, last_login, created_at
		FROM team_members WHERE team_id = ? ORDER BY created_at, id`, id.String())
	if err != nil {
		return nil, fmt.Errorf("loading team members: %w", err)
	}
	defer rows.Close()

	var members []*team.Member
	for rows.Next() {
		m, err := scanMember(rows, id)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team members: %w", err)
	}
	return members, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTeam reads a team row into a rehydrated aggregate without members.
func scanTeam(row rowScanner) (*team.Team, error) {
	var (
		idStr, nameStr, descStr, createdStr string
		weeks, velocity                     int
		active                              bool
	)
	if err := row.Scan(&idStr, &nameStr, &descStr, &weeks, &velocity, &active, &createdStr); err != nil {
		return nil, err
	}

	id, err := team.ParseID(idStr)
	if err != nil {
		return nil, fmt.Errorf("team row %s: %w", idStr, err)
	}
	name, err := team.NewName(nameStr)
	if err != nil {
		return nil, fmt.Errorf("team row %s: %w", idStr, err)
	}
	desc, err := team.NewDescription(descStr)
	if err != nil {
		return nil, fmt.Errorf("team row %s: %w", idStr, err)
	}
	length, err := team.NewSprintLength(weeks)
	if err != nil {
		return nil, fmt.Errorf("team row %s: %w", idStr, err)
	}
	vel, err := team.NewVelocity(velocity)
	if err != nil {
		return nil, fmt.Errorf("team row %s: %w", idStr, err)
	}
	createdAt, err := parseTime(createdStr)
	if err != nil {
		return nil, fmt.Errorf("team row %s: %w", idStr, err)
	}

	return team.Rehydrate(id, name, desc, length, vel, active, createdAt, nil), nil
}

func scanMember(row rowScanner, teamID team.ID) (*team.Member, error) {
	var (
		idStr, nameStr, emailStr, roleStr, createdStr string
		active                                        bool
		lastLogin                                     sql.NullString
	)
	if err := row.Scan(&idStr, &nameStr, &emailStr, &roleStr, &active, &lastLogin, &createdStr); err != nil {
		return nil, err
	}

	id, err := team.ParseMemberID(idStr)
	if err != nil {
		return nil, fmt.Errorf("member row %s: %w", idStr, err)
	}
	name, err := team.NewMemberName(nameStr)
	if err != nil {
		return nil, fmt.Errorf("member row %s: %w", idStr, err)
	}
	email, err := team.NewEmail(emailStr)
	if err != nil {
		return nil, fmt.Errorf("member row %s: %w", idStr, err)
	}
	role, err := team.NewRole(roleStr)
	if err != nil {
		return nil, fmt.Errorf("member row %s: %w", idStr, err)
	}
	var login *time.Time
	if login, err = parseTimePtr(lastLogin); err != nil {
		return nil, fmt.Errorf("member row %s: %w", idStr, err)
	}
	createdAt, err := parseTime(createdStr)
	if err != nil {
		return nil, fmt.Errorf("member row %s: %w", idStr, err)
	}

	return team.RehydrateMember(id, teamID, name, email, role, active, login, createdAt), nil
}

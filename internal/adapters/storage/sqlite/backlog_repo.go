package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/backlog"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
)

// BacklogRepository implements ports.BacklogRepository on SQLite.
type BacklogRepository struct {
	db *DB
}

func NewBacklogRepository(db *DB) *BacklogRepository {
	return &BacklogRepository{db: db}
}

func (r *BacklogRepository) Get(ctx context.Context, id backlog.ID) (*backlog.ProductBacklog, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, team_id, created_at, last_refined_at, notes
		FROM backlogs WHERE id = ?`, id.String())

	b, err := r.scanBacklog(ctx, row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("backlog %s not found", id)
	}
	return b, err
}

func (r *BacklogRepository) GetByTeam(ctx context.Context, teamID team.ID) (*backlog.ProductBacklog, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, team_id, created_at, last_refined_at, notes
		FROM backlogs WHERE team_id = ?`, teamID.String())

	b, err := r.scanBacklog(ctx, row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("team %s has no backlog", teamID)
	}
	return b, err
}

func (r *BacklogRepository) Save(ctx context.Context, b *backlog.ProductBacklog) error {
	return inTx(ctx, r.db.DB, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO backlogs (id, team_id, created_at, last_refined_at, notes)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				last_refined_at = excluded.last_refined_at,
				notes = excluded.notes`,
			b.ID().String(), b.TeamID().String(), fmtTime(b.CreatedAt()),
			fmtTimePtr(b.LastRefinedAt()), b.Notes())
		if err != nil {
			return fmt.Errorf("upserting backlog: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM backlog_items WHERE backlog_id = ?`, b.ID().String()); err != nil {
			return fmt.Errorf("clearing backlog items: %w", err)
		}

		for _, it := range b.Items() {
			var points any
			if sp := it.StoryPoints(); sp != nil {
				points = sp.Points()
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO backlog_items (id, backlog_id, title, description, item_type,
					priority, story_points, status, acceptance_criteria, created_by, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				it.ID().String(), b.ID().String(), it.Title().String(), it.Description().String(),
				it.Type().String(), it.Priority().Value(), points, it.Status().String(),
				it.AcceptanceCriteria().String(), it.CreatedBy(),
				fmtTime(it.CreatedAt()), fmtTime(it.UpdatedAt()))
			if err != nil {
				return fmt.Errorf("inserting backlog item: %w", err)
			}
		}
		return nil
	})
}

func (r *BacklogRepository) scanBacklog(ctx context.Context, row rowScanner) (*backlog.ProductBacklog, error) {
	var (
		idStr, teamStr, createdStr, notes string
		refined                           sql.NullString
	)
	if err := row.Scan(&idStr, &teamStr, &createdStr, &refined, &notes); err != nil {
		return nil, err
	}

	id, err := backlog.ParseID(idStr)
	if err != nil {
		return nil, fmt.Errorf("backlog row %s: %w", idStr, err)
	}
	teamID, err := team.ParseID(teamStr)
	if err != nil {
		return nil, fmt.Errorf("backlog row %s: %w", idStr, err)
	}
	createdAt, err := parseTime(createdStr)
	if err != nil {
		return nil, fmt.Errorf("backlog row %s: %w", idStr, err)
	}
	lastRefined, err := parseTimePtr(refined)
	if err != nil {
		return nil, fmt.Errorf("backlog row %s: %w", idStr, err)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return backlog.Rehydrate(id, teamID, createdAt, lastRefined, notes, items), nil
}

func (r *BacklogRepository) loadItems(ctx context.Context, id backlog.ID) ([]*backlog.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, item_type, priority, story_points, status,
			acceptance_criteria, created_by, created_at, updated_at
		FROM backlog_items WHERE backlog_id = ? ORDER BY created_at, id`, id.String())
	if err != nil {
		return nil, fmt.Errorf("loading backlog items: %w", err)
	}
	defer rows.Close()

	var items []*backlog.Item
	for rows.Next() {
		it, err := scanBacklogItem(rows, id)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating backlog items: %w", err)
	}
	return items, nil
}

func scanBacklogItem(row rowScanner, backlogID backlog.ID) (*backlog.Item, error) {
	var (
		idStr, titleStr, descStr, typeStr, statusStr string
		criteriaStr, createdBy, createdStr, updStr   string
		priority                                     int
		points                                       sql.NullInt64
	)
	if err := row.Scan(&idStr, &titleStr, &descStr, &typeStr, &priority, &points,
		&statusStr, &criteriaStr, &createdBy, &createdStr, &updStr); err != nil {
		return nil, err
	}

	id, err := backlog.ParseItemID(idStr)
	if err != nil {
		return nil, fmt.Errorf("backlog item row %s: %w", idStr, err)
	}
	title, err := backlog.NewTitle(titleStr)
	if err != nil {
		return nil, fmt.Errorf("backlog item row %s: %w", idStr, err)
	}
	desc, err := backlog.NewDescription(descStr)
	if err != nil {
		return nil, fmt.Errorf("backlog item row %s: %w", idStr, err)
	}
	itemType, err := backlog.NewItemType(typeStr)
	if err != nil {
		return nil, fmt.Errorf("backlog item row %s: %w", idStr, err)
	}
	prio, err := backlog.NewPriority(priority)
	if err != nil {
		return nil, fmt.Errorf("backlog item row %s: %w", idStr, err)
	}
	var storyPoints *backlog.StoryPoints
	if points.Valid {
		sp, err := backlog.NewStoryPoints(int(points.Int64))
		if err != nil {
			return nil, fmt.Errorf("backlog item row %s: %w", idStr, err)
		}
		storyPoints = &sp
	}
	status := backlog.Status(statusStr)
	if !status.IsValid() {
		return nil, fmt.Errorf("backlog item row %s: invalid status %q", idStr, statusStr)
	}
	var criteria backlog.AcceptanceCriteria
	if criteriaStr != "" {
		if criteria, err = backlog.NewAcceptanceCriteria(criteriaStr); err != nil {
			return nil, fmt.Errorf("backlog item row %s: %w", idStr, err)
		}
	}
	createdAt, err := parseTime(createdStr)
	if err != nil {
		return nil, fmt.Errorf("backlog item row %s: %w", idStr, err)
	}
	updatedAt, err := parseTime(updStr)
	if err != nil {
		return nil, fmt.Errorf("backlog item row %s: %w", idStr, err)
	}

	return backlog.RehydrateItem(id, backlogID, title, desc, itemType, prio,
		storyPoints, status, criteria, createdBy, createdAt, updatedAt), nil
}

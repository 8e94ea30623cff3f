package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/backlog"
	"github.com/sprintdeck/scrumcore/internal/domain/sprint"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
)

// SprintRepository implements ports.SprintRepository on SQLite.
type SprintRepository struct {
	db *DB
}

func NewSprintRepository(db *DB) *SprintRepository {
	return &SprintRepository{db: db}
}

func (r *SprintRepository) Get(ctx context.Context, id sprint.ID) (*sprint.Sprint, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, team_id, goal, start_date, end_date, status, capacity_hours,
			actual_velocity, created_at, actual_start, actual_end, cancel_reason
		FROM sprints WHERE id = ?`, id.String())

	s, err := r.scanSprint(ctx, row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("sprint %s not found", id)
	}
	return s, err
}

func (r *SprintRepository) ListByTeam(ctx context.Context, teamID team.ID) ([]*sprint.Sprint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, team_id, goal, start_date, end_date, status, capacity_hours,
			actual_velocity, created_at, actual_start, actual_end, cancel_reason
		FROM sprints WHERE team_id = ? ORDER BY start_date, id`, teamID.String())
	if err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}
	defer rows.Close()

	var sprints []*sprint.Sprint
	for rows.Next() {
		s, err := scanSprintHeader(rows)
		if err != nil {
			return nil, err
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprints: %w", err)
	}

	for i, s := range sprints {
		items, err := r.loadItems(ctx, s.ID())
		if err != nil {
			return nil, err
		}
		sprints[i] = rehydrateWithItems(s, items)
	}
	return sprints, nil
}

func (r *SprintRepository) Save(ctx context.Context, s *sprint.Sprint) error {
	return inTx(ctx, r.db.DB, func(tx *sql.Tx) error {
		var velocity any
		if v := s.ActualVelocity(); v != nil {
			velocity = v.Points()
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO sprints (id, team_id, goal, start_date, end_date, status,
				capacity_hours, actual_velocity, created_at, actual_start, actual_end, cancel_reason)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				goal = excluded.goal,
				status = excluded.status,
				actual_velocity = excluded.actual_velocity,
				actual_start = excluded.actual_start,
				actual_end = excluded.actual_end,
				cancel_reason = excluded.cancel_reason`,
			s.ID().String(), s.TeamID().String(), s.Goal().String(),
			fmtTime(s.StartDate()), fmtTime(s.EndDate()), s.Status().String(),
			s.Capacity().Hours(), velocity, fmtTime(s.CreatedAt()),
			fmtTimePtr(s.ActualStart()), fmtTimePtr(s.ActualEnd()), s.CancelReason())
		if err != nil {
			return fmt.Errorf("upserting sprint: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM sprint_items WHERE sprint_id = ?`, s.ID().String()); err != nil {
			return fmt.Errorf("clearing sprint items: %w", err)
		}

		for _, it := range s.Items() {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO sprint_items (id, sprint_id, product_item_id, story_points,
					original_estimate, remaining_work, added_at, completed_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				it.ID().String(), s.ID().String(), it.ProductItemID().String(),
				it.StoryPoints().Points(), it.OriginalEstimate().Value(),
				it.RemainingWork().Value(), fmtTime(it.AddedAt()), fmtTimePtr(it.CompletedAt()))
			if err != nil {
				return fmt.Errorf("inserting sprint item: %w", err)
			}

			for _, task := range it.Tasks() {
				_, err := tx.ExecContext(ctx, `
					INSERT INTO sprint_tasks (id, item_id, title, description, status,
						original_estimate, remaining_hours, ever_started, created_at, started_at, completed_at)
					VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
					task.ID().String(), it.ID().String(), task.Title().String(),
					task.Description().String(), task.Status().String(),
					task.OriginalEstimate().Value(), task.RemainingHours().Value(),
					task.EverStarted(), fmtTime(task.CreatedAt()),
					fmtTimePtr(task.StartedAt()), fmtTimePtr(task.CompletedAt()))
				if err != nil {
					return fmt.Errorf("inserting sprint task: %w", err)
				}
			}
		}
		return nil
	})
}

func (r *SprintRepository) scanSprint(ctx context.Context, row rowScanner) (*sprint.Sprint, error) {
	s, err := scanSprintHeader(row)
	if err != nil {
		return nil, err
	}
	items, err := r.loadItems(ctx, s.ID())
	if err != nil {
		return nil, err
	}
	return rehydrateWithItems(s, items), nil
}

// scanSprintHeader reads a sprint row into a rehydrated aggregate without
// items; rehydrateWithItems attaches them afterwards.
func scanSprintHeader(row rowScanner) (*sprint.Sprint, error) {
	var (
		idStr, teamStr, goalStr, startStr, endStr, statusStr, createdStr, cancelReason string
		capacity                                                                      int
		velocity                                                                      sql.NullInt64
		actualStart, actualEnd                                                        sql.NullString
	)
	if err := row.Scan(&idStr, &teamStr, &goalStr, &startStr, &endStr, &statusStr,
		&capacity, &velocity, &createdStr, &actualStart, &actualEnd, &cancelReason); err != nil {
		return nil, err
	}

	id, err := sprint.ParseID(idStr)
	if err != nil {
		return nil, fmt.Errorf("sprint row %s: %w", idStr, err)
	}
	teamID, err := team.ParseID(teamStr)
	if err != nil {
		return nil, fmt.Errorf("sprint row %s: %w", idStr, err)
	}
	goal, err := sprint.NewGoal(goalStr)
	if err != nil {
		return nil, fmt.Errorf("sprint row %s: %w", idStr, err)
	}
	start, err := parseTime(startStr)
	if err != nil {
		return nil, fmt.Errorf("sprint row %s: %w", idStr, err)
	}
	end, err := parseTime(endStr)
	if err != nil {
		return nil, fmt.Errorf("sprint row %s: %w", idStr, err)
	}
	status := sprint.Status(statusStr)
	if !status.IsValid() {
		return nil, fmt.Errorf("sprint row %s: invalid status %q", idStr, statusStr)
	}
	capHours, err := sprint.NewCapacity(capacity)
	if err != nil {
		return nil, fmt.Errorf("sprint row %s: %w", idStr, err)
	}
	var actualVelocity *sprint.ActualVelocity
	if velocity.Valid {
		v, err := sprint.NewActualVelocity(int(velocity.Int64))
		if err != nil {
			return nil, fmt.Errorf("sprint row %s: %w", idStr, err)
		}
		actualVelocity = &v
	}
	createdAt, err := parseTime(createdStr)
	if err != nil {
		return nil, fmt.Errorf("sprint row %s: %w", idStr, err)
	}
	started, err := parseTimePtr(actualStart)
	if err != nil {
		return nil, fmt.Errorf("sprint row %s: %w", idStr, err)
	}
	ended, err := parseTimePtr(actualEnd)
	if err != nil {
		return nil, fmt.Errorf("sprint row %s: %w", idStr, err)
	}

	return sprint.Rehydrate(id, teamID, goal, start, end, status, capHours,
		actualVelocity, createdAt, started, ended, cancelReason, nil), nil
}

func rehydrateWithItems(s *sprint.Sprint, items []*sprint.Item) *sprint.Sprint {
	return sprint.Rehydrate(s.ID(), s.TeamID(), s.Goal(), s.StartDate(), s.EndDate(),
		s.Status(), s.Capacity(), s.ActualVelocity(), s.CreatedAt(),
		s.ActualStart(), s.ActualEnd(), s.CancelReason(), items)
}

func (r *SprintRepository) loadItems(ctx context.Context, id sprint.ID) ([]*sprint.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_item_id, story_points, original_estimate, remaining_work, added_at, completed_at
		FROM sprint_items WHERE sprint_id = ? ORDER BY added_at, id`, id.String())
	if err != nil {
		return nil, fmt.Errorf("loading sprint items: %w", err)
	}
	defer rows.Close()

	var items []*sprint.Item
	for rows.Next() {
		it, err := scanSprintItem(rows, id)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprint items: %w", err)
	}

	for i, it := range items {
		tasks, err := r.loadTasks(ctx, it.ID())
		if err != nil {
			return nil, err
		}
		items[i] = sprint.RehydrateItem(it.ID(), id, it.ProductItemID(), it.StoryPoints(),
			it.OriginalEstimate(), it.RemainingWork(), it.AddedAt(), it.CompletedAt(), tasks)
	}
	return items, nil
}

func scanSprintItem(row rowScanner, sprintID sprint.ID) (*sprint.Item, error) {
	var (
		idStr, productStr, addedStr string
		points                      int
		estimate, remaining         float64
		completed                   sql.NullString
	)
	if err := row.Scan(&idStr, &productStr, &points, &estimate, &remaining, &addedStr, &completed); err != nil {
		return nil, err
	}

	id, err := sprint.ParseItemID(idStr)
	if err != nil {
		return nil, fmt.Errorf("sprint item row %s: %w", idStr, err)
	}
	productID, err := backlog.ParseItemID(productStr)
	if err != nil {
		return nil, fmt.Errorf("sprint item row %s: %w", idStr, err)
	}
	sp, err := sprint.NewStoryPoints(points)
	if err != nil {
		return nil, fmt.Errorf("sprint item row %s: %w", idStr, err)
	}
	est, err := sprint.NewHours(estimate)
	if err != nil {
		return nil, fmt.Errorf("sprint item row %s: %w", idStr, err)
	}
	rem, err := sprint.NewHours(remaining)
	if err != nil {
		return nil, fmt.Errorf("sprint item row %s: %w", idStr, err)
	}
	addedAt, err := parseTime(addedStr)
	if err != nil {
		return nil, fmt.Errorf("sprint item row %s: %w", idStr, err)
	}
	completedAt, err := parseTimePtr(completed)
	if err != nil {
		return nil, fmt.Errorf("sprint item row %s: %w", idStr, err)
	}

	return sprint.RehydrateItem(id, sprintID, productID, sp, est, rem, addedAt, completedAt, nil), nil
}

func (r *SprintRepository) loadTasks(ctx context.Context, id sprint.ItemID) ([]*sprint.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, status, original_estimate, remaining_hours,
			ever_started, created_at, started_at, completed_at
		FROM sprint_tasks WHERE item_id = ? ORDER BY created_at, id`, id.String())
	if err != nil {
		return nil, fmt.Errorf("loading sprint tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*sprint.Task
	for rows.Next() {
		t, err := scanTask(rows, id)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprint tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(row rowScanner, itemID sprint.ItemID) (*sprint.Task, error) {
	var (
		idStr, titleStr, descStr, statusStr, createdStr string
		estimate, remaining                             float64
		everStarted                                     bool
		started, completed                              sql.NullString
	)
	if err := row.Scan(&idStr, &titleStr, &descStr, &statusStr, &estimate, &remaining,
		&everStarted, &createdStr, &started, &completed); err != nil {
		return nil, err
	}

	id, err := sprint.ParseTaskID(idStr)
	if err != nil {
		return nil, fmt.Errorf("task row %s: %w", idStr, err)
	}
	title, err := sprint.NewTaskTitle(titleStr)
	if err != nil {
		return nil, fmt.Errorf("task row %s: %w", idStr, err)
	}
	desc, err := sprint.NewTaskDescription(descStr)
	if err != nil {
		return nil, fmt.Errorf("task row %s: %w", idStr, err)
	}
	status := sprint.TaskStatus(statusStr)
	if !status.IsValid() {
		return nil, fmt.Errorf("task row %s: invalid status %q", idStr, statusStr)
	}
	est, err := sprint.NewEstimateHours(estimate)
	if err != nil {
		return nil, fmt.Errorf("task row %s: %w", idStr, err)
	}
	rem, err := sprint.NewHours(remaining)
	if err != nil {
		return nil, fmt.Errorf("task row %s: %w", idStr, err)
	}
	createdAt, err := parseTime(createdStr)
	if err != nil {
		return nil, fmt.Errorf("task row %s: %w", idStr, err)
	}
	startedAt, err := parseTimePtr(started)
	if err != nil {
		return nil, fmt.Errorf("task row %s: %w", idStr, err)
	}
	completedAt, err := parseTimePtr(completed)
	if err != nil {
		return nil, fmt.Errorf("task row %s: %w", idStr, err)
	}

	return sprint.RehydrateTask(id, itemID, title, desc, status, est, rem,
		everStarted, createdAt, startedAt, completedAt), nil
}

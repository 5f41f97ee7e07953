package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"workstream/internal/core/domain"
	"workstream/internal/core/ports"
)

const listTeamTasksQuery = `
SELECT id, team_id, title, description, section, assignee, due_date, completed, recurrence, created_at, updated_at
FROM tasks
WHERE team_id = ?
ORDER BY seq;
`

const getTaskQuery = `
SELECT id, team_id, title, description, section, assignee, due_date, completed, recurrence, created_at, updated_at
FROM tasks
WHERE team_id = ? AND id = ?;
`

const nextTaskSeqQuery = `SELECT COALESCE(MAX(seq), 0) + 1 FROM tasks WHERE team_id = ?`

const insertTaskQuery = `
INSERT INTO tasks (id, team_id, seq, title, description, section, assignee, due_date, completed, recurrence, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

const updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, section = ?, assignee = ?, due_date = ?, completed = ?, recurrence = ?, updated_at = ?
WHERE team_id = ? AND id = ?;
`

const insertHistoryQuery = `
INSERT INTO task_history (task_id, seq, id, event_type, details, created_at)
SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?
FROM task_history
WHERE task_id = ?;
`

const listHistoryQuery = `
SELECT id, task_id, event_type, details, created_at
FROM task_history
WHERE task_id = ?
ORDER BY seq;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string         `db:"id"`
	TeamID      string         `db:"team_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Section     string         `db:"section"`
	Assignee    string         `db:"assignee"`
	DueDate     sql.NullTime   `db:"due_date"`
	Completed   bool           `db:"completed"`
	Recurrence  string         `db:"recurrence"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type historyRow struct {
	ID        string    `db:"id"`
	TaskID    string    `db:"task_id"`
	EventType string    `db:"event_type"`
	Details   string    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTeamTasks(ctx context.Context, teamID string) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTeamTasksQuery, teamID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, teamID, taskID string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, teamID, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

// CreateTask stores task after the tasks already in its team, so listings
// keep creation order even when timestamps collide.
func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task, entry domain.HistoryEntry) error {
	return withRetryTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var seq int64
		if err := tx.GetContext(ctx, &seq, nextTaskSeqQuery, task.TeamID); err != nil {
			return fmt.Errorf("next task seq: %w", err)
		}

		if _, err := tx.ExecContext(
			ctx,
			insertTaskQuery,
			task.ID,
			task.TeamID,
			seq,
			task.Title,
			nullString(task.Description),
			task.Section,
			task.Assignee,
			nullTime(task.DueDate),
			task.Completed,
			string(domain.NormalizeRecurrence(task.Recurrence)),
			task.CreatedAt,
			task.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert task: %w", err)
		}

		return appendHistory(ctx, tx, entry)
	})
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task domain.Task, entry domain.HistoryEntry) error {
	return withRetryTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(
			ctx,
			updateTaskQuery,
			task.Title,
			nullString(task.Description),
			task.Section,
			task.Assignee,
			nullTime(task.DueDate),
			task.Completed,
			string(domain.NormalizeRecurrence(task.Recurrence)),
			task.UpdatedAt,
			task.TeamID,
			task.ID,
		); err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		return appendHistory(ctx, tx, entry)
	})
}

func (r *TaskRepository) DeleteTask(ctx context.Context, teamID, taskID string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE team_id = ? AND id = ?", teamID, taskID)
		if err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		if err := expectAffected(result, domain.ErrTaskNotFound); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM task_history WHERE task_id = ?", taskID); err != nil {
			return fmt.Errorf("delete task history: %w", err)
		}
		return nil
	})
}

func (r *TaskRepository) ListHistory(ctx context.Context, taskID string) ([]domain.HistoryEntry, error) {
	var rows []historyRow
	if err := r.db.SelectContext(ctx, &rows, listHistoryQuery, taskID); err != nil {
		return nil, err
	}

	history := make([]domain.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		history = append(history, domain.HistoryEntry{
			ID:        row.ID,
			TaskID:    row.TaskID,
			EventType: domain.HistoryEventType(row.EventType),
			Details:   row.Details,
			CreatedAt: row.CreatedAt,
		})
	}

	return history, nil
}

func appendHistory(ctx context.Context, tx *sqlx.Tx, entry domain.HistoryEntry) error {
	if _, err := tx.ExecContext(
		ctx,
		insertHistoryQuery,
		entry.TaskID,
		entry.ID,
		string(entry.EventType),
		entry.Details,
		entry.CreatedAt,
		entry.TaskID,
	); err != nil {
		return fmt.Errorf("insert task history: %w", err)
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:         row.ID,
		TeamID:     row.TeamID,
		Title:      row.Title,
		Section:    row.Section,
		Assignee:   row.Assignee,
		Completed:  row.Completed,
		Recurrence: domain.NormalizeRecurrence(domain.Recurrence(row.Recurrence)),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}

// expectAffected returns notFound when result touched no row.
func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

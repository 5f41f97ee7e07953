package ports

import (
	"context"

	"workstream/internal/core/domain"
	"workstream/internal/core/taskquery"
)

type TaskRepository interface {
	ListTeamTasks(ctx context.Context, teamID string) ([]domain.Task, error)
	GetTask(ctx context.Context, teamID, taskID string) (domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task, entry domain.HistoryEntry) error
	// UpdateTask persists task and appends entry in the same transaction.
	UpdateTask(ctx context.Context, task domain.Task, entry domain.HistoryEntry) error
	DeleteTask(ctx context.Context, teamID, taskID string) error
	ListHistory(ctx context.Context, taskID string) ([]domain.HistoryEntry, error)
}

type TaskService interface {
	ListTeamTasks(ctx context.Context, requester, teamID string, params taskquery.Params) ([]domain.Task, error)
	ListPersonalTasks(ctx context.Context, requester, teamID string, params taskquery.Params) ([]domain.Task, error)
	GetTask(ctx context.Context, requester, teamID, taskID string) (domain.Task, error)
	CreateTask(ctx context.Context, requester, teamID string, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, requester, teamID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	ToggleTask(ctx context.Context, requester, teamID, taskID string) (domain.Task, error)
	DeleteTask(ctx context.Context, requester, teamID, taskID string) error
	ListHistory(ctx context.Context, requester, teamID, taskID string) ([]domain.HistoryEntry, error)
}

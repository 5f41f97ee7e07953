package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workstream/internal/core/domain"
	"workstream/internal/core/ports"
	"workstream/internal/core/taskquery"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	teamRepository ports.TeamRepository
	now            func() time.Time
	newID          func() string
}

func NewTaskService(taskRepository ports.TaskRepository, teamRepository ports.TeamRepository) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		teamRepository: teamRepository,
		now:            func() time.Time { return time.Now().UTC() },
		newID:          uuid.NewString,
	}
}

func (s *TaskService) ListTeamTasks(ctx context.Context, requester, teamID string, params taskquery.Params) ([]domain.Task, error) {
	if _, err := memberTeam(ctx, s.teamRepository, requester, teamID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepository.ListTeamTasks(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team tasks: %w", err)
	}

	params.PersonalUserID = ""
	return taskquery.Query(tasks, params), nil
}

func (s *TaskService) ListPersonalTasks(ctx context.Context, requester, teamID string, params taskquery.Params) ([]domain.Task, error) {
	if _, err := memberTeam(ctx, s.teamRepository, requester, teamID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepository.ListTeamTasks(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team tasks: %w", err)
	}

	params.PersonalUserID = requester
	return taskquery.Query(tasks, params), nil
}

func (s *TaskService) GetTask(ctx context.Context, requester, teamID, taskID string) (domain.Task, error) {
	if _, err := memberTeam(ctx, s.teamRepository, requester, teamID); err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.GetTask(ctx, teamID, taskID)
}

func (s *TaskService) CreateTask(ctx context.Context, requester, teamID string, input domain.CreateTaskInput) (domain.Task, error) {
	team, err := memberTeam(ctx, s.teamRepository, requester, teamID)
	if err != nil {
		return domain.Task{}, err
	}

	section := strings.TrimSpace(input.Section)
	if section == "" {
		section = team.DefaultSection()
	}
	if !team.HasSection(section) {
		return domain.Task{}, domain.ErrSectionNotFound
	}
	if input.Assignee != "" && !team.HasMember(input.Assignee) {
		return domain.Task{}, domain.ErrAssigneeNotMember
	}

	now := s.now()
	task := domain.Task{
		ID:          s.newID(),
		TeamID:      team.ID,
		Title:       input.Title,
		Description: input.Description,
		Section:     section,
		Assignee:    input.Assignee,
		DueDate:     input.DueDate,
		Recurrence:  domain.NormalizeRecurrence(input.Recurrence),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	entry := s.historyEntry(task.ID, domain.HistoryCreated, formatCreatedDetails(task))
	if err := s.taskRepository.CreateTask(ctx, task, entry); err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}

	zap.L().Info("task created", zap.String("team_id", team.ID), zap.String("task_id", task.ID), zap.String("by", requester))
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, requester, teamID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	team, err := memberTeam(ctx, s.teamRepository, requester, teamID)
	if err != nil {
		return domain.Task{}, err
	}

	before, err := s.taskRepository.GetTask(ctx, teamID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	after := before
	if input.Title != nil {
		after.Title = *input.Title
	}
	if input.DescriptionSet {
		after.Description = input.Description
	}
	if input.Section != nil && *input.Section != before.Section {
		if !team.HasSection(*input.Section) {
			return domain.Task{}, domain.ErrSectionNotFound
		}
		after.Section = *input.Section
	}
	if input.Assignee != nil {
		if *input.Assignee != "" && !team.HasMember(*input.Assignee) {
			return domain.Task{}, domain.ErrAssigneeNotMember
		}
		after.Assignee = *input.Assignee
	}
	if input.DueDateSet {
		after.DueDate = input.DueDate
	}
	if input.Recurrence != nil {
		after.Recurrence = domain.NormalizeRecurrence(*input.Recurrence)
	}
	after.UpdatedAt = s.now()

	entry := s.historyEntry(after.ID, domain.HistoryUpdated, formatTaskDiff(before, after))
	if err := s.taskRepository.UpdateTask(ctx, after, entry); err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}

	return after, nil
}

// ToggleTask flips the completion flag and logs the before/after snapshot.
func (s *TaskService) ToggleTask(ctx context.Context, requester, teamID, taskID string) (domain.Task, error) {
	if _, err := memberTeam(ctx, s.teamRepository, requester, teamID); err != nil {
		return domain.Task{}, err
	}

	before, err := s.taskRepository.GetTask(ctx, teamID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	after := before
	after.Completed = !before.Completed
	after.UpdatedAt = s.now()

	event := domain.HistoryCompleted
	if !after.Completed {
		event = domain.HistoryReopened
	}

	entry := s.historyEntry(after.ID, event, formatToggleDetails(before, after))
	if err := s.taskRepository.UpdateTask(ctx, after, entry); err != nil {
		return domain.Task{}, fmt.Errorf("toggle task: %w", err)
	}

	return after, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, requester, teamID, taskID string) error {
	if _, err := memberTeam(ctx, s.teamRepository, requester, teamID); err != nil {
		return err
	}

	if err := s.taskRepository.DeleteTask(ctx, teamID, taskID); err != nil {
		return err
	}

	zap.L().Info("task deleted", zap.String("team_id", teamID), zap.String("task_id", taskID), zap.String("by", requester))
	return nil
}

func (s *TaskService) ListHistory(ctx context.Context, requester, teamID, taskID string) ([]domain.HistoryEntry, error) {
	if _, err := s.GetTask(ctx, requester, teamID, taskID); err != nil {
		return nil, err
	}
	return s.taskRepository.ListHistory(ctx, taskID)
}

func (s *TaskService) historyEntry(taskID string, event domain.HistoryEventType, details string) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:        s.newID(),
		TaskID:    taskID,
		EventType: event,
		Details:   details,
		CreatedAt: s.now(),
	}
}

// memberTeam loads the team and checks that requester belongs to it.
func memberTeam(ctx context.Context, teams ports.TeamRepository, requester, teamID string) (domain.Team, error) {
	team, err := teams.GetTeam(ctx, teamID)
	if err != nil {
		return domain.Team{}, err
	}
	if !team.HasMember(requester) {
		return domain.Team{}, domain.ErrNotTeamMember
	}
	return team, nil
}

var _ ports.TaskService = (*TaskService)(nil)

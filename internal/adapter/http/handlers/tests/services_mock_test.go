package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"workstream/internal/core/domain"
	"workstream/internal/core/kpi"
	"workstream/internal/core/ports"
	"workstream/internal/core/taskquery"
)

type taskServiceMock struct {
	mock.Mock
}

func tasksResult(args mock.Arguments) []domain.Task {
	if value := args.Get(0); value != nil {
		return value.([]domain.Task)
	}
	return nil
}

func (m *taskServiceMock) ListTeamTasks(ctx context.Context, requester, teamID string, params taskquery.Params) ([]domain.Task, error) {
	args := m.Called(ctx, requester, teamID, params)
	return tasksResult(args), args.Error(1)
}

func (m *taskServiceMock) ListPersonalTasks(ctx context.Context, requester, teamID string, params taskquery.Params) ([]domain.Task, error) {
	args := m.Called(ctx, requester, teamID, params)
	return tasksResult(args), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, requester, teamID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, requester, teamID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, requester, teamID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, requester, teamID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, requester, teamID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, requester, teamID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ToggleTask(ctx context.Context, requester, teamID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, requester, teamID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, requester, teamID, taskID string) error {
	return m.Called(ctx, requester, teamID, taskID).Error(0)
}

func (m *taskServiceMock) ListHistory(ctx context.Context, requester, teamID, taskID string) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, requester, teamID, taskID)

	var entries []domain.HistoryEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.HistoryEntry)
	}
	return entries, args.Error(1)
}

type teamServiceMock struct {
	mock.Mock
}

func (m *teamServiceMock) CreateTeam(ctx context.Context, requester string, input domain.CreateTeamInput) (domain.Team, error) {
	args := m.Called(ctx, requester, input)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamServiceMock) GetTeam(ctx context.Context, requester, teamID string) (domain.Team, error) {
	args := m.Called(ctx, requester, teamID)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamServiceMock) ListUserTeams(ctx context.Context, requester string) ([]domain.Team, error) {
	args := m.Called(ctx, requester)

	var teams []domain.Team
	if value := args.Get(0); value != nil {
		teams = value.([]domain.Team)
	}
	return teams, args.Error(1)
}

func (m *teamServiceMock) ListMembers(ctx context.Context, requester, teamID string) ([]domain.User, error) {
	args := m.Called(ctx, requester, teamID)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *teamServiceMock) JoinTeam(ctx context.Context, requester, teamID string) (domain.Team, error) {
	args := m.Called(ctx, requester, teamID)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamServiceMock) LeaveTeam(ctx context.Context, requester, teamID string) error {
	return m.Called(ctx, requester, teamID).Error(0)
}

func (m *teamServiceMock) RemoveMember(ctx context.Context, requester, teamID, email string) error {
	return m.Called(ctx, requester, teamID, email).Error(0)
}

func (m *teamServiceMock) DeleteTeam(ctx context.Context, requester, teamID string) error {
	return m.Called(ctx, requester, teamID).Error(0)
}

func (m *teamServiceMock) AddSection(ctx context.Context, requester, teamID, section string) (domain.Team, error) {
	args := m.Called(ctx, requester, teamID, section)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamServiceMock) RemoveSection(ctx context.Context, requester, teamID, section string) (domain.Team, error) {
	args := m.Called(ctx, requester, teamID, section)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamServiceMock) InviteLink(ctx context.Context, requester, teamID string) (string, error) {
	args := m.Called(ctx, requester, teamID)
	return args.String(0), args.Error(1)
}

func (m *teamServiceMock) TeamKPIs(ctx context.Context, requester, teamID string) (kpi.Team, error) {
	args := m.Called(ctx, requester, teamID)
	return args.Get(0).(kpi.Team), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) SignIn(ctx context.Context, input domain.SignInInput) (domain.User, bool, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Bool(1), args.Error(2)
}

func (m *userServiceMock) GetUser(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) UpdateProfile(ctx context.Context, email string, input domain.UpdateProfileInput) (domain.User, error) {
	args := m.Called(ctx, email, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) SetActiveTeam(ctx context.Context, email, teamID string) (domain.User, error) {
	args := m.Called(ctx, email, teamID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) PersonalKPIs(ctx context.Context, email string) (kpi.Personal, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(kpi.Personal), args.Error(1)
}

type chatServiceMock struct {
	mock.Mock
}

func (m *chatServiceMock) ListChats(ctx context.Context, requester, teamID string) ([]domain.Chat, error) {
	args := m.Called(ctx, requester, teamID)
	if value := args.Get(0); value != nil {
		return value.([]domain.Chat), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *chatServiceMock) ListMessages(ctx context.Context, requester, teamID, peer string) ([]domain.Message, error) {
	args := m.Called(ctx, requester, teamID, peer)
	if value := args.Get(0); value != nil {
		return value.([]domain.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *chatServiceMock) SendMessage(ctx context.Context, requester, teamID, peer, body string) (domain.Message, error) {
	args := m.Called(ctx, requester, teamID, peer, body)
	return args.Get(0).(domain.Message), args.Error(1)
}

func (m *chatServiceMock) MarkSeen(ctx context.Context, requester, teamID, peer string) error {
	return m.Called(ctx, requester, teamID, peer).Error(0)
}

var (
	_ ports.TaskService = (*taskServiceMock)(nil)
	_ ports.TeamService = (*teamServiceMock)(nil)
	_ ports.UserService = (*userServiceMock)(nil)
	_ ports.ChatService = (*chatServiceMock)(nil)
)

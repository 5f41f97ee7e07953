//go:build integration
// +build integration

package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	dbadapter "workstream/internal/adapter/db"
	httpadapter "workstream/internal/adapter/http"
	"workstream/internal/adapter/http/dto"
	"workstream/internal/adapter/http/handlers"
	appservice "workstream/internal/app/service"
	"workstream/pkg/apierrors"
	"workstream/pkg/auth"
)

type TasksIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
	tokens *auth.TokenManager
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	taskRepository := dbadapter.NewTaskRepository(s.DB)
	teamRepository := dbadapter.NewTeamRepository(s.DB)
	userRepository := dbadapter.NewUserRepository(s.DB)
	chatRepository := dbadapter.NewChatRepository(s.DB)

	taskService := appservice.NewTaskService(taskRepository, teamRepository)
	teamService := appservice.NewTeamService(teamRepository, userRepository, taskRepository, "https://invite.test")
	userService := appservice.NewUserService(userRepository, taskRepository)
	chatService := appservice.NewChatService(chatRepository, teamRepository)

	s.tokens = auth.NewTokenManager("integration-secret", time.Hour)
	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(s.DB),
		Me:     handlers.NewMeHandler(userService, taskService),
		Team:   handlers.NewTeamHandler(teamService),
		Task:   handlers.NewTaskHandler(taskService),
		Chat:   handlers.NewChatHandler(chatService),
	}, s.tokens)

	s.router = router
}

func (s *TasksIntegrationSuite) request(method, path, email string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if email != "" {
		token, err := s.tokens.GenerateToken(auth.Claims{Email: email, FirstName: "User", LastName: email})
		s.Require().NoError(err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) decode(rec *httptest.ResponseRecorder, target interface{}) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), target))
}

func (s *TasksIntegrationSuite) TestHealth_ReportsDatabase() {
	rec := s.request(http.MethodGet, "/api/health/report", "", nil)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got handlers.StatusReport
	s.decode(rec, &got)
	s.Require().Equal(handlers.StatusOk, got.Status.Database)
	s.Require().Equal("mysql", got.Status.Driver)
	s.Require().Equal(handlers.StatusOk, got.Overall)
	s.Require().Equal(handlers.StatusOk, got.Status.Tables["chat_messages"])
}

func (s *TasksIntegrationSuite) TestTeamWorkflow() {
	s.Require().Equal(http.StatusCreated, s.request(http.MethodPost, "/api/me", "a@x.com", nil).Code)
	s.Require().Equal(http.StatusCreated, s.request(http.MethodPost, "/api/me", "b@x.com", nil).Code)

	rec := s.request(http.MethodPost, "/api/teams", "a@x.com", dto.CreateTeamRequest{Name: "Core"})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var team dto.TeamItem
	s.decode(rec, &team)

	s.Require().Equal(http.StatusOK, s.request(http.MethodPost, "/api/teams/"+team.ID+"/join", "b@x.com", nil).Code)
	s.Require().Equal(http.StatusCreated, s.request(http.MethodPost, "/api/teams/"+team.ID+"/sections", "b@x.com", dto.SectionRequest{Name: "Backlog"}).Code)

	for _, payload := range []map[string]interface{}{
		{"title": "Budget", "assignee": "b@x.com", "due_date": "2026-03-05"},
		{"title": "Report", "assignee": "a@x.com", "section": "Backlog", "due_date": "2026-03-10"},
		{"title": "archive", "recurrence": "weekly"},
	} {
		s.Require().Equal(http.StatusCreated, s.request(http.MethodPost, "/api/teams/"+team.ID+"/tasks", "a@x.com", payload).Code)
	}

	rec = s.request(http.MethodGet, "/api/teams/"+team.ID+"/tasks?sort=due-date-descending", "b@x.com", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var list dto.TaskList
	s.decode(rec, &list)
	s.Require().Equal(3, list.Count)
	s.Require().Equal("Report", list.Tasks[0].Title)
	s.Require().Equal("Budget", list.Tasks[1].Title)
	s.Require().Equal("archive", list.Tasks[2].Title)

	budget := list.Tasks[1]
	rec = s.request(http.MethodPost, "/api/teams/"+team.ID+"/tasks/"+budget.ID+"/toggle", "b@x.com", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/api/me/tasks?status=complete", "b@x.com", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &list)
	s.Require().Equal(1, list.Count)
	s.Require().True(list.Tasks[0].Completed)

	rec = s.request(http.MethodGet, "/api/teams/"+team.ID+"/kpis", "a@x.com", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var stats dto.TeamKPI
	s.decode(rec, &stats)
	s.Require().Equal(1, stats.Summary.Completed)
	s.Require().Equal(2, stats.Summary.Remaining)
	s.Require().Equal(33, stats.Summary.Percentage)
	s.Require().Equal("b@x.com", stats.TopContributors[0].Member.Email)

	rec = s.request(http.MethodGet, "/api/teams/"+team.ID+"/tasks/"+budget.ID+"/history", "a@x.com", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var history []dto.HistoryItem
	s.decode(rec, &history)
	s.Require().Len(history, 2)
	s.Require().Equal("completed", history[1].EventType)
}

func (s *TasksIntegrationSuite) TestOutsiderIsForbidden() {
	s.request(http.MethodPost, "/api/me", "a@x.com", nil)
	rec := s.request(http.MethodPost, "/api/teams", "a@x.com", dto.CreateTeamRequest{Name: "Private"})
	var team dto.TeamItem
	s.decode(rec, &team)

	rec = s.request(http.MethodGet, "/api/teams/"+team.ID+"/tasks", "z@x.com", nil)
	s.Require().Equal(http.StatusForbidden, rec.Code)

	var got apierrors.JsonErr
	s.decode(rec, &got)
	s.Require().Equal(http.StatusForbidden, got.ErrDetails.Code)

	s.Require().Equal(http.StatusUnauthorized, s.request(http.MethodGet, "/api/teams", "", nil).Code)
}

func (s *TasksIntegrationSuite) TestEqualTitlesKeepCreationOrder() {
	s.request(http.MethodPost, "/api/me", "a@x.com", nil)
	rec := s.request(http.MethodPost, "/api/teams", "a@x.com", dto.CreateTeamRequest{Name: "Core"})
	var team dto.TeamItem
	s.decode(rec, &team)

	// Created within the same second, so created_at cannot order them.
	created := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		rec = s.request(http.MethodPost, "/api/teams/"+team.ID+"/tasks", "a@x.com", map[string]interface{}{"title": "Same"})
		s.Require().Equal(http.StatusCreated, rec.Code)
		var task dto.TaskItem
		s.decode(rec, &task)
		created = append(created, task.ID)
	}

	rec = s.request(http.MethodGet, "/api/teams/"+team.ID+"/tasks", "a@x.com", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var list dto.TaskList
	s.decode(rec, &list)

	got := make([]string, 0, len(list.Tasks))
	for _, task := range list.Tasks {
		got = append(got, task.ID)
	}
	s.Require().Equal(created, got)
}

func (s *TasksIntegrationSuite) TestChatWorkflow() {
	s.request(http.MethodPost, "/api/me", "a@x.com", nil)
	s.request(http.MethodPost, "/api/me", "b@x.com", nil)
	rec := s.request(http.MethodPost, "/api/teams", "a@x.com", dto.CreateTeamRequest{Name: "Core"})
	var team dto.TeamItem
	s.decode(rec, &team)
	s.Require().Equal(http.StatusOK, s.request(http.MethodPost, "/api/teams/"+team.ID+"/join", "b@x.com", nil).Code)

	chats := "/api/teams/" + team.ID + "/chats"
	s.Require().Equal(http.StatusCreated, s.request(http.MethodPost, chats+"/group/messages", "a@x.com", dto.SendMessageRequest{Body: "hello team"}).Code)
	s.Require().Equal(http.StatusCreated, s.request(http.MethodPost, chats+"/direct/b@x.com/messages", "a@x.com", dto.SendMessageRequest{Body: "hi bob"}).Code)
	s.Require().Equal(http.StatusBadRequest, s.request(http.MethodPost, chats+"/direct/z@x.com/messages", "a@x.com", dto.SendMessageRequest{Body: "nobody"}).Code)

	rec = s.request(http.MethodGet, chats, "b@x.com", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var list dto.ChatList
	s.decode(rec, &list)
	s.Require().Equal(2, list.UnseenTotal)
	s.Require().Len(list.Chats, 2)
	s.Require().True(list.Chats[0].Group)
	s.Require().Equal("a@x.com", *list.Chats[1].Peer)

	s.Require().Equal(http.StatusNoContent, s.request(http.MethodPost, chats+"/direct/a@x.com/seen", "b@x.com", nil).Code)

	rec = s.request(http.MethodGet, chats, "b@x.com", nil)
	s.decode(rec, &list)
	s.Require().Equal(1, list.UnseenTotal)
}

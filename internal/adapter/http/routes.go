package http

import (
	"github.com/gin-gonic/gin"

	"workstream/internal/adapter/http/handlers"
	"workstream/internal/adapter/http/middleware"
	"workstream/pkg/auth"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Me     *handlers.MeHandler
	Team   *handlers.TeamHandler
	Task   *handlers.TaskHandler
	Chat   *handlers.ChatHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, tokens *auth.TokenManager) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(tokens))

	me := secured.Group("/me")
	{
		me.POST("", h.Me.SignIn)
		me.GET("", h.Me.GetProfile)
		me.PATCH("", h.Me.UpdateProfile)
		me.PUT("/active-team", h.Me.SetActiveTeam)
		me.GET("/tasks", h.Me.ListTasks)
		me.GET("/kpis", h.Me.PersonalKPIs)
	}

	teams := secured.Group("/teams")
	{
		teams.GET("", h.Team.ListTeams)
		teams.POST("", h.Team.CreateTeam)
		teams.GET("/:teamID", h.Team.GetTeam)
		teams.DELETE("/:teamID", h.Team.DeleteTeam)
		teams.POST("/:teamID/join", h.Team.JoinTeam)
		teams.POST("/:teamID/leave", h.Team.LeaveTeam)
		teams.GET("/:teamID/members", h.Team.ListMembers)
		teams.DELETE("/:teamID/members/:email", h.Team.RemoveMember)
		teams.POST("/:teamID/sections", h.Team.AddSection)
		teams.DELETE("/:teamID/sections/:section", h.Team.RemoveSection)
		teams.GET("/:teamID/invite", h.Team.InviteLink)
		teams.GET("/:teamID/kpis", h.Team.TeamKPIs)

		teams.GET("/:teamID/tasks", h.Task.ListTeamTasks)
		teams.POST("/:teamID/tasks", h.Task.CreateTask)
		teams.GET("/:teamID/tasks/:taskID", h.Task.GetTask)
		teams.PATCH("/:teamID/tasks/:taskID", h.Task.UpdateTask)
		teams.DELETE("/:teamID/tasks/:taskID", h.Task.DeleteTask)
		teams.POST("/:teamID/tasks/:taskID/toggle", h.Task.ToggleTask)
		teams.GET("/:teamID/tasks/:taskID/history", h.Task.ListHistory)

		teams.GET("/:teamID/chats", h.Chat.ListChats)
		teams.GET("/:teamID/chats/group/messages", h.Chat.ListMessages)
		teams.POST("/:teamID/chats/group/messages", h.Chat.SendMessage)
		teams.POST("/:teamID/chats/group/seen", h.Chat.MarkSeen)
		teams.GET("/:teamID/chats/direct/:email/messages", h.Chat.ListMessages)
		teams.POST("/:teamID/chats/direct/:email/messages", h.Chat.SendMessage)
		teams.POST("/:teamID/chats/direct/:email/seen", h.Chat.MarkSeen)
	}
}

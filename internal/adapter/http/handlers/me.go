package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"workstream/internal/adapter/http/dto"
	"workstream/internal/adapter/http/mapper"
	"workstream/internal/adapter/http/middleware"
	"workstream/internal/adapter/http/validation"
	"workstream/internal/core/domain"
	"workstream/internal/core/ports"
	"workstream/pkg/apierrors"
)

// MeHandler serves the authenticated user's own resources.
type MeHandler struct {
	userService ports.UserService
	taskService ports.TaskService
}

func NewMeHandler(userService ports.UserService, taskService ports.TaskService) *MeHandler {
	return &MeHandler{userService: userService, taskService: taskService}
}

// SignIn returns the caller's profile, creating it from the token claims and
// the optional body on first sign-in.
func (h *MeHandler) SignIn(c *gin.Context) {
	input := domain.SignInInput{Email: middleware.GetUserEmail(c)}
	if claims := middleware.GetClaims(c); claims != nil {
		input.FirstName = claims.FirstName
		input.LastName = claims.LastName
		input.Photo = claims.Picture
	}

	if c.Request.ContentLength > 0 {
		var req dto.SignInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, apierrors.MsgInvalidProfilePayload)
			return
		}
		input.FirstName = firstNonBlank(req.FirstName, input.FirstName)
		input.LastName = firstNonBlank(req.LastName, input.LastName)
		input.Photo = firstNonBlank(req.Photo, input.Photo)
	}

	user, created, err := h.userService.SignIn(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailSignIn, "failed to sign in")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, mapper.ToUserItem(user))
}

func (h *MeHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), middleware.GetUserEmail(c))
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetUser, "failed to get user")
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidProfilePayload)
		return
	}

	input, err := validation.BuildUpdateProfileInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidProfilePayload)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), middleware.GetUserEmail(c), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateUser, "failed to update user")
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *MeHandler) SetActiveTeam(c *gin.Context) {
	var req dto.ActiveTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.TeamID) == "" {
		respondBadRequest(c, apierrors.MsgInvalidActiveTeam)
		return
	}

	user, err := h.userService.SetActiveTeam(c.Request.Context(), middleware.GetUserEmail(c), strings.TrimSpace(req.TeamID))
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateUser, "failed to set active team")
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

// ListTasks lists the caller's tasks in the team given by the team_id query
// parameter, or in the active team.
func (h *MeHandler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	email := middleware.GetUserEmail(c)
	params := validation.BuildTaskQueryParams(c.Request.URL.Query())

	teamID := strings.TrimSpace(c.Query("team_id"))
	if teamID == "" {
		user, err := h.userService.GetUser(ctx, email)
		if err != nil {
			respondError(c, err, apierrors.MsgFailListTask, "failed to get user")
			return
		}
		if !user.HasActiveTeam() {
			c.JSON(http.StatusOK, mapper.ToTaskList(nil, params.Filters))
			return
		}
		teamID = user.ActiveTeam
	}

	tasks, err := h.taskService.ListPersonalTasks(ctx, email, teamID, params)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask, "failed to list personal tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskList(tasks, params.Filters))
}

func (h *MeHandler) PersonalKPIs(c *gin.Context) {
	stats, err := h.userService.PersonalKPIs(c.Request.Context(), middleware.GetUserEmail(c))
	if err != nil {
		respondError(c, err, apierrors.MsgFailComputeKPI, "failed to compute personal kpis")
		return
	}

	c.JSON(http.StatusOK, mapper.ToPersonalKPI(stats, middleware.GetLang(c)))
}

func firstNonBlank(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

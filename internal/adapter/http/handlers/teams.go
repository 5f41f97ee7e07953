package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workstream/internal/adapter/http/dto"
	"workstream/internal/adapter/http/mapper"
	"workstream/internal/adapter/http/middleware"
	"workstream/internal/adapter/http/validation"
	"workstream/internal/core/ports"
	"workstream/pkg/apierrors"
)

type TeamHandler struct {
	teamService ports.TeamService
}

func NewTeamHandler(teamService ports.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListUserTeams(c.Request.Context(), middleware.GetUserEmail(c))
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTeams, "failed to list teams")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTeamItems(teams))
}

func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTeamPayload)
		return
	}

	input, err := validation.BuildCreateTeamInput(req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTeamPayload)
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), middleware.GetUserEmail(c), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTeam, "failed to create team")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTeamItem(team))
}

func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID := c.Param("teamID")

	team, err := h.teamService.GetTeam(c.Request.Context(), middleware.GetUserEmail(c), teamID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetTeam, "failed to get team", zap.String("team_id", teamID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTeamItem(team))
}

func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	teamID := c.Param("teamID")

	if err := h.teamService.DeleteTeam(c.Request.Context(), middleware.GetUserEmail(c), teamID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTeam, "failed to delete team", zap.String("team_id", teamID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) JoinTeam(c *gin.Context) {
	teamID := c.Param("teamID")

	team, err := h.teamService.JoinTeam(c.Request.Context(), middleware.GetUserEmail(c), teamID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailJoinTeam, "failed to join team", zap.String("team_id", teamID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTeamItem(team))
}

func (h *TeamHandler) LeaveTeam(c *gin.Context) {
	teamID := c.Param("teamID")

	if err := h.teamService.LeaveTeam(c.Request.Context(), middleware.GetUserEmail(c), teamID); err != nil {
		respondError(c, err, apierrors.MsgFailLeaveTeam, "failed to leave team", zap.String("team_id", teamID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) ListMembers(c *gin.Context) {
	teamID := c.Param("teamID")

	members, err := h.teamService.ListMembers(c.Request.Context(), middleware.GetUserEmail(c), teamID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListMembers, "failed to list team members", zap.String("team_id", teamID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToMemberItems(members))
}

func (h *TeamHandler) RemoveMember(c *gin.Context) {
	teamID, email := c.Param("teamID"), c.Param("email")

	if err := h.teamService.RemoveMember(c.Request.Context(), middleware.GetUserEmail(c), teamID, email); err != nil {
		respondError(c, err, apierrors.MsgFailRemoveMember, "failed to remove team member", zap.String("team_id", teamID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) AddSection(c *gin.Context) {
	var req dto.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		respondBadRequest(c, apierrors.MsgInvalidSectionPayload)
		return
	}

	teamID := c.Param("teamID")
	team, err := h.teamService.AddSection(c.Request.Context(), middleware.GetUserEmail(c), teamID, req.Name)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateSection, "failed to add section", zap.String("team_id", teamID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTeamItem(team))
}

func (h *TeamHandler) RemoveSection(c *gin.Context) {
	teamID, section := c.Param("teamID"), c.Param("section")

	team, err := h.teamService.RemoveSection(c.Request.Context(), middleware.GetUserEmail(c), teamID, section)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateSection, "failed to remove section", zap.String("team_id", teamID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTeamItem(team))
}

func (h *TeamHandler) InviteLink(c *gin.Context) {
	teamID := c.Param("teamID")

	link, err := h.teamService.InviteLink(c.Request.Context(), middleware.GetUserEmail(c), teamID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailInviteLink, "failed to build invite link", zap.String("team_id", teamID))
		return
	}

	c.JSON(http.StatusOK, dto.InviteLink{TeamID: teamID, Link: link})
}

func (h *TeamHandler) TeamKPIs(c *gin.Context) {
	teamID := c.Param("teamID")

	stats, err := h.teamService.TeamKPIs(c.Request.Context(), middleware.GetUserEmail(c), teamID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailComputeKPI, "failed to compute team kpis", zap.String("team_id", teamID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTeamKPI(stats, middleware.GetLang(c)))
}

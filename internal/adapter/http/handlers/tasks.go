package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workstream/internal/adapter/http/dto"
	"workstream/internal/adapter/http/mapper"
	"workstream/internal/adapter/http/middleware"
	"workstream/internal/adapter/http/validation"
	"workstream/internal/core/ports"
	"workstream/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTeamTasks(c *gin.Context) {
	teamID := c.Param("teamID")
	params := validation.BuildTaskQueryParams(c.Request.URL.Query())

	tasks, err := h.taskService.ListTeamTasks(c.Request.Context(), middleware.GetUserEmail(c), teamID, params)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask, "failed to list team tasks", zap.String("team_id", teamID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskList(tasks, params.Filters))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	teamID, taskID := c.Param("teamID"), c.Param("taskID")

	task, err := h.taskService.GetTask(c.Request.Context(), middleware.GetUserEmail(c), teamID, taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetTask, "failed to get task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	teamID := c.Param("teamID")
	task, err := h.taskService.CreateTask(c.Request.Context(), middleware.GetUserEmail(c), teamID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask, "failed to create task", zap.String("team_id", teamID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	teamID, taskID := c.Param("teamID"), c.Param("taskID")
	task, err := h.taskService.UpdateTask(c.Request.Context(), middleware.GetUserEmail(c), teamID, taskID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask, "failed to update task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	teamID, taskID := c.Param("teamID"), c.Param("taskID")

	task, err := h.taskService.ToggleTask(c.Request.Context(), middleware.GetUserEmail(c), teamID, taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailToggleTask, "failed to toggle task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	teamID, taskID := c.Param("teamID"), c.Param("taskID")

	if err := h.taskService.DeleteTask(c.Request.Context(), middleware.GetUserEmail(c), teamID, taskID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask, "failed to delete task", zap.String("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ListHistory(c *gin.Context) {
	teamID, taskID := c.Param("teamID"), c.Param("taskID")

	history, err := h.taskService.ListHistory(c.Request.Context(), middleware.GetUserEmail(c), teamID, taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListHistory, "failed to list task history", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToHistoryItems(history))
}

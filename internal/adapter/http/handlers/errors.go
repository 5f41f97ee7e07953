package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"workstream/internal/adapter/http/middleware"
	"workstream/internal/core/domain"
	"workstream/pkg/apierrors"
)

var domainErrors = []struct {
	err    error
	status int
	msgKey string
}{
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrTeamNotFound, http.StatusNotFound, apierrors.MsgTeamNotFound},
	{domain.ErrUserNotFound, http.StatusNotFound, apierrors.MsgUserNotFound},
	{domain.ErrSectionNotFound, http.StatusNotFound, apierrors.MsgSectionNotFound},
	{domain.ErrNotTeamMember, http.StatusForbidden, apierrors.MsgNotTeamMember},
	{domain.ErrNotTeamAdmin, http.StatusForbidden, apierrors.MsgNotTeamAdmin},
	{domain.ErrSectionExists, http.StatusConflict, apierrors.MsgSectionExists},
	{domain.ErrLastSection, http.StatusBadRequest, apierrors.MsgLastSection},
	{domain.ErrAssigneeNotMember, http.StatusBadRequest, apierrors.MsgAssigneeNotMember},
	{domain.ErrInvalidProfile, http.StatusBadRequest, apierrors.MsgInvalidProfile},
	{domain.ErrInvalidMessage, http.StatusBadRequest, apierrors.MsgInvalidMessage},
	{domain.ErrInvalidRecipient, http.StatusBadRequest, apierrors.MsgInvalidRecipient},
}

// respondError writes the translated error for a known domain error, or logs
// err under logMsg and answers 500 with failMsgKey.
func respondError(c *gin.Context, err error, failMsgKey, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	for _, known := range domainErrors {
		if errors.Is(err, known.err) {
			c.JSON(known.status, apierrors.CreateError(known.status, known.msgKey, lang))
			return
		}
	}

	zap.L().Error(logMsg, append(fields, zap.Error(err))...)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, failMsgKey, lang),
	)
}

func respondBadRequest(c *gin.Context, msgKey string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
	)
}

// bindJSONWithRaw binds the body into req and also returns the raw fields so
// callers can tell an omitted field from an explicit null.
func bindJSONWithRaw(c *gin.Context, req interface{}) (map[string]json.RawMessage, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if err := binding.JSON.BindBody(body, req); err != nil {
		return nil, err
	}
	return raw, nil
}

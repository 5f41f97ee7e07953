package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"workstream/internal/adapter/http/middleware"
	"workstream/pkg/apierrors"
	"workstream/pkg/auth"
	"workstream/pkg/translator"
)

const requester = "a@x.com"

var tokens = auth.NewTokenManager("test-secret", time.Hour)

func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.LanguageMiddleware(), middleware.AuthMiddleware(tokens))
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body, lang string) *httptest.ResponseRecorder {
	t.Helper()

	token, err := tokens.GenerateToken(auth.Claims{Email: requester, FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	if lang == "" {
		lang = translator.LanguageEn
	}
	req.Header.Set("Accept-Language", lang)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, code int, message string) {
	t.Helper()

	require.Equal(t, code, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, code, got.ErrDetails.Code)
	require.Equal(t, message, got.ErrDetails.Message)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func ptr[T any](value T) *T {
	return &value
}


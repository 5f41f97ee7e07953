package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	dbadapter "workstream/internal/adapter/db"
	"workstream/internal/adapter/http/handlers"
	"workstream/internal/adapter/http/middleware"
)

func newHealthRouter(db *sqlx.DB) *gin.Engine {
	handler := handlers.NewHealthHandler(db)

	router := gin.New()
	router.Use(middleware.LanguageMiddleware())
	router.GET("/api/health", handler.CheckHealth)
	router.GET("/api/health/report", handler.CheckHealthReport)
	return router
}

func getHealth(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept-Language", "fr")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func openHealthDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := dbadapter.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestHealthHandler_Report(t *testing.T) {
	router := newHealthRouter(openHealthDB(t))

	rec := getHealth(router, "/api/health/report")
	require.Equal(t, http.StatusOK, rec.Code)

	var got handlers.StatusReport
	decodeBody(t, rec, &got)
	require.Equal(t, handlers.StatusOk, got.Overall)
	require.Equal(t, handlers.StatusOk, got.Status.Database)
	require.Equal(t, "sqlite", got.Status.Driver)
	require.Equal(t, "fr", got.Language)
	require.Len(t, got.Status.Tables, 8)
	for table, status := range got.Status.Tables {
		require.Equal(t, handlers.StatusOk, status, table)
	}
}

func TestHealthHandler_ReportMissingTable(t *testing.T) {
	db := openHealthDB(t)
	_, err := db.Exec("DROP TABLE chat_reads")
	require.NoError(t, err)

	rec := getHealth(newHealthRouter(db), "/api/health/report")
	require.Equal(t, http.StatusOK, rec.Code)

	var got handlers.StatusReport
	decodeBody(t, rec, &got)
	require.Equal(t, handlers.StatusDegraded, got.Overall)
	require.Equal(t, handlers.StatusOk, got.Status.Database)
	require.Equal(t, handlers.StatusDown, got.Status.Tables["chat_reads"])
	require.Equal(t, handlers.StatusOk, got.Status.Tables["tasks"])
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	t.Setenv("APP_NAME", "")
	db := openHealthDB(t)
	require.NoError(t, db.Close())
	router := newHealthRouter(db)

	rec := getHealth(router, "/api/health")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var live handlers.Liveness
	decodeBody(t, rec, &live)
	require.Equal(t, handlers.StatusDown, live.Status)
	require.Equal(t, "workstream", live.Service)

	rec = getHealth(router, "/api/health/report")
	require.Equal(t, http.StatusOK, rec.Code)

	var got handlers.StatusReport
	decodeBody(t, rec, &got)
	require.Equal(t, handlers.StatusDown, got.Overall)
	require.Equal(t, handlers.StatusDown, got.Status.Database)
	require.Empty(t, got.Status.Tables)
}

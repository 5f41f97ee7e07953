package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"workstream/internal/adapter/http/middleware"
)

const (
	StatusOk       = "ok"
	StatusDegraded = "degraded"
	StatusDown     = "down"

	statusTimeout  = 2 * time.Second
	defaultService = "workstream"
	timeLayout     = "2006-01-02 15:04:05"
)

// storeTables lists every table the API reads or writes.
var storeTables = []string{
	"users",
	"teams",
	"team_members",
	"team_sections",
	"tasks",
	"task_history",
	"chat_messages",
	"chat_reads",
}

type Liveness struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}

type StoreStatus struct {
	Database string            `json:"database"`
	Driver   string            `json:"driver"`
	Tables   map[string]string `json:"tables"`
}

type StatusReport struct {
	Service  string      `json:"service"`
	Version  string      `json:"version"`
	Time     string      `json:"time"`
	Uptime   string      `json:"uptime"`
	Language string      `json:"language"`
	Overall  string      `json:"overall"`
	Status   StoreStatus `json:"status"`
}

type HealthHandler struct {
	db      *sqlx.DB
	started time.Time
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

// CheckHealth answers 500 as soon as the database cannot be pinged.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	status := StatusOk
	if !h.ping(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		status = StatusDown
	}

	c.JSON(statusCode, Liveness{
		Service: serviceName(),
		Version: serviceVersion(),
		Time:    time.Now().Format(timeLayout),
		Status:  status,
	})
}

// CheckHealthReport always answers 200 and describes what is broken.
// Overall is degraded when the database answers but a table does not.
func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()
	store := StoreStatus{Database: StatusDown, Tables: make(map[string]string, len(storeTables))}
	overall := StatusDown

	if h.db != nil {
		store.Driver = h.db.DriverName()
	}
	if h.ping(ctx) {
		store.Database = StatusOk
		overall = StatusOk
		for _, table := range storeTables {
			store.Tables[table] = h.checkTable(ctx, table)
			if store.Tables[table] != StatusOk {
				overall = StatusDegraded
			}
		}
	}

	c.JSON(http.StatusOK, StatusReport{
		Service:  serviceName(),
		Version:  serviceVersion(),
		Time:     time.Now().Format(timeLayout),
		Uptime:   time.Since(h.started).Round(time.Second).String(),
		Language: middleware.GetLang(c),
		Overall:  overall,
		Status:   store,
	})
}

func (h *HealthHandler) ping(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func (h *HealthHandler) checkTable(ctx context.Context, table string) string {
	timeoutCtx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	// table only ever comes from storeTables.
	rows, err := h.db.QueryContext(timeoutCtx, "SELECT 1 FROM "+table+" LIMIT 1")
	if err != nil {
		zap.L().Warn("table check failed", zap.String("table", table), zap.Error(err))
		return StatusDown
	}
	_ = rows.Close()
	return StatusOk
}

func serviceName() string {
	if name := os.Getenv("APP_NAME"); name != "" {
		return name
	}
	return defaultService
}

func serviceVersion() string {
	if version := os.Getenv("APP_VERSION"); version != "" {
		return version
	}
	return "dev"
}

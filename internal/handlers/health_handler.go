package handlers

import (
	"net/http"
	"time"

	"group-ledger/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports API and database connectivity status
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return h.unavailable(c, "Database connection failed")
	}

	if err := sqlDB.Ping(); err != nil {
		return h.unavailable(c, "Database ping failed")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCheckHandler) unavailable(c echo.Context, details string) error {
	errorResponse := errors.NewErrorResponse(
		errors.SystemDatabaseError,
		getTraceID(c),
		errors.WithDetails(details),
	)
	return c.JSON(http.StatusServiceUnavailable, errorResponse)
}

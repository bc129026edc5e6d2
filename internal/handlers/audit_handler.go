package handlers

import (
	"net/http"

	"group-ledger/internal/errors"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuditHandler exposes the audit trail to managers.
type AuditHandler struct {
	auditRepo repositories.AuditLogRepositoryInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditRepo repositories.AuditLogRepositoryInterface) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo}
}

type auditListResponse struct {
	Logs  []models.AuditLog `json:"logs"`
	Total int64             `json:"total"`
}

// ListAuditLogs returns audit entries filtered by user or action
func (h *AuditHandler) ListAuditLogs(c echo.Context) error {
	params := bindPagination(c)

	if raw := c.QueryParam("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
		}
		logs, total, err := h.auditRepo.GetByUserID(userID, params.Limit, params.Offset)
		if err != nil {
			return SendSystemError(c, err)
		}
		return c.JSON(http.StatusOK, auditListResponse{Logs: logs, Total: total})
	}

	action := c.QueryParam("action")
	if action == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("user_id or action query parameter is required"))
	}

	logs, total, err := h.auditRepo.GetByAction(action, params.Limit, params.Offset)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, auditListResponse{Logs: logs, Total: total})
}

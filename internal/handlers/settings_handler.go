package handlers

import (
	"net/http"
	"time"

	"group-ledger/internal/dto"
	"group-ledger/internal/errors"
	"group-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// SettingsHandler handles deposit policy HTTP requests
type SettingsHandler struct {
	settingsService services.SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService services.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// CreateSetting inserts a new deposit policy record
func (h *SettingsHandler) CreateSetting(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateSettingRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid setting amount"))
	}

	setting, err := h.settingsService.CreateSetting(userID, amount, req.EffectiveMonth, req.DueDay, req.ReminderDay)
	if err != nil {
		switch err {
		case services.ErrInvalidMonth:
			return SendError(c, errors.ValidationInvalidMonth)
		case services.ErrSettingNotChronological:
			return SendError(c, errors.SettingOverlap)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SettingResponse{
		Setting: setting,
		Message: "Deposit setting created successfully",
	})
}

// ListSettings returns the full policy history
func (h *SettingsHandler) ListSettings(c echo.Context) error {
	settings, err := h.settingsService.ListSettings()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListSettingsResponse{Settings: settings})
}

// GetDepositAmount resolves the required deposit amount for a month
func (h *SettingsHandler) GetDepositAmount(c echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("month query parameter is required"))
	}

	amount, err := h.settingsService.ResolveDepositAmount(month)
	if err != nil {
		if err == services.ErrInvalidMonth {
			return SendError(c, errors.ValidationInvalidMonth)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DepositAmountResponse{
		Month:  month,
		Amount: amount.String(),
	})
}

// GetMonthStatuses projects a member's deposit standing around today
func (h *SettingsHandler) GetMonthStatuses(c echo.Context) error {
	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid member ID"))
	}

	statuses, err := h.settingsService.ComputeDepositMonthStatuses(memberID, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MonthStatusesResponse{
		MemberID: memberID.String(),
		Statuses: statuses,
	})
}

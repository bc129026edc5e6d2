package dto

import (
	"group-ledger/internal/models"
)

// CreateSettingRequest represents a new deposit policy record
type CreateSettingRequest struct {
	Amount         string `json:"amount" validate:"required,money_amount"`
	EffectiveMonth string `json:"effective_month" validate:"required,month_format"`
	DueDay         int    `json:"due_day" validate:"omitempty,min=1,max=28"`
	ReminderDay    int    `json:"reminder_day" validate:"omitempty,min=1,max=28"`
}

// SettingResponse represents a single setting in API responses
type SettingResponse struct {
	Setting *models.DepositSetting `json:"setting"`
	Message string                 `json:"message,omitempty"`
}

// ListSettingsResponse represents the full policy history
type ListSettingsResponse struct {
	Settings []models.DepositSetting `json:"settings"`
}

// DepositAmountResponse carries the resolved required amount for a month
type DepositAmountResponse struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}

// MonthStatusesResponse represents a member's deposit standing
type MonthStatusesResponse struct {
	MemberID string               `json:"member_id"`
	Statuses []models.MonthStatus `json:"statuses"`
}

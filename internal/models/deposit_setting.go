package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidSettingAmount = errors.New("setting amount must be positive")
	ErrInvalidDueDay        = errors.New("due day must be between 1 and 28")
)

// DepositSetting is a time-bounded policy record for the required
// monthly deposit. Creating a new setting terminates the previous
// current one at the new effective month; records are never deleted.
type DepositSetting struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	DueDay         int             `gorm:"not null;default:5" json:"due_day"`
	ReminderDay    int             `gorm:"not null;default:1" json:"reminder_day"`
	EffectiveMonth string          `gorm:"type:varchar(7);not null;index" json:"effective_month"`
	TerminatedAt   *string         `gorm:"type:varchar(7)" json:"terminated_at,omitempty"`
	CreatedBy      uuid.UUID       `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for DepositSetting
func (ds *DepositSetting) BeforeCreate(tx *gorm.DB) error {
	if ds.ID == uuid.Nil {
		ds.ID = uuid.New()
	}

	if ds.DueDay == 0 {
		ds.DueDay = 5
	}
	if ds.ReminderDay == 0 {
		ds.ReminderDay = 1
	}

	now := time.Now()
	if ds.CreatedAt.IsZero() {
		ds.CreatedAt = now
	}
	if ds.UpdatedAt.IsZero() {
		ds.UpdatedAt = now
	}

	return ds.Validate()
}

// BeforeUpdate hook for DepositSetting
func (ds *DepositSetting) BeforeUpdate(tx *gorm.DB) error {
	ds.UpdatedAt = time.Now()
	return ds.Validate()
}

// Validate validates the setting fields
func (ds *DepositSetting) Validate() error {
	if ds.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidSettingAmount
	}

	if ds.DueDay < 1 || ds.DueDay > 28 {
		return ErrInvalidDueDay
	}

	if ds.ReminderDay < 1 || ds.ReminderDay > 28 {
		return errors.New("reminder day must be between 1 and 28")
	}

	if !IsValidMonth(ds.EffectiveMonth) {
		return ErrInvalidMonth
	}

	if ds.TerminatedAt != nil {
		if !IsValidMonth(*ds.TerminatedAt) {
			return ErrInvalidMonth
		}
		if *ds.TerminatedAt <= ds.EffectiveMonth {
			return errors.New("termination month must be after effective month")
		}
	}

	if ds.CreatedBy == uuid.Nil {
		return errors.New("creator ID is required")
	}

	return nil
}

// AppliesTo reports whether this setting governs the given month
func (ds *DepositSetting) AppliesTo(month string) bool {
	if ds.EffectiveMonth > month {
		return false
	}
	return ds.TerminatedAt == nil || *ds.TerminatedAt > month
}

// TableName returns the table name for DepositSetting
func (ds *DepositSetting) TableName() string {
	return "deposit_settings"
}

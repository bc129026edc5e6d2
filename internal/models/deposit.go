package models

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DepositStatusPending  = "pending"
	DepositStatusVerified = "verified"
	DepositStatusRejected = "rejected"

	DepositTypeFull    = "full"
	DepositTypePartial = "partial"
)

var (
	ErrInvalidDepositStatus = errors.New("invalid deposit status")
	ErrInvalidDepositType   = errors.New("invalid deposit type")
	ErrInvalidDepositAmount = errors.New("deposit amount must be positive")
	ErrAlreadyReviewed      = errors.New("already reviewed")
)

// Deposit is a member's claim of having paid into the group for a
// calendar month. It is reviewed exactly once: pending -> verified or
// pending -> rejected, and the fund is attached on verification.
type Deposit struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	MemberID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_deposits_member" json:"member_id"`
	Month       string          `gorm:"type:varchar(7);not null;index:idx_deposits_month" json:"month"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Reference   string          `gorm:"type:varchar(100)" json:"reference,omitempty"`
	DepositType string          `gorm:"type:varchar(10);not null;default:'full'" json:"deposit_type"`
	ReceiptURL  string          `gorm:"type:text" json:"receipt_url,omitempty"`
	Status      string          `gorm:"type:varchar(20);not null;default:'pending';index:idx_deposits_status" json:"status"`
	FundID      *uuid.UUID      `gorm:"type:uuid;index" json:"fund_id,omitempty"`
	ReviewedBy  *uuid.UUID      `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time      `json:"reviewed_at,omitempty"`
	ReviewNote  string          `gorm:"type:text" json:"review_note,omitempty"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Fund *Fund `gorm:"foreignKey:FundID" json:"-"`
}

// BeforeCreate hook for Deposit
func (d *Deposit) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}

	if d.Status == "" {
		d.Status = DepositStatusPending
	}

	if d.DepositType == "" {
		d.DepositType = DepositTypeFull
	}

	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}

	return d.Validate()
}

// BeforeUpdate hook for Deposit
func (d *Deposit) BeforeUpdate(tx *gorm.DB) error {
	d.UpdatedAt = time.Now()
	return d.Validate()
}

// Validate validates the deposit fields
func (d *Deposit) Validate() error {
	if d.MemberID == uuid.Nil {
		return errors.New("member ID is required")
	}

	if !IsValidMonth(d.Month) {
		return ErrInvalidMonth
	}

	if d.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidDepositAmount
	}

	if !IsValidDepositType(d.DepositType) {
		return ErrInvalidDepositType
	}

	if !IsValidDepositStatus(d.Status) {
		return ErrInvalidDepositStatus
	}

	// Invariant: fund is attached exactly when the deposit is verified
	if d.Status == DepositStatusVerified && d.FundID == nil {
		return errors.New("verified deposit must reference a fund")
	}
	if d.Status == DepositStatusPending && d.FundID != nil {
		return errors.New("pending deposit cannot reference a fund")
	}

	return nil
}

// IsPending returns true if the deposit has not been reviewed yet
func (d *Deposit) IsPending() bool {
	return d.Status == DepositStatusPending
}

// CanTransitionTo checks if the deposit can move to a new status. An
// unpersisted deposit with a zero-value status counts as pending.
func (d *Deposit) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		DepositStatusPending:  {DepositStatusVerified, DepositStatusRejected},
		DepositStatusVerified: {},
		DepositStatusRejected: {},
	}

	status := d.Status
	if status == "" {
		status = DepositStatusPending
	}

	allowed, exists := validTransitions[status]
	if !exists {
		return false
	}

	return slices.Contains(allowed, newStatus)
}

// MarkVerified records a successful review and attaches the fund
func (d *Deposit) MarkVerified(fundID, reviewerID uuid.UUID) error {
	if !d.CanTransitionTo(DepositStatusVerified) {
		return ErrAlreadyReviewed
	}

	now := time.Now()
	d.Status = DepositStatusVerified
	d.FundID = &fundID
	d.ReviewedBy = &reviewerID
	d.ReviewedAt = &now
	return nil
}

// MarkRejected records a rejection with the reviewer's note
func (d *Deposit) MarkRejected(reviewerID uuid.UUID, note string) error {
	if !d.CanTransitionTo(DepositStatusRejected) {
		return ErrAlreadyReviewed
	}

	now := time.Now()
	d.Status = DepositStatusRejected
	d.ReviewedBy = &reviewerID
	d.ReviewedAt = &now
	d.ReviewNote = note
	return nil
}

// TableName returns the table name for Deposit
func (d *Deposit) TableName() string {
	return "deposits"
}

// Helper functions

// IsValidDepositStatus checks if the deposit status is valid
func IsValidDepositStatus(status string) bool {
	switch status {
	case DepositStatusPending, DepositStatusVerified, DepositStatusRejected:
		return true
	default:
		return false
	}
}

// IsValidDepositType checks if the deposit type is valid
func IsValidDepositType(depositType string) bool {
	switch depositType {
	case DepositTypeFull, DepositTypePartial:
		return true
	default:
		return false
	}
}

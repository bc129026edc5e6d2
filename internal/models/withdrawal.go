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
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
)

var (
	ErrInvalidWithdrawalStatus = errors.New("invalid withdrawal status")
	ErrInvalidWithdrawalAmount = errors.New("withdrawal amount must be positive")
)

// Withdrawal is a member's request to draw money out of the pooled
// funds. Like Deposit it is reviewed exactly once; approval debits the
// selected fund.
type Withdrawal struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	MemberID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_withdrawals_member" json:"member_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Purpose         string          `gorm:"type:varchar(100);not null" json:"purpose"`
	Details         string          `gorm:"type:text" json:"details,omitempty"`
	AttachmentURL   string          `gorm:"type:text" json:"attachment_url,omitempty"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending';index:idx_withdrawals_status" json:"status"`
	FundID          *uuid.UUID      `gorm:"type:uuid;index" json:"fund_id,omitempty"`
	ReviewedBy      *uuid.UUID      `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	RejectionReason string          `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Fund *Fund `gorm:"foreignKey:FundID" json:"-"`
}

// BeforeCreate hook for Withdrawal
func (w *Withdrawal) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}

	if w.Status == "" {
		w.Status = WithdrawalStatusPending
	}

	now := time.Now()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	if w.UpdatedAt.IsZero() {
		w.UpdatedAt = now
	}

	return w.Validate()
}

// BeforeUpdate hook for Withdrawal
func (w *Withdrawal) BeforeUpdate(tx *gorm.DB) error {
	w.UpdatedAt = time.Now()
	return w.Validate()
}

// Validate validates the withdrawal fields
func (w *Withdrawal) Validate() error {
	if w.MemberID == uuid.Nil {
		return errors.New("member ID is required")
	}

	if w.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidWithdrawalAmount
	}

	if w.Purpose == "" {
		return errors.New("purpose is required")
	}

	if !IsValidWithdrawalStatus(w.Status) {
		return ErrInvalidWithdrawalStatus
	}

	if w.Status == WithdrawalStatusApproved && w.FundID == nil {
		return errors.New("approved withdrawal must reference a fund")
	}
	if w.Status == WithdrawalStatusPending && w.FundID != nil {
		return errors.New("pending withdrawal cannot reference a fund")
	}

	return nil
}

// IsPending returns true if the withdrawal has not been reviewed yet
func (w *Withdrawal) IsPending() bool {
	return w.Status == WithdrawalStatusPending
}

// CanTransitionTo checks if the withdrawal can move to a new status. An
// unpersisted withdrawal with a zero-value status counts as pending.
func (w *Withdrawal) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		WithdrawalStatusPending:  {WithdrawalStatusApproved, WithdrawalStatusRejected},
		WithdrawalStatusApproved: {},
		WithdrawalStatusRejected: {},
	}

	status := w.Status
	if status == "" {
		status = WithdrawalStatusPending
	}

	allowed, exists := validTransitions[status]
	if !exists {
		return false
	}

	return slices.Contains(allowed, newStatus)
}

// MarkApproved records a successful review and attaches the fund
func (w *Withdrawal) MarkApproved(fundID, reviewerID uuid.UUID) error {
	if !w.CanTransitionTo(WithdrawalStatusApproved) {
		return ErrAlreadyReviewed
	}

	now := time.Now()
	w.Status = WithdrawalStatusApproved
	w.FundID = &fundID
	w.ReviewedBy = &reviewerID
	w.ReviewedAt = &now
	return nil
}

// MarkRejected records a rejection with the reviewer's reason
func (w *Withdrawal) MarkRejected(reviewerID uuid.UUID, reason string) error {
	if !w.CanTransitionTo(WithdrawalStatusRejected) {
		return ErrAlreadyReviewed
	}

	now := time.Now()
	w.Status = WithdrawalStatusRejected
	w.ReviewedBy = &reviewerID
	w.ReviewedAt = &now
	w.RejectionReason = reason
	return nil
}

// TableName returns the table name for Withdrawal
func (w *Withdrawal) TableName() string {
	return "withdrawals"
}

// IsValidWithdrawalStatus checks if the withdrawal status is valid
func IsValidWithdrawalStatus(status string) bool {
	switch status {
	case WithdrawalStatusPending, WithdrawalStatusApproved, WithdrawalStatusRejected:
		return true
	default:
		return false
	}
}

package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNegativeBalance   = errors.New("fund balance cannot be negative")
	ErrNonZeroBalance    = errors.New("fund balance must be zero to delete")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidFundAmount = errors.New("amount must be positive")
	ErrFundTitleRequired = errors.New("fund title is required")
)

// Fund is a named money pool shared by the group. Its balance is only
// ever mutated inside a locked ledger transaction.
type Fund struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title     string          `gorm:"type:varchar(100);not null" json:"title"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Currency  string          `gorm:"type:varchar(3);not null;default:'KES'" json:"currency"`
	CreatedBy uuid.UUID       `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate hook for Fund
func (f *Fund) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	if f.Currency == "" {
		f.Currency = "KES"
	}

	now := time.Now()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}

	return f.Validate()
}

// BeforeUpdate hook for Fund. Column-level updates through an empty
// model (tx.Model(&Fund{}).Where(...).Update(...)) skip full validation;
// those paths re-check preconditions inside their own locked transaction.
func (f *Fund) BeforeUpdate(tx *gorm.DB) error {
	f.UpdatedAt = time.Now()
	if f.ID == uuid.Nil {
		return nil
	}
	return f.Validate()
}

// Validate validates the fund fields
func (f *Fund) Validate() error {
	if f.Title == "" {
		return ErrFundTitleRequired
	}

	if f.CreatedBy == uuid.Nil {
		return errors.New("creator ID is required")
	}

	if f.Balance.LessThan(decimal.Zero) {
		return ErrNegativeBalance
	}

	return nil
}

// Credit adds amount to the fund balance, keeping the canonical
// 2-decimal representation.
func (f *Fund) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidFundAmount
	}

	f.Balance = f.Balance.Add(amount).Round(2)
	return nil
}

// Debit subtracts amount from the fund balance. The balance invariant
// (never negative) is enforced here, not at the call sites.
func (f *Fund) Debit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidFundAmount
	}

	if f.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	f.Balance = f.Balance.Sub(amount).Round(2)
	return nil
}

// CanDelete reports whether the fund may be soft deleted
func (f *Fund) CanDelete() bool {
	return f.Balance.IsZero()
}

// TableName returns the table name for Fund
func (f *Fund) TableName() string {
	return "funds"
}

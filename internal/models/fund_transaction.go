package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrSameFundTransfer      = errors.New("source and destination funds must differ")
	ErrInvalidTransferAmount = errors.New("transfer amount must be positive")
)

// FundTransaction is the immutable record of money moved between two
// funds. Rows are inserted inside the transfer transaction and never
// updated or deleted afterwards.
type FundTransaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	FromFundID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_fund_transactions_from" json:"from_fund_id"`
	ToFundID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_fund_transactions_to" json:"to_fund_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	InitiatedBy uuid.UUID       `gorm:"type:uuid;not null" json:"initiated_by"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`

	// Associations
	FromFund Fund `gorm:"foreignKey:FromFundID" json:"-"`
	ToFund   Fund `gorm:"foreignKey:ToFundID" json:"-"`
}

// BeforeCreate hook for FundTransaction
func (ft *FundTransaction) BeforeCreate(tx *gorm.DB) error {
	if ft.ID == uuid.Nil {
		ft.ID = uuid.New()
	}

	if ft.CreatedAt.IsZero() {
		ft.CreatedAt = time.Now()
	}

	return ft.Validate()
}

// Validate validates the fund transaction fields
func (ft *FundTransaction) Validate() error {
	if ft.FromFundID == uuid.Nil || ft.ToFundID == uuid.Nil {
		return errors.New("both fund IDs are required")
	}

	if ft.FromFundID == ft.ToFundID {
		return ErrSameFundTransfer
	}

	if ft.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTransferAmount
	}

	if ft.InitiatedBy == uuid.Nil {
		return errors.New("initiator ID is required")
	}

	return nil
}

// TableName returns the table name for FundTransaction
func (ft *FundTransaction) TableName() string {
	return "fund_transactions"
}

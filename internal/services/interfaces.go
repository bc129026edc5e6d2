package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"group-ledger/internal/models"
)

// LedgerServiceInterface is the money-movement engine. Every balance
// change in the system goes through one of its operations.
type LedgerServiceInterface interface {
	CreateFund(creatorID uuid.UUID, title, currency string) (*models.Fund, error)
	GetFund(id uuid.UUID) (*models.Fund, error)
	ListFunds(limit, offset int) ([]models.Fund, int64, error)
	RenameFund(id uuid.UUID, title string) (*models.Fund, error)
	DeleteFund(id, deletedBy uuid.UUID) error

	SubmitDeposit(memberID uuid.UUID, month string, amount decimal.Decimal, depositType, reference, receiptURL string) (*models.Deposit, error)
	ReviewDeposit(depositID, reviewerID uuid.UUID, action string, fundID *uuid.UUID, note string) (*models.Deposit, error)
	ListMemberDeposits(memberID uuid.UUID, limit, offset int) ([]models.Deposit, int64, error)

	RequestWithdrawal(memberID uuid.UUID, amount decimal.Decimal, purpose, details, attachmentURL string) (*models.Withdrawal, error)
	ReviewWithdrawal(withdrawalID, reviewerID uuid.UUID, action string, fundID *uuid.UUID, note string) (*models.Withdrawal, error)
	ListMemberWithdrawals(memberID uuid.UUID, limit, offset int) ([]models.Withdrawal, int64, error)

	TransferFunds(initiatorID, fromFundID, toFundID uuid.UUID, amount decimal.Decimal, description string) (*models.FundTransaction, error)
	ListFundTransactions(fundID uuid.UUID, limit, offset int) ([]models.FundTransaction, int64, error)
}

// SettingsServiceInterface resolves the deposit policy over time and
// projects per-member month statuses.
type SettingsServiceInterface interface {
	CreateSetting(createdBy uuid.UUID, amount decimal.Decimal, effectiveMonth string, dueDay, reminderDay int) (*models.DepositSetting, error)
	ListSettings() ([]models.DepositSetting, error)

	// ResolveDepositAmount returns the required deposit amount for the
	// given month, falling back to the configured default when no
	// setting governs it.
	ResolveDepositAmount(month string) (decimal.Decimal, error)

	// ComputeDepositMonthStatuses projects the member's deposit standing
	// over a window of trailing and leading months around today.
	ComputeDepositMonthStatuses(memberID uuid.UUID, today time.Time) ([]models.MonthStatus, error)
}

// NotificationEvent describes a completed ledger operation for delivery
// to members. Events are emitted after commit; delivery failures never
// affect the operation outcome.
type NotificationEvent struct {
	Type       string
	MemberID   uuid.UUID
	ResourceID uuid.UUID
	OccurredAt time.Time
	Data       map[string]string
}

// NotificationSinkInterface receives post-commit ledger events.
type NotificationSinkInterface interface {
	Notify(ctx context.Context, event NotificationEvent)
}

// TokenServiceInterface handles JWT access token operations
type TokenServiceInterface interface {
	GenerateAccessToken(memberID uuid.UUID, role string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MetricsRecorderInterface abstracts metrics collection
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// SampleDataGeneratorInterface generates realistic ledger data for
// development environments.
type SampleDataGeneratorInterface interface {
	GenerateFunds(count int) []*models.Fund
	GenerateDeposits(memberID uuid.UUID, startMonth string, count int) []*models.Deposit
	GenerateWithdrawals(memberID uuid.UUID, count int) []*models.Withdrawal
}

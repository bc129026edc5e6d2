package repositories

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"group-ledger/internal/models"
)

// FundRepositoryInterface defines fund persistence and the atomic
// balance-mutating operations that belong to the fund aggregate.
type FundRepositoryInterface interface {
	Create(fund *models.Fund) error
	GetByID(id uuid.UUID) (*models.Fund, error)
	GetAll(limit, offset int) ([]models.Fund, int64, error)
	Update(fund *models.Fund) error

	// ExecuteAtomicTransfer moves amount between two funds in a single
	// transaction, recording one immutable fund transaction and an audit
	// entry. Returns the created transaction ID.
	ExecuteAtomicTransfer(fromFundID, toFundID uuid.UUID, amount decimal.Decimal, initiatorID uuid.UUID, description string) (uuid.UUID, error)

	// SoftDeleteIfEmpty soft-deletes the fund only when its balance is
	// exactly zero, checked under a row lock.
	SoftDeleteIfEmpty(id uuid.UUID, deletedBy uuid.UUID) error
}

// DepositRepositoryInterface defines deposit persistence including the
// atomic review operations.
type DepositRepositoryInterface interface {
	Create(deposit *models.Deposit) error
	GetByID(id uuid.UUID) (*models.Deposit, error)
	GetByMemberID(memberID uuid.UUID, limit, offset int) ([]models.Deposit, int64, error)
	GetByMemberAndMonths(memberID uuid.UUID, fromMonth, toMonth string) ([]models.Deposit, error)

	// VerifyAtomic marks a pending deposit verified, attaches it to the
	// fund, and credits the fund balance in one transaction.
	VerifyAtomic(depositID, fundID, reviewerID uuid.UUID) (*models.Deposit, error)

	// RejectAtomic marks a pending deposit rejected. No balance changes.
	RejectAtomic(depositID, reviewerID uuid.UUID, note string) (*models.Deposit, error)
}

// WithdrawalRepositoryInterface defines withdrawal persistence including
// the atomic review operations.
type WithdrawalRepositoryInterface interface {
	Create(withdrawal *models.Withdrawal) error
	GetByID(id uuid.UUID) (*models.Withdrawal, error)
	GetByMemberID(memberID uuid.UUID, limit, offset int) ([]models.Withdrawal, int64, error)

	// ApproveAtomic marks a pending withdrawal approved and debits the
	// fund balance in one transaction. Fails when the fund balance is
	// insufficient.
	ApproveAtomic(withdrawalID, fundID, reviewerID uuid.UUID) (*models.Withdrawal, error)

	// RejectAtomic marks a pending withdrawal rejected. No balance changes.
	RejectAtomic(withdrawalID, reviewerID uuid.UUID, note string) (*models.Withdrawal, error)
}

// FundTransactionRepositoryInterface provides read access to the
// immutable transfer record. Rows are only ever created inside
// ExecuteAtomicTransfer.
type FundTransactionRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.FundTransaction, error)
	GetByFundID(fundID uuid.UUID, limit, offset int) ([]models.FundTransaction, int64, error)
	GetAll(limit, offset int) ([]models.FundTransaction, int64, error)
}

// DepositSettingRepositoryInterface defines deposit policy persistence.
type DepositSettingRepositoryInterface interface {
	// CreateAndSupersede inserts a new setting and terminates the
	// previously open one at the new setting's effective month, in a
	// single transaction.
	CreateAndSupersede(setting *models.DepositSetting, createdBy uuid.UUID) error
	GetAll() ([]models.DepositSetting, error)
	GetByID(id uuid.UUID) (*models.DepositSetting, error)
}

// AuditLogRepositoryInterface defines audit log persistence.
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.AuditLog, int64, error)
	GetByAction(action string, limit, offset int) ([]models.AuditLog, int64, error)
}

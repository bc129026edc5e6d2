package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"group-ledger/internal/models"
)

var (
	ErrFundNotFound = errors.New("fund not found")
)

// FundRepository owns fund rows and every operation that mutates a fund
// balance. Balance changes never happen outside one of its transactional
// methods.
type FundRepository struct {
	db *gorm.DB
}

func NewFundRepository(db *gorm.DB) *FundRepository {
	return &FundRepository{db: db}
}

func (r *FundRepository) Create(fund *models.Fund) error {
	if fund == nil {
		return errors.New("fund cannot be nil")
	}

	if err := r.db.Create(fund).Error; err != nil {
		return fmt.Errorf("failed to create fund: %w", err)
	}

	return nil
}

func (r *FundRepository) GetByID(id uuid.UUID) (*models.Fund, error) {
	var fund models.Fund

	err := r.db.Where("id = ?", id).First(&fund).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFundNotFound
		}
		return nil, fmt.Errorf("failed to get fund by ID: %w", err)
	}

	return &fund, nil
}

func (r *FundRepository) GetAll(limit, offset int) ([]models.Fund, int64, error) {
	var funds []models.Fund
	var total int64

	if err := r.db.Model(&models.Fund{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count funds: %w", err)
	}

	err := r.db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&funds).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get funds: %w", err)
	}

	return funds, total, nil
}

func (r *FundRepository) Update(fund *models.Fund) error {
	if fund == nil {
		return errors.New("fund cannot be nil")
	}

	result := r.db.Model(fund).
		Select("title", "currency").
		Updates(fund)
	if result.Error != nil {
		return fmt.Errorf("failed to update fund: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFundNotFound
	}

	return nil
}

// ExecuteAtomicTransfer performs the full transfer atomically: lock both
// funds, validate the debit, adjust both balances, insert the immutable
// fund transaction and the audit entry. Funds are locked in ascending ID
// order so concurrent opposite-direction transfers cannot deadlock.
func (r *FundRepository) ExecuteAtomicTransfer(fromFundID, toFundID uuid.UUID, amount decimal.Decimal, initiatorID uuid.UUID, description string) (uuid.UUID, error) {
	if fromFundID == toFundID {
		return uuid.Nil, models.ErrSameFundTransfer
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return uuid.Nil, models.ErrInvalidTransferAmount
	}

	var transactionID uuid.UUID

	err := r.db.Transaction(func(tx *gorm.DB) error {
		firstID, secondID := fromFundID, toFundID
		if secondID.String() < firstID.String() {
			firstID, secondID = secondID, firstID
		}

		var first, second models.Fund

		// Row-level locking prevents concurrent balance modifications.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", firstID).
			First(&first).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFundNotFound
			}
			return fmt.Errorf("failed to lock fund: %w", err)
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", secondID).
			First(&second).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFundNotFound
			}
			return fmt.Errorf("failed to lock fund: %w", err)
		}

		fromFund, toFund := &first, &second
		if fromFund.ID != fromFundID {
			fromFund, toFund = toFund, fromFund
		}

		if err := fromFund.Debit(amount); err != nil {
			return err
		}
		if err := toFund.Credit(amount); err != nil {
			return err
		}

		if err := tx.Model(fromFund).Update("balance", fromFund.Balance).Error; err != nil {
			return fmt.Errorf("failed to debit source fund: %w", err)
		}
		if err := tx.Model(toFund).Update("balance", toFund.Balance).Error; err != nil {
			return fmt.Errorf("failed to credit destination fund: %w", err)
		}

		transaction := &models.FundTransaction{
			FromFundID:  fromFundID,
			ToFundID:    toFundID,
			Amount:      amount,
			Description: description,
			InitiatedBy: initiatorID,
		}
		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to record fund transaction: %w", err)
		}
		transactionID = transaction.ID

		audit := &models.AuditLog{
			UserID:     &initiatorID,
			Action:     models.AuditActionFundTransfer,
			Resource:   "fund_transaction",
			ResourceID: transaction.ID.String(),
			Metadata: models.JSONBMap{
				"from_fund_id": fromFundID.String(),
				"to_fund_id":   toFundID.String(),
				"amount":       amount.String(),
			},
		}
		if err := tx.Create(audit).Error; err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return transactionID, nil
}

// SoftDeleteIfEmpty removes the fund from active listings. The balance
// check happens under a row lock so a concurrent credit cannot slip in
// between check and delete.
func (r *FundRepository) SoftDeleteIfEmpty(id uuid.UUID, deletedBy uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var fund models.Fund

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&fund).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFundNotFound
			}
			return fmt.Errorf("failed to lock fund: %w", err)
		}

		if !fund.CanDelete() {
			return models.ErrNonZeroBalance
		}

		if err := tx.Delete(&fund).Error; err != nil {
			return fmt.Errorf("failed to delete fund: %w", err)
		}

		audit := &models.AuditLog{
			UserID:     &deletedBy,
			Action:     models.AuditActionFundDeleted,
			Resource:   "fund",
			ResourceID: fund.ID.String(),
			Metadata: models.JSONBMap{
				"title": fund.Title,
			},
		}
		if err := tx.Create(audit).Error; err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		return nil
	})
}

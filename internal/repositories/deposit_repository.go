package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"group-ledger/internal/models"
)

var (
	ErrDepositNotFound = errors.New("deposit not found")
)

// DepositRepository owns deposit rows. Review operations lock the deposit
// row first, then the target fund, so the status check and the balance
// change commit together or not at all.
type DepositRepository struct {
	db *gorm.DB
}

func NewDepositRepository(db *gorm.DB) *DepositRepository {
	return &DepositRepository{db: db}
}

func (r *DepositRepository) Create(deposit *models.Deposit) error {
	if deposit == nil {
		return errors.New("deposit cannot be nil")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(deposit).Error; err != nil {
			return fmt.Errorf("failed to create deposit: %w", err)
		}

		audit := &models.AuditLog{
			UserID:     &deposit.MemberID,
			Action:     models.AuditActionDepositSubmitted,
			Resource:   "deposit",
			ResourceID: deposit.ID.String(),
			Metadata: models.JSONBMap{
				"month":  deposit.Month,
				"amount": deposit.Amount.String(),
			},
		}
		if err := tx.Create(audit).Error; err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		return nil
	})
}

func (r *DepositRepository) GetByID(id uuid.UUID) (*models.Deposit, error) {
	var deposit models.Deposit

	err := r.db.Where("id = ?", id).First(&deposit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepositNotFound
		}
		return nil, fmt.Errorf("failed to get deposit by ID: %w", err)
	}

	return &deposit, nil
}

func (r *DepositRepository) GetByMemberID(memberID uuid.UUID, limit, offset int) ([]models.Deposit, int64, error) {
	var deposits []models.Deposit
	var total int64

	query := r.db.Model(&models.Deposit{}).Where("member_id = ?", memberID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count deposits: %w", err)
	}

	err := query.Order("month DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&deposits).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get deposits: %w", err)
	}

	return deposits, total, nil
}

// GetByMemberAndMonths returns the member's deposits whose month falls in
// the inclusive [fromMonth, toMonth] range. Months sort lexicographically
// in YYYY-MM form, so a plain BETWEEN works.
func (r *DepositRepository) GetByMemberAndMonths(memberID uuid.UUID, fromMonth, toMonth string) ([]models.Deposit, error) {
	var deposits []models.Deposit

	err := r.db.Where("member_id = ? AND month BETWEEN ? AND ?", memberID, fromMonth, toMonth).
		Order("month ASC").
		Find(&deposits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get deposits by month range: %w", err)
	}

	return deposits, nil
}

// VerifyAtomic verifies a pending deposit and credits the fund. The
// deposit row lock makes concurrent reviews of the same deposit serialize;
// the loser observes a non-pending status and fails without touching the
// fund balance.
func (r *DepositRepository) VerifyAtomic(depositID, fundID, reviewerID uuid.UUID) (*models.Deposit, error) {
	var deposit models.Deposit

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Row-level locking prevents concurrent reviews of the same deposit.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", depositID).
			First(&deposit).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDepositNotFound
			}
			return fmt.Errorf("failed to lock deposit: %w", err)
		}

		if !deposit.IsPending() {
			return models.ErrAlreadyReviewed
		}

		var fund models.Fund
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", fundID).
			First(&fund).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFundNotFound
			}
			return fmt.Errorf("failed to lock fund: %w", err)
		}

		if err := deposit.MarkVerified(fundID, reviewerID); err != nil {
			return err
		}
		if err := fund.Credit(deposit.Amount); err != nil {
			return err
		}

		if err := tx.Save(&deposit).Error; err != nil {
			return fmt.Errorf("failed to update deposit: %w", err)
		}
		if err := tx.Model(&fund).Update("balance", fund.Balance).Error; err != nil {
			return fmt.Errorf("failed to credit fund: %w", err)
		}

		audit := &models.AuditLog{
			UserID:     &reviewerID,
			Action:     models.AuditActionDepositVerified,
			Resource:   "deposit",
			ResourceID: deposit.ID.String(),
			Metadata: models.JSONBMap{
				"fund_id": fundID.String(),
				"amount":  deposit.Amount.String(),
				"month":   deposit.Month,
			},
		}
		if err := tx.Create(audit).Error; err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &deposit, nil
}

// RejectAtomic rejects a pending deposit. The fund is never touched.
func (r *DepositRepository) RejectAtomic(depositID, reviewerID uuid.UUID, note string) (*models.Deposit, error) {
	var deposit models.Deposit

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", depositID).
			First(&deposit).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDepositNotFound
			}
			return fmt.Errorf("failed to lock deposit: %w", err)
		}

		if !deposit.IsPending() {
			return models.ErrAlreadyReviewed
		}

		if err := deposit.MarkRejected(reviewerID, note); err != nil {
			return err
		}

		if err := tx.Save(&deposit).Error; err != nil {
			return fmt.Errorf("failed to update deposit: %w", err)
		}

		audit := &models.AuditLog{
			UserID:     &reviewerID,
			Action:     models.AuditActionDepositRejected,
			Resource:   "deposit",
			ResourceID: deposit.ID.String(),
			Metadata: models.JSONBMap{
				"note": note,
			},
		}
		if err := tx.Create(audit).Error; err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &deposit, nil
}

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
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
)

// WithdrawalRepository owns withdrawal rows. The approve path mirrors
// deposit verification with the balance moving the other way, so a debit
// that would take the fund negative aborts the whole transaction.
type WithdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

func (r *WithdrawalRepository) Create(withdrawal *models.Withdrawal) error {
	if withdrawal == nil {
		return errors.New("withdrawal cannot be nil")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(withdrawal).Error; err != nil {
			return fmt.Errorf("failed to create withdrawal: %w", err)
		}

		audit := &models.AuditLog{
			UserID:     &withdrawal.MemberID,
			Action:     models.AuditActionWithdrawalRequested,
			Resource:   "withdrawal",
			ResourceID: withdrawal.ID.String(),
			Metadata: models.JSONBMap{
				"amount":  withdrawal.Amount.String(),
				"purpose": withdrawal.Purpose,
			},
		}
		if err := tx.Create(audit).Error; err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		return nil
	})
}

func (r *WithdrawalRepository) GetByID(id uuid.UUID) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal

	err := r.db.Where("id = ?", id).First(&withdrawal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("failed to get withdrawal by ID: %w", err)
	}

	return &withdrawal, nil
}

func (r *WithdrawalRepository) GetByMemberID(memberID uuid.UUID, limit, offset int) ([]models.Withdrawal, int64, error) {
	var withdrawals []models.Withdrawal
	var total int64

	query := r.db.Model(&models.Withdrawal{}).Where("member_id = ?", memberID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count withdrawals: %w", err)
	}

	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&withdrawals).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get withdrawals: %w", err)
	}

	return withdrawals, total, nil
}

// ApproveAtomic approves a pending withdrawal and debits the fund. Lock
// order matches deposit verification: request row first, fund second.
func (r *WithdrawalRepository) ApproveAtomic(withdrawalID, fundID, reviewerID uuid.UUID) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", withdrawalID).
			First(&withdrawal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWithdrawalNotFound
			}
			return fmt.Errorf("failed to lock withdrawal: %w", err)
		}

		if !withdrawal.IsPending() {
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

		if err := fund.Debit(withdrawal.Amount); err != nil {
			return err
		}
		if err := withdrawal.MarkApproved(fundID, reviewerID); err != nil {
			return err
		}

		if err := tx.Save(&withdrawal).Error; err != nil {
			return fmt.Errorf("failed to update withdrawal: %w", err)
		}
		if err := tx.Model(&fund).Update("balance", fund.Balance).Error; err != nil {
			return fmt.Errorf("failed to debit fund: %w", err)
		}

		audit := &models.AuditLog{
			UserID:     &reviewerID,
			Action:     models.AuditActionWithdrawalApproved,
			Resource:   "withdrawal",
			ResourceID: withdrawal.ID.String(),
			Metadata: models.JSONBMap{
				"fund_id": fundID.String(),
				"amount":  withdrawal.Amount.String(),
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

	return &withdrawal, nil
}

// RejectAtomic rejects a pending withdrawal. The fund is never touched.
func (r *WithdrawalRepository) RejectAtomic(withdrawalID, reviewerID uuid.UUID, note string) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", withdrawalID).
			First(&withdrawal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWithdrawalNotFound
			}
			return fmt.Errorf("failed to lock withdrawal: %w", err)
		}

		if !withdrawal.IsPending() {
			return models.ErrAlreadyReviewed
		}

		if err := withdrawal.MarkRejected(reviewerID, note); err != nil {
			return err
		}

		if err := tx.Save(&withdrawal).Error; err != nil {
			return fmt.Errorf("failed to update withdrawal: %w", err)
		}

		audit := &models.AuditLog{
			UserID:     &reviewerID,
			Action:     models.AuditActionWithdrawalRejected,
			Resource:   "withdrawal",
			ResourceID: withdrawal.ID.String(),
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

	return &withdrawal, nil
}

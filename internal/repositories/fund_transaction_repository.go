package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"group-ledger/internal/models"
)

var (
	ErrFundTransactionNotFound = errors.New("fund transaction not found")
)

// FundTransactionRepository is read-only. Rows are written exclusively by
// FundRepository.ExecuteAtomicTransfer.
type FundTransactionRepository struct {
	db *gorm.DB
}

func NewFundTransactionRepository(db *gorm.DB) *FundTransactionRepository {
	return &FundTransactionRepository{db: db}
}

func (r *FundTransactionRepository) GetByID(id uuid.UUID) (*models.FundTransaction, error) {
	var transaction models.FundTransaction

	err := r.db.Where("id = ?", id).First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFundTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get fund transaction by ID: %w", err)
	}

	return &transaction, nil
}

func (r *FundTransactionRepository) GetByFundID(fundID uuid.UUID, limit, offset int) ([]models.FundTransaction, int64, error) {
	var transactions []models.FundTransaction
	var total int64

	query := r.db.Model(&models.FundTransaction{}).
		Where("from_fund_id = ? OR to_fund_id = ?", fundID, fundID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count fund transactions: %w", err)
	}

	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get fund transactions: %w", err)
	}

	return transactions, total, nil
}

func (r *FundTransactionRepository) GetAll(limit, offset int) ([]models.FundTransaction, int64, error) {
	var transactions []models.FundTransaction
	var total int64

	if err := r.db.Model(&models.FundTransaction{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count fund transactions: %w", err)
	}

	err := r.db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get fund transactions: %w", err)
	}

	return transactions, total, nil
}

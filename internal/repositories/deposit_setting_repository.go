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
	ErrSettingNotFound       = errors.New("deposit setting not found")
	ErrSettingNotAfterLatest = errors.New("effective month must be after the latest setting")
)

// DepositSettingRepository owns the append-only policy history. Old
// settings are terminated, never deleted, so past months always resolve
// against the record that governed them.
type DepositSettingRepository struct {
	db *gorm.DB
}

func NewDepositSettingRepository(db *gorm.DB) *DepositSettingRepository {
	return &DepositSettingRepository{db: db}
}

// CreateAndSupersede inserts the new setting and closes the currently
// open one at the new effective month. The open record is locked so two
// concurrent creations cannot both succeed against the same predecessor.
func (r *DepositSettingRepository) CreateAndSupersede(setting *models.DepositSetting, createdBy uuid.UUID) error {
	if setting == nil {
		return errors.New("setting cannot be nil")
	}
	setting.CreatedBy = createdBy

	return r.db.Transaction(func(tx *gorm.DB) error {
		var current models.DepositSetting

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("terminated_at IS NULL").
			Order("effective_month DESC").
			First(&current).Error
		switch {
		case err == nil:
			if setting.EffectiveMonth <= current.EffectiveMonth {
				return ErrSettingNotAfterLatest
			}
			if err := tx.Model(&current).
				Update("terminated_at", setting.EffectiveMonth).Error; err != nil {
				return fmt.Errorf("failed to terminate current setting: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First setting ever, nothing to supersede.
		default:
			return fmt.Errorf("failed to load current setting: %w", err)
		}

		if err := tx.Create(setting).Error; err != nil {
			return fmt.Errorf("failed to create setting: %w", err)
		}

		audit := &models.AuditLog{
			UserID:     &createdBy,
			Action:     models.AuditActionSettingCreated,
			Resource:   "deposit_setting",
			ResourceID: setting.ID.String(),
			Metadata: models.JSONBMap{
				"amount":          setting.Amount.String(),
				"effective_month": setting.EffectiveMonth,
			},
		}
		if err := tx.Create(audit).Error; err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		return nil
	})
}

// GetAll returns the full policy history, oldest first.
func (r *DepositSettingRepository) GetAll() ([]models.DepositSetting, error) {
	var settings []models.DepositSetting

	err := r.db.Order("effective_month ASC").Find(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

func (r *DepositSettingRepository) GetByID(id uuid.UUID) (*models.DepositSetting, error) {
	var setting models.DepositSetting

	err := r.db.Where("id = ?", id).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get setting by ID: %w", err)
	}

	return &setting, nil
}

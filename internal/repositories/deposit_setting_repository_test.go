package repositories

import (
	"testing"

	"group-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DepositSettingRepositoryTestSuite is the test suite for DepositSetting repository
type DepositSettingRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo DepositSettingRepositoryInterface
}

// SetupTest runs before each test
func (s *DepositSettingRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.DepositSetting{}, &models.AuditLog{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewDepositSettingRepository(db)
}

// TearDownTest runs after each test
func (s *DepositSettingRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestDepositSettingRepositoryTestSuite runs the test suite
func TestDepositSettingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DepositSettingRepositoryTestSuite))
}

func (s *DepositSettingRepositoryTestSuite) newSetting(amount, effectiveMonth string) *models.DepositSetting {
	return &models.DepositSetting{
		Amount:         decimal.RequireFromString(amount),
		EffectiveMonth: effectiveMonth,
		DueDay:         5,
		ReminderDay:    1,
	}
}

func (s *DepositSettingRepositoryTestSuite) TestCreateAndSupersede_FirstSetting() {
	setting := s.newSetting("2000.00", "2025-01")

	err := s.repo.CreateAndSupersede(setting, uuid.New())

	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, setting.ID)
	assert.Nil(s.T(), setting.TerminatedAt)

	var auditCount int64
	require.NoError(s.T(), s.db.Model(&models.AuditLog{}).
		Where("action = ?", models.AuditActionSettingCreated).
		Count(&auditCount).Error)
	assert.Equal(s.T(), int64(1), auditCount)
}

func (s *DepositSettingRepositoryTestSuite) TestCreateAndSupersede_TerminatesPrevious() {
	first := s.newSetting("2000.00", "2025-01")
	require.NoError(s.T(), s.repo.CreateAndSupersede(first, uuid.New()))

	second := s.newSetting("2500.00", "2025-06")
	require.NoError(s.T(), s.repo.CreateAndSupersede(second, uuid.New()))

	reloaded, err := s.repo.GetByID(first.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), reloaded.TerminatedAt)
	assert.Equal(s.T(), "2025-06", *reloaded.TerminatedAt)

	// The new setting stays open.
	current, err := s.repo.GetByID(second.ID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), current.TerminatedAt)
}

func (s *DepositSettingRepositoryTestSuite) TestCreateAndSupersede_NotAfterLatest() {
	first := s.newSetting("2000.00", "2025-06")
	require.NoError(s.T(), s.repo.CreateAndSupersede(first, uuid.New()))

	stale := s.newSetting("2500.00", "2025-03")
	err := s.repo.CreateAndSupersede(stale, uuid.New())

	assert.ErrorIs(s.T(), err, ErrSettingNotAfterLatest)

	// The open setting is untouched.
	reloaded, err := s.repo.GetByID(first.ID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), reloaded.TerminatedAt)
}

func (s *DepositSettingRepositoryTestSuite) TestCreateAndSupersede_HistoryChains() {
	months := []string{"2025-01", "2025-06", "2026-01"}
	for i, month := range months {
		setting := s.newSetting("2000.00", month)
		setting.Amount = decimal.NewFromInt(int64(2000 + 500*i))
		require.NoError(s.T(), s.repo.CreateAndSupersede(setting, uuid.New()))
	}

	settings, err := s.repo.GetAll()
	require.NoError(s.T(), err)
	require.Len(s.T(), settings, 3)

	// Each record terminates exactly where the next one begins.
	require.NotNil(s.T(), settings[0].TerminatedAt)
	assert.Equal(s.T(), "2025-06", *settings[0].TerminatedAt)
	require.NotNil(s.T(), settings[1].TerminatedAt)
	assert.Equal(s.T(), "2026-01", *settings[1].TerminatedAt)
	assert.Nil(s.T(), settings[2].TerminatedAt)
}

func (s *DepositSettingRepositoryTestSuite) TestGetByID_NotFound() {
	setting, err := s.repo.GetByID(uuid.New())

	assert.ErrorIs(s.T(), err, ErrSettingNotFound)
	assert.Nil(s.T(), setting)
}

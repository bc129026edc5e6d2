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

// WithdrawalRepositoryTestSuite is the test suite for Withdrawal repository
type WithdrawalRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo WithdrawalRepositoryInterface
}

// SetupTest runs before each test
func (s *WithdrawalRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.Withdrawal{}, &models.Fund{}, &models.AuditLog{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewWithdrawalRepository(db)
}

// TearDownTest runs after each test
func (s *WithdrawalRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestWithdrawalRepositoryTestSuite runs the test suite
func TestWithdrawalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalRepositoryTestSuite))
}

func (s *WithdrawalRepositoryTestSuite) createWithdrawal(memberID uuid.UUID, amount string) *models.Withdrawal {
	withdrawal := &models.Withdrawal{
		MemberID: memberID,
		Amount:   decimal.RequireFromString(amount),
		Purpose:  "medical",
	}
	require.NoError(s.T(), s.db.Create(withdrawal).Error)
	return withdrawal
}

func (s *WithdrawalRepositoryTestSuite) createFund(balance string) *models.Fund {
	fund := &models.Fund{
		Title:     "Main Fund",
		Balance:   decimal.RequireFromString(balance),
		Currency:  "KES",
		CreatedBy: uuid.New(),
	}
	require.NoError(s.T(), s.db.Create(fund).Error)
	return fund
}

func (s *WithdrawalRepositoryTestSuite) TestCreate_WritesAuditEntry() {
	withdrawal := &models.Withdrawal{
		MemberID: uuid.New(),
		Amount:   decimal.RequireFromString("1500.00"),
		Purpose:  "school fees",
	}

	err := s.repo.Create(withdrawal)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.WithdrawalStatusPending, withdrawal.Status)

	var auditCount int64
	require.NoError(s.T(), s.db.Model(&models.AuditLog{}).
		Where("action = ?", models.AuditActionWithdrawalRequested).
		Count(&auditCount).Error)
	assert.Equal(s.T(), int64(1), auditCount)
}

func (s *WithdrawalRepositoryTestSuite) TestGetByMemberID_FiltersByMember() {
	memberID := uuid.New()
	s.createWithdrawal(memberID, "100.00")
	s.createWithdrawal(memberID, "200.00")
	s.createWithdrawal(uuid.New(), "300.00")

	withdrawals, total, err := s.repo.GetByMemberID(memberID, 10, 0)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), total)
	assert.Len(s.T(), withdrawals, 2)
}

func (s *WithdrawalRepositoryTestSuite) TestApproveAtomic_Success() {
	withdrawal := s.createWithdrawal(uuid.New(), "1500.00")
	fund := s.createFund("5000.00")
	reviewer := uuid.New()

	approved, err := s.repo.ApproveAtomic(withdrawal.ID, fund.ID, reviewer)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.WithdrawalStatusApproved, approved.Status)
	require.NotNil(s.T(), approved.FundID)
	assert.Equal(s.T(), fund.ID, *approved.FundID)
	assert.NotNil(s.T(), approved.ReviewedAt)

	var fundAfter models.Fund
	require.NoError(s.T(), s.db.Where("id = ?", fund.ID).First(&fundAfter).Error)
	assert.True(s.T(), fundAfter.Balance.Equal(decimal.RequireFromString("3500.00")))

	var auditCount int64
	require.NoError(s.T(), s.db.Model(&models.AuditLog{}).
		Where("action = ?", models.AuditActionWithdrawalApproved).
		Count(&auditCount).Error)
	assert.Equal(s.T(), int64(1), auditCount)
}

func (s *WithdrawalRepositoryTestSuite) TestApproveAtomic_InsufficientFunds() {
	withdrawal := s.createWithdrawal(uuid.New(), "1500.00")
	fund := s.createFund("1000.00")

	_, err := s.repo.ApproveAtomic(withdrawal.ID, fund.ID, uuid.New())

	assert.ErrorIs(s.T(), err, models.ErrInsufficientFunds)

	// Nothing committed. The withdrawal can be reviewed again.
	reloaded, err := s.repo.GetByID(withdrawal.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.WithdrawalStatusPending, reloaded.Status)

	var fundAfter models.Fund
	require.NoError(s.T(), s.db.Where("id = ?", fund.ID).First(&fundAfter).Error)
	assert.True(s.T(), fundAfter.Balance.Equal(decimal.RequireFromString("1000.00")))
}

func (s *WithdrawalRepositoryTestSuite) TestApproveAtomic_ExactBalance() {
	withdrawal := s.createWithdrawal(uuid.New(), "1000.00")
	fund := s.createFund("1000.00")

	approved, err := s.repo.ApproveAtomic(withdrawal.ID, fund.ID, uuid.New())

	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.WithdrawalStatusApproved, approved.Status)

	var fundAfter models.Fund
	require.NoError(s.T(), s.db.Where("id = ?", fund.ID).First(&fundAfter).Error)
	assert.True(s.T(), fundAfter.Balance.IsZero())
}

func (s *WithdrawalRepositoryTestSuite) TestApproveAtomic_AlreadyReviewed() {
	withdrawal := s.createWithdrawal(uuid.New(), "100.00")
	fund := s.createFund("1000.00")

	_, err := s.repo.ApproveAtomic(withdrawal.ID, fund.ID, uuid.New())
	require.NoError(s.T(), err)

	_, err = s.repo.ApproveAtomic(withdrawal.ID, fund.ID, uuid.New())
	assert.ErrorIs(s.T(), err, models.ErrAlreadyReviewed)

	var fundAfter models.Fund
	require.NoError(s.T(), s.db.Where("id = ?", fund.ID).First(&fundAfter).Error)
	assert.True(s.T(), fundAfter.Balance.Equal(decimal.RequireFromString("900.00")))
}

func (s *WithdrawalRepositoryTestSuite) TestApproveAtomic_WithdrawalNotFound() {
	fund := s.createFund("1000.00")

	_, err := s.repo.ApproveAtomic(uuid.New(), fund.ID, uuid.New())

	assert.ErrorIs(s.T(), err, ErrWithdrawalNotFound)
}

func (s *WithdrawalRepositoryTestSuite) TestRejectAtomic_Success() {
	withdrawal := s.createWithdrawal(uuid.New(), "100.00")
	reviewer := uuid.New()

	rejected, err := s.repo.RejectAtomic(withdrawal.ID, reviewer, "purpose not covered")

	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.WithdrawalStatusRejected, rejected.Status)
	assert.Equal(s.T(), "purpose not covered", rejected.RejectionReason)
	assert.Nil(s.T(), rejected.FundID)
}

func (s *WithdrawalRepositoryTestSuite) TestRejectAtomic_AfterApproval() {
	withdrawal := s.createWithdrawal(uuid.New(), "100.00")
	fund := s.createFund("1000.00")

	_, err := s.repo.ApproveAtomic(withdrawal.ID, fund.ID, uuid.New())
	require.NoError(s.T(), err)

	_, err = s.repo.RejectAtomic(withdrawal.ID, uuid.New(), "late")
	assert.ErrorIs(s.T(), err, models.ErrAlreadyReviewed)
}

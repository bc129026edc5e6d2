package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DepositTestSuite is the test suite for Deposit model
type DepositTestSuite struct {
	suite.Suite
	db *gorm.DB
}

// SetupTest runs before each test
func (s *DepositTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&Deposit{}, &Fund{})
	require.NoError(s.T(), err)

	s.db = db
}

// TearDownTest runs after each test
func (s *DepositTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestDepositTestSuite runs the test suite
func TestDepositTestSuite(t *testing.T) {
	suite.Run(t, new(DepositTestSuite))
}

func (s *DepositTestSuite) newPendingDeposit() *Deposit {
	return &Deposit{
		MemberID: uuid.New(),
		Month:    "2025-05",
		Amount:   decimal.NewFromFloat(2000.00),
	}
}

// TestDeposit_BeforeCreate_Defaults tests ID and default generation
func (s *DepositTestSuite) TestDeposit_BeforeCreate_Defaults() {
	deposit := s.newPendingDeposit()

	err := s.db.Create(deposit).Error
	require.NoError(s.T(), err)

	assert.NotEqual(s.T(), uuid.Nil, deposit.ID)
	assert.Equal(s.T(), DepositStatusPending, deposit.Status)
	assert.Equal(s.T(), DepositTypeFull, deposit.DepositType)
	assert.False(s.T(), deposit.CreatedAt.IsZero())
}

// TestDeposit_BeforeCreate_RejectsBadMonth tests month validation
func (s *DepositTestSuite) TestDeposit_BeforeCreate_RejectsBadMonth() {
	deposit := s.newPendingDeposit()
	deposit.Month = "May 2025"

	err := s.db.Create(deposit).Error
	assert.ErrorIs(s.T(), err, ErrInvalidMonth)
}

// TestDeposit_BeforeCreate_RejectsNonPositiveAmount tests amount validation
func (s *DepositTestSuite) TestDeposit_BeforeCreate_RejectsNonPositiveAmount() {
	deposit := s.newPendingDeposit()
	deposit.Amount = decimal.Zero

	err := s.db.Create(deposit).Error
	assert.ErrorIs(s.T(), err, ErrInvalidDepositAmount)
}

// TestDeposit_MarkVerified tests the pending -> verified transition
func (s *DepositTestSuite) TestDeposit_MarkVerified() {
	deposit := s.newPendingDeposit()
	require.NoError(s.T(), s.db.Create(deposit).Error)

	fundID := uuid.New()
	reviewerID := uuid.New()

	err := deposit.MarkVerified(fundID, reviewerID)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), DepositStatusVerified, deposit.Status)
	require.NotNil(s.T(), deposit.FundID)
	assert.Equal(s.T(), fundID, *deposit.FundID)
	require.NotNil(s.T(), deposit.ReviewedBy)
	assert.Equal(s.T(), reviewerID, *deposit.ReviewedBy)
	assert.NotNil(s.T(), deposit.ReviewedAt)
}

// TestDeposit_MarkVerified_Twice tests the single-transition invariant
func (s *DepositTestSuite) TestDeposit_MarkVerified_Twice() {
	deposit := s.newPendingDeposit()
	require.NoError(s.T(), deposit.MarkVerified(uuid.New(), uuid.New()))

	err := deposit.MarkVerified(uuid.New(), uuid.New())
	assert.ErrorIs(s.T(), err, ErrAlreadyReviewed)

	err = deposit.MarkRejected(uuid.New(), "late")
	assert.ErrorIs(s.T(), err, ErrAlreadyReviewed)
}

// TestDeposit_MarkRejected tests the pending -> rejected transition
func (s *DepositTestSuite) TestDeposit_MarkRejected() {
	deposit := s.newPendingDeposit()

	err := deposit.MarkRejected(uuid.New(), "no matching payment found")
	require.NoError(s.T(), err)

	assert.Equal(s.T(), DepositStatusRejected, deposit.Status)
	assert.Equal(s.T(), "no matching payment found", deposit.ReviewNote)
	assert.Nil(s.T(), deposit.FundID)
}

// TestDeposit_Validate_FundAttachment tests the fundId invariant
func (s *DepositTestSuite) TestDeposit_Validate_FundAttachment() {
	fundID := uuid.New()

	verified := s.newPendingDeposit()
	verified.Status = DepositStatusVerified
	assert.Error(s.T(), verified.Validate(), "verified without fund must fail")

	pending := s.newPendingDeposit()
	pending.FundID = &fundID
	assert.Error(s.T(), pending.Validate(), "pending with fund must fail")
}

func TestDeposit_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{DepositStatusPending, DepositStatusVerified, true},
		{DepositStatusPending, DepositStatusRejected, true},
		{DepositStatusVerified, DepositStatusRejected, false},
		{DepositStatusVerified, DepositStatusPending, false},
		{DepositStatusRejected, DepositStatusVerified, false},
		{"unknown", DepositStatusVerified, false},
		// Zero-value status on an unpersisted deposit behaves as pending
		{"", DepositStatusVerified, true},
		{"", DepositStatusRejected, true},
	}

	for _, tt := range tests {
		d := Deposit{Status: tt.from}
		assert.Equal(t, tt.want, d.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

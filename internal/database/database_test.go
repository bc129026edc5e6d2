package database

import (
	"errors"
	"testing"

	"group-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSetupTestDBMigratesSchema(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	for _, table := range []string{"funds", "deposits", "withdrawals", "fund_transactions", "deposit_settings", "audit_logs"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
}

func TestHealthCheckAfterClose(t *testing.T) {
	db := SetupTestDB(t)
	require.NoError(t, db.Close())

	assert.Error(t, db.HealthCheck())
}

func TestTransactionCommit(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	fund := CreateTestFund(t, db, "Main Fund", decimal.RequireFromString("1000.00"))

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Fund{}).
			Where("id = ?", fund.ID).
			Update("balance", decimal.RequireFromString("1500.00")).Error
	})
	require.NoError(t, err)

	var reloaded models.Fund
	require.NoError(t, db.First(&reloaded, "id = ?", fund.ID).Error)
	assert.True(t, reloaded.Balance.Equal(decimal.RequireFromString("1500.00")))
}

func TestTransactionRollback(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	fund := CreateTestFund(t, db, "Main Fund", decimal.RequireFromString("1000.00"))
	boom := errors.New("boom")

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Fund{}).
			Where("id = ?", fund.ID).
			Update("balance", decimal.RequireFromString("0.00")).Error; err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var reloaded models.Fund
	require.NoError(t, db.First(&reloaded, "id = ?", fund.ID).Error)
	assert.True(t, reloaded.Balance.Equal(decimal.RequireFromString("1000.00")))
}

func TestFundUpdateThroughLoadedModelStillValidates(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	fund := CreateTestFund(t, db, "Main Fund", decimal.RequireFromString("1000.00"))

	fund.Title = ""
	assert.ErrorIs(t, db.Save(fund).Error, models.ErrFundTitleRequired)
}

func TestCreateTestHelpers(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	memberID := uuid.New()
	deposit := CreateTestDeposit(t, db, memberID, "2025-06", decimal.RequireFromString("2000.00"))
	withdrawal := CreateTestWithdrawal(t, db, memberID, decimal.RequireFromString("500.00"))

	assert.Equal(t, models.DepositStatusPending, deposit.Status)
	assert.Equal(t, models.WithdrawalStatusPending, withdrawal.Status)

	var depositCount, withdrawalCount int64
	db.Model(&models.Deposit{}).Count(&depositCount)
	db.Model(&models.Withdrawal{}).Count(&withdrawalCount)
	assert.Equal(t, int64(1), depositCount)
	assert.Equal(t, int64(1), withdrawalCount)
}

package database

import (
	"testing"

	"group-ledger/internal/config"
	"group-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with the full ledger
// schema migrated, for repository and service tests.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestFund inserts a fund with the given balance
func CreateTestFund(t *testing.T, db *DB, title string, balance decimal.Decimal) *models.Fund {
	t.Helper()

	fund := &models.Fund{
		Title:     title,
		Balance:   balance,
		Currency:  "KES",
		CreatedBy: uuid.New(),
	}

	if err := db.Create(fund).Error; err != nil {
		t.Fatalf("failed to create test fund: %v", err)
	}

	return fund
}

// CreateTestDeposit inserts a pending deposit for a member and month
func CreateTestDeposit(t *testing.T, db *DB, memberID uuid.UUID, month string, amount decimal.Decimal) *models.Deposit {
	t.Helper()

	deposit := &models.Deposit{
		MemberID: memberID,
		Month:    month,
		Amount:   amount,
	}

	if err := db.Create(deposit).Error; err != nil {
		t.Fatalf("failed to create test deposit: %v", err)
	}

	return deposit
}

// CreateTestWithdrawal inserts a pending withdrawal for a member
func CreateTestWithdrawal(t *testing.T, db *DB, memberID uuid.UUID, amount decimal.Decimal) *models.Withdrawal {
	t.Helper()

	withdrawal := &models.Withdrawal{
		MemberID: memberID,
		Amount:   amount,
		Purpose:  "test purpose",
	}

	if err := db.Create(withdrawal).Error; err != nil {
		t.Fatalf("failed to create test withdrawal: %v", err)
	}

	return withdrawal
}

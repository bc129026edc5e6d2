package database

import (
	"fmt"
	"log"
	"time"

	"group-ledger/internal/config"
	"group-ledger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Fund{},
		&models.Deposit{},
		&models.Withdrawal{},
		&models.FundTransaction{},
		&models.DepositSetting{},
		&models.AuditLog{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		// Fund indexes
		"CREATE INDEX IF NOT EXISTS idx_funds_created_by ON funds(created_by)",
		"CREATE INDEX IF NOT EXISTS idx_funds_deleted_at ON funds(deleted_at) WHERE deleted_at IS NULL",
		// Deposit indexes
		"CREATE INDEX IF NOT EXISTS idx_deposits_member ON deposits(member_id)",
		"CREATE INDEX IF NOT EXISTS idx_deposits_month ON deposits(month)",
		"CREATE INDEX IF NOT EXISTS idx_deposits_status ON deposits(status)",
		"CREATE INDEX IF NOT EXISTS idx_deposits_member_month ON deposits(member_id, month)",
		"CREATE INDEX IF NOT EXISTS idx_deposits_fund_id ON deposits(fund_id) WHERE fund_id IS NOT NULL",
		// Withdrawal indexes
		"CREATE INDEX IF NOT EXISTS idx_withdrawals_member ON withdrawals(member_id)",
		"CREATE INDEX IF NOT EXISTS idx_withdrawals_status ON withdrawals(status)",
		"CREATE INDEX IF NOT EXISTS idx_withdrawals_fund_id ON withdrawals(fund_id) WHERE fund_id IS NOT NULL",
		// Fund transaction indexes
		"CREATE INDEX IF NOT EXISTS idx_fund_transactions_from ON fund_transactions(from_fund_id)",
		"CREATE INDEX IF NOT EXISTS idx_fund_transactions_to ON fund_transactions(to_fund_id)",
		"CREATE INDEX IF NOT EXISTS idx_fund_transactions_created_at ON fund_transactions(created_at)",
		// Deposit setting indexes
		"CREATE INDEX IF NOT EXISTS idx_deposit_settings_effective ON deposit_settings(effective_month)",
		// Audit log indexes
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_user_id ON audit_logs(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_action ON audit_logs(action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for the migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}

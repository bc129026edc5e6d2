package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"group-ledger/internal/models"
)

func TestSampleDataGenerator_GenerateFunds(t *testing.T) {
	generator := NewSampleDataGenerator(42)

	funds := generator.GenerateFunds(3)

	require.Len(t, funds, 3)
	for _, fund := range funds {
		assert.NotEmpty(t, fund.Title)
		assert.True(t, fund.Balance.IsZero())
		assert.Equal(t, "KES", fund.Currency)
		assert.NoError(t, fund.Validate())
	}
}

func TestSampleDataGenerator_GenerateDeposits_ConsecutiveMonths(t *testing.T) {
	generator := NewSampleDataGenerator(42)
	memberID := uuid.New()

	deposits := generator.GenerateDeposits(memberID, "2025-01", 4)

	require.Len(t, deposits, 4)
	for i, deposit := range deposits {
		assert.Equal(t, memberID, deposit.MemberID)
		assert.Equal(t, models.MustAddMonths("2025-01", i), deposit.Month)
		assert.True(t, deposit.Amount.GreaterThan(decimal.Zero))
	}
}

func TestSampleDataGenerator_GenerateWithdrawals(t *testing.T) {
	generator := NewSampleDataGenerator(42)

	withdrawals := generator.GenerateWithdrawals(uuid.New(), 5)

	require.Len(t, withdrawals, 5)
	for _, withdrawal := range withdrawals {
		assert.NotEmpty(t, withdrawal.Purpose)
		assert.True(t, withdrawal.Amount.GreaterThan(decimal.Zero))
	}
}

func TestSampleDataGenerator_Deterministic(t *testing.T) {
	first := NewSampleDataGenerator(7).GenerateFunds(2)
	second := NewSampleDataGenerator(7).GenerateFunds(2)

	require.Len(t, second, 2)
	assert.Equal(t, first[0].Title, second[0].Title)
	assert.Equal(t, first[1].Title, second[1].Title)
}

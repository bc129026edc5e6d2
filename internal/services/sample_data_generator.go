package services

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"group-ledger/internal/models"
)

var withdrawalPurposes = []string{
	"medical",
	"school fees",
	"funeral support",
	"business boost",
	"rent arrears",
	"emergency travel",
}

// SampleDataGenerator produces realistic ledger data for development
// seeding and demos. Never wired in production configuration.
type SampleDataGenerator struct {
	faker *gofakeit.Faker
}

func NewSampleDataGenerator(seed uint64) SampleDataGeneratorInterface {
	return &SampleDataGenerator{
		faker: gofakeit.New(seed),
	}
}

func (g *SampleDataGenerator) GenerateFunds(count int) []*models.Fund {
	funds := make([]*models.Fund, 0, count)
	for i := 0; i < count; i++ {
		funds = append(funds, &models.Fund{
			Title:     fmt.Sprintf("%s Fund", g.faker.NounConcrete()),
			Balance:   decimal.Zero,
			Currency:  "KES",
			CreatedBy: uuid.New(),
		})
	}
	return funds
}

// GenerateDeposits creates one pending deposit per month starting at
// startMonth, with occasional partial amounts.
func (g *SampleDataGenerator) GenerateDeposits(memberID uuid.UUID, startMonth string, count int) []*models.Deposit {
	deposits := make([]*models.Deposit, 0, count)
	for i := 0; i < count; i++ {
		depositType := models.DepositTypeFull
		amount := decimal.NewFromInt(2000)
		if g.faker.Bool() && g.faker.IntRange(0, 9) < 2 {
			depositType = models.DepositTypePartial
			amount = decimal.NewFromInt(int64(g.faker.IntRange(5, 19)) * 100)
		}

		deposits = append(deposits, &models.Deposit{
			MemberID:    memberID,
			Month:       models.MustAddMonths(startMonth, i),
			Amount:      amount,
			DepositType: depositType,
			Reference:   g.faker.LetterN(10),
		})
	}
	return deposits
}

func (g *SampleDataGenerator) GenerateWithdrawals(memberID uuid.UUID, count int) []*models.Withdrawal {
	withdrawals := make([]*models.Withdrawal, 0, count)
	for i := 0; i < count; i++ {
		withdrawals = append(withdrawals, &models.Withdrawal{
			MemberID: memberID,
			Amount:   decimal.NewFromInt(int64(g.faker.IntRange(1, 50)) * 100),
			Purpose:  withdrawalPurposes[g.faker.IntRange(0, len(withdrawalPurposes)-1)],
			Details:  g.faker.Sentence(8),
		})
	}
	return withdrawals
}

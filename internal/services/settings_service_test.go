package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"group-ledger/internal/config"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"
	"group-ledger/internal/repositories/repository_mocks"
)

func terminated(month string) *string {
	return &month
}

func TestResolveAmount(t *testing.T) {
	defaultAmount := decimal.NewFromInt(1000)
	history := []models.DepositSetting{
		{Amount: decimal.NewFromInt(2000), EffectiveMonth: "2025-01", TerminatedAt: terminated("2025-06")},
		{Amount: decimal.NewFromInt(2500), EffectiveMonth: "2025-06"},
	}

	tests := []struct {
		name     string
		settings []models.DepositSetting
		month    string
		want     int64
	}{
		{
			name:     "month governed by terminated setting",
			settings: history,
			month:    "2025-03",
			want:     2000,
		},
		{
			name:     "month governed by open setting",
			settings: history,
			month:    "2025-08",
			want:     2500,
		},
		{
			name:     "month before any setting falls back to default",
			settings: history,
			month:    "2024-12",
			want:     1000,
		},
		{
			name:     "termination month belongs to the successor",
			settings: history,
			month:    "2025-06",
			want:     2500,
		},
		{
			name:     "last month before termination",
			settings: history,
			month:    "2025-05",
			want:     2000,
		},
		{
			name:     "no settings at all",
			settings: nil,
			month:    "2025-03",
			want:     1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAmount(tt.settings, tt.month, defaultAmount)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
				"expected %d, got %s", tt.want, got)
		})
	}
}

func TestProjectMonthStatuses_PaidAndDueWindow(t *testing.T) {
	// One verified deposit for 2025-05, viewed from 2025-07.
	deposits := []models.Deposit{
		{Month: "2025-05", Status: models.DepositStatusVerified},
	}

	statuses := ProjectMonthStatuses(deposits, "2025-01", "2025-07")

	byMonth := make(map[string]models.MonthStatus)
	for _, status := range statuses {
		byMonth[status.Month] = status
	}

	// Paid month is omitted entirely.
	_, ok := byMonth["2025-05"]
	assert.False(t, ok)

	for _, month := range []string{"2025-01", "2025-02", "2025-03", "2025-04", "2025-06"} {
		status, ok := byMonth[month]
		require.True(t, ok, "month %s missing", month)
		assert.Equal(t, models.MonthTagDue, status.Tag)
		assert.False(t, status.Rejected)
	}

	current, ok := byMonth["2025-07"]
	require.True(t, ok)
	assert.Equal(t, models.MonthTagCurrent, current.Tag)

	for _, month := range []string{"2025-08", "2025-09", "2025-10", "2025-11", "2025-12", "2026-01"} {
		status, ok := byMonth[month]
		require.True(t, ok, "month %s missing", month)
		assert.Equal(t, models.MonthTagAdvance, status.Tag)
	}
}

func TestProjectMonthStatuses_Ascending(t *testing.T) {
	statuses := ProjectMonthStatuses(nil, "2025-01", "2025-07")

	require.NotEmpty(t, statuses)
	for i := 1; i < len(statuses); i++ {
		assert.Less(t, statuses[i-1].Month, statuses[i].Month)
	}
}

func TestProjectMonthStatuses_DueBoundedByMinEffective(t *testing.T) {
	// Policy only exists from 2025-05 on; earlier months owe nothing.
	statuses := ProjectMonthStatuses(nil, "2025-05", "2025-07")

	months := make([]string, 0, len(statuses))
	for _, status := range statuses {
		if status.Tag == models.MonthTagDue {
			months = append(months, status.Month)
		}
	}
	assert.Equal(t, []string{"2025-05", "2025-06"}, months)
}

func TestProjectMonthStatuses_NoSettingsNoPastDebt(t *testing.T) {
	statuses := ProjectMonthStatuses(nil, "", "2025-07")

	for _, status := range statuses {
		assert.NotEqual(t, models.MonthTagDue, status.Tag)
	}
}

func TestProjectMonthStatuses_FullyRejectedMonthFlagged(t *testing.T) {
	deposits := []models.Deposit{
		{Month: "2025-06", Status: models.DepositStatusRejected},
		{Month: "2025-06", Status: models.DepositStatusRejected},
	}

	statuses := ProjectMonthStatuses(deposits, "2025-01", "2025-07")

	var found *models.MonthStatus
	for i := range statuses {
		if statuses[i].Month == "2025-06" {
			found = &statuses[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, models.MonthTagDue, found.Tag)
	assert.True(t, found.Rejected)
}

func TestProjectMonthStatuses_PendingCountsAsPaid(t *testing.T) {
	// A pending deposit still blocks a second submission for the month.
	deposits := []models.Deposit{
		{Month: "2025-06", Status: models.DepositStatusPending},
		{Month: "2025-06", Status: models.DepositStatusRejected},
	}

	statuses := ProjectMonthStatuses(deposits, "2025-01", "2025-07")

	for _, status := range statuses {
		assert.NotEqual(t, "2025-06", status.Month)
	}
}

// SettingsServiceTestSuite is the test suite for the settings service
type SettingsServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	settingRepo *repository_mocks.MockDepositSettingRepositoryInterface
	depositRepo *repository_mocks.MockDepositRepositoryInterface
	service     SettingsServiceInterface
}

// SetupTest runs before each test
func (s *SettingsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.settingRepo = repository_mocks.NewMockDepositSettingRepositoryInterface(s.ctrl)
	s.depositRepo = repository_mocks.NewMockDepositRepositoryInterface(s.ctrl)

	cfg := &config.LedgerConfig{
		DefaultCurrency:      "KES",
		DefaultDepositAmount: decimal.NewFromInt(1000),
		DefaultDueDay:        5,
		DefaultReminderDay:   1,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewSettingsService(s.settingRepo, s.depositRepo, cfg, logger)
}

// TearDownTest runs after each test
func (s *SettingsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestSettingsServiceTestSuite runs the test suite
func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}

func (s *SettingsServiceTestSuite) TestResolveDepositAmount_InvalidMonth() {
	_, err := s.service.ResolveDepositAmount("2025-13")
	assert.ErrorIs(s.T(), err, ErrInvalidMonth)

	_, err = s.service.ResolveDepositAmount("202501")
	assert.ErrorIs(s.T(), err, ErrInvalidMonth)
}

func (s *SettingsServiceTestSuite) TestResolveDepositAmount_UsesHistory() {
	s.settingRepo.EXPECT().GetAll().Return([]models.DepositSetting{
		{Amount: decimal.NewFromInt(2000), EffectiveMonth: "2025-01", TerminatedAt: terminated("2025-06")},
		{Amount: decimal.NewFromInt(2500), EffectiveMonth: "2025-06"},
	}, nil)

	amount, err := s.service.ResolveDepositAmount("2025-03")

	require.NoError(s.T(), err)
	assert.True(s.T(), amount.Equal(decimal.NewFromInt(2000)))
}

func (s *SettingsServiceTestSuite) TestCreateSetting_AppliesDefaults() {
	createdBy := uuid.New()

	s.settingRepo.EXPECT().CreateAndSupersede(gomock.Any(), createdBy).
		DoAndReturn(func(setting *models.DepositSetting, _ uuid.UUID) error {
			setting.ID = uuid.New()
			return nil
		})

	setting, err := s.service.CreateSetting(createdBy, decimal.NewFromInt(2500), "2026-01", 0, 0)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), 5, setting.DueDay)
	assert.Equal(s.T(), 1, setting.ReminderDay)
}

func (s *SettingsServiceTestSuite) TestCreateSetting_InvalidMonth() {
	_, err := s.service.CreateSetting(uuid.New(), decimal.NewFromInt(2500), "Jan 2026", 5, 1)
	assert.ErrorIs(s.T(), err, ErrInvalidMonth)
}

func (s *SettingsServiceTestSuite) TestCreateSetting_NotChronological() {
	s.settingRepo.EXPECT().CreateAndSupersede(gomock.Any(), gomock.Any()).
		Return(repositories.ErrSettingNotAfterLatest)

	_, err := s.service.CreateSetting(uuid.New(), decimal.NewFromInt(2500), "2024-01", 5, 1)

	assert.ErrorIs(s.T(), err, ErrSettingNotChronological)
}

func (s *SettingsServiceTestSuite) TestComputeDepositMonthStatuses_WiresWindow() {
	memberID := uuid.New()
	today := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)

	s.depositRepo.EXPECT().
		GetByMemberAndMonths(memberID, "2025-01", "2026-01").
		Return([]models.Deposit{{Month: "2025-05", Status: models.DepositStatusVerified}}, nil)
	s.settingRepo.EXPECT().GetAll().Return([]models.DepositSetting{
		{Amount: decimal.NewFromInt(2000), EffectiveMonth: "2025-01"},
	}, nil)

	statuses, err := s.service.ComputeDepositMonthStatuses(memberID, today)

	require.NoError(s.T(), err)
	// 13-month window minus the paid month.
	assert.Len(s.T(), statuses, 12)
}

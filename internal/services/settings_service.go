package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"group-ledger/internal/config"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"
)

const monthStatusWindow = 6

var (
	ErrInvalidMonth            = errors.New("invalid month format, expected YYYY-MM")
	ErrSettingNotChronological = errors.New("effective month must be after the latest setting")
)

// settingsService implements SettingsServiceInterface
type settingsService struct {
	settingRepo repositories.DepositSettingRepositoryInterface
	depositRepo repositories.DepositRepositoryInterface
	cfg         *config.LedgerConfig
	logger      *slog.Logger
}

// NewSettingsService creates the deposit policy service
func NewSettingsService(
	settingRepo repositories.DepositSettingRepositoryInterface,
	depositRepo repositories.DepositRepositoryInterface,
	cfg *config.LedgerConfig,
	logger *slog.Logger,
) SettingsServiceInterface {
	return &settingsService{
		settingRepo: settingRepo,
		depositRepo: depositRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// CreateSetting inserts a new policy record. The currently open record
// is terminated at the new effective month so every month resolves
// against exactly one setting.
func (s *settingsService) CreateSetting(createdBy uuid.UUID, amount decimal.Decimal, effectiveMonth string, dueDay, reminderDay int) (*models.DepositSetting, error) {
	if !models.IsValidMonth(effectiveMonth) {
		return nil, ErrInvalidMonth
	}

	setting := &models.DepositSetting{
		Amount:         amount,
		EffectiveMonth: effectiveMonth,
		DueDay:         dueDay,
		ReminderDay:    reminderDay,
	}
	if setting.DueDay == 0 {
		setting.DueDay = s.cfg.DefaultDueDay
	}
	if setting.ReminderDay == 0 {
		setting.ReminderDay = s.cfg.DefaultReminderDay
	}

	if err := s.settingRepo.CreateAndSupersede(setting, createdBy); err != nil {
		if errors.Is(err, repositories.ErrSettingNotAfterLatest) {
			return nil, ErrSettingNotChronological
		}
		return nil, fmt.Errorf("failed to create setting: %w", err)
	}

	s.logger.Info("deposit setting created",
		slog.String("setting_id", setting.ID.String()),
		slog.String("effective_month", effectiveMonth),
		slog.String("amount", amount.String()))

	return setting, nil
}

func (s *settingsService) ListSettings() ([]models.DepositSetting, error) {
	return s.settingRepo.GetAll()
}

// ResolveDepositAmount returns the required amount for the month.
func (s *settingsService) ResolveDepositAmount(month string) (decimal.Decimal, error) {
	if !models.IsValidMonth(month) {
		return decimal.Zero, ErrInvalidMonth
	}

	settings, err := s.settingRepo.GetAll()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load settings: %w", err)
	}

	return ResolveAmount(settings, month, s.cfg.DefaultDepositAmount), nil
}

// ResolveAmount picks the setting governing the month: the latest
// effective month at or before it that has not been terminated by then.
// With no match the fallback applies. Pure over its inputs so tests can
// feed synthetic histories.
func ResolveAmount(settings []models.DepositSetting, month string, fallback decimal.Decimal) decimal.Decimal {
	var match *models.DepositSetting
	for i := range settings {
		setting := &settings[i]
		if !setting.AppliesTo(month) {
			continue
		}
		if match == nil || setting.EffectiveMonth > match.EffectiveMonth {
			match = setting
		}
	}
	if match == nil {
		return fallback
	}
	return match.Amount
}

// ComputeDepositMonthStatuses projects the member's standing over the
// months around today.
func (s *settingsService) ComputeDepositMonthStatuses(memberID uuid.UUID, today time.Time) ([]models.MonthStatus, error) {
	currentMonth := models.MonthOf(today)
	fromMonth := models.MustAddMonths(currentMonth, -monthStatusWindow)
	toMonth := models.MustAddMonths(currentMonth, monthStatusWindow)

	deposits, err := s.depositRepo.GetByMemberAndMonths(memberID, fromMonth, toMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to load deposits: %w", err)
	}

	settings, err := s.settingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return ProjectMonthStatuses(deposits, minEffectiveMonth(settings), currentMonth), nil
}

// ProjectMonthStatuses walks the month window around currentMonth and
// tags each month. Paid months (at least one non-rejected deposit) are
// omitted; months where every deposit was rejected keep their tag and
// carry the rejected flag. Past months before the first policy ever took
// effect are skipped, nothing was owed then. Pure over its inputs.
func ProjectMonthStatuses(deposits []models.Deposit, minEffective, currentMonth string) []models.MonthStatus {
	type monthState struct {
		hasDeposit  bool
		allRejected bool
	}

	byMonth := make(map[string]*monthState)
	for i := range deposits {
		deposit := &deposits[i]
		state, ok := byMonth[deposit.Month]
		if !ok {
			state = &monthState{allRejected: true}
			byMonth[deposit.Month] = state
		}
		state.hasDeposit = true
		if deposit.Status != models.DepositStatusRejected {
			state.allRejected = false
		}
	}

	statuses := make([]models.MonthStatus, 0, 2*monthStatusWindow+1)
	for offset := -monthStatusWindow; offset <= monthStatusWindow; offset++ {
		month := models.MustAddMonths(currentMonth, offset)

		state := byMonth[month]
		paid := state != nil && state.hasDeposit && !state.allRejected
		if paid {
			continue
		}
		rejected := state != nil && state.hasDeposit && state.allRejected

		var tag string
		switch {
		case month == currentMonth:
			tag = models.MonthTagCurrent
		case month < currentMonth:
			if minEffective == "" || month < minEffective {
				continue
			}
			tag = models.MonthTagDue
		default:
			tag = models.MonthTagAdvance
		}

		statuses = append(statuses, models.MonthStatus{
			Month:    month,
			Tag:      tag,
			Rejected: rejected,
		})
	}

	return statuses
}

func minEffectiveMonth(settings []models.DepositSetting) string {
	min := ""
	for i := range settings {
		if min == "" || settings[i].EffectiveMonth < min {
			min = settings[i].EffectiveMonth
		}
	}
	return min
}

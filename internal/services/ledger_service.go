package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"group-ledger/internal/models"
	"group-ledger/internal/repositories"
)

// Review actions accepted by the review operations.
const (
	ReviewActionVerify  = "verify"
	ReviewActionApprove = "approve"
	ReviewActionReject  = "reject"
)

// Notification event types emitted after successful operations.
const (
	NotificationDepositVerified    = "deposit_verified"
	NotificationDepositRejected    = "deposit_rejected"
	NotificationWithdrawalApproved = "withdrawal_approved"
	NotificationWithdrawalRejected = "withdrawal_rejected"
	NotificationFundTransfer       = "fund_transfer"
)

var (
	ErrFundNotFound        = errors.New("fund not found")
	ErrDepositNotFound     = errors.New("deposit not found")
	ErrWithdrawalNotFound  = errors.New("withdrawal not found")
	ErrAlreadyReviewed     = errors.New("request has already been reviewed")
	ErrFundRequired        = errors.New("a target fund is required for this action")
	ErrInvalidReviewAction = errors.New("invalid review action")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrSameFundTransfer    = errors.New("cannot transfer to same fund")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrNonZeroBalance      = errors.New("fund balance must be zero")
)

// ledgerService implements LedgerServiceInterface
type ledgerService struct {
	fundRepo        repositories.FundRepositoryInterface
	depositRepo     repositories.DepositRepositoryInterface
	withdrawalRepo  repositories.WithdrawalRepositoryInterface
	transactionRepo repositories.FundTransactionRepositoryInterface
	auditRepo       repositories.AuditLogRepositoryInterface
	notifier        NotificationSinkInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewLedgerService creates the money-movement service
func NewLedgerService(
	fundRepo repositories.FundRepositoryInterface,
	depositRepo repositories.DepositRepositoryInterface,
	withdrawalRepo repositories.WithdrawalRepositoryInterface,
	transactionRepo repositories.FundTransactionRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	notifier NotificationSinkInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &ledgerService{
		fundRepo:        fundRepo,
		depositRepo:     depositRepo,
		withdrawalRepo:  withdrawalRepo,
		transactionRepo: transactionRepo,
		auditRepo:       auditRepo,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateFund creates a new fund with a zero balance
func (s *ledgerService) CreateFund(creatorID uuid.UUID, title, currency string) (*models.Fund, error) {
	fund := &models.Fund{
		Title:     title,
		Balance:   decimal.Zero,
		Currency:  currency,
		CreatedBy: creatorID,
	}

	if err := s.fundRepo.Create(fund); err != nil {
		return nil, fmt.Errorf("failed to create fund: %w", err)
	}

	if err := s.auditRepo.Create(&models.AuditLog{
		UserID:     &creatorID,
		Action:     models.AuditActionFundCreated,
		Resource:   "fund",
		ResourceID: fund.ID.String(),
		Metadata:   models.JSONBMap{"title": fund.Title},
	}); err != nil {
		s.logger.Warn("failed to write audit log for fund creation",
			slog.String("fund_id", fund.ID.String()),
			slog.String("error", err.Error()))
	}

	s.logger.Info("fund created",
		slog.String("fund_id", fund.ID.String()),
		slog.String("title", fund.Title))
	s.metrics.IncrementCounter("ledger_funds_total", map[string]string{"operation": "created"})

	return fund, nil
}

func (s *ledgerService) GetFund(id uuid.UUID) (*models.Fund, error) {
	fund, err := s.fundRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrFundNotFound) {
			return nil, ErrFundNotFound
		}
		return nil, fmt.Errorf("failed to get fund: %w", err)
	}
	return fund, nil
}

func (s *ledgerService) ListFunds(limit, offset int) ([]models.Fund, int64, error) {
	return s.fundRepo.GetAll(limit, offset)
}

// RenameFund updates the fund title. Balances are untouchable here.
func (s *ledgerService) RenameFund(id uuid.UUID, title string) (*models.Fund, error) {
	fund, err := s.GetFund(id)
	if err != nil {
		return nil, err
	}

	fund.Title = title
	if err := s.fundRepo.Update(fund); err != nil {
		if errors.Is(err, repositories.ErrFundNotFound) {
			return nil, ErrFundNotFound
		}
		return nil, fmt.Errorf("failed to update fund: %w", err)
	}

	return fund, nil
}

// DeleteFund soft-deletes an empty fund. Funds holding money must be
// drained by transfer first.
func (s *ledgerService) DeleteFund(id, deletedBy uuid.UUID) error {
	err := s.fundRepo.SoftDeleteIfEmpty(id, deletedBy)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrFundNotFound):
			return ErrFundNotFound
		case errors.Is(err, models.ErrNonZeroBalance):
			return ErrNonZeroBalance
		}
		return fmt.Errorf("failed to delete fund: %w", err)
	}

	s.logger.Info("fund deleted",
		slog.String("fund_id", id.String()),
		slog.String("deleted_by", deletedBy.String()))
	s.metrics.IncrementCounter("ledger_funds_total", map[string]string{"operation": "deleted"})

	return nil
}

// SubmitDeposit records a member's claim of payment for a month. The
// claim stays pending until a manager reviews it.
func (s *ledgerService) SubmitDeposit(memberID uuid.UUID, month string, amount decimal.Decimal, depositType, reference, receiptURL string) (*models.Deposit, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if depositType == "" {
		depositType = models.DepositTypeFull
	}

	deposit := &models.Deposit{
		MemberID:    memberID,
		Month:       month,
		Amount:      amount,
		DepositType: depositType,
		Reference:   reference,
		ReceiptURL:  receiptURL,
	}

	if err := s.depositRepo.Create(deposit); err != nil {
		return nil, fmt.Errorf("failed to submit deposit: %w", err)
	}

	s.logger.Info("deposit submitted",
		slog.String("deposit_id", deposit.ID.String()),
		slog.String("member_id", memberID.String()),
		slog.String("month", month),
		slog.String("amount", amount.String()))
	s.metrics.IncrementCounter("ledger_deposits_total", map[string]string{"status": "submitted"})

	return deposit, nil
}

// ReviewDeposit applies a manager's verdict to a pending deposit. A
// verify verdict credits the chosen fund atomically with the status
// change; a reject verdict records the note and moves no money.
func (s *ledgerService) ReviewDeposit(depositID, reviewerID uuid.UUID, action string, fundID *uuid.UUID, note string) (*models.Deposit, error) {
	start := time.Now()

	var deposit *models.Deposit
	var err error

	switch action {
	case ReviewActionVerify:
		if fundID == nil {
			return nil, ErrFundRequired
		}
		deposit, err = s.depositRepo.VerifyAtomic(depositID, *fundID, reviewerID)
	case ReviewActionReject:
		deposit, err = s.depositRepo.RejectAtomic(depositID, reviewerID, note)
	default:
		return nil, ErrInvalidReviewAction
	}

	if err != nil {
		s.metrics.IncrementCounter("ledger_reviews_total", map[string]string{"type": "deposit", "action": action, "status": "failed"})
		return nil, s.mapReviewError(err, ErrDepositNotFound)
	}

	s.logger.Info("deposit reviewed",
		slog.String("deposit_id", deposit.ID.String()),
		slog.String("action", action),
		slog.String("reviewer_id", reviewerID.String()))
	s.metrics.IncrementCounter("ledger_reviews_total", map[string]string{"type": "deposit", "action": action, "status": "success"})
	s.metrics.RecordProcessingTime("ledger_review_duration", time.Since(start))

	eventType := NotificationDepositVerified
	if action == ReviewActionReject {
		eventType = NotificationDepositRejected
	}
	s.emit(NotificationEvent{
		Type:       eventType,
		MemberID:   deposit.MemberID,
		ResourceID: deposit.ID,
		Data: map[string]string{
			"month":  deposit.Month,
			"amount": deposit.Amount.String(),
		},
	})

	return deposit, nil
}

func (s *ledgerService) ListMemberDeposits(memberID uuid.UUID, limit, offset int) ([]models.Deposit, int64, error) {
	return s.depositRepo.GetByMemberID(memberID, limit, offset)
}

// RequestWithdrawal records a member's request to take money out. The
// request stays pending until a manager reviews it.
func (s *ledgerService) RequestWithdrawal(memberID uuid.UUID, amount decimal.Decimal, purpose, details, attachmentURL string) (*models.Withdrawal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	withdrawal := &models.Withdrawal{
		MemberID:      memberID,
		Amount:        amount,
		Purpose:       purpose,
		Details:       details,
		AttachmentURL: attachmentURL,
	}

	if err := s.withdrawalRepo.Create(withdrawal); err != nil {
		return nil, fmt.Errorf("failed to request withdrawal: %w", err)
	}

	s.logger.Info("withdrawal requested",
		slog.String("withdrawal_id", withdrawal.ID.String()),
		slog.String("member_id", memberID.String()),
		slog.String("amount", amount.String()))
	s.metrics.IncrementCounter("ledger_withdrawals_total", map[string]string{"status": "requested"})

	return withdrawal, nil
}

// ReviewWithdrawal applies a manager's verdict to a pending withdrawal.
// An approve verdict debits the chosen fund atomically with the status
// change and fails when the fund cannot cover the amount.
func (s *ledgerService) ReviewWithdrawal(withdrawalID, reviewerID uuid.UUID, action string, fundID *uuid.UUID, note string) (*models.Withdrawal, error) {
	start := time.Now()

	var withdrawal *models.Withdrawal
	var err error

	switch action {
	case ReviewActionApprove:
		if fundID == nil {
			return nil, ErrFundRequired
		}
		withdrawal, err = s.withdrawalRepo.ApproveAtomic(withdrawalID, *fundID, reviewerID)
	case ReviewActionReject:
		withdrawal, err = s.withdrawalRepo.RejectAtomic(withdrawalID, reviewerID, note)
	default:
		return nil, ErrInvalidReviewAction
	}

	if err != nil {
		s.metrics.IncrementCounter("ledger_reviews_total", map[string]string{"type": "withdrawal", "action": action, "status": "failed"})
		return nil, s.mapReviewError(err, ErrWithdrawalNotFound)
	}

	s.logger.Info("withdrawal reviewed",
		slog.String("withdrawal_id", withdrawal.ID.String()),
		slog.String("action", action),
		slog.String("reviewer_id", reviewerID.String()))
	s.metrics.IncrementCounter("ledger_reviews_total", map[string]string{"type": "withdrawal", "action": action, "status": "success"})
	s.metrics.RecordProcessingTime("ledger_review_duration", time.Since(start))

	eventType := NotificationWithdrawalApproved
	if action == ReviewActionReject {
		eventType = NotificationWithdrawalRejected
	}
	s.emit(NotificationEvent{
		Type:       eventType,
		MemberID:   withdrawal.MemberID,
		ResourceID: withdrawal.ID,
		Data: map[string]string{
			"amount":  withdrawal.Amount.String(),
			"purpose": withdrawal.Purpose,
		},
	})

	return withdrawal, nil
}

func (s *ledgerService) ListMemberWithdrawals(memberID uuid.UUID, limit, offset int) ([]models.Withdrawal, int64, error) {
	return s.withdrawalRepo.GetByMemberID(memberID, limit, offset)
}

// TransferFunds moves money between two funds atomically.
func (s *ledgerService) TransferFunds(initiatorID, fromFundID, toFundID uuid.UUID, amount decimal.Decimal, description string) (*models.FundTransaction, error) {
	start := time.Now()

	transactionID, err := s.fundRepo.ExecuteAtomicTransfer(fromFundID, toFundID, amount, initiatorID, description)
	if err != nil {
		s.metrics.IncrementCounter("ledger_transfers_total", map[string]string{"status": "failed"})
		switch {
		case errors.Is(err, repositories.ErrFundNotFound):
			return nil, ErrFundNotFound
		case errors.Is(err, models.ErrSameFundTransfer):
			return nil, ErrSameFundTransfer
		case errors.Is(err, models.ErrInvalidTransferAmount):
			return nil, ErrInvalidAmount
		case errors.Is(err, models.ErrInsufficientFunds):
			return nil, ErrInsufficientFunds
		}
		return nil, fmt.Errorf("failed to transfer funds: %w", err)
	}

	transaction, err := s.transactionRepo.GetByID(transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fund transaction: %w", err)
	}

	s.logger.Info("funds transferred",
		slog.String("transaction_id", transactionID.String()),
		slog.String("from_fund_id", fromFundID.String()),
		slog.String("to_fund_id", toFundID.String()),
		slog.String("amount", amount.String()))
	s.metrics.IncrementCounter("ledger_transfers_total", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("ledger_transfer_duration", time.Since(start))

	s.emit(NotificationEvent{
		Type:       NotificationFundTransfer,
		MemberID:   initiatorID,
		ResourceID: transactionID,
		Data: map[string]string{
			"from_fund_id": fromFundID.String(),
			"to_fund_id":   toFundID.String(),
			"amount":       amount.String(),
		},
	})

	return transaction, nil
}

func (s *ledgerService) ListFundTransactions(fundID uuid.UUID, limit, offset int) ([]models.FundTransaction, int64, error) {
	if fundID == uuid.Nil {
		return s.transactionRepo.GetAll(limit, offset)
	}
	return s.transactionRepo.GetByFundID(fundID, limit, offset)
}

// mapReviewError translates repository and model errors into the service
// error vocabulary.
func (s *ledgerService) mapReviewError(err, notFound error) error {
	switch {
	case errors.Is(err, repositories.ErrDepositNotFound),
		errors.Is(err, repositories.ErrWithdrawalNotFound):
		return notFound
	case errors.Is(err, repositories.ErrFundNotFound):
		return ErrFundNotFound
	case errors.Is(err, models.ErrAlreadyReviewed):
		return ErrAlreadyReviewed
	case errors.Is(err, models.ErrInsufficientFunds):
		return ErrInsufficientFunds
	}
	return fmt.Errorf("review failed: %w", err)
}

// emit delivers a post-commit event. The money has already moved by the
// time this runs, so failures here only get logged.
func (s *ledgerService) emit(event NotificationEvent) {
	if s.notifier == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	s.notifier.Notify(context.Background(), event)
}

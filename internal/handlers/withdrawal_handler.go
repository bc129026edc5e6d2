package handlers

import (
	"net/http"

	"group-ledger/internal/dto"
	"group-ledger/internal/errors"
	"group-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// WithdrawalHandler handles withdrawal-related HTTP requests
type WithdrawalHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewWithdrawalHandler creates a new withdrawal handler
func NewWithdrawalHandler(ledgerService services.LedgerServiceInterface) *WithdrawalHandler {
	return &WithdrawalHandler{ledgerService: ledgerService}
}

// RequestWithdrawal records the authenticated member's request
func (h *WithdrawalHandler) RequestWithdrawal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.RequestWithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid withdrawal amount"))
	}

	withdrawal, err := h.ledgerService.RequestWithdrawal(userID, amount, req.Purpose, req.Details, req.AttachmentURL)
	if err != nil {
		if err == services.ErrInvalidAmount {
			return SendError(c, errors.ValidationInvalidAmount)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.WithdrawalResponse{
		Withdrawal: withdrawal,
		Message:    "Withdrawal submitted for review",
	})
}

// ReviewWithdrawal applies a manager's verdict to a pending withdrawal
func (h *WithdrawalHandler) ReviewWithdrawal(c echo.Context) error {
	reviewerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	withdrawalID, err := uuid.Parse(c.Param("withdrawalId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid withdrawal ID"))
	}

	var req dto.ReviewWithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	var fundID *uuid.UUID
	if req.FundID != "" {
		parsed, err := uuid.Parse(req.FundID)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid fund ID"))
		}
		fundID = &parsed
	}

	withdrawal, err := h.ledgerService.ReviewWithdrawal(withdrawalID, reviewerID, req.Action, fundID, req.Note)
	if err != nil {
		switch err {
		case services.ErrWithdrawalNotFound:
			return SendError(c, errors.WithdrawalNotFound)
		case services.ErrAlreadyReviewed:
			return SendError(c, errors.WithdrawalAlreadyReviewed)
		case services.ErrFundRequired:
			return SendError(c, errors.FundRequired)
		case services.ErrFundNotFound:
			return SendError(c, errors.FundNotFound)
		case services.ErrInsufficientFunds:
			return SendError(c, errors.FundInsufficientFunds)
		case services.ErrInvalidReviewAction:
			return SendError(c, errors.WithdrawalInvalidAction)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.WithdrawalResponse{
		Withdrawal: withdrawal,
		Message:    "Withdrawal reviewed successfully",
	})
}

// ListMyWithdrawals returns the authenticated member's withdrawals
func (h *WithdrawalHandler) ListMyWithdrawals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	params := bindPagination(c)

	withdrawals, total, err := h.ledgerService.ListMemberWithdrawals(userID, params.Limit, params.Offset)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListWithdrawalsResponse{
		Withdrawals: withdrawals,
		Pagination: dto.PaginationInfo{
			Limit:  params.Limit,
			Offset: params.Offset,
			Total:  total,
		},
	})
}

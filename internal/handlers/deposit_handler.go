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

// DepositHandler handles deposit-related HTTP requests
type DepositHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewDepositHandler creates a new deposit handler
func NewDepositHandler(ledgerService services.LedgerServiceInterface) *DepositHandler {
	return &DepositHandler{ledgerService: ledgerService}
}

// SubmitDeposit records the authenticated member's claim of payment
func (h *DepositHandler) SubmitDeposit(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SubmitDepositRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid deposit amount"))
	}

	deposit, err := h.ledgerService.SubmitDeposit(userID, req.Month, amount, req.DepositType, req.Reference, req.ReceiptURL)
	if err != nil {
		if err == services.ErrInvalidAmount {
			return SendError(c, errors.ValidationInvalidAmount)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.DepositResponse{
		Deposit: deposit,
		Message: "Deposit submitted for review",
	})
}

// ReviewDeposit applies a manager's verdict to a pending deposit
func (h *DepositHandler) ReviewDeposit(c echo.Context) error {
	reviewerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	depositID, err := uuid.Parse(c.Param("depositId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid deposit ID"))
	}

	var req dto.ReviewDepositRequest
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

	deposit, err := h.ledgerService.ReviewDeposit(depositID, reviewerID, req.Action, fundID, req.Note)
	if err != nil {
		switch err {
		case services.ErrDepositNotFound:
			return SendError(c, errors.DepositNotFound)
		case services.ErrAlreadyReviewed:
			return SendError(c, errors.DepositAlreadyReviewed)
		case services.ErrFundRequired:
			return SendError(c, errors.FundRequired)
		case services.ErrFundNotFound:
			return SendError(c, errors.FundNotFound)
		case services.ErrInvalidReviewAction:
			return SendError(c, errors.DepositInvalidAction)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DepositResponse{
		Deposit: deposit,
		Message: "Deposit reviewed successfully",
	})
}

// ListMyDeposits returns the authenticated member's deposits
func (h *DepositHandler) ListMyDeposits(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	params := bindPagination(c)

	deposits, total, err := h.ledgerService.ListMemberDeposits(userID, params.Limit, params.Offset)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListDepositsResponse{
		Deposits: deposits,
		Pagination: dto.PaginationInfo{
			Limit:  params.Limit,
			Offset: params.Offset,
			Total:  total,
		},
	})
}

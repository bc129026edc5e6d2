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

// FundHandler handles fund-related HTTP requests
type FundHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewFundHandler creates a new fund handler
func NewFundHandler(ledgerService services.LedgerServiceInterface) *FundHandler {
	return &FundHandler{ledgerService: ledgerService}
}

// CreateFund creates a new fund with a zero balance
func (h *FundHandler) CreateFund(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateFundRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	fund, err := h.ledgerService.CreateFund(userID, req.Title, req.Currency)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.FundResponse{
		Fund:    fund,
		Message: "Fund created successfully",
	})
}

// GetFund retrieves a single fund by ID
func (h *FundHandler) GetFund(c echo.Context) error {
	fundID, err := uuid.Parse(c.Param("fundId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid fund ID"))
	}

	fund, err := h.ledgerService.GetFund(fundID)
	if err != nil {
		if err == services.ErrFundNotFound {
			return SendError(c, errors.FundNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FundResponse{Fund: fund})
}

// ListFunds returns all active funds
func (h *FundHandler) ListFunds(c echo.Context) error {
	params := bindPagination(c)

	funds, total, err := h.ledgerService.ListFunds(params.Limit, params.Offset)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListFundsResponse{
		Funds: funds,
		Pagination: dto.PaginationInfo{
			Limit:  params.Limit,
			Offset: params.Offset,
			Total:  total,
		},
	})
}

// RenameFund updates a fund title
func (h *FundHandler) RenameFund(c echo.Context) error {
	fundID, err := uuid.Parse(c.Param("fundId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid fund ID"))
	}

	var req dto.RenameFundRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	fund, err := h.ledgerService.RenameFund(fundID, req.Title)
	if err != nil {
		if err == services.ErrFundNotFound {
			return SendError(c, errors.FundNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FundResponse{
		Fund:    fund,
		Message: "Fund updated successfully",
	})
}

// DeleteFund soft-deletes an empty fund
func (h *FundHandler) DeleteFund(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	fundID, err := uuid.Parse(c.Param("fundId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid fund ID"))
	}

	if err := h.ledgerService.DeleteFund(fundID, userID); err != nil {
		switch err {
		case services.ErrFundNotFound:
			return SendError(c, errors.FundNotFound)
		case services.ErrNonZeroBalance:
			return SendError(c, errors.FundNonZeroBalance)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Fund deleted successfully",
	})
}

// TransferFunds moves money between two funds
func (h *FundHandler) TransferFunds(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.TransferFundsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	fromFundID, err := uuid.Parse(req.FromFundID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid source fund ID"))
	}
	toFundID, err := uuid.Parse(req.ToFundID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid destination fund ID"))
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.TransferInvalidAmount, errors.WithDetails("Invalid transfer amount"))
	}

	transaction, err := h.ledgerService.TransferFunds(userID, fromFundID, toFundID, amount, req.Description)
	if err != nil {
		switch err {
		case services.ErrFundNotFound:
			return SendError(c, errors.FundNotFound)
		case services.ErrSameFundTransfer:
			return SendError(c, errors.TransferSameFund)
		case services.ErrInvalidAmount:
			return SendError(c, errors.TransferInvalidAmount)
		case services.ErrInsufficientFunds:
			return SendError(c, errors.TransferInsufficientFunds)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.TransferResponse{
		Transaction: transaction,
		Message:     "Transfer completed successfully",
	})
}

// ListFundTransactions returns the transfer history, optionally scoped
// to a single fund
func (h *FundHandler) ListFundTransactions(c echo.Context) error {
	params := bindPagination(c)

	fundID := uuid.Nil
	if raw := c.QueryParam("fund_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid fund ID"))
		}
		fundID = parsed
	}

	transactions, total, err := h.ledgerService.ListFundTransactions(fundID, params.Limit, params.Offset)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListFundTransactionsResponse{
		Transactions: transactions,
		Pagination: dto.PaginationInfo{
			Limit:  params.Limit,
			Offset: params.Offset,
			Total:  total,
		},
	})
}

package dto

import (
	"group-ledger/internal/models"
)

// Fund Request DTOs

// CreateFundRequest represents the request payload for creating a fund
type CreateFundRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=255"`
	Currency string `json:"currency" validate:"omitempty,currency_code"`
}

// RenameFundRequest represents the request payload for renaming a fund
type RenameFundRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
}

// TransferFundsRequest represents the request payload for moving money
// between two funds
type TransferFundsRequest struct {
	FromFundID  string `json:"from_fund_id" validate:"required,uuid"`
	ToFundID    string `json:"to_fund_id" validate:"required,uuid"`
	Amount      string `json:"amount" validate:"required,money_amount"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

// Fund Response DTOs

// FundResponse represents a single fund in API responses
type FundResponse struct {
	Fund    *models.Fund `json:"fund"`
	Message string       `json:"message,omitempty"`
}

// ListFundsResponse represents the response for listing funds
type ListFundsResponse struct {
	Funds      []models.Fund  `json:"funds"`
	Pagination PaginationInfo `json:"pagination"`
}

// TransferResponse represents the response after a fund transfer
type TransferResponse struct {
	Transaction *models.FundTransaction `json:"transaction"`
	Message     string                  `json:"message"`
}

// ListFundTransactionsResponse represents the response for listing transfers
type ListFundTransactionsResponse struct {
	Transactions []models.FundTransaction `json:"transactions"`
	Pagination   PaginationInfo           `json:"pagination"`
}

// PaginationParams contains pagination parameters
type PaginationParams struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

package dto

import (
	"group-ledger/internal/models"
)

// Deposit and withdrawal submission DTOs

// SubmitDepositRequest represents a member's claim of payment for a month
type SubmitDepositRequest struct {
	Month       string `json:"month" validate:"required,month_format"`
	Amount      string `json:"amount" validate:"required,money_amount"`
	DepositType string `json:"deposit_type" validate:"omitempty,oneof=full partial"`
	Reference   string `json:"reference" validate:"omitempty,max=100"`
	ReceiptURL  string `json:"receipt_url" validate:"omitempty,url"`
}

// RequestWithdrawalRequest represents a member's request to take money out
type RequestWithdrawalRequest struct {
	Amount        string `json:"amount" validate:"required,money_amount"`
	Purpose       string `json:"purpose" validate:"required,min=1,max=100"`
	Details       string `json:"details" validate:"omitempty,max=2000"`
	AttachmentURL string `json:"attachment_url" validate:"omitempty,url"`
}

// Review DTOs

// ReviewDepositRequest represents a manager's verdict on a deposit
type ReviewDepositRequest struct {
	Action string `json:"action" validate:"required,oneof=verify reject"`
	FundID string `json:"fund_id" validate:"omitempty,uuid"`
	Note   string `json:"note" validate:"omitempty,max=2000"`
}

// ReviewWithdrawalRequest represents a manager's verdict on a withdrawal
type ReviewWithdrawalRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	FundID string `json:"fund_id" validate:"omitempty,uuid"`
	Note   string `json:"note" validate:"omitempty,max=2000"`
}

// Response DTOs

// DepositResponse represents a single deposit in API responses
type DepositResponse struct {
	Deposit *models.Deposit `json:"deposit"`
	Message string          `json:"message,omitempty"`
}

// WithdrawalResponse represents a single withdrawal in API responses
type WithdrawalResponse struct {
	Withdrawal *models.Withdrawal `json:"withdrawal"`
	Message    string             `json:"message,omitempty"`
}

// ListDepositsResponse represents the response for listing deposits
type ListDepositsResponse struct {
	Deposits   []models.Deposit `json:"deposits"`
	Pagination PaginationInfo   `json:"pagination"`
}

// ListWithdrawalsResponse represents the response for listing withdrawals
type ListWithdrawalsResponse struct {
	Withdrawals []models.Withdrawal `json:"withdrawals"`
	Pagination  PaginationInfo      `json:"pagination"`
}

package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidMonth  ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
)

// Fund error codes (FUND_*)
const (
	FundNotFound          ErrorCode = "FUND_001"
	FundRequired          ErrorCode = "FUND_002"
	FundInsufficientFunds ErrorCode = "FUND_003"
	FundNonZeroBalance    ErrorCode = "FUND_004"
)

// Deposit error codes (DEPOSIT_*)
const (
	DepositNotFound        ErrorCode = "DEPOSIT_001"
	DepositAlreadyReviewed ErrorCode = "DEPOSIT_002"
	DepositInvalidAction   ErrorCode = "DEPOSIT_003"
)

// Withdrawal error codes (WITHDRAWAL_*)
const (
	WithdrawalNotFound        ErrorCode = "WITHDRAWAL_001"
	WithdrawalAlreadyReviewed ErrorCode = "WITHDRAWAL_002"
	WithdrawalInvalidAction   ErrorCode = "WITHDRAWAL_003"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferSameFund          ErrorCode = "TRANSFER_001"
	TransferInvalidAmount     ErrorCode = "TRANSFER_002"
	TransferInsufficientFunds ErrorCode = "TRANSFER_003"
)

// Setting error codes (SETTING_*)
const (
	SettingNotFound ErrorCode = "SETTING_001"
	SettingOverlap  ErrorCode = "SETTING_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemDatabaseError     ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to perform this action",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidMonth:  "Month must be in YYYY-MM format",
	ValidationInvalidAmount: "Amount must be a positive value",

	// Fund errors
	FundNotFound:          "Fund not found",
	FundRequired:          "A target fund is required for this action",
	FundInsufficientFunds: "Fund has insufficient balance",
	FundNonZeroBalance:    "Fund balance must be zero before deletion",

	// Deposit errors
	DepositNotFound:        "Deposit not found",
	DepositAlreadyReviewed: "Deposit has already been reviewed",
	DepositInvalidAction:   "Invalid deposit review action",

	// Withdrawal errors
	WithdrawalNotFound:        "Withdrawal request not found",
	WithdrawalAlreadyReviewed: "Withdrawal request has already been reviewed",
	WithdrawalInvalidAction:   "Invalid withdrawal review action",

	// Transfer errors
	TransferSameFund:          "Cannot transfer to the same fund",
	TransferInvalidAmount:     "Invalid transfer amount",
	TransferInsufficientFunds: "Source fund has insufficient balance for this transfer",

	// Setting errors
	SettingNotFound: "No deposit setting found for this month",
	SettingOverlap:  "A deposit setting already covers this month",

	// System errors
	SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:     "Database connection error",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

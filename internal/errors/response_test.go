package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_Defaults tests default message resolution
func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	resp := NewErrorResponse(DepositAlreadyReviewed, "trace-123")

	s.Equal("DEPOSIT_002", resp.Error.Code)
	s.Equal("Deposit has already been reviewed", resp.Error.Message)
	s.Equal("trace-123", resp.Error.TraceID)
	s.Empty(resp.Error.Details)
}

// TestNewErrorResponse_WithOptions tests functional options
func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	resp := NewErrorResponse(
		ValidationGeneral,
		"trace-456",
		WithDetails("month: must be YYYY-MM"),
		WithMessage("Request validation failed"),
	)

	s.Equal("Request validation failed", resp.Error.Message)
	s.Equal([]string{"month: must be YYYY-MM"}, resp.Error.Details)
}

// TestNewValidationError tests field error mapping
func (s *ResponseTestSuite) TestNewValidationError() {
	resp := NewValidationError(map[string]string{"amount": "must be positive"}, "trace-789")

	s.Equal(string(ValidationGeneral), resp.Error.Code)
	s.Len(resp.Error.Details, 1)
	s.Contains(resp.Error.Details[0], "amount")
}

// TestWrapSystemError tests that internals are hidden from clients
func (s *ResponseTestSuite) TestWrapSystemError() {
	cause := errors.New("pq: connection refused")
	resp, err := WrapSystemError(cause, "trace-db")

	s.Equal(cause, err)
	s.Equal(string(SystemInternalError), resp.Error.Code)
	s.NotContains(resp.Error.Message, "pq:")
}

// TestGetHTTPStatus tests the code to status mapping
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code   ErrorCode
		status int
	}{
		{FundRequired, http.StatusBadRequest},
		{TransferSameFund, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthInsufficientPermission, http.StatusForbidden},
		{DepositNotFound, http.StatusNotFound},
		{DepositAlreadyReviewed, http.StatusConflict},
		{WithdrawalAlreadyReviewed, http.StatusConflict},
		{TransferInsufficientFunds, http.StatusUnprocessableEntity},
		{FundNonZeroBalance, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemDatabaseError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.status, GetHTTPStatus(tc.code), "code %s", tc.code)
	}
}

// TestErrorResponse_Classification tests client/server error helpers
func (s *ResponseTestSuite) TestErrorResponse_Classification() {
	client := NewErrorResponse(FundNotFound, "t")
	s.True(client.IsClientError())
	s.False(client.IsServerError())

	server := NewErrorResponse(SystemInternalError, "t")
	s.False(server.IsClientError())
	s.True(server.IsServerError())
}

// TestErrorResponse_ToJSON tests serialization shape
func (s *ResponseTestSuite) TestErrorResponse_ToJSON() {
	resp := NewErrorResponse(FundInsufficientFunds, "trace-json")

	raw, err := resp.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(raw, &decoded))
	s.Equal("FUND_003", decoded["error"]["code"])
	s.Equal("trace-json", decoded["error"]["trace_id"])
}

package handlers

import (
	"fmt"
	"strconv"

	"group-ledger/internal/dto"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// clampQueryParam reads an integer query parameter and clamps it to
// the given bounds
func clampQueryParam(c echo.Context, name string, defaultValue, min, max int) int {
	value := defaultValue
	if raw := c.QueryParam(name); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			value = parsed
		}
	}
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value
}

// bindPagination reads limit/offset query params and clamps them
func bindPagination(c echo.Context) dto.PaginationParams {
	var params dto.PaginationParams
	_ = c.Bind(&params)

	if params.Limit <= 0 {
		params.Limit = defaultPageLimit
	}
	if params.Limit > maxPageLimit {
		params.Limit = maxPageLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	return params
}

package handlers

import (
	"net/http"
	"time"

	"group-ledger/internal/models"
	"group-ledger/internal/repositories"
	"group-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	fundRepo       repositories.FundRepositoryInterface
	depositRepo    repositories.DepositRepositoryInterface
	withdrawalRepo repositories.WithdrawalRepositoryInterface
	tokenService   services.TokenServiceInterface
	generator      services.SampleDataGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	fundRepo repositories.FundRepositoryInterface,
	depositRepo repositories.DepositRepositoryInterface,
	withdrawalRepo repositories.WithdrawalRepositoryInterface,
	tokenService services.TokenServiceInterface,
) *DevHandler {
	return &DevHandler{
		fundRepo:       fundRepo,
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
		tokenService:   tokenService,
		generator:      services.NewSampleDataGenerator(uint64(time.Now().UnixNano())),
	}
}

// IssueToken mints an access token for local testing. Member identities
// normally come from the external identity service.
//
// Method: POST /api/v1/dev/token
// Environment: Development only
//
// Query parameters:
//   - role: member or manager (default: member)
//   - member_id: UUID to embed (default: random)
func (h *DevHandler) IssueToken(c echo.Context) error {
	role := c.QueryParam("role")
	if role == "" {
		role = models.RoleMember
	}
	if role != models.RoleMember && role != models.RoleManager {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be member or manager")
	}

	memberID := uuid.New()
	if raw := c.QueryParam("member_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid member ID")
		}
		memberID = parsed
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(memberID, role)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token":      token,
		"member_id":  memberID,
		"role":       role,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// GenerateSampleData seeds funds and a deposit/withdrawal history for
// the authenticated member
//
// Method: POST /api/v1/dev/generate-sample-data
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - funds: Number of funds to create (default: 3, max: 10)
//   - deposits: Number of monthly deposits to create (default: 12, max: 60)
//   - withdrawals: Number of withdrawals to create (default: 2, max: 20)
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	fundCount := clampQueryParam(c, "funds", 3, 1, 10)
	depositCount := clampQueryParam(c, "deposits", 12, 1, 60)
	withdrawalCount := clampQueryParam(c, "withdrawals", 2, 0, 20)

	fundsCreated := 0
	for _, fund := range h.generator.GenerateFunds(fundCount) {
		fund.CreatedBy = userID
		if err := h.fundRepo.Create(fund); err != nil {
			continue
		}
		fundsCreated++
	}

	currentMonth := models.MonthOf(time.Now())
	startMonth, err := models.AddMonths(currentMonth, -(depositCount - 1))
	if err != nil {
		startMonth = currentMonth
	}
	depositsCreated := 0
	for _, deposit := range h.generator.GenerateDeposits(userID, startMonth, depositCount) {
		if err := h.depositRepo.Create(deposit); err != nil {
			continue
		}
		depositsCreated++
	}

	withdrawalsCreated := 0
	for _, withdrawal := range h.generator.GenerateWithdrawals(userID, withdrawalCount) {
		if err := h.withdrawalRepo.Create(withdrawal); err != nil {
			continue
		}
		withdrawalsCreated++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":             "sample data generated successfully",
		"funds_created":       fundsCreated,
		"deposits_created":    depositsCreated,
		"withdrawals_created": withdrawalsCreated,
		"member_id":           userID,
	})
}

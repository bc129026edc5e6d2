package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"group-ledger/internal/config"
	"group-ledger/internal/models"
	"group-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.NoError(err)

	jwtConfig := &config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: 24 * time.Hour,
	}

	s.tokenService = services.NewTokenService(jwtConfig)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) createTokenService() services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.NoError(err)

	jwtConfig := &config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: 24 * time.Hour,
	}

	return services.NewTokenService(jwtConfig)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	middleware := RequireAuth(s.tokenService)

	memberID := uuid.New()
	token, _, err := s.tokenService.GenerateAccessToken(memberID, models.RoleMember)
	s.NoError(err)

	handler := middleware(func(c echo.Context) error {
		s.Equal(memberID, c.Get("user_id"))
		s.Equal(models.RoleMember, c.Get("user_role"))
		s.Equal(false, c.Get("is_manager"))
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ManagerFlag() {
	middleware := RequireAuth(s.tokenService)

	managerID := uuid.New()
	token, _, err := s.tokenService.GenerateAccessToken(managerID, models.RoleManager)
	s.NoError(err)

	handler := middleware(func(c echo.Context) error {
		s.Equal(true, c.Get("is_manager"))
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingHeader() {
	middleware := RequireAuth(s.tokenService)

	handler := middleware(func(c echo.Context) error {
		s.Fail("handler should not run without a token")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedHeader() {
	middleware := RequireAuth(s.tokenService)

	handler := middleware(func(c echo.Context) error {
		s.Fail("handler should not run with a malformed header")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenFromDifferentKeypair() {
	middleware := RequireAuth(s.tokenService)

	// Signed with a different key; signature check must fail
	otherService := s.createTokenService()
	token, _, err := otherService.GenerateAccessToken(uuid.New(), models.RoleMember)
	s.NoError(err)

	handler := middleware(func(c echo.Context) error {
		s.Fail("handler should not run with a foreign token")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireManager_AllowsManager() {
	middleware := RequireManager()

	handler := middleware(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/funds", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_role", models.RoleManager)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireManager_RejectsMember() {
	middleware := RequireManager()

	handler := middleware(func(c echo.Context) error {
		s.Fail("handler should not run for a member")
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/funds", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_role", models.RoleMember)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireRole_MissingRole() {
	middleware := RequireRole(models.RoleManager)

	handler := middleware(func(c echo.Context) error {
		s.Fail("handler should not run without a role")
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/funds", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

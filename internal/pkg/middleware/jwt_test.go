package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/SAID-SWIAAID/stagep/internal/pkg/jwt"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
)

func jwtTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "supplier-admin",
	}
}

func runGuard(t *testing.T, cfg models.JWTConfig, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuthMiddleware(cfg)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, c
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	cfg := jwtTestConfig()
	token, _, err := jwtpkg.GenerateToken("uid-1", "+15551234567", models.UserTypeSupplier, cfg)
	require.NoError(t, err)

	rec, c := runGuard(t, cfg, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", c.Get(ContextUserID))
	assert.Equal(t, models.UserTypeSupplier, c.Get(ContextUserRole))
	assert.Equal(t, "+15551234567", c.Get(ContextPhoneNumber))
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _ := runGuard(t, jwtTestConfig(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header is required")
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	rec, _ := runGuard(t, jwtTestConfig(), "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid authorization format")
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	cfg := jwtTestConfig()
	expiredCfg := cfg
	expiredCfg.Expiration = -1
	token, _, err := jwtpkg.GenerateToken("uid-1", "+15551234567", models.UserTypeClient, expiredCfg)
	require.NoError(t, err)

	rec, _ := runGuard(t, cfg, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token has expired")
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	rec, _ := runGuard(t, jwtTestConfig(), "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextUserRole, models.UserTypeClient)

	handler := RequireRole(models.UserTypeSupplier)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

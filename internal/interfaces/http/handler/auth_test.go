package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/alshbh/storefront/internal/application/identity"
	"github.com/alshbh/storefront/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAuthRoutes(env *testEnv) {
	h := NewAuthHandler(env.auth)
	env.engine.POST("/auth/login", h.Login)
	env.engine.POST("/auth/refresh", h.RefreshToken)
	protected := env.adminGroup("/auth")
	protected.GET("/session", h.Session)
	protected.POST("/logout", h.Logout)
	protected.PUT("/password", h.ChangePassword)
	env.adminGroup("/admin").GET("/whoami", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func (e *testEnv) login(t *testing.T, password string) identity.TokenResult {
	t.Helper()
	w := e.do(http.MethodPost, "/auth/login", map[string]any{"password": password})
	requireStatus(t, w, http.StatusOK)
	return decode[identity.TokenResult](t, w).Data
}

func TestAuthHandler_Login(t *testing.T) {
	env := newTestEnv(t)
	registerAuthRoutes(env)

	tokens := env.login(t, "bootstrap-pass")
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.True(t, tokens.RefreshTokenExpiresAt.After(tokens.AccessTokenExpiresAt))

	w := env.do(http.MethodGet, "/admin/whoami", nil, "Authorization", "Bearer "+tokens.AccessToken)
	assert.Equal(t, http.StatusNoContent, w.Code)

	tests := []struct {
		name   string
		body   map[string]any
		status int
		code   string
	}{
		{"wrong password", map[string]any{"password": "guess-again"}, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"missing password", map[string]any{}, http.StatusBadRequest, dto.ErrCodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/auth/login", tt.body)
			requireStatus(t, w, tt.status)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

func TestAuthHandler_Session(t *testing.T) {
	env := newTestEnv(t)
	registerAuthRoutes(env)
	tokens := env.login(t, "bootstrap-pass")

	w := env.do(http.MethodGet, "/auth/session", nil, "Authorization", "Bearer "+tokens.AccessToken)
	requireStatus(t, w, http.StatusOK)
	session := decode[SessionResponse](t, w).Data
	assert.Equal(t, "admin", session.Subject)
	assert.Equal(t, "admin", session.Role)
	assert.Positive(t, session.ExpiresInSeconds)
	assert.WithinDuration(t, tokens.AccessTokenExpiresAt, session.ExpiresAt, time.Second)

	w = env.do(http.MethodGet, "/auth/session", nil)
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	env := newTestEnv(t)
	registerAuthRoutes(env)
	tokens := env.login(t, "bootstrap-pass")

	w := env.do(http.MethodPost, "/auth/refresh", map[string]any{"refresh_token": tokens.RefreshToken})
	requireStatus(t, w, http.StatusOK)
	refreshed := decode[identity.TokenResult](t, w).Data
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, tokens.AccessToken, refreshed.AccessToken)

	w = env.do(http.MethodPost, "/auth/refresh", map[string]any{"refresh_token": tokens.AccessToken})
	requireStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, "TOKEN_INVALID", errorCode(t, w), "access tokens cannot refresh")

	w = env.do(http.MethodPost, "/auth/refresh", map[string]any{"refresh_token": "garbage"})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestAuthHandler_LogoutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	registerAuthRoutes(env)
	tokens := env.login(t, "bootstrap-pass")
	bearer := []string{"Authorization", "Bearer " + tokens.AccessToken}

	w := env.do(http.MethodPost, "/auth/logout", nil)
	requireStatus(t, w, http.StatusUnauthorized)

	w = env.do(http.MethodPost, "/auth/logout", nil, bearer...)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "Logged out successfully", decode[MessageResponse](t, w).Data.Message)

	w = env.do(http.MethodGet, "/admin/whoami", nil, bearer...)
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	registerAuthRoutes(env)
	tokens := env.login(t, "bootstrap-pass")
	bearer := []string{"Authorization", "Bearer " + tokens.AccessToken}

	w := env.do(http.MethodPut, "/auth/password", map[string]any{
		"current_password": "bootstrap-pass",
		"new_password":     "short",
	}, bearer...)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, dto.ErrCodeValidation, errorCode(t, w))

	w = env.do(http.MethodPut, "/auth/password", map[string]any{
		"current_password": "not-the-password",
		"new_password":     "a-much-better-secret",
	}, bearer...)
	requireStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, w))

	w = env.do(http.MethodPut, "/auth/password", map[string]any{
		"current_password": "bootstrap-pass",
		"new_password":     "a-much-better-secret",
	}, bearer...)
	requireStatus(t, w, http.StatusOK)

	w = env.do(http.MethodGet, "/admin/whoami", nil, bearer...)
	requireStatus(t, w, http.StatusUnauthorized)

	w = env.do(http.MethodPost, "/auth/login", map[string]any{"password": "bootstrap-pass"})
	requireStatus(t, w, http.StatusUnauthorized)

	fresh := env.login(t, "a-much-better-secret")
	require.NotEmpty(t, fresh.AccessToken)
}

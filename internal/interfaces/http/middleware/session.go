package middleware

import (
	"net/http"
	"strings"

	"github.com/alshbh/storefront/internal/infrastructure/config"
	"github.com/alshbh/storefront/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionConfig configures how shopping sessions are carried
type SessionConfig struct {
	HeaderName string
	CookieName string
	MaxAge     int // seconds
	Cookie     config.CookieConfig
}

// NewSessionConfig builds a SessionConfig from application config
func NewSessionConfig(session config.SessionConfig, cookie config.CookieConfig) SessionConfig {
	return SessionConfig{
		HeaderName: session.HeaderName,
		CookieName: session.CookieName,
		MaxAge:     int(session.TTL.Seconds()),
		Cookie:     cookie,
	}
}

// Session resolves the anonymous shopping session. The header wins over the
// cookie; ids that are not UUIDs are replaced by a new one, which is echoed
// back in both the cookie and the response header.
func Session(cfg SessionConfig) gin.HandlerFunc {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Session-ID"
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "sid"
	}
	if cfg.Cookie.Path == "" {
		cfg.Cookie.Path = "/"
	}
	sameSite := parseSameSite(cfg.Cookie.SameSite)

	return func(c *gin.Context) {
		sessionID, ok := sessionFromRequest(c, cfg)
		if !ok {
			sessionID = uuid.NewString()
		}

		if cookie, err := c.Cookie(cfg.CookieName); err != nil || cookie != sessionID {
			c.SetSameSite(sameSite)
			c.SetCookie(cfg.CookieName, sessionID, cfg.MaxAge, cfg.Cookie.Path, cfg.Cookie.Domain, cfg.Cookie.Secure, true)
		}
		c.Header(cfg.HeaderName, sessionID)
		c.Set(SessionIDKey, sessionID)

		ctx, _ := logger.WithSessionID(c.Request.Context(), logger.FromContext(c.Request.Context()), sessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func sessionFromRequest(c *gin.Context, cfg SessionConfig) (string, bool) {
	if id, ok := normalizeSessionID(c.GetHeader(cfg.HeaderName)); ok {
		return id, true
	}
	if cookie, err := c.Cookie(cfg.CookieName); err == nil {
		return normalizeSessionID(cookie)
	}
	return "", false
}

func normalizeSessionID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return "", false
	}
	return id.String(), true
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// GetSessionID returns the session resolved by Session
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

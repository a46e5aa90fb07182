package middleware

import (
	"errors"
	"strings"

	"github.com/alshbh/storefront/internal/infrastructure/auth"
	"github.com/alshbh/storefront/internal/infrastructure/logger"
	"github.com/alshbh/storefront/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	JWTService *auth.JWTService
	// TokenBlacklist is optional; without it logout cannot revoke access tokens
	TokenBlacklist auth.TokenBlacklist
	Logger         *zap.Logger
}

// AdminAuth accepts only admin access tokens that have not been revoked.
// Blacklist lookups fail open so a Redis outage does not lock the staff out.
func AdminAuth(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader(AuthHeaderKey))
		if !ok {
			abort(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			log.Debug("JWT authentication failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
			abortTokenError(c, err)
			return
		}
		if !claims.IsAdmin() {
			abort(c, dto.ErrCodeForbidden, "Admin access required")
			return
		}

		if cfg.TokenBlacklist != nil {
			ctx := c.Request.Context()
			if claims.ID != "" {
				revoked, err := cfg.TokenBlacklist.IsRevoked(ctx, claims.ID)
				if err != nil {
					log.Error("Failed to check token blacklist", zap.String("jti", claims.ID), zap.Error(err))
				} else if revoked {
					abortTokenError(c, auth.ErrTokenBlacklisted)
					return
				}
			}

			// Password changes revoke every token issued before them
			revoked, err := cfg.TokenBlacklist.IsSubjectRevoked(ctx, claims.Subject, claims.IssuedAtTime())
			if err != nil {
				log.Error("Failed to check subject revocation", zap.String("subject", claims.Subject), zap.Error(err))
			} else if revoked {
				abortTokenError(c, auth.ErrTokenBlacklisted)
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Set(SubjectKey, claims.Subject)
		c.Set(TokenJTIKey, claims.ID)

		ctx, _ := logger.WithSubject(c.Request.Context(), logger.FromContext(c.Request.Context()), claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, BearerPrefix)
	token = strings.TrimSpace(token)
	return token, ok && token != ""
}

func abortTokenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		abort(c, "TOKEN_EXPIRED", "Token has expired")
	case errors.Is(err, auth.ErrTokenBlacklisted):
		abort(c, "TOKEN_REVOKED", "Token has been revoked")
	default:
		abort(c, "TOKEN_INVALID", "Invalid token")
	}
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(ClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

package identity

import (
	"context"
	"errors"

	"github.com/alshbh/storefront/internal/domain/identity"
	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// ErrAdminNotConfigured is returned when no password is stored and no bootstrap password is set
var ErrAdminNotConfigured = shared.NewDomainError("ADMIN_NOT_CONFIGURED", "Admin password has not been configured")

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	// BootstrapPassword seeds the stored hash on first login
	BootstrapPassword string
}

// AuthService handles back-office authentication
type AuthService struct {
	settingRepo identity.SettingRepository
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
	config      AuthServiceConfig
	logger      *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	settingRepo identity.SettingRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		settingRepo: settingRepo,
		jwtService:  jwtService,
		blacklist:   blacklist,
		config:      config,
		logger:      logger,
	}
}

// Login checks the admin password and issues tokens
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*TokenResult, error) {
	cred, err := s.credential(ctx)
	if err != nil {
		return nil, err
	}

	if !cred.Verify(input.Password) {
		s.logger.Warn("Invalid admin password attempt", zap.String("ip", input.IP))
		return nil, identity.ErrInvalidCredentials
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.AdminSubject, auth.RoleAdmin)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	s.logger.Info("Admin logged in", zap.String("ip", input.IP))
	return toTokenResult(pair), nil
}

// RefreshToken exchanges a refresh token for a new pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	if s.blacklist != nil {
		revoked, err := s.blacklist.IsSubjectRevoked(ctx, claims.Subject, claims.IssuedAtTime())
		if err != nil {
			s.logger.Error("Failed to check token revocation", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to validate refresh token")
		}
		if revoked {
			return nil, shared.NewDomainError("TOKEN_REVOKED", "Session has been revoked. Please log in again")
		}
	}

	pair, err := s.jwtService.RefreshTokenPair(refreshToken)
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}
	return toTokenResult(pair), nil
}

// Logout revokes the calling access token until it expires
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if s.blacklist == nil || input.TokenJTI == "" || input.RemainingTTL <= 0 {
		return nil
	}
	if err := s.blacklist.Revoke(ctx, input.TokenJTI, input.RemainingTTL); err != nil {
		s.logger.Error("Failed to blacklist token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
	}
	s.logger.Info("Admin logged out")
	return nil
}

// ChangePassword replaces the admin password and revokes existing sessions
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	cred, err := s.credential(ctx)
	if err != nil {
		return err
	}
	if err := cred.Change(input.CurrentPassword, input.NewPassword); err != nil {
		return err
	}
	if err := s.storeCredential(ctx, cred); err != nil {
		return err
	}

	if s.blacklist != nil {
		if err := s.blacklist.RevokeSubject(ctx, auth.AdminSubject, s.jwtService.RefreshTTL()); err != nil {
			s.logger.Error("Failed to revoke admin sessions", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Password changed but existing sessions could not be revoked")
		}
		if input.TokenJTI != "" && input.RemainingTTL > 0 {
			if err := s.blacklist.Revoke(ctx, input.TokenJTI, input.RemainingTTL); err != nil {
				s.logger.Error("Failed to blacklist token", zap.Error(err))
			}
		}
	}

	s.logger.Info("Admin password changed")
	return nil
}

// credential loads the stored hash, seeding it from the bootstrap password
func (s *AuthService) credential(ctx context.Context) (*identity.AdminCredential, error) {
	setting, err := s.settingRepo.FindByKey(ctx, identity.PasswordHashKey)
	if err == nil {
		return identity.AdminCredentialFromHash(setting.Value), nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if s.config.BootstrapPassword == "" {
		return nil, ErrAdminNotConfigured
	}
	cred, err := identity.NewAdminCredential(s.config.BootstrapPassword)
	if err != nil {
		return nil, err
	}
	if err := s.storeCredential(ctx, cred); err != nil {
		return nil, err
	}
	s.logger.Info("Admin password initialized from bootstrap configuration")
	return cred, nil
}

func (s *AuthService) storeCredential(ctx context.Context, cred *identity.AdminCredential) error {
	setting, err := identity.NewAdminSetting(identity.PasswordHashKey, cred.Hash())
	if err != nil {
		return err
	}
	return s.settingRepo.Upsert(ctx, setting)
}

func toTokenResult(pair *auth.TokenPair) *TokenResult {
	return &TokenResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}
}

// mapTokenError maps JWT errors to domain errors
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidTokenType),
		errors.Is(err, auth.ErrInvalidClaims), errors.Is(err, auth.ErrMissingSubject):
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to refresh token")
	}
}

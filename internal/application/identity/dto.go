package identity

import (
	"time"
)

// LoginInput contains the input for admin login
type LoginInput struct {
	Password string
	IP       string // Client IP for login tracking
}

// TokenResult is an issued token pair
type TokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// LogoutInput identifies the access token to revoke
type LogoutInput struct {
	TokenJTI     string
	RemainingTTL time.Duration
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	// TokenJTI of the calling token, revoked together with older sessions
	TokenJTI     string
	RemainingTTL time.Duration
}

// SettingRequest sets the value of a setting
type SettingRequest struct {
	Value string `json:"value" binding:"max=10000"`
}

// SettingResponse represents an admin setting in API responses
type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

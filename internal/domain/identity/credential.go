package identity

import (
	"github.com/alshbh/storefront/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

// ErrInvalidCredentials is returned when the admin password does not match
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid password")

// AdminCredential is the shared back-office password, stored as a bcrypt hash
type AdminCredential struct {
	hash string
}

// NewAdminCredential hashes a plain password
func NewAdminCredential(password string) (*AdminCredential, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password").WithCause(err)
	}
	return &AdminCredential{hash: string(hash)}, nil
}

// AdminCredentialFromHash wraps a stored hash
func AdminCredentialFromHash(hash string) *AdminCredential {
	return &AdminCredential{hash: hash}
}

// Hash returns the stored bcrypt hash
func (c *AdminCredential) Hash() string {
	return c.hash
}

// Verify checks a plain password against the hash
func (c *AdminCredential) Verify(password string) bool {
	if c.hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(password)) == nil
}

// Change replaces the password after checking the current one
func (c *AdminCredential) Change(current, next string) error {
	if !c.Verify(current) {
		return ErrInvalidCredentials
	}
	updated, err := NewAdminCredential(next)
	if err != nil {
		return err
	}
	c.hash = updated.hash
	return nil
}

// ValidatePassword enforces the admin password length rules
func ValidatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < minPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	// bcrypt ignores input past 72 bytes
	if len(password) > maxPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 bytes")
	}
	return nil
}

package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/alshbh/storefront/internal/domain/shared"
)

// PasswordHashKey is the reserved setting key holding the admin password hash
const PasswordHashKey = "admin_password_hash"

var settingKeyPattern = regexp.MustCompile(`^[a-z0-9_.]{1,100}$`)

// AdminSetting is a key/value pair configured from the back-office
type AdminSetting struct {
	shared.BaseEntity
	Key   string
	Value string
}

// NewAdminSetting creates a setting after validating its key
func NewAdminSetting(key, value string) (*AdminSetting, error) {
	key = strings.TrimSpace(key)
	if err := ValidateSettingKey(key); err != nil {
		return nil, err
	}
	return &AdminSetting{
		BaseEntity: shared.NewBaseEntity(),
		Key:        key,
		Value:      value,
	}, nil
}

// SetValue replaces the value
func (s *AdminSetting) SetValue(value string) {
	s.Value = value
	s.UpdatedAt = time.Now()
}

// IsReserved reports whether the key is managed by the system and must not
// be exposed or edited through the settings API
func (s *AdminSetting) IsReserved() bool {
	return IsReservedKey(s.Key)
}

// IsReservedKey reports whether key is system managed
func IsReservedKey(key string) bool {
	return key == PasswordHashKey
}

// ValidateSettingKey checks the key format
func ValidateSettingKey(key string) error {
	if !settingKeyPattern.MatchString(key) {
		return shared.NewDomainError("INVALID_KEY", "Setting key must be 1-100 characters of a-z, 0-9, '_' or '.'")
	}
	return nil
}

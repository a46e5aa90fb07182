package identity

import (
	"context"

	"github.com/alshbh/storefront/internal/domain/identity"
	"github.com/alshbh/storefront/internal/domain/shared"
)

// ErrReservedSetting hides system-managed keys from the settings API
var ErrReservedSetting = shared.NewDomainError("NOT_FOUND", "Setting not found")

// SettingService manages back-office key/value settings
type SettingService struct {
	repo identity.SettingRepository
}

// NewSettingService creates a new SettingService
func NewSettingService(repo identity.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// List returns every non-reserved setting
func (s *SettingService) List(ctx context.Context) ([]SettingResponse, error) {
	settings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SettingResponse, 0, len(settings))
	for i := range settings {
		if settings[i].IsReserved() {
			continue
		}
		out = append(out, toSettingResponse(&settings[i]))
	}
	return out, nil
}

// Get returns one setting
func (s *SettingService) Get(ctx context.Context, key string) (*SettingResponse, error) {
	if identity.IsReservedKey(key) {
		return nil, ErrReservedSetting
	}
	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	resp := toSettingResponse(setting)
	return &resp, nil
}

// Set creates or updates a setting
func (s *SettingService) Set(ctx context.Context, key string, req SettingRequest) (*SettingResponse, error) {
	if identity.IsReservedKey(key) {
		return nil, shared.NewDomainError("FORBIDDEN", "This setting cannot be changed here")
	}
	setting, err := identity.NewAdminSetting(key, req.Value)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return nil, err
	}
	resp := toSettingResponse(setting)
	return &resp, nil
}

// Delete removes a setting
func (s *SettingService) Delete(ctx context.Context, key string) error {
	if identity.IsReservedKey(key) {
		return shared.NewDomainError("FORBIDDEN", "This setting cannot be deleted")
	}
	return s.repo.DeleteByKey(ctx, key)
}

func toSettingResponse(setting *identity.AdminSetting) SettingResponse {
	return SettingResponse{Key: setting.Key, Value: setting.Value, UpdatedAt: setting.UpdatedAt}
}

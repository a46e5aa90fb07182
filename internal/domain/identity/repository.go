package identity

import "context"

// SettingRepository defines the interface for admin setting persistence
type SettingRepository interface {
	// FindByKey returns shared.ErrNotFound when the key is absent
	FindByKey(ctx context.Context, key string) (*AdminSetting, error)
	FindAll(ctx context.Context) ([]AdminSetting, error)
	// Upsert inserts the setting or updates the value of an existing key
	Upsert(ctx context.Context, setting *AdminSetting) error
	DeleteByKey(ctx context.Context, key string) error
}

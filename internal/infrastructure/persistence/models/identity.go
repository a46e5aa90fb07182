package models

import "github.com/alshbh/storefront/internal/domain/identity"

// AdminSettingModel is the persistence model for an admin key/value setting.
type AdminSettingModel struct {
	EntityColumns
	Key   string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Value string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (AdminSettingModel) TableName() string {
	return "admin_settings"
}

// ToDomain converts the persistence model to a domain AdminSetting.
func (m *AdminSettingModel) ToDomain() *identity.AdminSetting {
	return &identity.AdminSetting{
		BaseEntity: m.Entity(),
		Key:        m.Key,
		Value:      m.Value,
	}
}

// FromDomain populates the persistence model from a domain AdminSetting.
func (m *AdminSettingModel) FromDomain(s *identity.AdminSetting) {
	m.SetEntity(s.BaseEntity)
	m.Key = s.Key
	m.Value = s.Value
}

package models

import "github.com/alshbh/storefront/internal/domain/marketing"

// AdvertisementModel is the persistence model for the Advertisement aggregate root.
type AdvertisementModel struct {
	AggregateColumns
	Title         string `gorm:"type:varchar(200);not null"`
	TitleAr       string `gorm:"type:varchar(200)"`
	Description   string `gorm:"type:text"`
	DescriptionAr string `gorm:"type:text"`
	ImageURL      string `gorm:"type:text;not null"`
	Link          string `gorm:"type:text"`
	IsActive      bool   `gorm:"not null;default:true"`
	SortOrder     int    `gorm:"not null;default:0;index"`
}

// TableName returns the table name for GORM
func (AdvertisementModel) TableName() string {
	return "advertisements"
}

// ToDomain converts the persistence model to a domain Advertisement entity.
func (m *AdvertisementModel) ToDomain() *marketing.Advertisement {
	return &marketing.Advertisement{
		BaseAggregateRoot: m.Root(),
		Title:             m.Title,
		TitleAr:           m.TitleAr,
		Description:       m.Description,
		DescriptionAr:     m.DescriptionAr,
		ImageURL:          m.ImageURL,
		Link:              m.Link,
		IsActive:          m.IsActive,
		SortOrder:         m.SortOrder,
	}
}

// FromDomain populates the persistence model from a domain Advertisement entity.
func (m *AdvertisementModel) FromDomain(a *marketing.Advertisement) {
	m.SetRoot(a.BaseAggregateRoot)
	m.Title = a.Title
	m.TitleAr = a.TitleAr
	m.Description = a.Description
	m.DescriptionAr = a.DescriptionAr
	m.ImageURL = a.ImageURL
	m.Link = a.Link
	m.IsActive = a.IsActive
	m.SortOrder = a.SortOrder
}

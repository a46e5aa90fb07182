// Package models holds the GORM table models. Domain types stay free of
// ORM tags; each model converts with ToDomain and FromDomain.
package models

// All lists every storefront table model with referenced tables first
func All() []any {
	return []any{
		&CategoryModel{},
		&ColorModel{},
		&SizeModel{},
		&ProductModel{},
		&ProductImageModel{},
		&ProductColorModel{},
		&ProductSizeModel{},
		&GovernorateModel{},
		&AdvertisementModel{},
		&OrderModel{},
		&OrderItemModel{},
		&AdminSettingModel{},
	}
}

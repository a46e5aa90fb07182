package catalog

import (
	"strings"

	"github.com/alshbh/storefront/internal/domain/shared"
)

// Category groups products in the storefront
type Category struct {
	shared.BaseAggregateRoot
	Name   string
	NameAr string
}

// NewCategory creates a new category
func NewCategory(name, nameAr string) (*Category, error) {
	if err := validateCategoryNames(name, nameAr); err != nil {
		return nil, err
	}
	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		NameAr:            strings.TrimSpace(nameAr),
	}, nil
}

// Update renames the category
func (c *Category) Update(name, nameAr string) error {
	if err := validateCategoryNames(name, nameAr); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(name)
	c.NameAr = strings.TrimSpace(nameAr)
	c.MarkModified()
	return nil
}

func validateCategoryNames(name, nameAr string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if strings.TrimSpace(nameAr) == "" {
		return shared.NewDomainError("INVALID_NAME", "Category Arabic name cannot be empty")
	}
	if len([]rune(name)) > 100 || len([]rune(nameAr)) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}

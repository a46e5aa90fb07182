package catalog

import (
	"regexp"
	"strings"

	"github.com/alshbh/storefront/internal/domain/shared"
)

var hexColorPattern = regexp.MustCompile(`^#([0-9A-F]{3}|[0-9A-F]{6})$`)

// Color is a swatch a product can be ordered in
type Color struct {
	shared.BaseEntity
	Name    string
	NameAr  string
	HexCode string
}

// NewColor creates a new color
func NewColor(name, nameAr, hexCode string) (*Color, error) {
	c := &Color{BaseEntity: shared.NewBaseEntity()}
	if err := c.apply(name, nameAr, hexCode); err != nil {
		return nil, err
	}
	return c, nil
}

// Update changes the color names and hex code
func (c *Color) Update(name, nameAr, hexCode string) error {
	if err := c.apply(name, nameAr, hexCode); err != nil {
		return err
	}
	c.Touch()
	return nil
}

func (c *Color) apply(name, nameAr, hexCode string) error {
	name, nameAr = strings.TrimSpace(name), strings.TrimSpace(nameAr)
	if name == "" || nameAr == "" {
		return shared.NewDomainError("INVALID_NAME", "Color name cannot be empty")
	}
	if len([]rune(name)) > 50 || len([]rune(nameAr)) > 50 {
		return shared.NewDomainError("INVALID_NAME", "Color name cannot exceed 50 characters")
	}
	hex := strings.ToUpper(strings.TrimSpace(hexCode))
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if !hexColorPattern.MatchString(hex) {
		return shared.NewDomainError("INVALID_HEX_CODE", "Hex code must look like #RGB or #RRGGBB")
	}
	c.Name, c.NameAr, c.HexCode = name, nameAr, hex
	return nil
}

// Size is a garment size such as S, M or XL
type Size struct {
	shared.BaseEntity
	Name      string
	SortOrder int
}

// NewSize creates a new size
func NewSize(name string, sortOrder int) (*Size, error) {
	s := &Size{BaseEntity: shared.NewBaseEntity()}
	if err := s.apply(name, sortOrder); err != nil {
		return nil, err
	}
	return s, nil
}

// Update changes the size label and its position
func (s *Size) Update(name string, sortOrder int) error {
	if err := s.apply(name, sortOrder); err != nil {
		return err
	}
	s.Touch()
	return nil
}

func (s *Size) apply(name string, sortOrder int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Size name cannot be empty")
	}
	if len([]rune(name)) > 20 {
		return shared.NewDomainError("INVALID_NAME", "Size name cannot exceed 20 characters")
	}
	if sortOrder < 0 {
		return shared.NewDomainError("INVALID_SORT_ORDER", "Sort order cannot be negative")
	}
	s.Name, s.SortOrder = name, sortOrder
	return nil
}

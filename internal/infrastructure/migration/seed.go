package migration

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/alshbh/storefront/internal/domain/shipping"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SeedData is the reference data file format
type SeedData struct {
	Sizes []struct {
		Name      string `yaml:"name"`
		SortOrder int    `yaml:"sort_order"`
	} `yaml:"sizes"`
	Colors []struct {
		Name   string `yaml:"name"`
		NameAr string `yaml:"name_ar"`
		Hex    string `yaml:"hex"`
	} `yaml:"colors"`
	Categories []struct {
		Name   string `yaml:"name"`
		NameAr string `yaml:"name_ar"`
	} `yaml:"categories"`
	Governorates []struct {
		Name          string `yaml:"name"`
		NameAr        string `yaml:"name_ar"`
		ShippingPrice string `yaml:"shipping_price"`
		// Inactive governorates are stored but hidden at checkout
		Inactive bool `yaml:"inactive"`
	} `yaml:"governorates"`
}

// SeedResult counts rows created per table. Rows whose name already exists
// are skipped, so seeding twice is harmless.
type SeedResult struct {
	Sizes        int
	Colors       int
	Categories   int
	Governorates int
	Skipped      int
}

// LoadSeedFile reads a YAML seed file
func LoadSeedFile(path string) (*SeedData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return ParseSeed(f)
}

// ParseSeed decodes seed YAML, rejecting unknown keys
func ParseSeed(r io.Reader) (*SeedData, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data SeedData
	if err := dec.Decode(&data); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &data, nil
}

// Seeder writes reference data through the domain repositories so every
// row passes the same validation as the admin API
type Seeder struct {
	sizes        catalog.SizeRepository
	colors       catalog.ColorRepository
	categories   catalog.CategoryRepository
	governorates shipping.GovernorateRepository
	logger       *zap.Logger
}

// NewSeeder creates a Seeder
func NewSeeder(
	sizes catalog.SizeRepository,
	colors catalog.ColorRepository,
	categories catalog.CategoryRepository,
	governorates shipping.GovernorateRepository,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		sizes:        sizes,
		colors:       colors,
		categories:   categories,
		governorates: governorates,
		logger:       logger,
	}
}

// Apply inserts the rows of data that are not present yet
func (s *Seeder) Apply(ctx context.Context, data *SeedData) (SeedResult, error) {
	var res SeedResult

	sizes, err := s.sizes.FindAll(ctx)
	if err != nil {
		return res, err
	}
	seen := nameSet(len(sizes))
	for _, sz := range sizes {
		seen.add(sz.Name)
	}
	for _, in := range data.Sizes {
		if seen.has(in.Name) {
			res.Skipped++
			continue
		}
		size, err := catalog.NewSize(in.Name, in.SortOrder)
		if err != nil {
			return res, fmt.Errorf("size %q: %w", in.Name, err)
		}
		if err := s.sizes.Save(ctx, size); err != nil {
			return res, err
		}
		seen.add(size.Name)
		res.Sizes++
	}

	colors, err := s.colors.FindAll(ctx)
	if err != nil {
		return res, err
	}
	seen = nameSet(len(colors))
	for _, c := range colors {
		seen.add(c.Name)
	}
	for _, in := range data.Colors {
		if seen.has(in.Name) {
			res.Skipped++
			continue
		}
		color, err := catalog.NewColor(in.Name, in.NameAr, in.Hex)
		if err != nil {
			return res, fmt.Errorf("color %q: %w", in.Name, err)
		}
		if err := s.colors.Save(ctx, color); err != nil {
			return res, err
		}
		seen.add(color.Name)
		res.Colors++
	}

	for _, in := range data.Categories {
		exists, err := s.categories.NameTaken(ctx, in.Name, nil)
		if err != nil {
			return res, err
		}
		if exists {
			res.Skipped++
			continue
		}
		category, err := catalog.NewCategory(in.Name, in.NameAr)
		if err != nil {
			return res, fmt.Errorf("category %q: %w", in.Name, err)
		}
		if err := s.categories.Save(ctx, category); err != nil {
			return res, err
		}
		res.Categories++
	}

	governorates, err := s.governorates.FindAll(ctx, false)
	if err != nil {
		return res, err
	}
	seen = nameSet(len(governorates))
	for _, g := range governorates {
		seen.add(g.Name)
	}
	for _, in := range data.Governorates {
		if seen.has(in.Name) {
			res.Skipped++
			continue
		}
		price := decimal.Zero
		if in.ShippingPrice != "" {
			if price, err = decimal.NewFromString(in.ShippingPrice); err != nil {
				return res, fmt.Errorf("governorate %q: invalid shipping_price: %w", in.Name, err)
			}
		}
		gov, err := shipping.NewGovernorate(in.Name, in.NameAr, price)
		if err != nil {
			return res, fmt.Errorf("governorate %q: %w", in.Name, err)
		}
		if in.Inactive {
			_ = gov.Deactivate()
		}
		if err := s.governorates.Save(ctx, gov); err != nil {
			return res, err
		}
		seen.add(gov.Name)
		res.Governorates++
	}

	s.logger.Info("Reference data seeded",
		zap.Int("sizes", res.Sizes),
		zap.Int("colors", res.Colors),
		zap.Int("categories", res.Categories),
		zap.Int("governorates", res.Governorates),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}

type names map[string]struct{}

func nameSet(n int) names { return make(names, n) }

func (n names) add(name string) { n[strings.ToLower(strings.TrimSpace(name))] = struct{}{} }

func (n names) has(name string) bool {
	_, ok := n[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

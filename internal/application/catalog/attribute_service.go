package catalog

import (
	"context"

	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/google/uuid"
)

// AttributeService manages the color and size dictionaries
type AttributeService struct {
	colorRepo catalog.ColorRepository
	sizeRepo  catalog.SizeRepository
}

// NewAttributeService creates a new AttributeService
func NewAttributeService(colorRepo catalog.ColorRepository, sizeRepo catalog.SizeRepository) *AttributeService {
	return &AttributeService{colorRepo: colorRepo, sizeRepo: sizeRepo}
}

// ListColors returns every color
func (s *AttributeService) ListColors(ctx context.Context) ([]ColorResponse, error) {
	colors, err := s.colorRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ColorResponse, len(colors))
	for i := range colors {
		out[i] = ToColorResponse(&colors[i])
	}
	return out, nil
}

// CreateColor adds a color
func (s *AttributeService) CreateColor(ctx context.Context, req ColorRequest) (*ColorResponse, error) {
	color, err := catalog.NewColor(req.Name, req.NameAr, req.HexCode)
	if err != nil {
		return nil, err
	}
	if err := s.colorRepo.Save(ctx, color); err != nil {
		return nil, err
	}
	resp := ToColorResponse(color)
	return &resp, nil
}

// UpdateColor changes a color
func (s *AttributeService) UpdateColor(ctx context.Context, id uuid.UUID, req ColorRequest) (*ColorResponse, error) {
	color, err := s.colorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := color.Update(req.Name, req.NameAr, req.HexCode); err != nil {
		return nil, err
	}
	if err := s.colorRepo.Save(ctx, color); err != nil {
		return nil, err
	}
	resp := ToColorResponse(color)
	return &resp, nil
}

// DeleteColor removes a color and unassigns it from products
func (s *AttributeService) DeleteColor(ctx context.Context, id uuid.UUID) error {
	return s.colorRepo.Delete(ctx, id)
}

// ListSizes returns every size ordered by sort order
func (s *AttributeService) ListSizes(ctx context.Context) ([]SizeResponse, error) {
	sizes, err := s.sizeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SizeResponse, len(sizes))
	for i := range sizes {
		out[i] = ToSizeResponse(&sizes[i])
	}
	return out, nil
}

// CreateSize adds a size
func (s *AttributeService) CreateSize(ctx context.Context, req SizeRequest) (*SizeResponse, error) {
	size, err := catalog.NewSize(req.Name, req.SortOrder)
	if err != nil {
		return nil, err
	}
	if err := s.sizeRepo.Save(ctx, size); err != nil {
		return nil, err
	}
	resp := ToSizeResponse(size)
	return &resp, nil
}

// UpdateSize changes a size
func (s *AttributeService) UpdateSize(ctx context.Context, id uuid.UUID, req SizeRequest) (*SizeResponse, error) {
	size, err := s.sizeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := size.Update(req.Name, req.SortOrder); err != nil {
		return nil, err
	}
	if err := s.sizeRepo.Save(ctx, size); err != nil {
		return nil, err
	}
	resp := ToSizeResponse(size)
	return &resp, nil
}

// DeleteSize removes a size and unassigns it from products
func (s *AttributeService) DeleteSize(ctx context.Context, id uuid.UUID) error {
	return s.sizeRepo.Delete(ctx, id)
}

package shipping

import (
	"context"
	"slices"
	"time"

	"github.com/alshbh/storefront/internal/domain/shipping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GovernorateRequest creates or updates a governorate
type GovernorateRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=100"`
	NameAr        string          `json:"name_ar" binding:"required,min=1,max=100"`
	ShippingPrice decimal.Decimal `json:"shipping_price"`
	IsActive      *bool           `json:"is_active"`
}

// GovernorateResponse represents a governorate in API responses
type GovernorateResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	NameAr        string          `json:"name_ar"`
	ShippingPrice decimal.Decimal `json:"shipping_price"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToGovernorateResponse converts a domain governorate
func ToGovernorateResponse(g *shipping.Governorate) GovernorateResponse {
	return GovernorateResponse{
		ID:            g.ID,
		Name:          g.Name,
		NameAr:        g.NameAr,
		ShippingPrice: g.ShippingPrice,
		IsActive:      g.IsActive,
		CreatedAt:     g.CreatedAt,
	}
}

// GovernorateService manages shipping zones
type GovernorateService struct {
	repo shipping.GovernorateRepository
}

// NewGovernorateService creates a new GovernorateService
func NewGovernorateService(repo shipping.GovernorateRepository) *GovernorateService {
	return &GovernorateService{repo: repo}
}

// ListActive returns active governorates ordered by Arabic name
func (s *GovernorateService) ListActive(ctx context.Context) ([]GovernorateResponse, error) {
	govs, err := s.repo.FindAll(ctx, true)
	if err != nil {
		return nil, err
	}
	SortByArabicName(govs)
	return toResponses(govs), nil
}

// List returns every governorate for the back-office
func (s *GovernorateService) List(ctx context.Context) ([]GovernorateResponse, error) {
	govs, err := s.repo.FindAll(ctx, false)
	if err != nil {
		return nil, err
	}
	SortByArabicName(govs)
	return toResponses(govs), nil
}

// GetByID returns a governorate
func (s *GovernorateService) GetByID(ctx context.Context, id uuid.UUID) (*GovernorateResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToGovernorateResponse(g)
	return &resp, nil
}

// Create adds a governorate
func (s *GovernorateService) Create(ctx context.Context, req GovernorateRequest) (*GovernorateResponse, error) {
	g, err := shipping.NewGovernorate(req.Name, req.NameAr, req.ShippingPrice)
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil && !*req.IsActive {
		if err := g.Deactivate(); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, g); err != nil {
		return nil, err
	}
	resp := ToGovernorateResponse(g)
	return &resp, nil
}

// Update changes names, fee and optionally the active flag
func (s *GovernorateService) Update(ctx context.Context, id uuid.UUID, req GovernorateRequest) (*GovernorateResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := g.Update(req.Name, req.NameAr, req.ShippingPrice); err != nil {
		return nil, err
	}
	if req.IsActive != nil && *req.IsActive != g.IsActive {
		if *req.IsActive {
			err = g.Activate()
		} else {
			err = g.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, g); err != nil {
		return nil, err
	}
	resp := ToGovernorateResponse(g)
	return &resp, nil
}

// Activate enables a governorate at checkout
func (s *GovernorateService) Activate(ctx context.Context, id uuid.UUID) (*GovernorateResponse, error) {
	return s.mutate(ctx, id, (*shipping.Governorate).Activate)
}

// Deactivate hides a governorate from checkout
func (s *GovernorateService) Deactivate(ctx context.Context, id uuid.UUID) (*GovernorateResponse, error) {
	return s.mutate(ctx, id, (*shipping.Governorate).Deactivate)
}

// Delete removes a governorate. Existing orders keep their shipping price.
func (s *GovernorateService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *GovernorateService) mutate(ctx context.Context, id uuid.UUID, fn func(*shipping.Governorate) error) (*GovernorateResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(g); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, g); err != nil {
		return nil, err
	}
	resp := ToGovernorateResponse(g)
	return &resp, nil
}

// SortByArabicName orders governorates with Arabic collation rules
func SortByArabicName(govs []shipping.Governorate) {
	c := collate.New(language.Arabic)
	slices.SortStableFunc(govs, func(a, b shipping.Governorate) int {
		return c.CompareString(a.NameAr, b.NameAr)
	})
}

func toResponses(govs []shipping.Governorate) []GovernorateResponse {
	out := make([]GovernorateResponse, len(govs))
	for i := range govs {
		out[i] = ToGovernorateResponse(&govs[i])
	}
	return out
}

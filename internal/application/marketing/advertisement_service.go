package marketing

import (
	"context"
	"time"

	"github.com/alshbh/storefront/internal/domain/marketing"
	"github.com/google/uuid"
)

// AdvertisementRequest creates or updates a banner
type AdvertisementRequest struct {
	Title         string `json:"title" binding:"required,min=1,max=200"`
	TitleAr       string `json:"title_ar" binding:"max=200"`
	Description   string `json:"description" binding:"max=1000"`
	DescriptionAr string `json:"description_ar" binding:"max=1000"`
	ImageURL      string `json:"image_url" binding:"required,max=2048"`
	Link          string `json:"link" binding:"max=2048"`
	SortOrder     int    `json:"sort_order"`
	IsActive      *bool  `json:"is_active"`
}

func (r AdvertisementRequest) content() marketing.AdvertisementContent {
	return marketing.AdvertisementContent{
		Title:         r.Title,
		TitleAr:       r.TitleAr,
		Description:   r.Description,
		DescriptionAr: r.DescriptionAr,
		ImageURL:      r.ImageURL,
		Link:          r.Link,
		SortOrder:     r.SortOrder,
	}
}

// AdvertisementResponse represents a banner in API responses
type AdvertisementResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	TitleAr       string    `json:"title_ar,omitempty"`
	Description   string    `json:"description,omitempty"`
	DescriptionAr string    `json:"description_ar,omitempty"`
	ImageURL      string    `json:"image_url"`
	Link          string    `json:"link,omitempty"`
	IsActive      bool      `json:"is_active"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToAdvertisementResponse converts a domain advertisement
func ToAdvertisementResponse(a *marketing.Advertisement) AdvertisementResponse {
	return AdvertisementResponse{
		ID:            a.ID,
		Title:         a.Title,
		TitleAr:       a.TitleAr,
		Description:   a.Description,
		DescriptionAr: a.DescriptionAr,
		ImageURL:      a.ImageURL,
		Link:          a.Link,
		IsActive:      a.IsActive,
		SortOrder:     a.SortOrder,
		CreatedAt:     a.CreatedAt,
	}
}

// AdvertisementService manages storefront banners
type AdvertisementService struct {
	repo marketing.AdvertisementRepository
}

// NewAdvertisementService creates a new AdvertisementService
func NewAdvertisementService(repo marketing.AdvertisementRepository) *AdvertisementService {
	return &AdvertisementService{repo: repo}
}

// ListActive returns active banners by sort order
func (s *AdvertisementService) ListActive(ctx context.Context) ([]AdvertisementResponse, error) {
	return s.list(ctx, true)
}

// List returns every banner by sort order
func (s *AdvertisementService) List(ctx context.Context) ([]AdvertisementResponse, error) {
	return s.list(ctx, false)
}

func (s *AdvertisementService) list(ctx context.Context, activeOnly bool) ([]AdvertisementResponse, error) {
	ads, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]AdvertisementResponse, len(ads))
	for i := range ads {
		out[i] = ToAdvertisementResponse(&ads[i])
	}
	return out, nil
}

// GetByID returns a banner
func (s *AdvertisementService) GetByID(ctx context.Context, id uuid.UUID) (*AdvertisementResponse, error) {
	ad, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToAdvertisementResponse(ad)
	return &resp, nil
}

// Create adds a banner
func (s *AdvertisementService) Create(ctx context.Context, req AdvertisementRequest) (*AdvertisementResponse, error) {
	ad, err := marketing.NewAdvertisement(req.content())
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil && !*req.IsActive {
		if err := ad.Deactivate(); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, ad); err != nil {
		return nil, err
	}
	resp := ToAdvertisementResponse(ad)
	return &resp, nil
}

// Update replaces the banner content
func (s *AdvertisementService) Update(ctx context.Context, id uuid.UUID, req AdvertisementRequest) (*AdvertisementResponse, error) {
	ad, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ad.Update(req.content()); err != nil {
		return nil, err
	}
	if req.IsActive != nil && *req.IsActive != ad.IsActive {
		if *req.IsActive {
			err = ad.Activate()
		} else {
			err = ad.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, ad); err != nil {
		return nil, err
	}
	resp := ToAdvertisementResponse(ad)
	return &resp, nil
}

// Activate shows a banner
func (s *AdvertisementService) Activate(ctx context.Context, id uuid.UUID) (*AdvertisementResponse, error) {
	return s.mutate(ctx, id, (*marketing.Advertisement).Activate)
}

// Deactivate hides a banner
func (s *AdvertisementService) Deactivate(ctx context.Context, id uuid.UUID) (*AdvertisementResponse, error) {
	return s.mutate(ctx, id, (*marketing.Advertisement).Deactivate)
}

// Delete removes a banner
func (s *AdvertisementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *AdvertisementService) mutate(ctx context.Context, id uuid.UUID, fn func(*marketing.Advertisement) error) (*AdvertisementResponse, error) {
	ad, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(ad); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, ad); err != nil {
		return nil, err
	}
	resp := ToAdvertisementResponse(ad)
	return &resp, nil
}

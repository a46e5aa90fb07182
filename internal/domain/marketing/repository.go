package marketing

import (
	"context"

	"github.com/google/uuid"
)

// AdvertisementRepository defines the interface for advertisement persistence
type AdvertisementRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Advertisement, error)
	// FindAll returns advertisements ordered by sort order
	FindAll(ctx context.Context, activeOnly bool) ([]Advertisement, error)
	Save(ctx context.Context, ad *Advertisement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

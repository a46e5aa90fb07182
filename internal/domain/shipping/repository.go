package shipping

import (
	"context"

	"github.com/google/uuid"
)

// GovernorateRepository defines the interface for governorate persistence
type GovernorateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Governorate, error)
	// FindAll returns governorates, only active ones when activeOnly is set
	FindAll(ctx context.Context, activeOnly bool) ([]Governorate, error)
	Save(ctx context.Context, governorate *Governorate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

package catalog

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository stores categories. Names are unique ignoring case.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	// FindAll orders by name
	FindAll(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	// NameTaken reports whether a category other than except uses name
	NameTaken(ctx context.Context, name string, except *uuid.UUID) (bool, error)
}

// ColorRepository stores colors. Delete also drops product assignments.
type ColorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Color, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Color, error)
	FindAll(ctx context.Context) ([]Color, error)
	Save(ctx context.Context, color *Color) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SizeRepository stores sizes. Listings follow SortOrder; Delete also
// drops product assignments.
type SizeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Size, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Size, error)
	FindAll(ctx context.Context) ([]Size, error)
	Save(ctx context.Context, size *Size) error
	Delete(ctx context.Context, id uuid.UUID) error
}

package models

import (
	"time"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// EntityColumns are the id and timestamp columns every table carries
type EntityColumns struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (m *EntityColumns) Entity() shared.BaseEntity {
	return shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func (m *EntityColumns) SetEntity(e shared.BaseEntity) {
	*m = EntityColumns{ID: e.ID, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt}
}

// AggregateColumns add the optimistic-locking version of aggregate roots
type AggregateColumns struct {
	EntityColumns
	Version int `gorm:"not null;default:1"`
}

// Root rebuilds the aggregate header. Pending domain events are never stored.
func (m *AggregateColumns) Root() shared.BaseAggregateRoot {
	return shared.BaseAggregateRoot{BaseEntity: m.Entity(), Version: m.Version}
}

func (m *AggregateColumns) SetRoot(a shared.BaseAggregateRoot) {
	m.SetEntity(a.BaseEntity)
	m.Version = a.Version
}

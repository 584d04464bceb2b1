package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity provides common fields for all entities.
// Identifiers are opaque text; new ones are random UUIDs.
type BaseEntity struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

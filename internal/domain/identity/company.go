package identity

import (
	"strings"

	"github.com/repairshop/backend/internal/domain/shared"
)

// Company is a tenant. All business data is partitioned by company ID.
type Company struct {
	shared.BaseEntity
	Name  string
	Email string
}

// NewCompany creates a new company
func NewCompany(name, email string) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Company name is required")
	}
	if len(name) > 200 {
		return nil, shared.NewValidationError("Company name cannot exceed 200 characters")
	}
	return &Company{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      strings.ToLower(strings.TrimSpace(email)),
	}, nil
}

package partner

import (
	"testing"

	"github.com/repairshop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("company-1", " Jane ", "Doe", "jane@example.com", "5551234567")
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "company-1", c.CompanyID)
	assert.Equal(t, "Jane", c.FirstName)
	assert.Empty(t, c.Vehicles)
}

func TestNewCustomer_Validation(t *testing.T) {
	tests := []struct {
		name      string
		companyID string
		first     string
		last      string
		email     string
		phone     string
		want      error
	}{
		{"no company", "", "Jane", "Doe", "jane@example.com", "5551234567", shared.ErrTenantRequired},
		{"no first name", "co", "", "Doe", "jane@example.com", "5551234567", shared.ErrValidation},
		{"no last name", "co", "Jane", " ", "jane@example.com", "5551234567", shared.ErrValidation},
		{"bad email", "co", "Jane", "Doe", "jane-at-example", "5551234567", shared.ErrValidation},
		{"short phone", "co", "Jane", "Doe", "jane@example.com", "555123", shared.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomer(tt.companyID, tt.first, tt.last, tt.email, tt.phone)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCustomer_Update(t *testing.T) {
	c, err := NewCustomer("company-1", "Jane", "Doe", "jane@example.com", "5551234567")
	require.NoError(t, err)

	require.NoError(t, c.Update("Janet", "Doe", "janet@example.com", "5559876543"))
	assert.Equal(t, "Janet", c.FirstName)
	assert.Equal(t, "janet@example.com", c.Email)

	err = c.Update("Janet", "Doe", "janet@example.com", "1")
	assert.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, "5559876543", c.Phone)
}

package partner

import (
	"net/mail"
	"strings"
	"time"

	"github.com/repairshop/backend/internal/domain/shared"
)

// MinPhoneLength is the shortest accepted phone number
const MinPhoneLength = 10

// Customer is a person a company repairs vehicles for
type Customer struct {
	shared.BaseEntity
	CompanyID string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Vehicles  []Vehicle
}

// Vehicle is a vehicle owned by a customer
type Vehicle struct {
	ID           string
	Make         string
	Model        string
	Year         int
	VIN          string
	LicensePlate string
}

// NewCustomer creates a new customer for the company
func NewCustomer(companyID, firstName, lastName, email, phone string) (*Customer, error) {
	if companyID == "" {
		return nil, shared.ErrTenantRequired
	}
	c := &Customer{
		BaseEntity: shared.NewBaseEntity(),
		CompanyID:  companyID,
		Vehicles:   []Vehicle{},
	}
	if err := c.Update(firstName, lastName, email, phone); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the customer's contact details
func (c *Customer) Update(firstName, lastName, email, phone string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" {
		return shared.NewValidationError("First name is required")
	}
	if lastName == "" {
		return shared.NewValidationError("Last name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return shared.NewValidationError("Invalid email address")
	}
	if len(strings.TrimSpace(phone)) < MinPhoneLength {
		return shared.NewValidationError("Phone must be at least 10 characters")
	}

	c.FirstName = firstName
	c.LastName = lastName
	c.Email = strings.TrimSpace(email)
	c.Phone = strings.TrimSpace(phone)
	c.UpdatedAt = time.Now().UTC()
	return nil
}

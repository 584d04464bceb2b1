package partner

import "context"

// CustomerRepository defines the interface for customer persistence.
// All methods are scoped by company; customers of other companies are not found.
type CustomerRepository interface {
	// FindAllForCompany returns all customers of the company with their vehicles
	FindAllForCompany(ctx context.Context, companyID string) ([]Customer, error)

	// FindByIDForCompany finds a customer by ID within the company
	FindByIDForCompany(ctx context.Context, companyID, id string) (*Customer, error)

	// Create inserts a new customer
	Create(ctx context.Context, customer *Customer) error

	// Update saves contact details of a customer owned by customer.CompanyID
	Update(ctx context.Context, customer *Customer) error

	// DeleteForCompany removes a customer owned by the company
	DeleteForCompany(ctx context.Context, companyID, id string) error
}

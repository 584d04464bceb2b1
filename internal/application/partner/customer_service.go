package partner

import (
	"context"

	"github.com/repairshop/backend/internal/domain/partner"
	"github.com/repairshop/backend/internal/domain/shared"
)

// CustomerService handles customer-related business operations.
// Every call is confined to the company in the given tenant context.
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// List returns all customers of the company
func (s *CustomerService) List(ctx context.Context, tc shared.TenantContext) ([]CustomerResponse, error) {
	if err := tc.Validate(); err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.FindAllForCompany(ctx, tc.CompanyID)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, tc shared.TenantContext, id string) (*CustomerResponse, error) {
	if err := tc.Validate(); err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindByIDForCompany(ctx, tc.CompanyID, id)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, tc shared.TenantContext, req CustomerRequest) (*CustomerResponse, error) {
	if err := tc.Validate(); err != nil {
		return nil, err
	}
	customer, err := partner.NewCustomer(tc.CompanyID, req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Update replaces the contact details of a customer
func (s *CustomerService) Update(ctx context.Context, tc shared.TenantContext, id string, req CustomerRequest) (*CustomerResponse, error) {
	if err := tc.Validate(); err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindByIDForCompany(ctx, tc.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if err := customer.Update(req.FirstName, req.LastName, req.Email, req.Phone); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, tc shared.TenantContext, id string) error {
	if err := tc.Validate(); err != nil {
		return err
	}
	return s.customerRepo.DeleteForCompany(ctx, tc.CompanyID, id)
}

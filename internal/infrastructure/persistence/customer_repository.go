package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/repairshop/backend/internal/domain/partner"
	"github.com/repairshop/backend/internal/domain/shared"
	"github.com/repairshop/backend/internal/infrastructure/persistence/models"
	"github.com/repairshop/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func errCustomerNotFound() error {
	return shared.NewNotFoundError("Customer not found")
}

// FindAllForCompany returns all customers of the company with their vehicles
func (r *GormCustomerRepository) FindAllForCompany(ctx context.Context, companyID string) ([]partner.Customer, error) {
	var rows []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Preload("Vehicles", tenant.CompanyScope(companyID)).
		Scopes(tenant.CompanyScope(companyID), orderByCreation).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]partner.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, *rows[i].ToDomain())
	}
	return customers, nil
}

// FindByIDForCompany finds a customer by ID within the company
func (r *GormCustomerRepository) FindByIDForCompany(ctx context.Context, companyID, id string) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Preload("Vehicles", tenant.CompanyScope(companyID)).
		Scopes(tenant.OwnedRecord(id, companyID)).
		Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errCustomerNotFound()
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	return model.ToDomain(), nil
}

// Create inserts a new customer
func (r *GormCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	if err := r.db.WithContext(ctx).Omit("Vehicles").Create(models.CustomerModelFromDomain(customer)).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update writes contact details with a statement scoped by id and company
func (r *GormCustomerRepository) Update(ctx context.Context, customer *partner.Customer) error {
	result := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Scopes(tenant.OwnedRecord(customer.ID, customer.CompanyID)).
		Updates(map[string]any{
			"first_name": customer.FirstName,
			"last_name":  customer.LastName,
			"email":      customer.Email,
			"phone":      customer.Phone,
			"updated_at": customer.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errCustomerNotFound()
	}
	return nil
}

// DeleteForCompany removes a customer owned by the company
func (r *GormCustomerRepository) DeleteForCompany(ctx context.Context, companyID, id string) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.OwnedRecord(id, companyID)).
		Delete(&models.CustomerModel{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return shared.NewValidationError("Customer is referenced by other records")
		}
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errCustomerNotFound()
	}
	return nil
}

// Ensure GormCustomerRepository implements partner.CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)

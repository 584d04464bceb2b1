package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/repairshop/backend/internal/domain/identity"
	"github.com/repairshop/backend/internal/domain/shared"
	"github.com/repairshop/backend/internal/infrastructure/persistence/models"
	"github.com/repairshop/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
)

// GormUserRepository implements identity.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// CreateWithCompany inserts the company and its first user atomically
func (r *GormUserRepository) CreateWithCompany(ctx context.Context, company *identity.Company, user *identity.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(models.CompanyModelFromDomain(company)).Error; err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}
		if err := tx.Create(models.UserModelFromDomain(user)).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.NewDomainError(shared.CodeAlreadyExists, "User already exists")
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
}

// FindByIDForCompany finds a user by ID within the company
func (r *GormUserRepository) FindByIDForCompany(ctx context.Context, companyID, id string) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Scopes(tenant.OwnedRecord(id, companyID)).
		Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a user by email across all companies
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return model.ToDomain(), nil
}

// ExistsByEmail checks if an email is already registered
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

// Ensure GormUserRepository implements identity.UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)

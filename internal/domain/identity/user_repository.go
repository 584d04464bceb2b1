package identity

import "context"

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// CreateWithCompany inserts a company and its first user in one transaction
	CreateWithCompany(ctx context.Context, company *Company, user *User) error

	// FindByIDForCompany finds a user by ID within the company
	FindByIDForCompany(ctx context.Context, companyID, id string) (*User, error)

	// FindByEmail finds a user by email across all companies
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

package identity

import (
	"net/mail"
	"strings"

	"github.com/repairshop/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 10

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 8

// MaxPasswordBytes is the longest password bcrypt can hash
const MaxPasswordBytes = 72

// UserRole is the role of a user inside its company
type UserRole string

const (
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleManager    UserRole = "MANAGER"
	UserRoleTechnician UserRole = "TECHNICIAN"
)

// IsValid checks if the role is known
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleTechnician:
		return true
	}
	return false
}

// User is a person that signs in on behalf of a company
type User struct {
	shared.BaseEntity
	CompanyID    string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         UserRole
}

// NewUser creates a user with a hashed password
func NewUser(companyID, email, password, firstName, lastName string, role UserRole) (*User, error) {
	if companyID == "" {
		return nil, shared.ErrTenantRequired
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, shared.NewValidationError("Invalid email address")
	}
	if !role.IsValid() {
		return nil, shared.NewValidationError("Invalid user role")
	}

	user := &User{
		BaseEntity: shared.NewBaseEntity(),
		CompanyID:  companyID,
		Email:      email,
		FirstName:  strings.TrimSpace(firstName),
		LastName:   strings.TrimSpace(lastName),
		Role:       role,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if len(password) < MinPasswordLength {
		return shared.NewValidationError("Password must be at least 8 characters")
	}
	if len(password) > MaxPasswordBytes {
		return shared.NewValidationError("Password must be at most 72 bytes")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// FullName returns first and last name joined by a space
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

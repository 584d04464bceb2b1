package models

import (
	"github.com/repairshop/backend/internal/domain/identity"
	"github.com/repairshop/backend/internal/domain/repair"
)

// CompanyModel is the persistence model for the Company domain entity.
type CompanyModel struct {
	BaseModel
	Name  string `gorm:"type:varchar(200);not null"`
	Email string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() *identity.Company {
	return &identity.Company{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      m.Email,
	}
}

// CompanyModelFromDomain creates a new persistence model from a domain Company entity.
func CompanyModelFromDomain(c *identity.Company) *CompanyModel {
	m := &CompanyModel{
		Name:  c.Name,
		Email: c.Email,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	CompanyScopedModel
	Email        string            `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string            `gorm:"column:password_hash;type:varchar(255);not null"`
	FirstName    string            `gorm:"type:varchar(100);not null"`
	LastName     string            `gorm:"type:varchar(100);not null"`
	Role         identity.UserRole `gorm:"type:varchar(20);not null;default:'TECHNICIAN'"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		CompanyID:    m.CompanyID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         m.Role,
	}
}

// ToTechnician projects the user as the technician of a work order.
func (m *UserModel) ToTechnician() *repair.Technician {
	return &repair.Technician{
		ID:        m.ID,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Role:      string(m.Role),
	}
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
	}
	m.FromDomainBaseEntity(u.BaseEntity)
	m.CompanyID = u.CompanyID
	return m
}

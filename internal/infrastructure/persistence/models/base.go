package models

import (
	"time"

	"github.com/repairshop/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// CompanyScopedModel is the base of every row owned by a company.
type CompanyScopedModel struct {
	BaseModel
	CompanyID string `gorm:"type:varchar(36);not null;index"`
}

// All returns every persistence model in dependency order, for AutoMigrate in tests
// and for the sqlite development driver.
func All() []any {
	return []any{
		&CompanyModel{},
		&UserModel{},
		&CustomerModel{},
		&VehicleModel{},
		&InventoryItemModel{},
		&WorkOrderModel{},
		&TaskModel{},
		&WorkOrderPartModel{},
		&InvoiceModel{},
	}
}

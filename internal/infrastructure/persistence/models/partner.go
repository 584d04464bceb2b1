package models

import (
	"github.com/repairshop/backend/internal/domain/partner"
	"github.com/repairshop/backend/internal/domain/repair"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	CompanyScopedModel
	FirstName string         `gorm:"type:varchar(100);not null"`
	LastName  string         `gorm:"type:varchar(100);not null"`
	Email     string         `gorm:"type:varchar(200);not null;index"`
	Phone     string         `gorm:"type:varchar(50);not null"`
	Vehicles  []VehicleModel `gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	vehicles := make([]partner.Vehicle, 0, len(m.Vehicles))
	for _, v := range m.Vehicles {
		vehicles = append(vehicles, partner.Vehicle{
			ID:           v.ID,
			Make:         v.Make,
			Model:        v.Model,
			Year:         v.Year,
			VIN:          v.VIN,
			LicensePlate: v.LicensePlate,
		})
	}
	return &partner.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		CompanyID:  m.CompanyID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		Phone:      m.Phone,
		Vehicles:   vehicles,
	}
}

// ToRepairCustomer projects the customer as seen from a work order.
func (m *CustomerModel) ToRepairCustomer() *repair.Customer {
	return &repair.Customer{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
// Vehicles are not written through the customer.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.CompanyID = c.CompanyID
	m.FirstName = c.FirstName
	m.LastName = c.LastName
	m.Email = c.Email
	m.Phone = c.Phone
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// VehicleModel is a customer's vehicle.
type VehicleModel struct {
	CompanyScopedModel
	CustomerID   string `gorm:"type:varchar(36);not null;index"`
	Make         string `gorm:"type:varchar(100);not null"`
	Model        string `gorm:"type:varchar(100);not null"`
	Year         int    `gorm:"not null"`
	VIN          string `gorm:"column:vin;type:varchar(32)"`
	LicensePlate string `gorm:"type:varchar(32)"`
}

// TableName returns the table name for GORM
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToRepairVehicle projects the vehicle as seen from a work order.
func (m *VehicleModel) ToRepairVehicle() *repair.Vehicle {
	return &repair.Vehicle{
		ID:           m.ID,
		CustomerID:   m.CustomerID,
		Make:         m.Make,
		Model:        m.Model,
		Year:         m.Year,
		VIN:          m.VIN,
		LicensePlate: m.LicensePlate,
	}
}

package partner

import (
	"time"

	"github.com/repairshop/backend/internal/domain/partner"
)

// ===== Customer DTOs =====

// CustomerRequest represents the contact details of a customer.
// The same shape is used for create and full update.
type CustomerRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=100" example:"Grace"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100" example:"Hopper"`
	Email     string `json:"email" binding:"required,email,max=200" example:"grace@example.com"`
	Phone     string `json:"phone" binding:"required,min=10,max=50" example:"5551234567"`
}

// CustomerResponse represents a customer with the vehicles they own
type CustomerResponse struct {
	ID        string            `json:"id"`
	CompanyID string            `json:"companyId"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Vehicles  []VehicleResponse `json:"vehicles"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// VehicleResponse represents a vehicle owned by a customer
type VehicleResponse struct {
	ID           string `json:"id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	VIN          string `json:"vin"`
	LicensePlate string `json:"licensePlate,omitempty"`
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	vehicles := make([]VehicleResponse, 0, len(c.Vehicles))
	for _, v := range c.Vehicles {
		vehicles = append(vehicles, VehicleResponse{
			ID:           v.ID,
			Make:         v.Make,
			Model:        v.Model,
			Year:         v.Year,
			VIN:          v.VIN,
			LicensePlate: v.LicensePlate,
		})
	}
	return CustomerResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Vehicles:  vehicles,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of domain Customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}

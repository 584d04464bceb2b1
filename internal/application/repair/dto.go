package repair

import (
	"time"

	"github.com/repairshop/backend/internal/domain/repair"
	"github.com/shopspring/decimal"
)

// ===== Work Order Request DTOs =====

// CreateWorkOrderRequest represents a request to open a work order with its
// initial tasks and parts
type CreateWorkOrderRequest struct {
	Description  string            `json:"description" binding:"required,notblank" example:"Front brakes squeal"`
	CustomerID   string            `json:"customerId" binding:"required,max=36" example:"5f0c6a2e-1d7b-4c55-9a51-0f3c2b9e8d11"`
	VehicleID    string            `json:"vehicleId" binding:"required,max=36" example:"a3b1c9d2-6e4f-4a0b-8c7d-2e1f0a9b8c7d"`
	TechnicianID string            `json:"technicianId" binding:"required,max=36" example:"0e9d8c7b-6a5f-4e3d-2c1b-0a9f8e7d6c5b"`
	Tasks        []AddTaskRequest  `json:"tasks" binding:"omitempty,dive"`
	Parts        []PartLineRequest `json:"parts" binding:"omitempty,dive"`
}

// AddTaskRequest represents a task to be performed under a work order
type AddTaskRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=200" example:"Oil change"`
	Description string `json:"description" binding:"required,notblank" example:"Synthetic 5W-30"`
}

// PartLineRequest represents an inventory item consumed by a work order
type PartLineRequest struct {
	InventoryItemID string `json:"inventoryItemId" binding:"required,max=36" example:"item-1"`
	Quantity        int    `json:"quantity" binding:"gt=0,lte=2147483647" example:"2"`
}

// UpdateStatusRequest represents a request to move a work order to another status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED" example:"IN_PROGRESS"`
}

// AddPartsRequest represents a batch of parts to append to a work order.
// The list is required but may be empty.
type AddPartsRequest struct {
	Parts []PartLineRequest `json:"parts" binding:"required,dive"`
}

// ===== Work Order Response DTOs =====

// WorkOrderResponse represents a work order with its related records joined in
type WorkOrderResponse struct {
	ID           string             `json:"id"`
	CompanyID    string             `json:"companyId"`
	Description  string             `json:"description"`
	Status       string             `json:"status"`
	CustomerID   string             `json:"customerId"`
	VehicleID    string             `json:"vehicleId"`
	TechnicianID string             `json:"technicianId"`
	Customer     *CustomerSummary   `json:"customer"`
	Vehicle      *VehicleSummary    `json:"vehicle"`
	Technician   *TechnicianSummary `json:"technician"`
	Invoice      *InvoiceSummary    `json:"invoice"`
	Tasks        []TaskResponse     `json:"tasks"`
	Parts        []PartResponse     `json:"parts"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// TaskResponse represents a task of a work order
type TaskResponse struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"workOrderId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PartResponse represents a part line of a work order
type PartResponse struct {
	ID              string                `json:"id"`
	WorkOrderID     string                `json:"workOrderId"`
	InventoryItemID string                `json:"inventoryItemId"`
	Quantity        int                   `json:"quantity"`
	InventoryItem   *InventoryItemSummary `json:"inventoryItem,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// CustomerSummary is the customer joined into a work order
type CustomerSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// VehicleSummary is the vehicle joined into a work order
type VehicleSummary struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customerId"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	VIN          string `json:"vin"`
	LicensePlate string `json:"licensePlate,omitempty"`
}

// TechnicianSummary is the assigned technician; credentials are never exposed
type TechnicianSummary struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// InvoiceSummary is the invoice issued for a work order
type InvoiceSummary struct {
	ID       string          `json:"id"`
	Number   string          `json:"number"`
	Amount   decimal.Decimal `json:"amount"`
	Status   string          `json:"status"`
	IssuedAt time.Time       `json:"issuedAt"`
}

// InventoryItemSummary is the stock item referenced by a part line
type InventoryItemSummary struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// ToWorkOrderResponse converts a domain WorkOrder to WorkOrderResponse
func ToWorkOrderResponse(w *repair.WorkOrder) WorkOrderResponse {
	resp := WorkOrderResponse{
		ID:           w.ID,
		CompanyID:    w.CompanyID,
		Description:  w.Description,
		Status:       w.Status.String(),
		CustomerID:   w.CustomerID,
		VehicleID:    w.VehicleID,
		TechnicianID: w.TechnicianID,
		Tasks:        make([]TaskResponse, 0, len(w.Tasks)),
		Parts:        ToPartResponses(w.Parts),
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}

	for i := range w.Tasks {
		resp.Tasks = append(resp.Tasks, ToTaskResponse(&w.Tasks[i]))
	}

	if c := w.Customer; c != nil {
		resp.Customer = &CustomerSummary{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
		}
	}
	if v := w.Vehicle; v != nil {
		resp.Vehicle = &VehicleSummary{
			ID:           v.ID,
			CustomerID:   v.CustomerID,
			Make:         v.Make,
			Model:        v.Model,
			Year:         v.Year,
			VIN:          v.VIN,
			LicensePlate: v.LicensePlate,
		}
	}
	if t := w.Technician; t != nil {
		resp.Technician = &TechnicianSummary{
			ID:        t.ID,
			Email:     t.Email,
			FirstName: t.FirstName,
			LastName:  t.LastName,
			Role:      t.Role,
		}
	}
	if inv := w.Invoice; inv != nil {
		resp.Invoice = &InvoiceSummary{
			ID:       inv.ID,
			Number:   inv.Number,
			Amount:   inv.Amount,
			Status:   inv.Status,
			IssuedAt: inv.IssuedAt,
		}
	}
	return resp
}

// ToWorkOrderResponses converts a slice of domain WorkOrders
func ToWorkOrderResponses(orders []repair.WorkOrder) []WorkOrderResponse {
	responses := make([]WorkOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToWorkOrderResponse(&orders[i])
	}
	return responses
}

// ToTaskResponse converts a domain Task to TaskResponse
func ToTaskResponse(t *repair.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		WorkOrderID: t.WorkOrderID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToPartResponses converts domain part lines; the result is never nil
func ToPartResponses(parts []repair.WorkOrderPart) []PartResponse {
	responses := make([]PartResponse, 0, len(parts))
	for i := range parts {
		p := &parts[i]
		resp := PartResponse{
			ID:              p.ID,
			WorkOrderID:     p.WorkOrderID,
			InventoryItemID: p.InventoryItemID,
			Quantity:        p.Quantity,
			CreatedAt:       p.CreatedAt,
			UpdatedAt:       p.UpdatedAt,
		}
		if item := p.InventoryItem; item != nil {
			resp.InventoryItem = &InventoryItemSummary{
				ID:        item.ID,
				Name:      item.Name,
				SKU:       item.SKU,
				UnitPrice: item.UnitPrice,
			}
		}
		responses = append(responses, resp)
	}
	return responses
}

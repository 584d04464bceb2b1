// Package repair contains the work order aggregate of a repair shop: the
// order itself, the tasks performed under it and the inventory parts it
// consumes.
package repair

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/repairshop/backend/internal/domain/shared"
)

// Column limits of the work order tables
const (
	MaxIDLength        = 36
	MaxTaskTitleLength = 200
	MaxPartQuantity    = math.MaxInt32
)

// WorkOrder is a repair job owned by a company. It owns its tasks and parts;
// the customer, vehicle, technician and invoice are records of other
// collaborators that are joined in on read.
type WorkOrder struct {
	shared.BaseEntity
	CompanyID    string
	Description  string
	Status       WorkOrderStatus
	CustomerID   string
	VehicleID    string
	TechnicianID string
	Tasks        []Task
	Parts        []WorkOrderPart

	Customer   *Customer
	Vehicle    *Vehicle
	Technician *Technician
	Invoice    *Invoice
}

// NewWorkOrder creates a PENDING work order for the given company
func NewWorkOrder(companyID, description, customerID, vehicleID, technicianID string) (*WorkOrder, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, shared.ErrTenantRequired
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewValidationError("Description is required")
	}
	if err := validateReferenceID("Customer ID", customerID); err != nil {
		return nil, err
	}
	if err := validateReferenceID("Vehicle ID", vehicleID); err != nil {
		return nil, err
	}
	if err := validateReferenceID("Technician ID", technicianID); err != nil {
		return nil, err
	}

	return &WorkOrder{
		BaseEntity:   shared.NewBaseEntity(),
		CompanyID:    companyID,
		Description:  description,
		Status:       WorkOrderStatusPending,
		CustomerID:   customerID,
		VehicleID:    vehicleID,
		TechnicianID: technicianID,
		Tasks:        []Task{},
		Parts:        []WorkOrderPart{},
	}, nil
}

// AddTask appends a new task to the order
func (w *WorkOrder) AddTask(title, description string) (*Task, error) {
	task, err := NewTask(w.ID, title, description)
	if err != nil {
		return nil, err
	}
	w.Tasks = append(w.Tasks, *task)
	return task, nil
}

// AddPart appends a new part line to the order
func (w *WorkOrder) AddPart(inventoryItemID string, quantity int) (*WorkOrderPart, error) {
	part, err := NewWorkOrderPart(w.ID, inventoryItemID, quantity)
	if err != nil {
		return nil, err
	}
	w.Parts = append(w.Parts, *part)
	return part, nil
}

// Task is a unit of labour performed under a work order
type Task struct {
	shared.BaseEntity
	WorkOrderID string
	Title       string
	Description string
}

// NewTask creates a task linked to workOrderID
func NewTask(workOrderID, title, description string) (*Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewValidationError("Task title is required")
	}
	if utf8.RuneCountInString(title) > MaxTaskTitleLength {
		return nil, shared.NewValidationError("Task title must be at most 200 characters")
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewValidationError("Task description is required")
	}
	return &Task{
		BaseEntity:  shared.NewBaseEntity(),
		WorkOrderID: workOrderID,
		Title:       title,
		Description: description,
	}, nil
}

// WorkOrderPart records an inventory item consumed by a work order.
// The inventory item is referenced by ID only.
type WorkOrderPart struct {
	shared.BaseEntity
	WorkOrderID     string
	InventoryItemID string
	Quantity        int
	InventoryItem   *InventoryItem
}

// NewWorkOrderPart creates a part line linked to workOrderID
func NewWorkOrderPart(workOrderID, inventoryItemID string, quantity int) (*WorkOrderPart, error) {
	if err := validateReferenceID("Inventory item ID", inventoryItemID); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, shared.NewValidationError("Quantity must be positive")
	}
	if quantity > MaxPartQuantity {
		return nil, shared.NewValidationError("Quantity is too large")
	}
	return &WorkOrderPart{
		BaseEntity:      shared.NewBaseEntity(),
		WorkOrderID:     workOrderID,
		InventoryItemID: inventoryItemID,
		Quantity:        quantity,
	}, nil
}

func validateReferenceID(field, id string) error {
	if id == "" {
		return shared.NewValidationError(field + " is required")
	}
	if len(id) > MaxIDLength {
		return shared.NewValidationError(field + " must be at most 36 characters")
	}
	return nil
}

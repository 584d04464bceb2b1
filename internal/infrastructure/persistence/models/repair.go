package models

import (
	"github.com/repairshop/backend/internal/domain/repair"
)

// WorkOrderModel is the persistence model for the WorkOrder aggregate root.
type WorkOrderModel struct {
	CompanyScopedModel
	Description  string                 `gorm:"type:text;not null"`
	Status       repair.WorkOrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CustomerID   string                 `gorm:"type:varchar(36);not null;index"`
	VehicleID    string                 `gorm:"type:varchar(36);not null;index"`
	TechnicianID string                 `gorm:"type:varchar(36);not null;index"`

	Customer   *CustomerModel       `gorm:"foreignKey:CustomerID"`
	Vehicle    *VehicleModel        `gorm:"foreignKey:VehicleID"`
	Technician *UserModel           `gorm:"foreignKey:TechnicianID"`
	Tasks      []TaskModel          `gorm:"foreignKey:WorkOrderID"`
	Parts      []WorkOrderPartModel `gorm:"foreignKey:WorkOrderID"`
	Invoice    *InvoiceModel        `gorm:"foreignKey:WorkOrderID"`
}

// TableName returns the table name for GORM
func (WorkOrderModel) TableName() string {
	return "work_orders"
}

// ToDomain converts the persistence model, including any preloaded
// associations, to a domain WorkOrder.
func (m *WorkOrderModel) ToDomain() *repair.WorkOrder {
	order := &repair.WorkOrder{
		BaseEntity:   m.BaseModel.ToDomain(),
		CompanyID:    m.CompanyID,
		Description:  m.Description,
		Status:       m.Status,
		CustomerID:   m.CustomerID,
		VehicleID:    m.VehicleID,
		TechnicianID: m.TechnicianID,
		Tasks:        make([]repair.Task, 0, len(m.Tasks)),
		Parts:        make([]repair.WorkOrderPart, 0, len(m.Parts)),
	}
	for i := range m.Tasks {
		order.Tasks = append(order.Tasks, *m.Tasks[i].ToDomain())
	}
	for i := range m.Parts {
		order.Parts = append(order.Parts, *m.Parts[i].ToDomain())
	}
	if m.Customer != nil {
		order.Customer = m.Customer.ToRepairCustomer()
	}
	if m.Vehicle != nil {
		order.Vehicle = m.Vehicle.ToRepairVehicle()
	}
	if m.Technician != nil {
		order.Technician = m.Technician.ToTechnician()
	}
	if m.Invoice != nil {
		order.Invoice = m.Invoice.ToRepairInvoice()
	}
	return order
}

// WorkOrderModelFromDomain creates the order row. Tasks and parts are mapped
// separately so that callers control how they are inserted.
func WorkOrderModelFromDomain(o *repair.WorkOrder) *WorkOrderModel {
	m := &WorkOrderModel{
		Description:  o.Description,
		Status:       o.Status,
		CustomerID:   o.CustomerID,
		VehicleID:    o.VehicleID,
		TechnicianID: o.TechnicianID,
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	m.CompanyID = o.CompanyID
	return m
}

// TaskModel is the persistence model for a work order task.
type TaskModel struct {
	BaseModel
	WorkOrderID string `gorm:"type:varchar(36);not null;index"`
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the persistence model to a domain Task.
func (m *TaskModel) ToDomain() *repair.Task {
	return &repair.Task{
		BaseEntity:  m.BaseModel.ToDomain(),
		WorkOrderID: m.WorkOrderID,
		Title:       m.Title,
		Description: m.Description,
	}
}

// TaskModelFromDomain creates a new persistence model from a domain Task.
func TaskModelFromDomain(t *repair.Task) *TaskModel {
	m := &TaskModel{
		WorkOrderID: t.WorkOrderID,
		Title:       t.Title,
		Description: t.Description,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}

// WorkOrderPartModel is the persistence model for a part consumed by a work order.
type WorkOrderPartModel struct {
	BaseModel
	WorkOrderID     string              `gorm:"type:varchar(36);not null;index"`
	InventoryItemID string              `gorm:"type:varchar(36);not null;index"`
	Quantity        int                 `gorm:"not null;check:chk_work_order_parts_quantity,quantity > 0"`
	InventoryItem   *InventoryItemModel `gorm:"foreignKey:InventoryItemID"`
}

// TableName returns the table name for GORM
func (WorkOrderPartModel) TableName() string {
	return "work_order_parts"
}

// ToDomain converts the persistence model to a domain WorkOrderPart.
func (m *WorkOrderPartModel) ToDomain() *repair.WorkOrderPart {
	part := &repair.WorkOrderPart{
		BaseEntity:      m.BaseModel.ToDomain(),
		WorkOrderID:     m.WorkOrderID,
		InventoryItemID: m.InventoryItemID,
		Quantity:        m.Quantity,
	}
	if m.InventoryItem != nil {
		part.InventoryItem = m.InventoryItem.ToRepairInventoryItem()
	}
	return part
}

// WorkOrderPartModelFromDomain creates a new persistence model from a domain WorkOrderPart.
func WorkOrderPartModelFromDomain(p *repair.WorkOrderPart) *WorkOrderPartModel {
	m := &WorkOrderPartModel{
		WorkOrderID:     p.WorkOrderID,
		InventoryItemID: p.InventoryItemID,
		Quantity:        p.Quantity,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

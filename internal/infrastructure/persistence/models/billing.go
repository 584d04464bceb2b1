package models

import (
	"time"

	"github.com/repairshop/backend/internal/domain/repair"
	"github.com/shopspring/decimal"
)

// InvoiceModel is an invoice issued for a work order by the billing collaborator.
type InvoiceModel struct {
	CompanyScopedModel
	WorkOrderID string          `gorm:"type:varchar(36);not null;uniqueIndex"`
	Number      string          `gorm:"type:varchar(50);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status      string          `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	IssuedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToRepairInvoice projects the invoice as seen from its work order.
func (m *InvoiceModel) ToRepairInvoice() *repair.Invoice {
	return &repair.Invoice{
		ID:       m.ID,
		Number:   m.Number,
		Amount:   m.Amount,
		Status:   m.Status,
		IssuedAt: m.IssuedAt,
	}
}

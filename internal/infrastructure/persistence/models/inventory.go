package models

import (
	"github.com/repairshop/backend/internal/domain/repair"
	"github.com/shopspring/decimal"
)

// InventoryItemModel is a stock item. Stock levels are maintained by the
// inventory collaborator; work order parts only reference the row.
type InventoryItemModel struct {
	CompanyScopedModel
	Name      string          `gorm:"type:varchar(200);not null"`
	SKU       string          `gorm:"column:sku;type:varchar(64);index"`
	Quantity  int             `gorm:"not null;default:0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

// ToRepairInventoryItem projects the item as seen from a work order part.
func (m *InventoryItemModel) ToRepairInventoryItem() *repair.InventoryItem {
	return &repair.InventoryItem{
		ID:        m.ID,
		Name:      m.Name,
		SKU:       m.SKU,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
	}
}

package repair

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read-only projections of records owned by other collaborators. The work
// order subsystem joins them in but never writes them.

// Customer is the customer a work order is performed for
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Vehicle is the vehicle being repaired
type Vehicle struct {
	ID           string
	CustomerID   string
	Make         string
	Model        string
	Year         int
	VIN          string
	LicensePlate string
}

// Technician is the user assigned to the work order
type Technician struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Role      string
}

// InventoryItem is the stock item a part line refers to
type InventoryItem struct {
	ID        string
	Name      string
	SKU       string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Invoice is the bill issued for a work order, if any
type Invoice struct {
	ID       string
	Number   string
	Amount   decimal.Decimal
	Status   string
	IssuedAt time.Time
}

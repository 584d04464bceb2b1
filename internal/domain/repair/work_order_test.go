package repair

import (
	"strings"
	"testing"

	"github.com/repairshop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkOrder(t *testing.T) *WorkOrder {
	t.Helper()
	order, err := NewWorkOrder("company-1", "Front brakes squeal", "customer-1", "vehicle-1", "tech-1")
	require.NoError(t, err)
	return order
}

// ============================================
// WorkOrder Tests
// ============================================

func TestNewWorkOrder(t *testing.T) {
	order := newTestWorkOrder(t)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "company-1", order.CompanyID)
	assert.Equal(t, WorkOrderStatusPending, order.Status)
	assert.Empty(t, order.Tasks)
	assert.Empty(t, order.Parts)
}

func TestNewWorkOrder_Validation(t *testing.T) {
	tests := []struct {
		name         string
		companyID    string
		description  string
		customerID   string
		vehicleID    string
		technicianID string
		want         error
	}{
		{"missing company", "", "desc", "c", "v", "t", shared.ErrTenantRequired},
		{"blank description", "co", "   ", "c", "v", "t", shared.ErrValidation},
		{"missing customer", "co", "desc", "", "v", "t", shared.ErrValidation},
		{"missing vehicle", "co", "desc", "c", "", "t", shared.ErrValidation},
		{"missing technician", "co", "desc", "c", "v", "", shared.ErrValidation},
		{"customer id longer than a column", "co", "desc", strings.Repeat("c", 37), "v", "t", shared.ErrValidation},
		{"vehicle id longer than a column", "co", "desc", "c", strings.Repeat("v", 37), "t", shared.ErrValidation},
		{"technician id longer than a column", "co", "desc", "c", "v", strings.Repeat("t", 37), shared.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := NewWorkOrder(tt.companyID, tt.description, tt.customerID, tt.vehicleID, tt.technicianID)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWorkOrder_AddTaskAndPart(t *testing.T) {
	order := newTestWorkOrder(t)

	task, err := order.AddTask("Oil change", "std")
	require.NoError(t, err)
	assert.Equal(t, order.ID, task.WorkOrderID)

	part, err := order.AddPart("item-1", 2)
	require.NoError(t, err)
	assert.Equal(t, order.ID, part.WorkOrderID)
	assert.Equal(t, 2, part.Quantity)

	assert.Len(t, order.Tasks, 1)
	assert.Len(t, order.Parts, 1)
}

// ============================================
// Task / Part Tests
// ============================================

func TestNewTask_Validation(t *testing.T) {
	_, err := NewTask("wo-1", "", "std")
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = NewTask("wo-1", "Oil change", "")
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = NewTask("wo-1", strings.Repeat("x", MaxTaskTitleLength+1), "std")
	assert.ErrorIs(t, err, shared.ErrValidation)

	task, err := NewTask("wo-1", strings.Repeat("é", MaxTaskTitleLength), "std")
	require.NoError(t, err)
	assert.Len(t, []rune(task.Title), MaxTaskTitleLength)
}

func TestNewWorkOrderPart_Bounds(t *testing.T) {
	_, err := NewWorkOrderPart("wo-1", strings.Repeat("i", MaxIDLength+1), 1)
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = NewWorkOrderPart("wo-1", "item-1", MaxPartQuantity+1)
	assert.ErrorIs(t, err, shared.ErrValidation)

	part, err := NewWorkOrderPart("wo-1", strings.Repeat("i", MaxIDLength), MaxPartQuantity)
	require.NoError(t, err)
	assert.Equal(t, MaxPartQuantity, part.Quantity)
}

func TestNewWorkOrderPart_QuantityMustBePositive(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		part, err := NewWorkOrderPart("wo-1", "item-1", qty)
		assert.Nil(t, part)
		assert.ErrorIs(t, err, shared.ErrValidation)
	}

	_, err := NewWorkOrderPart("wo-1", "", 1)
	assert.ErrorIs(t, err, shared.ErrValidation)

	part, err := NewWorkOrderPart("wo-1", "item-1", 1)
	require.NoError(t, err)
	assert.Equal(t, "item-1", part.InventoryItemID)
}

func TestWorkOrder_AddPart_RejectedPartIsNotAppended(t *testing.T) {
	order := newTestWorkOrder(t)

	_, err := order.AddPart("item-1", 0)
	require.Error(t, err)
	assert.Empty(t, order.Parts)
}

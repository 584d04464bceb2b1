package repair

import (
	"context"
	"errors"
	"testing"

	"github.com/repairshop/backend/internal/domain/repair"
	"github.com/repairshop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mocks
// =============================================================================

type MockWorkOrderRepository struct {
	mock.Mock
}

func (m *MockWorkOrderRepository) FindAllByCompany(ctx context.Context, companyID string) ([]repair.WorkOrder, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repair.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) FindOneScoped(ctx context.Context, id, companyID string) (*repair.WorkOrder, error) {
	args := m.Called(ctx, id, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repair.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) ExistsScoped(ctx context.Context, id, companyID string) (bool, error) {
	args := m.Called(ctx, id, companyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkOrderRepository) CreateWithNested(ctx context.Context, order *repair.WorkOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) UpdateStatus(ctx context.Context, id, companyID string, status repair.WorkOrderStatus) (*repair.WorkOrder, error) {
	args := m.Called(ctx, id, companyID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repair.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) AppendTask(ctx context.Context, task *repair.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) AppendParts(ctx context.Context, parts []repair.WorkOrderPart) error {
	args := m.Called(ctx, parts)
	return args.Error(0)
}

type MockWorkOrderMetrics struct {
	mock.Mock
}

func (m *MockWorkOrderMetrics) WorkOrderCreated(ctx context.Context, companyID string, tasks, parts, units int) {
	m.Called(ctx, companyID, tasks, parts, units)
}

func (m *MockWorkOrderMetrics) StatusChanged(ctx context.Context, companyID, status string) {
	m.Called(ctx, companyID, status)
}

func (m *MockWorkOrderMetrics) TaskAdded(ctx context.Context, companyID string) {
	m.Called(ctx, companyID)
}

func (m *MockWorkOrderMetrics) PartsAdded(ctx context.Context, companyID string, parts, units int) {
	m.Called(ctx, companyID, parts, units)
}

// =============================================================================
// Helpers
// =============================================================================

var tenantA = shared.TenantContext{CompanyID: "company-a", UserID: "user-a"}

func newService(t *testing.T) (*WorkOrderService, *MockWorkOrderRepository, *MockWorkOrderMetrics) {
	t.Helper()
	repo := new(MockWorkOrderRepository)
	metrics := new(MockWorkOrderMetrics)
	t.Cleanup(func() {
		repo.AssertExpectations(t)
		metrics.AssertExpectations(t)
	})
	return NewWorkOrderService(repo, WithMetrics(metrics)), repo, metrics
}

func storedOrder(t *testing.T, status repair.WorkOrderStatus) *repair.WorkOrder {
	t.Helper()
	order, err := repair.NewWorkOrder(tenantA.CompanyID, "Brake job", "cust-1", "veh-1", "tech-1")
	require.NoError(t, err)
	order.Status = status
	_, err = order.AddTask("Oil change", "std")
	require.NoError(t, err)
	_, err = order.AddPart("item-1", 2)
	require.NoError(t, err)
	order.Customer = &repair.Customer{ID: "cust-1", FirstName: "Ada", LastName: "Lovelace"}
	order.Technician = &repair.Technician{ID: "tech-1", Role: "TECHNICIAN"}
	return order
}

func validCreateRequest() CreateWorkOrderRequest {
	return CreateWorkOrderRequest{
		Description:  "Brake job",
		CustomerID:   "cust-1",
		VehicleID:    "veh-1",
		TechnicianID: "tech-1",
		Tasks:        []AddTaskRequest{{Title: "Oil change", Description: "std"}},
		Parts:        []PartLineRequest{{InventoryItemID: "item-1", Quantity: 2}},
	}
}

// =============================================================================
// Create
// =============================================================================

func TestWorkOrderService_Create(t *testing.T) {
	t.Run("creates pending order with nested tasks and parts", func(t *testing.T) {
		svc, repo, metrics := newService(t)
		ctx := context.Background()

		var captured *repair.WorkOrder
		repo.On("CreateWithNested", mock.Anything, mock.AnythingOfType("*repair.WorkOrder")).
			Run(func(args mock.Arguments) { captured = args.Get(1).(*repair.WorkOrder) }).
			Return(nil)
		stored := storedOrder(t, repair.WorkOrderStatusPending)
		repo.On("FindOneScoped", mock.Anything, mock.MatchedBy(func(id string) bool {
			return captured != nil && id == captured.ID
		}), tenantA.CompanyID).Return(stored, nil)
		metrics.On("WorkOrderCreated", mock.Anything, tenantA.CompanyID, 1, 1, 2).Once()

		resp, err := svc.Create(ctx, tenantA, validCreateRequest())
		require.NoError(t, err)

		require.NotNil(t, captured)
		assert.Equal(t, tenantA.CompanyID, captured.CompanyID)
		assert.Equal(t, repair.WorkOrderStatusPending, captured.Status)
		require.Len(t, captured.Tasks, 1)
		require.Len(t, captured.Parts, 1)
		assert.Equal(t, captured.ID, captured.Tasks[0].WorkOrderID)
		assert.Equal(t, captured.ID, captured.Parts[0].WorkOrderID)

		assert.Equal(t, "PENDING", resp.Status)
		assert.Len(t, resp.Tasks, 1)
		require.Len(t, resp.Parts, 1)
		assert.Equal(t, 2, resp.Parts[0].Quantity)
	})

	t.Run("rejects a non-positive part quantity before touching the store", func(t *testing.T) {
		svc, _, _ := newService(t)
		req := validCreateRequest()
		req.Parts = append(req.Parts, PartLineRequest{InventoryItemID: "item-2", Quantity: 0})

		resp, err := svc.Create(context.Background(), tenantA, req)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrValidation)
		assert.Equal(t, "Quantity must be positive", err.Error())
	})

	t.Run("rejects a blank task title", func(t *testing.T) {
		svc, _, _ := newService(t)
		req := validCreateRequest()
		req.Tasks = []AddTaskRequest{{Title: " ", Description: "x"}}

		_, err := svc.Create(context.Background(), tenantA, req)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("requires a tenant", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Create(context.Background(), shared.TenantContext{}, validCreateRequest())
		assert.ErrorIs(t, err, shared.ErrTenantRequired)
	})

	t.Run("propagates repository errors without recording metrics", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.On("CreateWithNested", mock.Anything, mock.Anything).
			Return(shared.NewValidationError("Customer not found"))

		_, err := svc.Create(context.Background(), tenantA, validCreateRequest())
		assert.ErrorIs(t, err, shared.ErrValidation)
		assert.Equal(t, "Customer not found", err.Error())
	})
}

// =============================================================================
// List / Get
// =============================================================================

func TestWorkOrderService_List(t *testing.T) {
	svc, repo, _ := newService(t)
	orders := []repair.WorkOrder{*storedOrder(t, repair.WorkOrderStatusPending), *storedOrder(t, repair.WorkOrderStatusCompleted)}
	repo.On("FindAllByCompany", mock.Anything, tenantA.CompanyID).Return(orders, nil)

	resp, err := svc.List(context.Background(), tenantA)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "PENDING", resp[0].Status)
	assert.Equal(t, "COMPLETED", resp[1].Status)
	require.NotNil(t, resp[0].Customer)
	assert.Equal(t, "Ada", resp[0].Customer.FirstName)
	assert.Nil(t, resp[0].Vehicle)
}

func TestWorkOrderService_List_EmptyIsNotNil(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.On("FindAllByCompany", mock.Anything, tenantA.CompanyID).Return([]repair.WorkOrder{}, nil)

	resp, err := svc.List(context.Background(), tenantA)
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestWorkOrderService_Get(t *testing.T) {
	t.Run("returns the joined order", func(t *testing.T) {
		svc, repo, _ := newService(t)
		order := storedOrder(t, repair.WorkOrderStatusInProgress)
		repo.On("FindOneScoped", mock.Anything, order.ID, tenantA.CompanyID).Return(order, nil)

		resp, err := svc.Get(context.Background(), tenantA, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, resp.ID)
		assert.Equal(t, "IN_PROGRESS", resp.Status)
	})

	t.Run("foreign or missing order is not found", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.On("FindOneScoped", mock.Anything, "other", tenantA.CompanyID).
			Return(nil, shared.NewNotFoundError("Work order not found"))

		_, err := svc.Get(context.Background(), tenantA, "other")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

// =============================================================================
// UpdateStatus
// =============================================================================

// Any status may follow any status, terminal ones included.
func TestWorkOrderService_UpdateStatus_EveryTransitionAccepted(t *testing.T) {
	for _, from := range repair.AllWorkOrderStatuses() {
		for _, to := range repair.AllWorkOrderStatuses() {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				svc, repo, metrics := newService(t)
				order := storedOrder(t, from)
				updated := *order
				updated.Status = to

				repo.On("UpdateStatus", mock.Anything, order.ID, tenantA.CompanyID, to).Return(&updated, nil)
				metrics.On("StatusChanged", mock.Anything, tenantA.CompanyID, to.String()).Once()

				resp, err := svc.UpdateStatus(context.Background(), tenantA, order.ID, UpdateStatusRequest{Status: to.String()})
				require.NoError(t, err)
				assert.Equal(t, to.String(), resp.Status)
				assert.Len(t, resp.Tasks, 1)
				assert.Len(t, resp.Parts, 1)
			})
		}
	}
}

func TestWorkOrderService_UpdateStatus_Errors(t *testing.T) {
	t.Run("unknown status is a validation error", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.UpdateStatus(context.Background(), tenantA, "wo-1", UpdateStatusRequest{Status: "DONE"})
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("zero affected rows is not found", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.On("UpdateStatus", mock.Anything, "wo-foreign", tenantA.CompanyID, repair.WorkOrderStatusCompleted).
			Return(nil, shared.NewNotFoundError("Work order not found"))

		_, err := svc.UpdateStatus(context.Background(), tenantA, "wo-foreign", UpdateStatusRequest{Status: "COMPLETED"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

// =============================================================================
// AddTask / AddParts
// =============================================================================

func TestWorkOrderService_AddTask(t *testing.T) {
	t.Run("appends to an owned order", func(t *testing.T) {
		svc, repo, metrics := newService(t)
		repo.On("ExistsScoped", mock.Anything, "wo-1", tenantA.CompanyID).Return(true, nil)
		repo.On("AppendTask", mock.Anything, mock.MatchedBy(func(task *repair.Task) bool {
			return task.WorkOrderID == "wo-1" && task.Title == "Rotate tyres"
		})).Return(nil)
		metrics.On("TaskAdded", mock.Anything, tenantA.CompanyID).Once()

		resp, err := svc.AddTask(context.Background(), tenantA, "wo-1", AddTaskRequest{Title: "Rotate tyres", Description: "all four"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "wo-1", resp.WorkOrderID)
	})

	t.Run("foreign order is not found and nothing is written", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.On("ExistsScoped", mock.Anything, "wo-b", tenantA.CompanyID).Return(false, nil)

		_, err := svc.AddTask(context.Background(), tenantA, "wo-b", AddTaskRequest{Title: "x", Description: "y"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Equal(t, "Work order not found", err.Error())
		repo.AssertNotCalled(t, "AppendTask", mock.Anything, mock.Anything)
	})

	t.Run("store failure is passed through", func(t *testing.T) {
		svc, repo, _ := newService(t)
		boom := errors.New("connection reset")
		repo.On("ExistsScoped", mock.Anything, "wo-1", tenantA.CompanyID).Return(false, boom)

		_, err := svc.AddTask(context.Background(), tenantA, "wo-1", AddTaskRequest{Title: "x", Description: "y"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestWorkOrderService_AddParts(t *testing.T) {
	t.Run("appends the whole batch", func(t *testing.T) {
		svc, repo, metrics := newService(t)
		repo.On("ExistsScoped", mock.Anything, "wo-1", tenantA.CompanyID).Return(true, nil)
		repo.On("AppendParts", mock.Anything, mock.MatchedBy(func(parts []repair.WorkOrderPart) bool {
			return len(parts) == 2 && parts[0].WorkOrderID == "wo-1" && parts[1].Quantity == 3
		})).Return(nil)
		metrics.On("PartsAdded", mock.Anything, tenantA.CompanyID, 2, 4).Once()

		resp, err := svc.AddParts(context.Background(), tenantA, "wo-1", AddPartsRequest{Parts: []PartLineRequest{
			{InventoryItemID: "item-1", Quantity: 1},
			{InventoryItemID: "item-2", Quantity: 3},
		}})
		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "item-2", resp[1].InventoryItemID)
	})

	t.Run("empty batch succeeds with an empty list", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.On("ExistsScoped", mock.Anything, "wo-1", tenantA.CompanyID).Return(true, nil)
		repo.On("AppendParts", mock.Anything, []repair.WorkOrderPart{}).Return(nil)

		resp, err := svc.AddParts(context.Background(), tenantA, "wo-1", AddPartsRequest{Parts: []PartLineRequest{}})
		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("one invalid quantity rejects the batch", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.On("ExistsScoped", mock.Anything, "wo-1", tenantA.CompanyID).Return(true, nil)

		_, err := svc.AddParts(context.Background(), tenantA, "wo-1", AddPartsRequest{Parts: []PartLineRequest{
			{InventoryItemID: "item-1", Quantity: 1},
			{InventoryItemID: "item-2", Quantity: -1},
		}})
		assert.ErrorIs(t, err, shared.ErrValidation)
		repo.AssertNotCalled(t, "AppendParts", mock.Anything, mock.Anything)
	})

	t.Run("foreign order is not found", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.On("ExistsScoped", mock.Anything, "wo-b", tenantA.CompanyID).Return(false, nil)

		_, err := svc.AddParts(context.Background(), tenantA, "wo-b", AddPartsRequest{Parts: []PartLineRequest{{InventoryItemID: "i", Quantity: 1}}})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestNewWorkOrderService_DefaultsToNoopMetrics(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	svc := NewWorkOrderService(repo, WithMetrics(nil))
	repo.On("ExistsScoped", mock.Anything, "wo-1", tenantA.CompanyID).Return(true, nil)
	repo.On("AppendTask", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.AddTask(context.Background(), tenantA, "wo-1", AddTaskRequest{Title: "t", Description: "d"})
	require.NoError(t, err)
}

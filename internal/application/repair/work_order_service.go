// Package repair implements the work order lifecycle: opening orders with
// nested tasks and parts, moving them between statuses and appending work
// to orders the caller's company owns.
package repair

import (
	"context"

	"github.com/repairshop/backend/internal/domain/repair"
	"github.com/repairshop/backend/internal/domain/shared"
	"github.com/repairshop/backend/internal/infrastructure/logger"
	"github.com/repairshop/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const spanService = "WorkOrderService"

// WorkOrderMetrics records work order business counters.
// *telemetry.WorkOrderMetrics satisfies it.
type WorkOrderMetrics interface {
	WorkOrderCreated(ctx context.Context, companyID string, tasks, parts, units int)
	StatusChanged(ctx context.Context, companyID, status string)
	TaskAdded(ctx context.Context, companyID string)
	PartsAdded(ctx context.Context, companyID string, parts, units int)
}

type noopMetrics struct{}

func (noopMetrics) WorkOrderCreated(context.Context, string, int, int, int) {}
func (noopMetrics) StatusChanged(context.Context, string, string) {}
func (noopMetrics) TaskAdded(context.Context, string) {}
func (noopMetrics) PartsAdded(context.Context, string, int, int) {}

// WorkOrderService handles work order business operations
type WorkOrderService struct {
	workOrderRepo repair.WorkOrderRepository
	metrics       WorkOrderMetrics
}

// WorkOrderServiceOption configures a WorkOrderService
type WorkOrderServiceOption func(*WorkOrderService)

// WithMetrics reports business counters to m
func WithMetrics(m WorkOrderMetrics) WorkOrderServiceOption {
	return func(s *WorkOrderService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewWorkOrderService creates a new WorkOrderService
func NewWorkOrderService(workOrderRepo repair.WorkOrderRepository, opts ...WorkOrderServiceOption) *WorkOrderService {
	s := &WorkOrderService{
		workOrderRepo: workOrderRepo,
		metrics:       noopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every work order of the caller's company with related records joined
func (s *WorkOrderService) List(ctx context.Context, tc shared.TenantContext) ([]WorkOrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "List",
		attribute.String(telemetry.SpanAttrCompanyID, tc.CompanyID))
	defer span.End()

	if err := tc.Validate(); err != nil {
		return nil, err
	}

	orders, err := s.workOrderRepo.FindAllByCompany(ctx, tc.CompanyID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return ToWorkOrderResponses(orders), nil
}

// Get returns one work order of the caller's company.
// An order of another company is reported exactly like a missing one.
func (s *WorkOrderService) Get(ctx context.Context, tc shared.TenantContext, id string) (*WorkOrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "Get",
		attribute.String(telemetry.SpanAttrCompanyID, tc.CompanyID),
		attribute.String(telemetry.SpanAttrWorkOrderID, id))
	defer span.End()

	if err := tc.Validate(); err != nil {
		return nil, err
	}

	order, err := s.workOrderRepo.FindOneScoped(ctx, id, tc.CompanyID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	resp := ToWorkOrderResponse(order)
	return &resp, nil
}

// Create opens a PENDING work order for the caller's company. The order, its
// tasks and its parts are written in one transaction; any invalid element
// rejects the whole request before anything is stored.
func (s *WorkOrderService) Create(ctx context.Context, tc shared.TenantContext, req CreateWorkOrderRequest) (*WorkOrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "Create",
		attribute.String(telemetry.SpanAttrCompanyID, tc.CompanyID),
		attribute.Int(telemetry.SpanAttrTaskCount, len(req.Tasks)),
		attribute.Int(telemetry.SpanAttrPartCount, len(req.Parts)))
	defer span.End()

	if err := tc.Validate(); err != nil {
		return nil, err
	}

	order, err := repair.NewWorkOrder(tc.CompanyID, req.Description, req.CustomerID, req.VehicleID, req.TechnicianID)
	if err != nil {
		return nil, err
	}
	for _, t := range req.Tasks {
		if _, err := order.AddTask(t.Title, t.Description); err != nil {
			return nil, err
		}
	}
	units := 0
	for _, p := range req.Parts {
		if _, err := order.AddPart(p.InventoryItemID, p.Quantity); err != nil {
			return nil, err
		}
		units += p.Quantity
	}

	if err := s.workOrderRepo.CreateWithNested(ctx, order); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String(telemetry.SpanAttrWorkOrderID, order.ID))

	s.metrics.WorkOrderCreated(ctx, tc.CompanyID, len(order.Tasks), len(order.Parts), units)
	logger.L(ctx).Info("Work order created",
		zap.String("work_order_id", order.ID),
		zap.Int("tasks", len(order.Tasks)),
		zap.Int("parts", len(order.Parts)),
	)

	created, err := s.workOrderRepo.FindOneScoped(ctx, order.ID, tc.CompanyID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	resp := ToWorkOrderResponse(created)
	return &resp, nil
}

// UpdateStatus moves a work order to any valid status. No transition table is
// enforced, so COMPLETED or CANCELLED orders may be reopened, and repeating
// the current status is a no-op that still succeeds.
func (s *WorkOrderService) UpdateStatus(ctx context.Context, tc shared.TenantContext, id string, req UpdateStatusRequest) (*WorkOrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "UpdateStatus",
		attribute.String(telemetry.SpanAttrCompanyID, tc.CompanyID),
		attribute.String(telemetry.SpanAttrWorkOrderID, id),
		attribute.String(telemetry.SpanAttrStatus, req.Status))
	defer span.End()

	if err := tc.Validate(); err != nil {
		return nil, err
	}

	status, err := repair.ParseWorkOrderStatus(req.Status)
	if err != nil {
		return nil, err
	}

	order, err := s.workOrderRepo.UpdateStatus(ctx, id, tc.CompanyID, status)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.metrics.StatusChanged(ctx, tc.CompanyID, status.String())
	logger.L(ctx).Info("Work order status updated",
		zap.String("work_order_id", id),
		zap.String("status", status.String()),
	)

	resp := ToWorkOrderResponse(order)
	return &resp, nil
}

// AddTask appends a task to a work order of the caller's company and returns the task alone
func (s *WorkOrderService) AddTask(ctx context.Context, tc shared.TenantContext, id string, req AddTaskRequest) (*TaskResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "AddTask",
		attribute.String(telemetry.SpanAttrCompanyID, tc.CompanyID),
		attribute.String(telemetry.SpanAttrWorkOrderID, id))
	defer span.End()

	if err := s.ensureOwned(ctx, tc, id); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	task, err := repair.NewTask(id, req.Title, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.workOrderRepo.AppendTask(ctx, task); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.metrics.TaskAdded(ctx, tc.CompanyID)
	logger.L(ctx).Info("Task added to work order",
		zap.String("work_order_id", id),
		zap.String("task_id", task.ID),
	)

	resp := ToTaskResponse(task)
	return &resp, nil
}

// AddParts appends a batch of parts to a work order of the caller's company.
// The batch is all or nothing. Inventory items are referenced by ID only;
// their existence and stock level are not checked.
func (s *WorkOrderService) AddParts(ctx context.Context, tc shared.TenantContext, id string, req AddPartsRequest) ([]PartResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "AddParts",
		attribute.String(telemetry.SpanAttrCompanyID, tc.CompanyID),
		attribute.String(telemetry.SpanAttrWorkOrderID, id),
		attribute.Int(telemetry.SpanAttrPartCount, len(req.Parts)))
	defer span.End()

	if err := s.ensureOwned(ctx, tc, id); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	parts := make([]repair.WorkOrderPart, 0, len(req.Parts))
	units := 0
	for _, p := range req.Parts {
		part, err := repair.NewWorkOrderPart(id, p.InventoryItemID, p.Quantity)
		if err != nil {
			return nil, err
		}
		parts = append(parts, *part)
		units += p.Quantity
	}

	if err := s.workOrderRepo.AppendParts(ctx, parts); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if len(parts) > 0 {
		s.metrics.PartsAdded(ctx, tc.CompanyID, len(parts), units)
		logger.L(ctx).Info("Parts added to work order",
			zap.String("work_order_id", id),
			zap.Int("parts", len(parts)),
		)
	}
	return ToPartResponses(parts), nil
}

// ensureOwned fails with a not-found error unless the order exists within the caller's company
func (s *WorkOrderService) ensureOwned(ctx context.Context, tc shared.TenantContext, id string) error {
	if err := tc.Validate(); err != nil {
		return err
	}
	ok, err := s.workOrderRepo.ExistsScoped(ctx, id, tc.CompanyID)
	if err != nil {
		return err
	}
	if !ok {
		return shared.NewNotFoundError("Work order not found")
	}
	return nil
}

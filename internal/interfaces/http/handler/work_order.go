package handler

import (
	"github.com/gin-gonic/gin"
	repairapp "github.com/repairshop/backend/internal/application/repair"
	"github.com/repairshop/backend/internal/interfaces/http/middleware"
)

// WorkOrderHandler handles work order API endpoints
type WorkOrderHandler struct {
	BaseHandler
	workOrderService *repairapp.WorkOrderService
}

// NewWorkOrderHandler creates a new WorkOrderHandler
func NewWorkOrderHandler(workOrderService *repairapp.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{
		workOrderService: workOrderService,
	}
}

// List godoc
// @ID           listWorkOrders
// @Summary      List work orders
// @Description  List every work order of the caller's company with customer, vehicle, technician, invoice, tasks and parts
// @Tags         work-orders
// @Produce      json
// @Success      200 {object} APIResponse[[]repairapp.WorkOrderResponse]
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /work-orders [get]
func (h *WorkOrderHandler) List(c *gin.Context) {
	tc, ok := h.tenant(c)
	if !ok {
		return
	}

	orders, err := h.workOrderService.List(c.Request.Context(), tc)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// GetByID godoc
// @ID           getWorkOrder
// @Summary      Get work order by ID
// @Description  Retrieve one work order of the caller's company. Orders of other companies are reported as not found.
// @Tags         work-orders
// @Produce      json
// @Param        id path string true "Work order ID"
// @Success      200 {object} APIResponse[repairapp.WorkOrderResponse]
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /work-orders/{id} [get]
func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	tc, ok := h.tenant(c)
	if !ok {
		return
	}

	order, err := h.workOrderService.Get(c.Request.Context(), tc, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Create godoc
// @ID           createWorkOrder
// @Summary      Create a work order
// @Description  Create a PENDING work order together with its initial tasks and parts in one transaction
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Rejects a replay of the same request with 409"
// @Param        request body repairapp.CreateWorkOrderRequest true "Work order creation request"
// @Success      201 {object} APIResponse[repairapp.WorkOrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /work-orders [post]
func (h *WorkOrderHandler) Create(c *gin.Context) {
	tc, ok := h.tenant(c)
	if !ok {
		return
	}

	var req repairapp.CreateWorkOrderRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	order, err := h.workOrderService.Create(c.Request.Context(), tc, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// UpdateStatus godoc
// @ID           updateWorkOrderStatus
// @Summary      Change work order status
// @Description  Move a work order to any status. Every transition is allowed and repeating a status is a no-op.
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Work order ID"
// @Param        request body repairapp.UpdateStatusRequest true "Target status"
// @Success      200 {object} APIResponse[repairapp.WorkOrderResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /work-orders/{id}/status [patch]
func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	tc, ok := h.tenant(c)
	if !ok {
		return
	}

	var req repairapp.UpdateStatusRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	order, err := h.workOrderService.UpdateStatus(c.Request.Context(), tc, c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// AddTask godoc
// @ID           addWorkOrderTask
// @Summary      Add a task
// @Description  Append one task to a work order of the caller's company
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Work order ID"
// @Param        request body repairapp.AddTaskRequest true "Task"
// @Success      201 {object} APIResponse[repairapp.TaskResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /work-orders/{id}/tasks [post]
func (h *WorkOrderHandler) AddTask(c *gin.Context) {
	tc, ok := h.tenant(c)
	if !ok {
		return
	}

	var req repairapp.AddTaskRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	task, err := h.workOrderService.AddTask(c.Request.Context(), tc, c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, task)
}

// AddParts godoc
// @ID           addWorkOrderParts
// @Summary      Add parts
// @Description  Append a batch of part lines to a work order. Either every line is stored or none is.
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Work order ID"
// @Param        request body repairapp.AddPartsRequest true "Part lines"
// @Success      201 {object} APIResponse[[]repairapp.PartResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /work-orders/{id}/parts [post]
func (h *WorkOrderHandler) AddParts(c *gin.Context) {
	tc, ok := h.tenant(c)
	if !ok {
		return
	}

	var req repairapp.AddPartsRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	parts, err := h.workOrderService.AddParts(c.Request.Context(), tc, c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, parts)
}

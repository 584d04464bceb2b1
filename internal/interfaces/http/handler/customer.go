package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/repairshop/backend/internal/application/partner"
	"github.com/repairshop/backend/internal/interfaces/http/middleware"
)

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Description  List the customers of the caller's company with their vehicles
// @Tags         customers
// @Produce      json
// @Success      200 {object} APIResponse[[]partnerapp.CustomerResponse]
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	tc, ok := h.tenant(c)
	if !ok {
		return
	}

	customers, err := h.customerService.List(c.Request.Context(), tc)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customers)
}

// GetByID godoc
// @ID           getCustomer
// @Summary      Get customer by ID
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	tc, ok := h.tenant(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), tc, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Create godoc
// @ID           createCustomer
// @Summary      Create a new customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CustomerRequest true "Customer creation request"
// @Success      201 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	tc, ok := h.tenant(c)
	if !ok {
		return
	}

	var req partnerapp.CustomerRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), tc, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, customer)
}

// Update godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Description  Replace the contact details of a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID"
// @Param        request body partnerapp.CustomerRequest true "Customer details"
// @Success      200 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	tc, ok := h.tenant(c)
	if !ok {
		return
	}

	var req partnerapp.CustomerRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), tc, c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Delete godoc
// @ID           deleteCustomer
// @Summary      Delete a customer
// @Tags         customers
// @Param        id path string true "Customer ID"
// @Success      204
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	tc, ok := h.tenant(c)
	if !ok {
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), tc, c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

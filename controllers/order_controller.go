package controllers

import (
	"errors"
	"net/http"

	"litoral-shop/models"
	"litoral-shop/repositories"
	"litoral-shop/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// SubmitOrder godoc
// @Summary Submit an order
// @Description Finalize a cart into a pending order. Blank customer name, blank whatsapp or an empty cart abort the submission.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.SubmitOrderRequest true "Order data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) SubmitOrder(c *gin.Context) {
	var req models.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	order, err := ctrl.orderService.Submit(req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, repositories.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, models.ErrorResponse{
			Success: false,
			Message: "Failed to submit order",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order submitted successfully",
		Data:    order,
	})
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description List orders newest-first with the pending-production count. Staff only.
// @Tags Production
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status (PENDING, PREPARING, READY, DELIVERED or ALL)"
// @Success 200 {object} models.OrdersResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	orders, meta, err := ctrl.orderService.List(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid status filter",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.OrdersResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta:    meta,
	})
}

// GetOrderByID godoc
// @Summary Get an order
// @Tags Production
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	order, err := ctrl.orderService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    order,
	})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Set the status of an order. Any of the four pipeline statuses is accepted so staff can correct mistakes.
// @Tags Production
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Status is required",
			Error:   err.Error(),
		})
		return
	}

	order, err := ctrl.orderService.Advance(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Order not found",
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to update order status",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order status updated successfully",
		Data:    order,
	})
}

// MarkPrinted godoc
// @Summary Mark an order receipt as printed
// @Tags Production
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/printed [patch]
func (ctrl *OrderController) MarkPrinted(c *gin.Context) {
	order, err := ctrl.orderService.MarkPrinted(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order marked as printed",
		Data:    order,
	})
}

// GetReceipt godoc
// @Summary Get the printable receipt of an order
// @Tags Production
// @Security BearerAuth
// @Produce plain
// @Param id path string true "Order ID"
// @Success 200 {string} string
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/receipt [get]
func (ctrl *OrderController) GetReceipt(c *gin.Context) {
	receipt, err := ctrl.orderService.Receipt(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Order not found",
		})
		return
	}

	c.String(http.StatusOK, receipt)
}

// GetDashboard godoc
// @Summary Get admin dashboard stats
// @Tags Admin - Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *OrderController) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Dashboard retrieved successfully",
		Data:    ctrl.orderService.Dashboard(),
	})
}

// internal/handlers/order.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/atelier-lumen/jewelry-backend/internal/middleware"
	"github.com/atelier-lumen/jewelry-backend/internal/models"
	"github.com/atelier-lumen/jewelry-backend/internal/services"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Missing required order information", err.Error())
		return
	}

	order, err := h.orderService.PlaceOrder(userID, &req)
	if err != nil {
		middleware.RecordOrderOperation("place", false)
		switch {
		case errors.Is(err, services.ErrInsufficientStock):
			utils.BadRequestResponse(c, "Not enough stock available", nil)
		case errors.Is(err, services.ErrValidation):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, "Order creation failed")
		}
		return
	}

	middleware.RecordOrderOperation("place", true)
	utils.CreatedResponse(c, gin.H{
		"message": "Order placed",
		"orderId": order.ID,
	})
}

// GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orders, err := h.orderService.ListOrders(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch orders")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"orders": orders,
	})
}

// PUT /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Status required", err.Error())
		return
	}

	err = h.orderService.UpdateStatus(orderID, userID, models.OrderStatus(req.Status))
	if err != nil {
		middleware.RecordOrderOperation("status_update", false)
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.BadRequestResponse(c, "Invalid status", nil)
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, "Order not found")
		case errors.Is(err, services.ErrForbidden):
			utils.ForbiddenResponse(c, "")
		default:
			utils.InternalErrorResponse(c, "Failed to update status")
		}
		return
	}

	middleware.RecordOrderOperation("status_update", true)
	utils.SuccessResponse(c, gin.H{
		"message": "Order status updated",
		"status":  req.Status,
	})
}

// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/atelier-lumen/jewelry-backend/internal/services"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	items, err := h.cartService.GetCart(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Cart fetch failed")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": items,
	})
}

// POST /cart/add
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req struct {
		ItemID   uint `json:"item_id"`
		Quantity int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Valid item_id and quantity required", err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	items, err := h.cartService.AddToCart(userID, req.ItemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, "Item not found")
		case errors.Is(err, services.ErrInsufficientStock):
			utils.BadRequestResponse(c, "Not enough stock available", nil)
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Added to cart",
		"items":   items,
	})
}

// DELETE /cart/:item_id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	itemID, err := parseIDParam(c, "item_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", nil)
		return
	}

	items, err := h.cartService.RemoveFromCart(userID, itemID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Cart not found")
			return
		}
		utils.InternalErrorResponse(c, "Cart update failed")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Item removed from cart",
		"items":   items,
	})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if err := h.cartService.ClearCart(userID); err != nil {
		utils.InternalErrorResponse(c, "Cart clear failed")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Cart cleared",
	})
}

// internal/handlers/wishlist.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/atelier-lumen/jewelry-backend/internal/services"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

type WishlistHandler struct {
	wishlistService *services.WishlistService
}

func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

// GET /wishlist
func (h *WishlistHandler) List(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	items, err := h.wishlistService.List(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch wishlist")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": items,
	})
}

// POST /wishlist
func (h *WishlistHandler) Add(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req struct {
		ItemID uint `json:"item_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == 0 {
		utils.BadRequestResponse(c, "Item ID required", nil)
		return
	}

	if err := h.wishlistService.Add(userID, req.ItemID); err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			utils.ConflictResponse(c, "Already in wishlist")
			return
		}
		utils.InternalErrorResponse(c, "Failed to add to wishlist")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Added to wishlist",
	})
}

// DELETE /wishlist/:item_id
func (h *WishlistHandler) Remove(c *gin.Context) {
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

	if err := h.wishlistService.Remove(userID, itemID); err != nil {
		utils.InternalErrorResponse(c, "Failed to remove from wishlist")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Removed from wishlist",
	})
}

// GET /wishlist/check/:item_id
func (h *WishlistHandler) Check(c *gin.Context) {
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

	inWishlist, err := h.wishlistService.Contains(userID, itemID)
	if err != nil {
		utils.InternalErrorResponse(c, "Wishlist check failed")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"in_wishlist": inWishlist,
	})
}

// internal/handlers/review.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/atelier-lumen/jewelry-backend/internal/services"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// POST /reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Item ID and rating (1-5) required", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	review, err := h.reviewService.CreateReview(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, "Item not found")
		case errors.Is(err, services.ErrDuplicate):
			utils.ConflictResponse(c, "You already reviewed this item")
		default:
			utils.InternalErrorResponse(c, "Review failed")
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Review added",
		"review":  review,
	})
}

// GET /reviews/:item_id
func (h *ReviewHandler) ListItemReviews(c *gin.Context) {
	itemID, err := parseIDParam(c, "item_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", nil)
		return
	}

	reviews, err := h.reviewService.ListItemReviews(itemID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch reviews")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"reviews": reviews,
	})
}

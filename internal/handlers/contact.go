// internal/handlers/contact.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/atelier-lumen/jewelry-backend/internal/services"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// POST /contact
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Name, email, subject and message required", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.contactService.SaveMessage(&req); err != nil {
		utils.InternalErrorResponse(c, "Failed to send message")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Message received",
	})
}

// POST /newsletter/subscribe
func (h *ContactHandler) Subscribe(c *gin.Context) {
	var req services.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Valid email required", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.contactService.Subscribe(&req); err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			utils.ConflictResponse(c, "Email already subscribed")
			return
		}
		utils.InternalErrorResponse(c, "Subscription failed")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Subscribed to newsletter",
	})
}

// internal/services/contact_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/atelier-lumen/jewelry-backend/internal/models"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

type ContactService struct {
	db *gorm.DB
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

func (s *ContactService) SaveMessage(req *ContactRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

func (s *ContactService) Subscribe(req *SubscribeRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	subscriber := &models.NewsletterSubscriber{Email: req.Email}
	if err := s.db.Create(subscriber).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already subscribed", ErrDuplicate)
		}
		return fmt.Errorf("subscription failed: %w", err)
	}
	return nil
}

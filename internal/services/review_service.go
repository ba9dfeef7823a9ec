// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/atelier-lumen/jewelry-backend/internal/models"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	ItemID  uint   `json:"item_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ReviewView struct {
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
	UserName  string `json:"user_name"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReview inserts one review per (user, item); the unique index turns
// a second attempt into ErrDuplicate.
func (s *ReviewService) CreateReview(userID uint, req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var item models.JewelryItem
	if err := s.db.Select("id").First(&item, req.ItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	review := &models.Review{
		UserID:  userID,
		ItemID:  req.ItemID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.db.Create(review).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: you already reviewed this item", ErrDuplicate)
		}
		return nil, fmt.Errorf("review failed: %w", err)
	}

	return review, nil
}

func (s *ReviewService) ListItemReviews(itemID uint) ([]ReviewView, error) {
	var rows []struct {
		Rating    int
		Comment   string
		CreatedAt string
		UserName  string
	}
	err := s.db.Table("reviews").
		Select("reviews.rating, reviews.comment, reviews.created_at, users.name AS user_name").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.item_id = ?", itemID).
		Order("reviews.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	views := make([]ReviewView, len(rows))
	for i, row := range rows {
		views[i] = ReviewView(row)
	}
	return views, nil
}

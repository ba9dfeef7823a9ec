// internal/services/wishlist_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/atelier-lumen/jewelry-backend/internal/models"
)

type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

func (s *WishlistService) Add(userID, itemID uint) error {
	if itemID == 0 {
		return fmt.Errorf("item ID required")
	}

	entry := &models.WishlistEntry{UserID: userID, ItemID: itemID}
	if err := s.db.Create(entry).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: already in wishlist", ErrDuplicate)
		}
		return fmt.Errorf("failed to add to wishlist: %w", err)
	}
	return nil
}

func (s *WishlistService) Remove(userID, itemID uint) error {
	if err := s.db.Delete(&models.WishlistEntry{}, "user_id = ? AND item_id = ?", userID, itemID).Error; err != nil {
		return fmt.Errorf("failed to remove from wishlist: %w", err)
	}
	return nil
}

// List returns the wished-for catalog items themselves, not the join rows.
func (s *WishlistService) List(userID uint) ([]models.JewelryItem, error) {
	var items []models.JewelryItem
	err := s.db.
		Joins("JOIN wishlist_entries ON wishlist_entries.item_id = jewelry_items.id").
		Where("wishlist_entries.user_id = ?", userID).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	return items, nil
}

func (s *WishlistService) Contains(userID, itemID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.WishlistEntry{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("wishlist check failed: %w", err)
	}
	return count > 0, nil
}

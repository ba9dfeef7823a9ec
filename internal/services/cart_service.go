// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/atelier-lumen/jewelry-backend/internal/models"
)

// CartService manages the per-user whole-blob cart. The blob is written back
// read-modify-write; concurrent adds from the same user are last-write-wins.
type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

func (s *CartService) GetCart(userID uint) (models.CartLines, error) {
	var cart models.Cart
	if err := s.db.First(&cart, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartLines{}, nil
		}
		return nil, fmt.Errorf("cart fetch failed: %w", err)
	}
	if cart.Items == nil {
		return models.CartLines{}, nil
	}
	return cart.Items, nil
}

// AddToCart checks requested quantity against current stock (read-time check
// only), merges into an existing line or appends a new one with the item's
// current price as snapshot, then upserts the whole blob.
func (s *CartService) AddToCart(userID, itemID uint, quantity int) (models.CartLines, error) {
	if itemID == 0 || quantity < 1 {
		return nil, errors.New("valid item_id and quantity required")
	}

	var item models.JewelryItem
	if err := s.db.Select("price", "stock").First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("item fetch failed: %w", err)
	}

	if quantity > item.Stock {
		return nil, ErrInsufficientStock
	}

	lines, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range lines {
		if lines[i].ItemID == itemID {
			lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, models.CartLine{
			ItemID:   itemID,
			Quantity: quantity,
			Price:    item.Price,
		})
	}

	cart := models.Cart{UserID: userID, Items: lines}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
	}).Create(&cart).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}

	return lines, nil
}

// RemoveFromCart drops one line; removing the last line deletes the cart row.
func (s *CartService) RemoveFromCart(userID, itemID uint) (models.CartLines, error) {
	var cart models.Cart
	if err := s.db.First(&cart, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("cart fetch failed: %w", err)
	}

	remaining := make(models.CartLines, 0, len(cart.Items))
	for _, line := range cart.Items {
		if line.ItemID != itemID {
			remaining = append(remaining, line)
		}
	}

	if len(remaining) == 0 {
		if err := s.db.Delete(&models.Cart{}, "user_id = ?", userID).Error; err != nil {
			return nil, fmt.Errorf("cart clear failed: %w", err)
		}
		return models.CartLines{}, nil
	}

	if err := s.db.Model(&models.Cart{}).Where("user_id = ?", userID).
		Update("items", remaining).Error; err != nil {
		return nil, fmt.Errorf("cart update failed: %w", err)
	}

	return remaining, nil
}

func (s *CartService) ClearCart(userID uint) error {
	if err := s.db.Delete(&models.Cart{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("cart clear failed: %w", err)
	}
	return nil
}

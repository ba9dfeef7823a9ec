// internal/models/wishlist.go
package models

import "time"

// WishlistEntry is an existence-only relation, one per (user, item).
type WishlistEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_wishlist_user_item"`
	ItemID    uint      `json:"item_id" gorm:"not null;uniqueIndex:idx_wishlist_user_item"`
	CreatedAt time.Time `json:"created_at"`

	Item JewelryItem `json:"-" gorm:"foreignKey:ItemID"`
}

// internal/models/review.go
package models

type Review struct {
	BaseModel
	UserID  uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_reviews_user_item"`
	ItemID  uint   `json:"item_id" gorm:"not null;uniqueIndex:idx_reviews_user_item"`
	Rating  int    `json:"rating" gorm:"not null"`
	Comment string `json:"comment" gorm:"type:text"`

	User User        `json:"-" gorm:"foreignKey:UserID"`
	Item JewelryItem `json:"-" gorm:"foreignKey:ItemID"`
}

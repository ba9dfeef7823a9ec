// internal/models/catalog.go
package models

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;uniqueIndex;not null"`

	Items []JewelryItem `json:"items,omitempty" gorm:"foreignKey:CategoryID"`
}

// JewelryItem is a catalog entry. ImageURL holds the stored object key or
// filename, never image bytes. Stock must not go negative: order placement
// decrements it through a guarded conditional update.
type JewelryItem struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int     `json:"stock" gorm:"default:0"`
	CategoryID  *uint   `json:"category_id" gorm:"index"`
	ImageURL    string  `json:"image_url,omitempty" gorm:"size:512"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

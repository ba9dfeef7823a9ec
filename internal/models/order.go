// internal/models/order.go
package models

import "time"

// Order is the order header. Shipping fields are denormalized onto the row
// and left null for showroom pickups.
type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserID        uint          `json:"user_id" gorm:"not null;index"`
	TotalAmount   float64       `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"type:varchar(10);not null"`
	Location      OrderLocation `json:"location" gorm:"type:varchar(10);not null"`
	FullName      string        `json:"full_name" gorm:"size:100"`
	Phone         string        `json:"phone" gorm:"size:30"`
	Address       *string       `json:"address"`
	City          *string       `json:"city"`
	PostalCode    *string       `json:"postal_code"`
	Status        OrderStatus   `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	PaymentRef    string        `json:"payment_ref,omitempty" gorm:"size:255"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	User  User        `json:"-" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is created once with the order and immutable thereafter.
// PriceAtTime is the price snapshot, decoupled from the current catalog price.
type OrderItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	OrderID     uint    `json:"order_id" gorm:"not null;index"`
	ItemID      uint    `json:"item_id" gorm:"not null;index"`
	Quantity    int     `json:"quantity" gorm:"not null;default:1"`
	PriceAtTime float64 `json:"price_at_time" gorm:"type:decimal(10,2);not null"`
}

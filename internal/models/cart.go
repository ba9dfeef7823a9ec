// internal/models/cart.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CartLine is one {item_id, quantity, price} entry in a cart. Price is a
// snapshot taken at add-to-cart time and is not re-read from the catalog.
type CartLine struct {
	ItemID   uint    `json:"item_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CartLines is the serialized line array stored as a single column.
type CartLines []CartLine

func (l CartLines) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(CartLines{})
	}
	return json.Marshal(l)
}

func (l *CartLines) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported cart lines column type %T", value)
	}

	return json.Unmarshal(bytes, l)
}

// Cart holds a user's working set as one whole-blob row. The blob is written
// back read-modify-write with last-write-wins semantics; it is a cache of
// intent, not an authoritative record.
type Cart struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	Items     CartLines `json:"items" gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/atelier-lumen/jewelry-backend/internal/models"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

type OrderService struct {
	db           *gorm.DB
	payment      *PaymentService
	notification *NotificationService
}

type ShippingAddress struct {
	Location   string `json:"location" validate:"required,oneof=showroom delivery"`
	FullName   string `json:"fullName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

type OrderLineRequest struct {
	ItemID   uint    `json:"item_id" validate:"required"`
	Quantity int     `json:"quantity" validate:"min=0"`
	Price    float64 `json:"price" validate:"min=0"`
}

type PlaceOrderRequest struct {
	ShippingAddress ShippingAddress    `json:"shippingAddress" validate:"required"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required,oneof=cod card"`
	Items           []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount     float64            `json:"totalAmount" validate:"required,gt=0"`
}

type OrderItemView struct {
	ItemName    string  `json:"item_name"`
	Quantity    int     `json:"quantity"`
	PriceAtTime float64 `json:"price_at_time"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type OrderView struct {
	ID          uint            `json:"id"`
	TotalAmount float64         `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
	Items       []OrderItemView `json:"items"`
}

func NewOrderService(db *gorm.DB, payment *PaymentService, notification *NotificationService) *OrderService {
	return &OrderService{
		db:           db,
		payment:      payment,
		notification: notification,
	}
}

// PlaceOrder creates the order header and all line items, decrements stock
// for delivery orders and clears the cart, in one transaction. All
// validation happens before the first write; any per-item failure rolls the
// whole attempt back. The per-item inserts are a single batched write whose
// one aggregated error replaces the manual completion counter and shared
// failure flag the legacy flow coordinated by hand.
func (s *OrderService) PlaceOrder(userID uint, req *PlaceOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	delivery := req.ShippingAddress.Location == string(models.LocationDelivery)
	if delivery {
		if req.ShippingAddress.Address == "" || req.ShippingAddress.City == "" || req.ShippingAddress.PostalCode == "" {
			return nil, fmt.Errorf("%w: delivery address is incomplete", ErrValidation)
		}
	}

	order := &models.Order{
		UserID:        userID,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		Location:      models.OrderLocation(req.ShippingAddress.Location),
		FullName:      req.ShippingAddress.FullName,
		Phone:         req.ShippingAddress.Phone,
		Status:        models.OrderStatusPending,
	}
	if delivery {
		order.Address = &req.ShippingAddress.Address
		order.City = &req.ShippingAddress.City
		order.PostalCode = &req.ShippingAddress.PostalCode
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("order creation failed: %w", err)
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, line := range req.Items {
			quantity := line.Quantity
			if quantity < 1 {
				quantity = 1
			}
			items = append(items, models.OrderItem{
				OrderID:     order.ID,
				ItemID:      line.ItemID,
				Quantity:    quantity,
				PriceAtTime: line.Price,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("order items failed: %w", err)
		}

		// Showroom pickups do not touch stock at order time. Delivery
		// orders use a guarded decrement so stock can never go negative,
		// even under concurrent orders against the same item.
		if delivery {
			for _, item := range items {
				res := tx.Model(&models.JewelryItem{}).
					Where("id = ? AND stock >= ?", item.ItemID, item.Quantity).
					UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
				if res.Error != nil {
					return fmt.Errorf("stock update failed: %w", res.Error)
				}
				if res.RowsAffected == 0 {
					return ErrInsufficientStock
				}
			}
		}

		// Cart clear is best-effort: a failure here must not fail an
		// otherwise-successful order.
		if err := tx.Delete(&models.Cart{}, "user_id = ?", userID).Error; err != nil {
			logrus.WithError(err).WithField("user_id", userID).
				Warn("Cart clear failed after order placement")
		}

		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	if order.PaymentMethod == models.PaymentMethodCard && s.payment != nil {
		go s.recordPaymentIntent(order)
	}
	if s.notification != nil {
		go s.sendConfirmation(userID, order)
	}

	return order, nil
}

func (s *OrderService) recordPaymentIntent(order *models.Order) {
	ref, err := s.payment.CreateOrderPaymentIntent(order)
	if err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).
			Warn("Payment intent creation failed")
		return
	}
	if err := s.db.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("payment_ref", ref).Error; err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).
			Warn("Failed to store payment reference")
	}
}

func (s *OrderService) sendConfirmation(userID uint, order *models.Order) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return
	}
	if err := s.notification.SendOrderConfirmation(&user, order); err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).
			Warn("Order confirmation email failed")
	}
}

// ListOrders returns the user's orders most-recent-first, each with its
// line items joined against the catalog for display.
func (s *OrderService) ListOrders(userID uint) ([]OrderView, error) {
	var orders []models.Order
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	if len(orders) == 0 {
		return []OrderView{}, nil
	}

	orderIDs := make([]uint, len(orders))
	for i, o := range orders {
		orderIDs[i] = o.ID
	}

	var rows []struct {
		OrderID     uint
		ItemName    string
		Quantity    int
		PriceAtTime float64
		ImageURL    string
	}
	err := s.db.Table("order_items").
		Select("order_items.order_id, jewelry_items.name AS item_name, order_items.quantity, order_items.price_at_time, jewelry_items.image_url").
		Joins("JOIN jewelry_items ON jewelry_items.id = order_items.item_id").
		Where("order_items.order_id IN ?", orderIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order items: %w", err)
	}

	itemsByOrder := make(map[uint][]OrderItemView, len(orders))
	for _, row := range rows {
		itemsByOrder[row.OrderID] = append(itemsByOrder[row.OrderID], OrderItemView{
			ItemName:    row.ItemName,
			Quantity:    row.Quantity,
			PriceAtTime: row.PriceAtTime,
			ImageURL:    row.ImageURL,
		})
	}

	views := make([]OrderView, len(orders))
	for i, o := range orders {
		items := itemsByOrder[o.ID]
		if items == nil {
			items = []OrderItemView{}
		}
		views[i] = OrderView{
			ID:          o.ID,
			TotalAmount: o.TotalAmount,
			Status:      string(o.Status),
			CreatedAt:   o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			Items:       items,
		}
	}

	return views, nil
}

// UpdateStatus overwrites the status column after ownership and value
// checks. Any recognized status may follow any other; there is no
// transition graph.
func (s *OrderService) UpdateStatus(orderID, userID uint, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}

	var order models.Order
	if err := s.db.Select("id", "user_id").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if order.UserID != userID {
		return ErrForbidden
	}

	if err := s.db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	return nil
}

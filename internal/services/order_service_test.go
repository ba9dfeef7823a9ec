// internal/services/order_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-lumen/jewelry-backend/internal/models"
)

func deliveryRequest(items []OrderLineRequest, total float64) *PlaceOrderRequest {
	return &PlaceOrderRequest{
		ShippingAddress: ShippingAddress{
			Location:   "delivery",
			FullName:   "Nora Vance",
			Phone:      "555-0100",
			Address:    "12 Garnet Row",
			City:       "Portland",
			PostalCode: "97201",
		},
		PaymentMethod: "cod",
		Items:         items,
		TotalAmount:   total,
	}
}

func TestPlaceOrderDeliveryDecrementsStockAndClearsCart(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "nora@example.com")
	ring := createTestItem(t, db, "Garnet Ring", 120.00, 5)
	chain := createTestItem(t, db, "Silver Chain", 80.00, 10)

	cartService := NewCartService(db)
	_, err := cartService.AddToCart(user.ID, ring.ID, 2)
	require.NoError(t, err)

	orderService := NewOrderService(db, nil, nil)
	order, err := orderService.PlaceOrder(user.ID, deliveryRequest([]OrderLineRequest{
		{ItemID: ring.ID, Quantity: 2, Price: 120.00},
		{ItemID: chain.ID, Quantity: 3, Price: 80.00},
	}, 480.00))
	require.NoError(t, err)
	require.NotZero(t, order.ID)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)

	assert.Equal(t, 3, itemStock(t, db, ring.ID))
	assert.Equal(t, 7, itemStock(t, db, chain.ID))

	// Cart row is gone after a successful order
	lines, err := cartService.GetCart(user.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.EqualValues(t, 2, itemCount)
}

func TestPlaceOrderShowroomLeavesStockUntouched(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "pickup@example.com")
	item := createTestItem(t, db, "Pearl Earrings", 95.00, 4)

	orderService := NewOrderService(db, nil, nil)
	order, err := orderService.PlaceOrder(user.ID, &PlaceOrderRequest{
		ShippingAddress: ShippingAddress{
			Location: "showroom",
			FullName: "Iris Hale",
			Phone:    "555-0101",
		},
		PaymentMethod: "cod",
		Items:         []OrderLineRequest{{ItemID: item.ID, Quantity: 2, Price: 95.00}},
		TotalAmount:   190.00,
	})
	require.NoError(t, err)

	assert.Equal(t, models.LocationShowroom, order.Location)
	assert.Nil(t, order.Address)
	assert.Equal(t, 4, itemStock(t, db, item.ID))
}

func TestPlaceOrderRejectsUnknownPaymentMethod(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "payer@example.com")
	item := createTestItem(t, db, "Opal Pendant", 150.00, 3)

	orderService := NewOrderService(db, nil, nil)
	req := deliveryRequest([]OrderLineRequest{{ItemID: item.ID, Quantity: 1, Price: 150.00}}, 150.00)
	req.PaymentMethod = "paypal"

	_, err := orderService.PlaceOrder(user.ID, req)
	require.ErrorIs(t, err, ErrValidation)

	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestPlaceOrderDeliveryRequiresFullAddress(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "partial@example.com")
	item := createTestItem(t, db, "Gold Band", 200.00, 3)

	orderService := NewOrderService(db, nil, nil)
	req := deliveryRequest([]OrderLineRequest{{ItemID: item.ID, Quantity: 1, Price: 200.00}}, 200.00)
	req.ShippingAddress.City = ""

	_, err := orderService.PlaceOrder(user.ID, req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "delivery address is incomplete")

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount)
	assert.Equal(t, 3, itemStock(t, db, item.ID))
}

func TestPlaceOrderInsufficientStockRollsBackEverything(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "greedy@example.com")
	plenty := createTestItem(t, db, "Bead Bracelet", 40.00, 20)
	scarce := createTestItem(t, db, "Rare Sapphire", 900.00, 1)

	cartService := NewCartService(db)
	_, err := cartService.AddToCart(user.ID, plenty.ID, 1)
	require.NoError(t, err)

	orderService := NewOrderService(db, nil, nil)
	_, err = orderService.PlaceOrder(user.ID, deliveryRequest([]OrderLineRequest{
		{ItemID: plenty.ID, Quantity: 5, Price: 40.00},
		{ItemID: scarce.ID, Quantity: 2, Price: 900.00},
	}, 2000.00))
	require.ErrorIs(t, err, ErrInsufficientStock)

	// Nothing persists: no header, no items, no stock movement, cart intact
	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
	assert.Equal(t, 20, itemStock(t, db, plenty.ID))
	assert.Equal(t, 1, itemStock(t, db, scarce.ID))

	lines, err := cartService.GetCart(user.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestPlaceOrderDefaultsZeroQuantityToOne(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "single@example.com")
	item := createTestItem(t, db, "Charm Anklet", 35.00, 5)

	orderService := NewOrderService(db, nil, nil)
	order, err := orderService.PlaceOrder(user.ID, deliveryRequest([]OrderLineRequest{
		{ItemID: item.ID, Quantity: 0, Price: 35.00},
	}, 35.00))
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, 4, itemStock(t, db, item.ID))
}

func TestListOrdersScopedToUserNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	item := createTestItem(t, db, "Moonstone Ring", 60.00, 50)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seed := []struct {
		userID uint
		total  float64
		at     time.Time
	}{
		{alice.ID, 60.00, base},
		{alice.ID, 120.00, base.Add(time.Hour)},
		{bob.ID, 180.00, base.Add(2 * time.Hour)},
	}
	for _, s := range seed {
		order := &models.Order{
			UserID:        s.userID,
			TotalAmount:   s.total,
			PaymentMethod: models.PaymentMethodCOD,
			Location:      models.LocationShowroom,
			FullName:      "Seed",
			Phone:         "555-0000",
			Status:        models.OrderStatusPending,
			CreatedAt:     s.at,
		}
		require.NoError(t, db.Create(order).Error)
		require.NoError(t, db.Create(&models.OrderItem{
			OrderID:     order.ID,
			ItemID:      item.ID,
			Quantity:    1,
			PriceAtTime: 60.00,
		}).Error)
	}

	orderService := NewOrderService(db, nil, nil)
	views, err := orderService.ListOrders(alice.ID)
	require.NoError(t, err)

	require.Len(t, views, 2)
	assert.Equal(t, 120.00, views[0].TotalAmount)
	assert.Equal(t, 60.00, views[1].TotalAmount)

	require.Len(t, views[0].Items, 1)
	assert.Equal(t, "Moonstone Ring", views[0].Items[0].ItemName)
	assert.Equal(t, 60.00, views[0].Items[0].PriceAtTime)
}

func TestListOrdersEmptyForNewUser(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "fresh@example.com")

	orderService := NewOrderService(db, nil, nil)
	views, err := orderService.ListOrders(user.ID)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	order := &models.Order{
		UserID:        owner.ID,
		TotalAmount:   50.00,
		PaymentMethod: models.PaymentMethodCOD,
		Location:      models.LocationShowroom,
		FullName:      "Owner",
		Phone:         "555-0001",
		Status:        models.OrderStatusPending,
	}
	require.NoError(t, db.Create(order).Error)

	orderService := NewOrderService(db, nil, nil)

	t.Run("rejects unrecognized status", func(t *testing.T) {
		err := orderService.UpdateStatus(order.ID, owner.ID, "teleported")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("rejects another user's order", func(t *testing.T) {
		err := orderService.UpdateStatus(order.ID, other.ID, models.OrderStatusCancelled)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("rejects missing order", func(t *testing.T) {
		err := orderService.UpdateStatus(99999, owner.ID, models.OrderStatusCancelled)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("owner can set any recognized status", func(t *testing.T) {
		require.NoError(t, orderService.UpdateStatus(order.ID, owner.ID, models.OrderStatusDelivered))

		var reloaded models.Order
		require.NoError(t, db.First(&reloaded, order.ID).Error)
		assert.Equal(t, models.OrderStatusDelivered, reloaded.Status)

		// No transition graph: delivered back to pending is allowed
		require.NoError(t, orderService.UpdateStatus(order.ID, owner.ID, models.OrderStatusPending))
	})
}

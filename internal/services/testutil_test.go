// internal/services/testutil_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/atelier-lumen/jewelry-backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.JewelryItem{},
		&models.Cart{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.WishlistEntry{},
		&models.ContactMessage{},
		&models.NewsletterSubscriber{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:  "Test Client",
		Email: email,
		Role:  models.RoleClient,
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestItem(t *testing.T, db *gorm.DB, name string, price float64, stock int) *models.JewelryItem {
	t.Helper()

	item := &models.JewelryItem{
		Name:        name,
		Description: fmt.Sprintf("%s description", name),
		Price:       price,
		Stock:       stock,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func itemStock(t *testing.T, db *gorm.DB, itemID uint) int {
	t.Helper()

	var item models.JewelryItem
	require.NoError(t, db.First(&item, itemID).Error)
	return item.Stock
}

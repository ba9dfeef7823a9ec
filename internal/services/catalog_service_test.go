// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-lumen/jewelry-backend/internal/models"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

func TestListItemsFilters(t *testing.T) {
	db := setupTestDB(t)

	rings := &models.Category{Name: "Rings"}
	necklaces := &models.Category{Name: "Necklaces"}
	require.NoError(t, db.Create(rings).Error)
	require.NoError(t, db.Create(necklaces).Error)

	seed := []models.JewelryItem{
		{Name: "Gold Signet", Price: 300.00, Stock: 3, CategoryID: &rings.ID},
		{Name: "Silver Band", Price: 80.00, Stock: 0, CategoryID: &rings.ID},
		{Name: "Pearl Strand", Price: 150.00, Stock: 5, CategoryID: &necklaces.ID},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	catalogService := NewCatalogService(db, nil)

	t.Run("category filter", func(t *testing.T) {
		items, total, err := catalogService.ListItems(ItemSearchParams{
			PaginationParams: utils.PaginationParams{Page: 1, Limit: 20},
			CategoryID:       &rings.ID,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, items, 2)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		items, total, err := catalogService.ListItems(ItemSearchParams{
			PaginationParams: utils.PaginationParams{Page: 1, Limit: 20, Search: "pearl"},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Pearl Strand", items[0].Name)
	})

	t.Run("price range", func(t *testing.T) {
		min, max := 100.00, 200.00
		_, total, err := catalogService.ListItems(ItemSearchParams{
			PaginationParams: utils.PaginationParams{Page: 1, Limit: 20},
			PriceMin:         &min,
			PriceMax:         &max,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})

	t.Run("in stock only", func(t *testing.T) {
		inStock := true
		_, total, err := catalogService.ListItems(ItemSearchParams{
			PaginationParams: utils.PaginationParams{Page: 1, Limit: 20},
			InStock:          &inStock,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})

	t.Run("pagination caps the page", func(t *testing.T) {
		items, total, err := catalogService.ListItems(ItemSearchParams{
			PaginationParams: utils.PaginationParams{Page: 1, Limit: 2, Sort: "price", Order: "desc"},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, items, 2)
		assert.Equal(t, "Gold Signet", items[0].Name)
	})
}

func TestGetItemPreloadsCategory(t *testing.T) {
	db := setupTestDB(t)

	category := &models.Category{Name: "Bracelets"}
	require.NoError(t, db.Create(category).Error)
	item := &models.JewelryItem{Name: "Woven Cuff", Price: 65.00, Stock: 4, CategoryID: &category.ID}
	require.NoError(t, db.Create(item).Error)

	catalogService := NewCatalogService(db, nil)

	got, err := catalogService.GetItem(item.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Bracelets", got.Category.Name)

	_, err = catalogService.GetItem(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAndUpdateItem(t *testing.T) {
	db := setupTestDB(t)
	catalogService := NewCatalogService(db, nil)

	item, err := catalogService.CreateItem(&CreateItemRequest{
		Name:  "Etched Locket",
		Price: 140.00,
		Stock: 6,
	})
	require.NoError(t, err)
	require.NotZero(t, item.ID)

	t.Run("rejects invalid price", func(t *testing.T) {
		_, err := catalogService.CreateItem(&CreateItemRequest{Name: "Freebie", Price: 0})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		newStock := 2
		updated, err := catalogService.UpdateItem(item.ID, &UpdateItemRequest{Stock: &newStock})
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Stock)
		assert.Equal(t, "Etched Locket", updated.Name)
		assert.Equal(t, 140.00, updated.Price)
	})

	t.Run("update of missing item", func(t *testing.T) {
		_, err := catalogService.UpdateItem(9999, &UpdateItemRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteItem(t *testing.T) {
	db := setupTestDB(t)
	catalogService := NewCatalogService(db, nil)

	item, err := catalogService.CreateItem(&CreateItemRequest{Name: "Doomed Pin", Price: 15.00})
	require.NoError(t, err)

	require.NoError(t, catalogService.DeleteItem(item.ID))

	_, err = catalogService.GetItem(item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, catalogService.DeleteItem(item.ID), ErrNotFound)
}

func TestListCategoriesSortedByName(t *testing.T) {
	db := setupTestDB(t)

	for _, name := range []string{"Rings", "Anklets", "Necklaces"} {
		require.NoError(t, db.Create(&models.Category{Name: name}).Error)
	}

	catalogService := NewCatalogService(db, nil)
	categories, err := catalogService.ListCategories()
	require.NoError(t, err)

	require.Len(t, categories, 3)
	assert.Equal(t, "Anklets", categories[0].Name)
	assert.Equal(t, "Rings", categories[2].Name)
}

// internal/services/wishlist_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlist(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "wisher@example.com")
	ring := createTestItem(t, db, "Halo Ring", 220.00, 3)
	chain := createTestItem(t, db, "Rope Chain", 90.00, 8)

	wishlistService := NewWishlistService(db)

	require.NoError(t, wishlistService.Add(user.ID, ring.ID))
	require.NoError(t, wishlistService.Add(user.ID, chain.ID))

	t.Run("duplicate add is rejected", func(t *testing.T) {
		err := wishlistService.Add(user.ID, ring.ID)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("list returns the catalog items", func(t *testing.T) {
		items, err := wishlistService.List(user.ID)
		require.NoError(t, err)
		require.Len(t, items, 2)

		names := []string{items[0].Name, items[1].Name}
		assert.Contains(t, names, "Halo Ring")
		assert.Contains(t, names, "Rope Chain")
	})

	t.Run("contains reflects membership", func(t *testing.T) {
		in, err := wishlistService.Contains(user.ID, ring.ID)
		require.NoError(t, err)
		assert.True(t, in)

		in, err = wishlistService.Contains(user.ID, 9999)
		require.NoError(t, err)
		assert.False(t, in)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, wishlistService.Remove(user.ID, ring.ID))
		require.NoError(t, wishlistService.Remove(user.ID, ring.ID))

		in, err := wishlistService.Contains(user.ID, ring.ID)
		require.NoError(t, err)
		assert.False(t, in)
	})

	t.Run("wishlists are per user", func(t *testing.T) {
		other := createTestUser(t, db, "other-wisher@example.com")
		items, err := wishlistService.List(other.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

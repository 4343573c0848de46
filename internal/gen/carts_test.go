package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCartsInvariants(t *testing.T) {
	src := NewSource(42, testNow)
	users := GenerateUsers(src, 20)
	products := GenerateProducts(src, 50, StaticCategories(6))

	carts, items := GenerateCarts(src, users, products, 200, 1, 6)
	require.Len(t, carts, 200)

	converted := 0
	for _, c := range carts {
		assert.Equal(t, !c.ConvertedToOrder, c.IsActive,
			"cart %d: is_active must be the negation of converted_to_order", c.CartID)
		if c.ConvertedToOrder {
			converted++
			require.NotNil(t, c.ConvertedAt, "converted cart %d lacks converted_at", c.CartID)
			assert.True(t, c.ConvertedAt.After(c.CreatedAt))
		} else {
			assert.Nil(t, c.ConvertedAt, "active cart %d has converted_at", c.CartID)
		}
		assert.NotEmpty(t, c.SessionID)
		assert.Contains(t, deviceTypes, c.DeviceType)
		assert.False(t, c.UpdatedAt.Before(c.CreatedAt))
	}

	// ~55% conversion; wide tolerance to stay seed-stable.
	assert.Greater(t, converted, 80)
	assert.Less(t, converted, 140)

	itemsPerCart := make(map[int64]int)
	for _, ci := range items {
		itemsPerCart[ci.CartID]++
		assert.GreaterOrEqual(t, ci.Quantity, 1)
		assert.LessOrEqual(t, ci.Quantity, 3)
	}
	for _, c := range carts {
		n := itemsPerCart[c.CartID]
		assert.GreaterOrEqual(t, n, 1, "cart %d has no items", c.CartID)
		assert.LessOrEqual(t, n, 6)
	}
}

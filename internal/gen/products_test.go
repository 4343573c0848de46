package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducts(t *testing.T) {
	src := NewSource(42, testNow)
	cats := StaticCategories(6)
	products := GenerateProducts(src, 200, cats)
	require.Len(t, products, 200)

	validCategory := make(map[int64]bool)
	for _, c := range cats {
		validCategory[c.CategoryID] = true
	}

	for _, p := range products {
		assert.True(t, validCategory[p.CategoryID], "product %d references unknown category %d", p.ProductID, p.CategoryID)
		assert.GreaterOrEqual(t, p.BasePrice, 5.99)
		assert.Less(t, p.BasePrice, 500.0)
		assert.GreaterOrEqual(t, p.StockQuantity, 0)
		assert.LessOrEqual(t, p.StockQuantity, 200)
		assert.False(t, p.UpdatedAt.Before(p.CreatedAt))
		assert.NotEmpty(t, p.ProductName)
	}
}

func TestProductStockIsBimodal(t *testing.T) {
	src := NewSource(42, testNow)
	products := GenerateProducts(src, 1000, StaticCategories(6))

	low := 0
	for _, p := range products {
		if p.StockQuantity < 5 {
			low++
		}
	}

	// The low-stock band must be populated but stay a clear minority; the
	// downstream low-stock query depends on both.
	assert.Greater(t, low, 0, "low-stock band must never be empty at realistic scale")
	assert.Less(t, low, 250)
}

package gen

import (
	"fmt"
	"strings"
	"testing"

	"datagen-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestCatalog(t *testing.T) ([]models.Product, []models.CatalogDocument, []models.Category) {
	t.Helper()
	src := NewSource(42, testNow)
	cats := StaticCategories(6)
	products := GenerateProducts(src, 300, cats)
	docs := BuildCatalog(src, products, cats)
	require.Len(t, docs, len(products))
	return products, docs, cats
}

func TestCatalogMatchesProducts(t *testing.T) {
	products, docs, cats := buildTestCatalog(t)
	names := CategoryNameByID(cats)

	for i, doc := range docs {
		assert.Equal(t, products[i].ProductID, doc.ProductID)
		assert.Equal(t, names[products[i].CategoryID], doc.Category)
	}
}

func TestCatalogAttributeKeysPerCategory(t *testing.T) {
	_, docs, _ := buildTestCatalog(t)

	for _, doc := range docs {
		want := AttributeKeys(doc.Category)
		require.Len(t, doc.Attributes, len(want), "category %s", doc.Category)
		for _, key := range want {
			assert.Contains(t, doc.Attributes, key, "category %s missing %s", doc.Category, key)
		}
	}
}

func TestCatalogVariantsPerCategory(t *testing.T) {
	_, docs, _ := buildTestCatalog(t)

	prefixes := map[string]string{
		"electronics": "EL", "fashion": "FA", "home_decor": "HD",
		"books": "GN", "sports": "GN", "toys": "GN",
	}

	for _, doc := range docs {
		require.NotEmpty(t, doc.Variants, "product %d", doc.ProductID)
		prefix := prefixes[doc.Category]

		for _, v := range doc.Variants {
			assert.True(t, strings.HasPrefix(v.SKU, prefix+"-"),
				"category %s variant SKU %s lacks prefix %s", doc.Category, v.SKU, prefix)
			assert.Contains(t, v.SKU, fmt.Sprintf("-%d-", doc.ProductID))
		}

		switch doc.Category {
		case "fashion":
			// Combinatorial (size, color) pairs: 2-5 sizes times 1-3 colors.
			assert.GreaterOrEqual(t, len(doc.Variants), 2)
			assert.LessOrEqual(t, len(doc.Variants), 15)
			pairs := make(map[string]bool)
			for _, v := range doc.Variants {
				assert.NotEmpty(t, v.Size)
				assert.NotEmpty(t, v.Color)
				assert.Equal(t, fmt.Sprintf("FA-%d-%s-%s", doc.ProductID, v.Size, v.Color[:3]), v.SKU)
				key := v.Size + "/" + v.Color
				assert.False(t, pairs[key], "duplicate variant pair %s", key)
				pairs[key] = true
			}
		case "electronics", "home_decor":
			assert.LessOrEqual(t, len(doc.Variants), 3)
			for _, v := range doc.Variants {
				assert.Empty(t, v.Size)
				assert.NotEmpty(t, v.Color)
			}
		default:
			assert.LessOrEqual(t, len(doc.Variants), 2)
			for _, v := range doc.Variants {
				assert.Empty(t, v.Size)
				assert.Empty(t, v.Color)
			}
		}
	}
}

func TestCatalogTags(t *testing.T) {
	_, docs, _ := buildTestCatalog(t)
	for _, doc := range docs {
		assert.GreaterOrEqual(t, len(doc.Tags), 1)
		assert.LessOrEqual(t, len(doc.Tags), 4)
		for _, tag := range doc.Tags {
			assert.NotEmpty(t, tag)
		}
	}
}

func TestSchemaForFallsBackToGeneric(t *testing.T) {
	assert.Equal(t, "GN", schemaFor("books").skuPrefix)
	assert.Equal(t, "GN", schemaFor("unknown-category").skuPrefix)
	assert.Equal(t, "EL", schemaFor("electronics").skuPrefix)
	assert.Equal(t, []string{"weight", "material"}, AttributeKeys("sports"))
}

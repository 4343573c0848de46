package gen

import "datagen-service/internal/models"

// Stock is bimodal on purpose: a guaranteed-non-empty low-stock band feeds
// the downstream "low stock" benchmark query.
const (
	lowStockMax    = 4
	normalStockMax = 200
	lowStockWeight = 10 // percent
)

// GenerateProducts produces count products with a uniformly random category
// and a two-branch weighted stock quantity (10% low band 0-4, 90% normal
// band 5-200).
func GenerateProducts(src *Source, count int, cats []models.Category) []models.Product {
	products := make([]models.Product, 0, count)
	for id := int64(1); id <= int64(count); id++ {
		cat := Choice(src, cats)

		// Both band values are drawn before the weighted pick so the stream
		// advances by a fixed amount per product.
		low := src.IntBetween(0, lowStockMax)
		normal := src.IntBetween(lowStockMax+1, normalStockMax)
		stock := WeightedChoice(src, []int{low, normal}, []int{lowStockWeight, 100 - lowStockWeight})

		created := src.TimeWithinDays(365, 7)
		products = append(products, models.Product{
			ProductID:     id,
			CategoryID:    cat.CategoryID,
			ProductName:   src.ProductName(),
			Description:   src.Sentence(12),
			BasePrice:     Round2(src.FloatBetween(5.99, 499.99)),
			StockQuantity: stock,
			CreatedAt:     created,
			UpdatedAt:     src.TimeBetween(src.DaysAgo(7), src.Now()),
		})
	}
	return products
}

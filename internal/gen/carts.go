package gen

import (
	"time"

	"datagen-service/internal/models"
)

var deviceTypes = []string{"tablet", "laptop", "mobile", "desktop"}

// Roughly this share of carts end up converted to an order.
const cartConversionRate = 0.55

// GenerateCarts produces carts and their items. is_active and converted_at
// are derived from the conversion flip, never drawn independently, so the
// cart invariant holds unconditionally.
func GenerateCarts(src *Source, users []models.User, products []models.Product, count, itemsMin, itemsMax int) ([]models.Cart, []models.CartItem) {
	carts := make([]models.Cart, 0, count)
	var items []models.CartItem

	itemID := int64(1)
	for cartID := int64(1); cartID <= int64(count); cartID++ {
		user := Choice(src, users)
		created := src.TimeBetween(src.DaysAgo(60), src.Now())
		converted := src.Bool(cartConversionRate)

		var convertedAt *time.Time
		if converted {
			at := created.Add(time.Duration(src.IntBetween(5, 180)) * time.Minute)
			convertedAt = &at
		}

		carts = append(carts, models.Cart{
			CartID:           cartID,
			UserID:           user.UserID,
			SessionID:        src.UUID(),
			DeviceType:       Choice(src, deviceTypes),
			CreatedAt:        created,
			UpdatedAt:        created.Add(time.Duration(src.IntBetween(1, 120)) * time.Minute),
			IsActive:         !converted,
			ConvertedToOrder: converted,
			ConvertedAt:      convertedAt,
		})

		for n := src.IntBetween(itemsMin, itemsMax); n > 0; n-- {
			product := Choice(src, products)
			items = append(items, models.CartItem{
				CartItemID: itemID,
				CartID:     cartID,
				ProductID:  product.ProductID,
				Quantity:   src.IntBetween(1, 3),
				AddedAt:    created.Add(time.Duration(src.IntBetween(0, 30)) * time.Minute),
			})
			itemID++
		}
	}
	return carts, items
}

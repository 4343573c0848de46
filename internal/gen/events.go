package gen

import (
	"fmt"

	"datagen-service/internal/models"
)

var (
	eventTypes = []string{
		models.EventTypePageView, models.EventTypeSearch,
		models.EventTypeClick, models.EventTypeAddToCart,
		models.EventTypeRemoveFromCart,
	}
	eventTypeWeights = []int{50, 15, 20, 10, 5}

	clickElements = []string{"product_card", "image", "add_to_cart_btn", "detail_link"}

	searchTerms = []string{
		"wireless headphones", "summer dress", "ceramic vase", "running shoes",
		"bluetooth speaker", "yoga mat", "coffee table", "laptop bag",
		"winter jacket", "led lights", "phone case", "water bottle",
		"backpack", "sunglasses", "desk lamp", "kitchen set",
		"gaming mouse", "smartwatch", "sneakers", "throw pillow",
	}
)

// GenerateEvents produces the behavioral stream: count interaction events
// over the last six months, each referencing an existing user and product.
// The payload fields are a pure function of the event type; the stream is
// intentionally decoupled from actual cart/order activity.
func GenerateEvents(src *Source, users []models.User, products []models.Product, cats []models.Category, count int) []models.UserEvent {
	names := CategoryNameByID(cats)
	events := make([]models.UserEvent, 0, count)

	for i := 0; i < count; i++ {
		user := Choice(src, users)
		eventType := WeightedChoice(src, eventTypes, eventTypeWeights)
		ts := src.TimeWithinDays(182, 0)
		product := Choice(src, products)
		category := names[product.CategoryID]

		data := models.EventData{
			ProductID: product.ProductID,
			Category:  category,
		}
		switch eventType {
		case models.EventTypePageView:
			data.TimeSpentSeconds = src.IntBetween(3, 300)
			data.PageURL = fmt.Sprintf("/products/%s/%d", category, product.ProductID)
		case models.EventTypeSearch:
			data.SearchTerm = Choice(src, searchTerms)
			results := src.IntBetween(0, 100)
			data.ResultsCount = &results
		case models.EventTypeClick:
			data.Element = Choice(src, clickElements)
		}

		events = append(events, models.UserEvent{
			UserID:     user.UserID,
			EventType:  eventType,
			Timestamp:  ts,
			SessionID:  src.UUID(),
			DeviceType: Choice(src, deviceTypes),
			Data:       data,
		})
	}
	return events
}

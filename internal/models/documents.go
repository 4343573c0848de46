package models

import "time"

// Variant is a purchasable variation of a product inside a catalog document.
// Size is only populated for fashion products; Color is absent for generic ones.
type Variant struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
	SKU   string `json:"sku"`
}

// CatalogDocument is the document-store projection of a Product. It must
// never diverge from the relational Product on id, category, or name.
type CatalogDocument struct {
	ProductID  int64                  `json:"product_id"`
	Category   string                 `json:"category"`
	Attributes map[string]interface{} `json:"attributes"`
	Variants   []Variant              `json:"variants"`
	Tags       []string               `json:"tags"`
}

// Event types for the behavioral stream.
const (
	EventTypePageView       = "page_view"
	EventTypeSearch         = "search"
	EventTypeClick          = "click"
	EventTypeAddToCart      = "add_to_cart"
	EventTypeRemoveFromCart = "remove_from_cart"
)

// EventData carries the per-type payload of a user event. The populated
// fields are a pure function of the event type.
type EventData struct {
	ProductID        int64  `json:"product_id"`
	Category         string `json:"category"`
	TimeSpentSeconds int    `json:"time_spent_seconds,omitempty"`
	PageURL          string `json:"page_url,omitempty"`
	SearchTerm       string `json:"search_term,omitempty"`
	ResultsCount     *int   `json:"results_count,omitempty"`
	Element          string `json:"element,omitempty"`
}

// UserEvent is one record in the behavioral event stream. Events reference
// existing users and products but are otherwise decoupled from commerce
// entities.
type UserEvent struct {
	UserID     int64     `json:"user_id"`
	EventType  string    `json:"event_type"`
	Timestamp  time.Time `json:"timestamp"`
	SessionID  string    `json:"session_id"`
	DeviceType string    `json:"device_type"`
	Data       EventData `json:"data"`
}

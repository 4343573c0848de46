package models

import "time"

// User represents a registered customer account.
type User struct {
	UserID       int64     `db:"user_id" json:"user_id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"password_hash"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Phone        string    `db:"phone" json:"phone"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Address represents a shipping or billing address owned by a user.
type Address struct {
	AddressID   int64  `db:"address_id" json:"address_id"`
	UserID      int64  `db:"user_id" json:"user_id"`
	AddressType string `db:"address_type" json:"address_type"`
	Street      string `db:"street" json:"street"`
	City        string `db:"city" json:"city"`
	State       string `db:"state" json:"state"`
	ZipCode     string `db:"zip_code" json:"zip_code"`
	Country     string `db:"country" json:"country"`
	IsDefault   bool   `db:"is_default" json:"is_default"`
}

// Category represents a product category. The set is fixed and flat.
type Category struct {
	CategoryID       int64  `db:"category_id" json:"category_id"`
	CategoryName     string `db:"category_name" json:"category_name"`
	ParentCategoryID *int64 `db:"parent_category_id" json:"parent_category_id"`
	Description      string `db:"description" json:"description"`
}

// Product represents a catalog product in the relational projection.
type Product struct {
	ProductID     int64     `db:"product_id" json:"product_id"`
	CategoryID    int64     `db:"category_id" json:"category_id"`
	ProductName   string    `db:"product_name" json:"product_name"`
	Description   string    `db:"description" json:"description"`
	BasePrice     float64   `db:"base_price" json:"base_price"`
	StockQuantity int       `db:"stock_quantity" json:"stock_quantity"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Cart represents a shopping session. is_active and converted_at are derived
// from converted_to_order, never randomized independently.
type Cart struct {
	CartID           int64      `db:"cart_id" json:"cart_id"`
	UserID           int64      `db:"user_id" json:"user_id"`
	SessionID        string     `db:"session_id" json:"session_id"`
	DeviceType       string     `db:"device_type" json:"device_type"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
	IsActive         bool       `db:"is_active" json:"is_active"`
	ConvertedToOrder bool       `db:"converted_to_order" json:"converted_to_order"`
	ConvertedAt      *time.Time `db:"converted_at" json:"converted_at"`
}

// CartItem represents a product placed in a cart.
type CartItem struct {
	CartItemID int64     `db:"cart_item_id" json:"cart_item_id"`
	CartID     int64     `db:"cart_id" json:"cart_id"`
	ProductID  int64     `db:"product_id" json:"product_id"`
	Quantity   int       `db:"quantity" json:"quantity"`
	AddedAt    time.Time `db:"added_at" json:"added_at"`
}

// Order represents a placed order with derived financial totals.
type Order struct {
	OrderID              int64     `db:"order_id" json:"order_id"`
	UserID               int64     `db:"user_id" json:"user_id"`
	OrderDate            time.Time `db:"order_date" json:"order_date"`
	Status               string    `db:"status" json:"status"`
	TotalAmount          float64   `db:"total_amount" json:"total_amount"`
	TaxAmount            float64   `db:"tax_amount" json:"tax_amount"`
	ShippingFee          float64   `db:"shipping_fee" json:"shipping_fee"`
	ShippingOption       string    `db:"shipping_option" json:"shipping_option"`
	ShippingAddressID    int64     `db:"shipping_address_id" json:"shipping_address_id"`
	ExpectedShippingDate time.Time `db:"expected_shipping_date" json:"expected_shipping_date"`
	ExpectedDeliveryDate time.Time `db:"expected_delivery_date" json:"expected_delivery_date"`
}

// OrderItem represents a single product line within an order. Subtotal is
// unit_price * quantity rounded to 2 decimals.
type OrderItem struct {
	OrderItemID int64   `db:"order_item_id" json:"order_item_id"`
	OrderID     int64   `db:"order_id" json:"order_id"`
	ProductID   int64   `db:"product_id" json:"product_id"`
	ProductName string  `db:"product_name" json:"product_name"`
	UnitPrice   float64 `db:"unit_price" json:"unit_price"`
	Quantity    int     `db:"quantity" json:"quantity"`
	Subtotal    float64 `db:"subtotal" json:"subtotal"`
}

// Payment represents the 1:1 payment record for an order. Amount always
// mirrors the parent order's total_amount.
type Payment struct {
	PaymentID        int64     `db:"payment_id" json:"payment_id"`
	OrderID          int64     `db:"order_id" json:"order_id"`
	PaymentMethod    string    `db:"payment_method" json:"payment_method"`
	PaymentStatus    string    `db:"payment_status" json:"payment_status"`
	Amount           float64   `db:"amount" json:"amount"`
	TransactionDate  time.Time `db:"transaction_date" json:"transaction_date"`
	CardLastFour     string    `db:"card_last_four" json:"card_last_four"`
	BillingAddressID int64     `db:"billing_address_id" json:"billing_address_id"`
}

// Return represents a return initiated against a delivered order.
type Return struct {
	ReturnID   int64     `db:"return_id" json:"return_id"`
	OrderID    int64     `db:"order_id" json:"order_id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	ReturnDate time.Time `db:"return_date" json:"return_date"`
	Status     string    `db:"status" json:"status"`
	Reason     string    `db:"reason" json:"reason"`
}

// ReturnItem represents a returned order item. The refund and restocking fee
// always sum to the source order item's subtotal.
type ReturnItem struct {
	ReturnItemID  int64   `db:"return_item_id" json:"return_item_id"`
	ReturnID      int64   `db:"return_id" json:"return_id"`
	OrderItemID   int64   `db:"order_item_id" json:"order_item_id"`
	ProductID     int64   `db:"product_id" json:"product_id"`
	Quantity      int     `db:"quantity" json:"quantity"`
	RefundAmount  float64 `db:"refund_amount" json:"refund_amount"`
	RestockingFee float64 `db:"restocking_fee" json:"restocking_fee"`
	RefundStatus  string  `db:"refund_status" json:"refund_status"`
}

// Address types
const (
	AddressTypeShipping = "shipping"
	AddressTypeBilling  = "billing"
)

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment statuses
const (
	PaymentStatusApproved = "approved"
	PaymentStatusDeclined = "declined"
)

// Refund statuses
const (
	RefundStatusPending   = "pending"
	RefundStatusProcessed = "processed"
	RefundStatusCompleted = "completed"
)

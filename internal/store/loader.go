package store

import (
	"context"
	"fmt"
	"time"

	"datagen-service/internal/gen"
	"datagen-service/internal/util"

	"go.uber.org/zap"
)

// Rows per multi-row INSERT. Postgres caps bind parameters at 65535; the
// widest table here has 11 columns, so 1000 rows stays well under it.
const insertChunkSize = 1000

// LoadDataset bulk-inserts the relational collections in foreign-key order.
// The target schema is expected to be empty; the generator never updates or
// reconciles previously loaded rows.
func (s *Store) LoadDataset(ctx context.Context, ds *gen.Dataset) error {
	start := time.Now()

	if err := insertChunked(ctx, s, "users",
		`INSERT INTO users (user_id, username, email, password_hash, first_name, last_name, phone, created_at, updated_at)
		 VALUES (:user_id, :username, :email, :password_hash, :first_name, :last_name, :phone, :created_at, :updated_at)`,
		ds.Users); err != nil {
		return err
	}
	if err := insertChunked(ctx, s, "addresses",
		`INSERT INTO addresses (address_id, user_id, address_type, street, city, state, zip_code, country, is_default)
		 VALUES (:address_id, :user_id, :address_type, :street, :city, :state, :zip_code, :country, :is_default)`,
		ds.Addresses); err != nil {
		return err
	}
	if err := insertChunked(ctx, s, "categories",
		`INSERT INTO categories (category_id, category_name, parent_category_id, description)
		 VALUES (:category_id, :category_name, :parent_category_id, :description)`,
		ds.Categories); err != nil {
		return err
	}
	if err := insertChunked(ctx, s, "products",
		`INSERT INTO products (product_id, category_id, product_name, description, base_price, stock_quantity, created_at, updated_at)
		 VALUES (:product_id, :category_id, :product_name, :description, :base_price, :stock_quantity, :created_at, :updated_at)`,
		ds.Products); err != nil {
		return err
	}
	if err := insertChunked(ctx, s, "carts",
		`INSERT INTO carts (cart_id, user_id, session_id, device_type, created_at, updated_at, is_active, converted_to_order, converted_at)
		 VALUES (:cart_id, :user_id, :session_id, :device_type, :created_at, :updated_at, :is_active, :converted_to_order, :converted_at)`,
		ds.Carts); err != nil {
		return err
	}
	if err := insertChunked(ctx, s, "cart_items",
		`INSERT INTO cart_items (cart_item_id, cart_id, product_id, quantity, added_at)
		 VALUES (:cart_item_id, :cart_id, :product_id, :quantity, :added_at)`,
		ds.CartItems); err != nil {
		return err
	}
	if err := insertChunked(ctx, s, "orders",
		`INSERT INTO orders (order_id, user_id, order_date, status, total_amount, tax_amount, shipping_fee, shipping_option, shipping_address_id, expected_shipping_date, expected_delivery_date)
		 VALUES (:order_id, :user_id, :order_date, :status, :total_amount, :tax_amount, :shipping_fee, :shipping_option, :shipping_address_id, :expected_shipping_date, :expected_delivery_date)`,
		ds.Orders); err != nil {
		return err
	}
	if err := insertChunked(ctx, s, "order_items",
		`INSERT INTO order_items (order_item_id, order_id, product_id, product_name, unit_price, quantity, subtotal)
		 VALUES (:order_item_id, :order_id, :product_id, :product_name, :unit_price, :quantity, :subtotal)`,
		ds.OrderItems); err != nil {
		return err
	}
	if err := insertChunked(ctx, s, "payments",
		`INSERT INTO payments (payment_id, order_id, payment_method, payment_status, amount, transaction_date, card_last_four, billing_address_id)
		 VALUES (:payment_id, :order_id, :payment_method, :payment_status, :amount, :transaction_date, :card_last_four, :billing_address_id)`,
		ds.Payments); err != nil {
		return err
	}
	if err := insertChunked(ctx, s, "returns",
		`INSERT INTO returns (return_id, order_id, user_id, return_date, status, reason)
		 VALUES (:return_id, :order_id, :user_id, :return_date, :status, :reason)`,
		ds.Returns); err != nil {
		return err
	}
	if err := insertChunked(ctx, s, "return_items",
		`INSERT INTO return_items (return_item_id, return_id, order_item_id, product_id, quantity, refund_amount, restocking_fee, refund_status)
		 VALUES (:return_item_id, :return_id, :order_item_id, :product_id, :quantity, :refund_amount, :restocking_fee, :refund_status)`,
		ds.ReturnItems); err != nil {
		return err
	}

	util.GetLogger().Info("Relational load complete", zap.Duration("took", time.Since(start)))
	return nil
}

func insertChunked[T any](ctx context.Context, s *Store, table, query string, rows []T) error {
	for offset := 0; offset < len(rows); offset += insertChunkSize {
		end := offset + insertChunkSize
		if end > len(rows) {
			end = len(rows)
		}
		if _, err := s.db.NamedExecContext(ctx, query, rows[offset:end]); err != nil {
			return fmt.Errorf("loading %s rows %d-%d: %w", table, offset, end, err)
		}
	}
	util.RowsLoadedTotal.WithLabelValues(table).Add(float64(len(rows)))
	return nil
}

package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"datagen-service/internal/gen"
	"datagen-service/internal/util"

	"go.uber.org/zap"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// WriteCSVFiles writes the relational projection: one delimited-row file per
// entity, header row first, one row per entity instance.
func WriteCSVFiles(dir string, ds *gen.Dataset) error {
	start := time.Now()

	files := []struct {
		name   string
		header []string
		count  int
		row    func(i int) []string
	}{
		{
			"users.csv",
			[]string{"user_id", "username", "email", "password_hash", "first_name", "last_name", "phone", "created_at", "updated_at"},
			len(ds.Users),
			func(i int) []string {
				u := ds.Users[i]
				return []string{id(u.UserID), u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Phone, ts(u.CreatedAt), ts(u.UpdatedAt)}
			},
		},
		{
			"addresses.csv",
			[]string{"address_id", "user_id", "address_type", "street", "city", "state", "zip_code", "country", "is_default"},
			len(ds.Addresses),
			func(i int) []string {
				a := ds.Addresses[i]
				return []string{id(a.AddressID), id(a.UserID), a.AddressType, a.Street, a.City, a.State, a.ZipCode, a.Country, boolean(a.IsDefault)}
			},
		},
		{
			"categories.csv",
			[]string{"category_id", "category_name", "parent_category_id", "description"},
			len(ds.Categories),
			func(i int) []string {
				c := ds.Categories[i]
				parent := ""
				if c.ParentCategoryID != nil {
					parent = id(*c.ParentCategoryID)
				}
				return []string{id(c.CategoryID), c.CategoryName, parent, c.Description}
			},
		},
		{
			"products.csv",
			[]string{"product_id", "category_id", "product_name", "description", "base_price", "stock_quantity", "created_at", "updated_at"},
			len(ds.Products),
			func(i int) []string {
				p := ds.Products[i]
				return []string{id(p.ProductID), id(p.CategoryID), p.ProductName, p.Description, money(p.BasePrice), strconv.Itoa(p.StockQuantity), ts(p.CreatedAt), ts(p.UpdatedAt)}
			},
		},
		{
			"carts.csv",
			[]string{"cart_id", "user_id", "session_id", "device_type", "created_at", "updated_at", "is_active", "converted_to_order", "converted_at"},
			len(ds.Carts),
			func(i int) []string {
				c := ds.Carts[i]
				convertedAt := ""
				if c.ConvertedAt != nil {
					convertedAt = ts(*c.ConvertedAt)
				}
				return []string{id(c.CartID), id(c.UserID), c.SessionID, c.DeviceType, ts(c.CreatedAt), ts(c.UpdatedAt), boolean(c.IsActive), boolean(c.ConvertedToOrder), convertedAt}
			},
		},
		{
			"cart_items.csv",
			[]string{"cart_item_id", "cart_id", "product_id", "quantity", "added_at"},
			len(ds.CartItems),
			func(i int) []string {
				ci := ds.CartItems[i]
				return []string{id(ci.CartItemID), id(ci.CartID), id(ci.ProductID), strconv.Itoa(ci.Quantity), ts(ci.AddedAt)}
			},
		},
		{
			"orders.csv",
			[]string{"order_id", "user_id", "order_date", "status", "total_amount", "tax_amount", "shipping_fee", "shipping_option", "shipping_address_id", "expected_shipping_date", "expected_delivery_date"},
			len(ds.Orders),
			func(i int) []string {
				o := ds.Orders[i]
				return []string{id(o.OrderID), id(o.UserID), ts(o.OrderDate), o.Status, money(o.TotalAmount), money(o.TaxAmount), money(o.ShippingFee), o.ShippingOption, id(o.ShippingAddressID), date(o.ExpectedShippingDate), date(o.ExpectedDeliveryDate)}
			},
		},
		{
			"order_items.csv",
			[]string{"order_item_id", "order_id", "product_id", "product_name", "unit_price", "quantity", "subtotal"},
			len(ds.OrderItems),
			func(i int) []string {
				oi := ds.OrderItems[i]
				return []string{id(oi.OrderItemID), id(oi.OrderID), id(oi.ProductID), oi.ProductName, money(oi.UnitPrice), strconv.Itoa(oi.Quantity), money(oi.Subtotal)}
			},
		},
		{
			"payments.csv",
			[]string{"payment_id", "order_id", "payment_method", "payment_status", "amount", "transaction_date", "card_last_four", "billing_address_id"},
			len(ds.Payments),
			func(i int) []string {
				p := ds.Payments[i]
				return []string{id(p.PaymentID), id(p.OrderID), p.PaymentMethod, p.PaymentStatus, money(p.Amount), ts(p.TransactionDate), p.CardLastFour, id(p.BillingAddressID)}
			},
		},
		{
			"returns.csv",
			[]string{"return_id", "order_id", "user_id", "return_date", "status", "reason"},
			len(ds.Returns),
			func(i int) []string {
				r := ds.Returns[i]
				return []string{id(r.ReturnID), id(r.OrderID), id(r.UserID), ts(r.ReturnDate), r.Status, r.Reason}
			},
		},
		{
			"return_items.csv",
			[]string{"return_item_id", "return_id", "order_item_id", "product_id", "quantity", "refund_amount", "restocking_fee", "refund_status"},
			len(ds.ReturnItems),
			func(i int) []string {
				ri := ds.ReturnItems[i]
				return []string{id(ri.ReturnItemID), id(ri.ReturnID), id(ri.OrderItemID), id(ri.ProductID), strconv.Itoa(ri.Quantity), money(ri.RefundAmount), money(ri.RestockingFee), ri.RefundStatus}
			},
		},
	}

	logger := util.GetLogger()
	for _, f := range files {
		if err := writeCSV(filepath.Join(dir, f.name), f.header, f.count, f.row); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
		util.ExportRowsTotal.WithLabelValues(f.name).Add(float64(f.count))
		logger.Info("Wrote CSV", zap.String("file", f.name), zap.Int("rows", f.count))
	}

	util.ExportDurationSeconds.WithLabelValues("csv").Observe(time.Since(start).Seconds())
	return nil
}

func writeCSV(path string, header []string, count int, row func(i int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if err := w.Write(row(i)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func boolean(v bool) string {
	return strconv.FormatBool(v)
}

func ts(t time.Time) string {
	return t.Format(timestampLayout)
}

func date(t time.Time) string {
	return t.Format(dateLayout)
}

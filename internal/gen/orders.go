package gen

import (
	"fmt"
	"strings"

	"datagen-service/internal/models"
)

const taxRate = 0.08

var (
	orderStatuses      = []string{"pending", "confirmed", "shipped", "delivered", "cancelled"}
	orderStatusWeights = []int{5, 10, 15, 60, 10}

	shippingOptions = []string{"standard", "mid_tier", "expedited", "overnight"}
	shippingFees    = map[string]float64{
		"standard":  5.99,
		"mid_tier":  9.99,
		"expedited": 14.99,
		"overnight": 24.99,
	}

	paymentMethods = []string{"credit_card", "debit_card", "bank_account", "paypal"}
)

// GenerateOrders produces orders, their line items, and the 1:1 payments.
// Financial totals are derived bottom-up: item subtotal -> order subtotal ->
// tax -> total, and the payment amount mirrors the order total rather than
// being recomputed. An order for a user with no shipping address is an
// error, not a silent fallback to someone else's address.
func GenerateOrders(src *Source, users []models.User, products []models.Product, addresses []models.Address, count, itemsMin, itemsMax int) ([]models.Order, []models.OrderItem, []models.Payment, error) {
	shippingAddrByUser := make(map[int64]int64, len(users))
	for _, a := range addresses {
		if a.AddressType == models.AddressTypeShipping {
			shippingAddrByUser[a.UserID] = a.AddressID
		}
	}

	orders := make([]models.Order, 0, count)
	payments := make([]models.Payment, 0, count)
	var orderItems []models.OrderItem

	itemID := int64(1)
	for orderID := int64(1); orderID <= int64(count); orderID++ {
		user := Choice(src, users)
		orderDate := src.TimeBetween(src.DaysAgo(365), src.Now())
		status := WeightedChoice(src, orderStatuses, orderStatusWeights)
		shipOpt := Choice(src, shippingOptions)
		shipFee := shippingFees[shipOpt]

		subtotal := 0.0
		for n := src.IntBetween(itemsMin, itemsMax); n > 0; n-- {
			product := Choice(src, products)
			qty := src.IntBetween(1, 3)
			item := models.OrderItem{
				OrderItemID: itemID,
				OrderID:     orderID,
				ProductID:   product.ProductID,
				ProductName: product.ProductName,
				UnitPrice:   product.BasePrice,
				Quantity:    qty,
				Subtotal:    Round2(product.BasePrice * float64(qty)),
			}
			orderItems = append(orderItems, item)
			subtotal += item.Subtotal
			itemID++
		}

		tax := Round2(subtotal * taxRate)
		total := Round2(subtotal + tax + shipFee)

		addrID, ok := shippingAddrByUser[user.UserID]
		if !ok {
			return nil, nil, nil, fmt.Errorf("order %d: user %d has no shipping address", orderID, user.UserID)
		}

		orders = append(orders, models.Order{
			OrderID:              orderID,
			UserID:               user.UserID,
			OrderDate:            orderDate,
			Status:               status,
			TotalAmount:          total,
			TaxAmount:            tax,
			ShippingFee:          shipFee,
			ShippingOption:       shipOpt,
			ShippingAddressID:    addrID,
			ExpectedShippingDate: orderDate.AddDate(0, 0, src.IntBetween(1, 3)),
			ExpectedDeliveryDate: orderDate.AddDate(0, 0, src.IntBetween(3, 10)),
		})

		method := Choice(src, paymentMethods)
		payStatus := models.PaymentStatusApproved
		if status == models.OrderStatusCancelled {
			payStatus = models.PaymentStatusDeclined
		}
		lastFour := ""
		if strings.Contains(method, "card") {
			lastFour = fmt.Sprintf("%04d", src.IntBetween(1000, 9999))
		}
		payments = append(payments, models.Payment{
			PaymentID:        orderID,
			OrderID:          orderID,
			PaymentMethod:    method,
			PaymentStatus:    payStatus,
			Amount:           total,
			TransactionDate:  orderDate,
			CardLastFour:     lastFour,
			BillingAddressID: addrID,
		})
	}
	return orders, orderItems, payments, nil
}

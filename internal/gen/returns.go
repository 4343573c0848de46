package gen

import (
	"fmt"

	"datagen-service/internal/models"
)

// Share of delivered orders that get a return, floored to an integer count.
const returnRate = 0.08

var (
	returnStatuses = []string{
		"initiated", "label_printed", "shipped_back", "received",
		"refunded", "exchanged",
	}
	refundStatuses = []string{
		models.RefundStatusPending, models.RefundStatusProcessed,
		models.RefundStatusCompleted,
	}
	returnReasons = []string{
		"Wrong size", "Defective item", "Changed mind",
		"Item not as described", "Better price found",
	}

	// The restocking fee is waived about half the time; otherwise it is a
	// fixed fraction of the item subtotal.
	restockingFactors = []float64{0, 0, 0.10, 0.15}
)

// GenerateReturns samples ~8% of delivered orders without replacement and
// returns 1..min(2, item count) of each sampled order's items. The refund is
// derived as subtotal minus the restocking fee in decimal space, so the two
// always sum back to the source item's subtotal exactly.
func GenerateReturns(src *Source, orders []models.Order, orderItems []models.OrderItem) ([]models.Return, []models.ReturnItem, error) {
	var delivered []models.Order
	for _, o := range orders {
		if o.Status == models.OrderStatusDelivered {
			delivered = append(delivered, o)
		}
	}

	sampled, err := SampleWithoutReplacement(src, delivered, int(float64(len(delivered))*returnRate))
	if err != nil {
		return nil, nil, fmt.Errorf("sampling delivered orders: %w", err)
	}

	itemsByOrder := make(map[int64][]models.OrderItem, len(orders))
	for _, oi := range orderItems {
		itemsByOrder[oi.OrderID] = append(itemsByOrder[oi.OrderID], oi)
	}

	var returns []models.Return
	var returnItems []models.ReturnItem
	returnItemID := int64(1)

	for i, order := range sampled {
		orderLines := itemsByOrder[order.OrderID]
		if len(orderLines) == 0 {
			continue
		}
		returnID := int64(i + 1)

		returns = append(returns, models.Return{
			ReturnID:   returnID,
			OrderID:    order.OrderID,
			UserID:     order.UserID,
			ReturnDate: order.OrderDate.AddDate(0, 0, src.IntBetween(1, 14)),
			Status:     Choice(src, returnStatuses),
			Reason:     Choice(src, returnReasons),
		})

		maxItems := len(orderLines)
		if maxItems > 2 {
			maxItems = 2
		}
		lines, err := SampleWithoutReplacement(src, orderLines, src.IntBetween(1, maxItems))
		if err != nil {
			return nil, nil, fmt.Errorf("sampling items of order %d: %w", order.OrderID, err)
		}

		for _, oi := range lines {
			fee := Round2(oi.Subtotal * Choice(src, restockingFactors))
			returnItems = append(returnItems, models.ReturnItem{
				ReturnItemID:  returnItemID,
				ReturnID:      returnID,
				OrderItemID:   oi.OrderItemID,
				ProductID:     oi.ProductID,
				Quantity:      oi.Quantity,
				RefundAmount:  Sub2(oi.Subtotal, fee),
				RestockingFee: fee,
				RefundStatus:  Choice(src, refundStatuses),
			})
			returnItemID++
		}
	}
	return returns, returnItems, nil
}

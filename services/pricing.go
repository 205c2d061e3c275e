package services

import (
	"litoral-shop/models"

	"github.com/shopspring/decimal"
)

// Pricing is pure computation. All arithmetic runs on decimals so totals
// are exact and independent of the order lines were added in; callers
// convert back to float64 only at the JSON edge.

// ItemsSubtotal sums unit price times quantity over the cart lines.
func ItemsSubtotal(lines []models.CartLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		price := decimal.NewFromFloat(line.Product.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return subtotal
}

// DeliveryFee is the neighborhood fee for delivery orders and zero for
// pickup, regardless of any selected neighborhood.
func DeliveryFee(method models.DeliveryMethod, neighborhoodFee float64) decimal.Decimal {
	if method != models.MethodDelivery {
		return decimal.Zero
	}
	return decimal.NewFromFloat(neighborhoodFee)
}

// OrderTotal is the items subtotal plus the delivery fee.
func OrderTotal(lines []models.CartLine, method models.DeliveryMethod, neighborhoodFee float64) decimal.Decimal {
	return ItemsSubtotal(lines).Add(DeliveryFee(method, neighborhoodFee))
}

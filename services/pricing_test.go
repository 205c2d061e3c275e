package services

import (
	"testing"

	"litoral-shop/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(id string, price float64, qty int, note string) models.CartLine {
	return models.CartLine{
		Product:  models.Product{ID: id, Description: "Produto " + id, Price: price},
		Quantity: qty,
		Note:     note,
	}
}

func TestItemsSubtotalIsOrderInvariant(t *testing.T) {
	forward := []models.CartLine{
		line("A", 10.00, 2, ""),
		line("B", 7.50, 1, ""),
		line("C", 0.10, 3, ""),
	}
	reversed := []models.CartLine{forward[2], forward[1], forward[0]}

	assert.True(t, ItemsSubtotal(forward).Equal(ItemsSubtotal(reversed)))
	assert.True(t, ItemsSubtotal(forward).Equal(decimal.RequireFromString("27.80")))
}

func TestDeliveryFeeIsZeroForPickup(t *testing.T) {
	// The selected neighborhood is irrelevant for pickup orders.
	assert.True(t, DeliveryFee(models.MethodPickup, 8.00).IsZero())
	assert.True(t, DeliveryFee(models.MethodDelivery, 8.00).Equal(decimal.RequireFromString("8")))
}

func TestOrderTotalIsSubtotalPlusFee(t *testing.T) {
	lines := []models.CartLine{
		line("A", 10.00, 2, ""),
		line("B", 12.00, 1, ""),
	}

	delivery := OrderTotal(lines, models.MethodDelivery, 5.00)
	pickup := OrderTotal(lines, models.MethodPickup, 5.00)

	assert.True(t, delivery.Equal(ItemsSubtotal(lines).Add(DeliveryFee(models.MethodDelivery, 5.00))))
	assert.True(t, pickup.Equal(ItemsSubtotal(lines)))
}

func TestWorkedDeliveryScenario(t *testing.T) {
	// Product A at 10.00 twice, plus one more with a note: two distinct
	// lines, subtotal 30.00, delivery fee 5.00, total 35.00.
	lines := []models.CartLine{
		line("A", 10.00, 2, ""),
		line("A", 10.00, 1, "no onions"),
	}

	assert.True(t, ItemsSubtotal(lines).Equal(decimal.RequireFromString("30.00")))
	assert.True(t, OrderTotal(lines, models.MethodDelivery, 5.00).Equal(decimal.RequireFromString("35.00")))
}

func TestSubtotalOfEmptyCartIsZero(t *testing.T) {
	assert.True(t, ItemsSubtotal(nil).IsZero())
}

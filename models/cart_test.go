package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price float64) Product {
	return Product{ID: id, Description: "Produto " + id, Category: "TORTAS", Price: price}
}

func TestAddMergesSameProductAndNote(t *testing.T) {
	cart := &Cart{}

	cart.Add(product("A", 10.00), 2, "")
	cart.Add(product("A", 10.00), 3, "")

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestAddDistinguishesNotes(t *testing.T) {
	cart := &Cart{}

	cart.Add(product("A", 10.00), 2, "")
	cart.Add(product("A", 10.00), 1, "sem cebola")

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, "sem cebola", cart.Lines[1].Note)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	cart := &Cart{}

	cart.Add(product("A", 10.00), 1, "")
	cart.Add(product("B", 20.00), 1, "")
	cart.Add(product("C", 30.00), 1, "")

	// Merging into A must not move it.
	cart.Add(product("A", 10.00), 4, "")

	require.Len(t, cart.Lines, 3)
	assert.Equal(t, "A", cart.Lines[0].Product.ID)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, "B", cart.Lines[1].Product.ID)
	assert.Equal(t, "C", cart.Lines[2].Product.ID)
}

func TestAdjustRemovesLineAtZero(t *testing.T) {
	cart := &Cart{}

	cart.Add(product("A", 10.00), 2, "")
	cart.Adjust("A", -1, "")
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	cart.Adjust("A", -1, "")
	assert.Empty(t, cart.Lines)
}

func TestAdjustFloorsAtZero(t *testing.T) {
	cart := &Cart{}

	cart.Add(product("A", 10.00), 2, "")
	cart.Adjust("A", -10, "")

	assert.Empty(t, cart.Lines)
}

func TestAdjustIsNoOpWithoutMatch(t *testing.T) {
	cart := &Cart{}

	cart.Add(product("A", 10.00), 2, "")
	cart.Adjust("B", -1, "")
	cart.Adjust("A", -1, "outra nota")

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestQuantityNeverDropsBelowOne(t *testing.T) {
	cart := &Cart{}

	cart.Add(product("A", 10.00), 3, "")
	cart.Add(product("B", 5.00), 1, "para presente")
	cart.Adjust("A", -1, "")
	cart.Adjust("B", -5, "para presente")
	cart.Adjust("A", 2, "")
	cart.Adjust("A", -10, "nota inexistente")

	for _, line := range cart.Lines {
		assert.Greater(t, line.Quantity, 0)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	cart := &Cart{}

	cart.Add(product("A", 10.00), 2, "")
	cart.Add(product("B", 20.00), 1, "")
	cart.Clear()

	assert.True(t, cart.IsEmpty())
}

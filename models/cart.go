package models

import "time"

// CartLine is one entry in a cart: a value copy of the product plus the
// requested quantity and an optional free-text note. Two lines are the same
// line iff product ID and note are both equal; that pair is the merge key.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Note     string  `json:"note,omitempty"`
}

// Cart is the in-progress selection of one checkout session. Lines keep
// insertion order; a line never holds a quantity below 1.
type Cart struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
}

// Add merges qty into an existing line with the same product ID and note,
// or appends a new line. Merging never reorders the line. Callers clamp
// qty to >= 1 before calling.
func (c *Cart) Add(product Product, qty int, note string) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == product.ID && c.Lines[i].Note == note {
			c.Lines[i].Quantity += qty
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Product: product, Quantity: qty, Note: note})
}

// Adjust adds delta (possibly negative) to the quantity of the matching
// line, flooring at zero. A line that reaches zero is removed, not kept.
// No-op when no line matches.
func (c *Cart) Adjust(productID string, delta int, note string) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID != productID || c.Lines[i].Note != note {
			continue
		}
		qty := c.Lines[i].Quantity + delta
		if qty <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
		c.Lines[i].Quantity = qty
		return
	}
}

// Clear empties the cart. Called after a successful order submission.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

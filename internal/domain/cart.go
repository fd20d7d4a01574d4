package domain

import "time"

// CartLine is one product entry in the cart with an associated quantity.
// The embedded Product is a snapshot taken when the line was created; later
// catalog changes do not affect it.
type CartLine struct {
	Product         Product         `json:"product"`
	Quantity        int             `json:"quantity"`
	SelectedVariant *ProductVariant `json:"selected_variant,omitempty"`
}

// Cart holds a shopper's purchase intent. Line order is insertion order and
// is preserved for display stability only.
type Cart struct {
	UserID    string     `json:"user_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TotalItems returns the sum of quantities across all lines, not the line count.
func (c *Cart) TotalItems() int {
	var total int
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// Subtotal returns the sum of price × quantity over all lines. Discounts,
// tax, and shipping are deliberately not applied here; see the pricing policy.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// FindLine returns the index of the line for the given product id, or -1.
func (c *Cart) FindLine(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add increments the quantity of the line for the product by one, inserting a
// new line with quantity 1 if none exists. The passed product becomes the
// line's snapshot on insert; an existing line keeps its original snapshot.
func (c *Cart) Add(p Product) {
	if i := c.FindLine(p.ID); i >= 0 {
		c.Lines[i].Quantity++
		return
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: 1})
}

// Remove deletes the line for the given product id. Removing an absent id is
// a no-op, not an error.
func (c *Cart) Remove(productID string) bool {
	i := c.FindLine(productID)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

// SetQuantity sets the line's quantity. A quantity of zero or less removes
// the line entirely; a line never persists with quantity ≤ 0. Setting the
// quantity of an absent id is a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	if i := c.FindLine(productID); i >= 0 {
		c.Lines[i].Quantity = quantity
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = []CartLine{}
}

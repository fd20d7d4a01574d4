package domain

import "time"

// Checkout steps, in order. A session only ever moves forward.
const (
	StepInformation  = "information"
	StepShipping     = "shipping"
	StepPayment      = "payment"
	StepConfirmation = "confirmation"
)

// Shipping methods offered at checkout.
const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"
)

// ContactInfo is the customer information collected in the first step.
type ContactInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
}

// CheckoutSession tracks a shopper's progress through the simulated checkout.
// The cart is snapshotted when the session starts so that concurrent cart
// edits do not change an in-flight checkout.
type CheckoutSession struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Step      string       `json:"step"`
	Lines     []CartLine   `json:"lines"`
	Contact   *ContactInfo `json:"contact,omitempty"`
	Shipping  string       `json:"shipping_method,omitempty"`
	Coupon    string       `json:"coupon,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Order is the confirmation produced by the final checkout step. No payment
// system is contacted; the order exists only as an acknowledgment.
type Order struct {
	Number    string       `json:"number"`
	UserID    string       `json:"user_id"`
	Lines     []CartLine   `json:"lines"`
	Contact   *ContactInfo `json:"contact"`
	Shipping  string       `json:"shipping_method"`
	Pricing   Breakdown    `json:"pricing"`
	PlacedAt  time.Time    `json:"placed_at"`
}

// Breakdown is an itemized price quote for a cart.
type Breakdown struct {
	Subtotal     float64 `json:"subtotal"`
	Shipping     float64 `json:"shipping"`
	Tax          float64 `json:"tax"`
	Discount     float64 `json:"discount"`
	Total        float64 `json:"total"`
	FreeShipping bool    `json:"free_shipping"`
	CouponCode   string  `json:"coupon_code,omitempty"`
}

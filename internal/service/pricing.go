package service

import (
	"math"
	"strings"

	"github.com/momomonster549/ecom-macsorchids/internal/domain"
)

// Pricing policy constants. The cart itself stays promotion-free; everything
// beyond the raw subtotal is computed here.
const (
	// TaxRate is applied to the raw subtotal.
	TaxRate = 0.07
	// StandardShippingRate applies unless the order qualifies for free shipping.
	StandardShippingRate = 7.99
	// ExpressShippingRate is never waived.
	ExpressShippingRate = 15.99
	// FreeShippingThreshold is the subtotal at which standard shipping is free.
	FreeShippingThreshold = 100.00

	couponOrchid10 = "ORCHID10"
)

// QuoteOptions selects the shipping method and an optional coupon code.
type QuoteOptions struct {
	ShippingMethod string
	CouponCode     string
}

// Quote prices a set of cart lines. It is a pure function of its inputs:
// subtotal, then shipping by method and threshold, 7% tax on the subtotal,
// and a coupon discount if the code is recognized. Unknown coupon codes are
// ignored rather than rejected. All amounts are rounded to cents.
func Quote(lines []domain.CartLine, opts QuoteOptions) domain.Breakdown {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Product.Price * float64(line.Quantity)
	}
	subtotal = roundCents(subtotal)

	var shipping float64
	freeShipping := false
	switch opts.ShippingMethod {
	case domain.ShippingExpress:
		shipping = ExpressShippingRate
	default:
		if subtotal >= FreeShippingThreshold {
			freeShipping = true
		} else {
			shipping = StandardShippingRate
		}
	}

	var discount float64
	coupon := ""
	if strings.EqualFold(strings.TrimSpace(opts.CouponCode), couponOrchid10) {
		coupon = couponOrchid10
		discount = roundCents(subtotal * 0.10)
	}

	tax := roundCents(subtotal * TaxRate)

	return domain.Breakdown{
		Subtotal:     subtotal,
		Shipping:     shipping,
		Tax:          tax,
		Discount:     discount,
		Total:        roundCents(subtotal + shipping + tax - discount),
		FreeShipping: freeShipping,
		CouponCode:   coupon,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

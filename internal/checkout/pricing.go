// Package checkout implements the pricing pipeline and the three-step
// checkout wizard.
package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/modaloft/storefront/pkg/config"
)

// ShippingMethod selects one of the flat-rate shipping tiers.
type ShippingMethod string

const (
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpress   ShippingMethod = "express"
	ShippingOvernight ShippingMethod = "overnight"
)

var shippingRates = map[ShippingMethod]decimal.Decimal{
	ShippingStandard:  decimal.Zero,
	ShippingExpress:   decimal.RequireFromString("9.99"),
	ShippingOvernight: decimal.RequireFromString("24.99"),
}

// ShippingCost returns the flat rate for the method. Unknown or unset
// methods ship free, matching the standard tier.
func ShippingCost(method ShippingMethod) decimal.Decimal {
	if rate, ok := shippingRates[method]; ok {
		return rate
	}
	return decimal.Zero
}

// Quote is a fully-priced order summary. Tax applies to the subtotal only,
// never to shipping, and the discount is subtracted last.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`

	// FreeShippingRemaining is the additional subtotal needed to reach the
	// free-shipping threshold, zero once reached.
	FreeShippingRemaining decimal.Decimal `json:"free_shipping_remaining"`
}

// ComputeQuote prices the order. The promo may be nil. With ClampTotal off a
// flat discount larger than the order drives the total negative; the flag
// clamps it at zero.
func ComputeQuote(subtotal int, method ShippingMethod, promo *Promo, cfg config.CheckoutConfig) Quote {
	sub := decimal.NewFromInt(int64(subtotal))
	shipping := ShippingCost(method)
	tax := sub.Mul(decimal.NewFromFloat(cfg.TaxRate)).Round(2)

	discount := decimal.Zero
	if promo != nil {
		discount = promo.Discount(sub, shipping)
	}

	total := sub.Add(shipping).Add(tax).Sub(discount)
	if cfg.ClampTotal && total.IsNegative() {
		total = decimal.Zero
	}

	remaining := decimal.NewFromFloat(cfg.FreeShippingThreshold).Sub(sub)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return Quote{
		Subtotal:              sub,
		Shipping:              shipping,
		Tax:                   tax,
		Discount:              discount,
		Total:                 total,
		FreeShippingRemaining: remaining,
	}
}

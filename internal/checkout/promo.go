package checkout

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/modaloft/storefront/pkg/errors"
)

// PromoKind distinguishes how a promo's value is applied.
type PromoKind string

const (
	PromoPercent      PromoKind = "percent"
	PromoFixed        PromoKind = "fixed"
	PromoFreeShipping PromoKind = "free_shipping"
)

// Promo is one entry of the static promo table.
type Promo struct {
	Code  string          `json:"code"`
	Kind  PromoKind       `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

var promoTable = map[string]Promo{
	"SAVE10":    {Code: "SAVE10", Kind: PromoPercent, Value: decimal.RequireFromString("0.10")},
	"WELCOME20": {Code: "WELCOME20", Kind: PromoFixed, Value: decimal.RequireFromString("20")},
	"FREESHIP":  {Code: "FREESHIP", Kind: PromoFreeShipping},
}

// LookupPromo resolves a code case-insensitively against the static table.
func LookupPromo(code string) (Promo, error) {
	promo, ok := promoTable[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Promo{}, errors.New(errors.CodeValidation, "invalid promo code")
	}
	return promo, nil
}

// Discount computes the amount this promo takes off the order. A
// free-shipping promo is modeled as a fixed discount equal to the current
// shipping cost, so the shipping line itself stays untouched.
func (p Promo) Discount(subtotal, shipping decimal.Decimal) decimal.Decimal {
	switch p.Kind {
	case PromoPercent:
		return subtotal.Mul(p.Value).Round(2)
	case PromoFixed:
		return p.Value
	case PromoFreeShipping:
		return shipping
	default:
		return decimal.Zero
	}
}

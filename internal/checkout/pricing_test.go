package checkout

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/modaloft/storefront/pkg/config"
)

func pricingConfig() config.CheckoutConfig {
	return config.CheckoutConfig{TaxRate: 0.08, FreeShippingThreshold: 50}
}

func assertDecimal(t *testing.T, got decimal.Decimal, want string, field string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s: expected %s, got %s", field, want, got)
	}
}

func TestComputeQuoteExpress(t *testing.T) {
	t.Parallel()
	// two t-shirts at 15000 plus one pair of sneakers at 45000
	quote := ComputeQuote(2*15000+45000, ShippingExpress, nil, pricingConfig())

	assertDecimal(t, quote.Subtotal, "75000", "subtotal")
	assertDecimal(t, quote.Shipping, "9.99", "shipping")
	assertDecimal(t, quote.Tax, "6000", "tax")
	assertDecimal(t, quote.Discount, "0", "discount")
	assertDecimal(t, quote.Total, "81009.99", "total")
}

func TestShippingRates(t *testing.T) {
	t.Parallel()
	assertDecimal(t, ShippingCost(ShippingStandard), "0", "standard")
	assertDecimal(t, ShippingCost(ShippingExpress), "9.99", "express")
	assertDecimal(t, ShippingCost(ShippingOvernight), "24.99", "overnight")
	assertDecimal(t, ShippingCost(""), "0", "unset")
	assertDecimal(t, ShippingCost("pigeon"), "0", "unknown")
}

func TestTaxNeverAppliesToShipping(t *testing.T) {
	t.Parallel()
	quote := ComputeQuote(100, ShippingOvernight, nil, pricingConfig())
	assertDecimal(t, quote.Tax, "8", "tax")
	assertDecimal(t, quote.Total, "132.99", "total")
}

func TestPercentPromo(t *testing.T) {
	t.Parallel()
	promo, err := LookupPromo("save10")
	if err != nil {
		t.Fatal(err)
	}
	quote := ComputeQuote(1000, ShippingStandard, &promo, pricingConfig())
	assertDecimal(t, quote.Discount, "100", "discount")
	assertDecimal(t, quote.Total, "980", "total") // 1000 + 80 tax - 100
}

func TestFixedPromoCanDriveTotalNegative(t *testing.T) {
	t.Parallel()
	promo, err := LookupPromo("WELCOME20")
	if err != nil {
		t.Fatal(err)
	}
	quote := ComputeQuote(10, ShippingStandard, &promo, pricingConfig())
	assertDecimal(t, quote.Total, "-9.2", "total") // 10 + 0.8 tax - 20

	cfg := pricingConfig()
	cfg.ClampTotal = true
	clamped := ComputeQuote(10, ShippingStandard, &promo, cfg)
	assertDecimal(t, clamped.Total, "0", "clamped total")
	assertDecimal(t, clamped.Discount, "20", "discount survives clamping")
}

func TestFreeShippingPromoMatchesShippingCost(t *testing.T) {
	t.Parallel()
	promo, err := LookupPromo("FREESHIP")
	if err != nil {
		t.Fatal(err)
	}
	quote := ComputeQuote(1000, ShippingOvernight, &promo, pricingConfig())
	assertDecimal(t, quote.Shipping, "24.99", "shipping line stays")
	assertDecimal(t, quote.Discount, "24.99", "discount offsets shipping")
	assertDecimal(t, quote.Total, "1080", "total")

	free := ComputeQuote(1000, ShippingStandard, &promo, pricingConfig())
	assertDecimal(t, free.Discount, "0", "free shipping on free tier")
}

func TestLookupPromoUnknownCode(t *testing.T) {
	t.Parallel()
	if _, err := LookupPromo("NOPE"); err == nil {
		t.Fatal("expected error for unknown code")
	}
	if _, err := LookupPromo("  welcome20 "); err != nil {
		t.Fatalf("expected trimmed case-insensitive lookup, got %v", err)
	}
}

func TestFreeShippingRemaining(t *testing.T) {
	t.Parallel()
	quote := ComputeQuote(30, ShippingStandard, nil, pricingConfig())
	assertDecimal(t, quote.FreeShippingRemaining, "20", "remaining")

	over := ComputeQuote(75, ShippingStandard, nil, pricingConfig())
	assertDecimal(t, over.FreeShippingRemaining, "0", "remaining at threshold")
}

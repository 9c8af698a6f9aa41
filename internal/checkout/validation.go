package checkout

import (
	"regexp"
	"strings"

	creditcard "github.com/durango/go-credit-card"

	"github.com/modaloft/storefront/pkg/types"
)

// PaymentMethod selects how the order is paid. Non-card methods skip the
// card field checks entirely.
type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentPayPal   PaymentMethod = "paypal"
	PaymentApplePay PaymentMethod = "apple-pay"
)

// ShippingInfo is the step-one capture. Method defaults to standard when
// left empty.
type ShippingInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country,omitempty"`

	Method ShippingMethod `json:"method,omitempty"`
}

// PaymentInfo is the step-two capture. CardBrand is detected, never
// submitted.
type PaymentInfo struct {
	Method         PaymentMethod `json:"method"`
	CardNumber     string        `json:"card_number,omitempty"`
	Expiry         string        `json:"expiry,omitempty"`
	CVV            string        `json:"cvv,omitempty"`
	CardholderName string        `json:"cardholder_name,omitempty"`
	CardBrand      string        `json:"card_brand,omitempty"`
	SameAsShipping bool          `json:"same_as_shipping"`
	Billing        types.Address `json:"billing,omitempty"`
}

var (
	emailPattern  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])\s*/\s*\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	nonDigits     = regexp.MustCompile(`\D`)
)

// ValidateShipping returns a field-to-message map; an empty map means the
// step passes.
func ValidateShipping(info ShippingInfo) map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(info.Email) == "" {
		problems["email"] = "Email is required"
	} else if !emailPattern.MatchString(strings.TrimSpace(info.Email)) {
		problems["email"] = "Email is invalid"
	}
	requireField(problems, "first_name", info.FirstName, "First name is required")
	requireField(problems, "last_name", info.LastName, "Last name is required")
	requireField(problems, "address", info.Address, "Address is required")
	requireField(problems, "city", info.City, "City is required")
	requireField(problems, "state", info.State, "State is required")
	requireField(problems, "zip_code", info.ZipCode, "ZIP code is required")
	return problems
}

// ValidatePayment returns a field-to-message map. Card fields are checked
// only for the card method; the billing block is checked whenever the
// billing address differs from shipping.
func ValidatePayment(info PaymentInfo) map[string]string {
	problems := map[string]string{}
	if info.Method == PaymentCard {
		digits := nonDigits.ReplaceAllString(info.CardNumber, "")
		if digits == "" {
			problems["card_number"] = "Card number is required"
		} else if len(digits) < 16 {
			problems["card_number"] = "Card number is invalid"
		}
		if strings.TrimSpace(info.Expiry) == "" {
			problems["expiry"] = "Expiry date is required"
		} else if !expiryPattern.MatchString(strings.TrimSpace(info.Expiry)) {
			problems["expiry"] = "Expiry date is invalid"
		}
		if strings.TrimSpace(info.CVV) == "" {
			problems["cvv"] = "CVV is required"
		} else if !cvvPattern.MatchString(strings.TrimSpace(info.CVV)) {
			problems["cvv"] = "CVV is invalid"
		}
		requireField(problems, "cardholder_name", info.CardholderName, "Cardholder name is required")
	}
	if !info.SameAsShipping {
		requireField(problems, "billing.address", info.Billing.Address, "Billing address is required")
		requireField(problems, "billing.city", info.Billing.City, "Billing city is required")
		requireField(problems, "billing.state", info.Billing.State, "Billing state is required")
		requireField(problems, "billing.zip_code", info.Billing.ZipCode, "Billing ZIP code is required")
	}
	return problems
}

func requireField(problems map[string]string, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		problems[field] = message
	}
}

// DetectCardBrand names the issuing network (visa, mastercard, amex, ...)
// from the card number. Detection is informational and never blocks a step.
func DetectCardBrand(number string) string {
	card := creditcard.Card{Number: nonDigits.ReplaceAllString(number, "")}
	if err := card.Method(); err != nil {
		return ""
	}
	return card.Company.Short
}

// FormatCardNumber groups the digits in blocks of four for display.
func FormatCardNumber(number string) string {
	digits := nonDigits.ReplaceAllString(number, "")
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry normalizes expiry input to MM/YY.
func FormatExpiry(expiry string) string {
	digits := nonDigits.ReplaceAllString(expiry, "")
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

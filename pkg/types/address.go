package types

import "strings"

// Address captures a postal address as collected by the checkout forms.
type Address struct {
	Address   string `json:"address"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country,omitempty"`
}

// IsZero reports whether no address fields were provided.
func (a Address) IsZero() bool {
	return strings.TrimSpace(a.Address) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.State) == "" &&
		strings.TrimSpace(a.ZipCode) == ""
}

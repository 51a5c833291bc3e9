package budget

import (
	"strings"

	"golang.org/x/text/currency"
)

// Currency is a supported currency.
type Currency struct {
	ISO    string `json:"iso" example:"EUR"`  // ISO 4217 code
	Symbol string `json:"symbol" example:"€"` // Symbol used for display
}

// The order matters for symbols shared by multiple currencies,
// the first one wins.
var currencies = []Currency{
	{"EUR", "€"},
	{"USD", "$"},
	{"GBP", "£"},
	{"CHF", "CHF"},
	{"PLN", "zł"},
	{"SEK", "kr"},
	{"NOK", "kr"},
	{"DKK", "kr"},
	{"JPY", "¥"},
	{"CNY", "¥"},
	{"INR", "₹"},
}

// Currencies returns all supported currencies.
func Currencies() []Currency {
	return append([]Currency(nil), currencies...)
}

// ResolveCurrency returns the ISO code for an ISO code or symbol
// of a supported currency. Codes must be upper case, "eur" is rejected.
func ResolveCurrency(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if unit, err := currency.ParseISO(raw); err == nil && unit.String() == raw {
		for _, c := range currencies {
			if c.ISO == raw {
				return c.ISO, true
			}
		}
	}

	for _, c := range currencies {
		if c.Symbol == raw {
			return c.ISO, true
		}
	}

	return "", false
}

// CurrencySymbol returns the display symbol for a stored currency value.
// Unknown values fall back to the euro sign.
func CurrencySymbol(stored string) string {
	for _, c := range currencies {
		if c.ISO == stored || c.Symbol == stored {
			return c.Symbol
		}
	}

	return "€"
}

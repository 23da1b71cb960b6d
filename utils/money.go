package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency describes how amounts stored in minor units are displayed
type Currency struct {
	Code      string // ISO code, e.g. "VND"
	Symbol    string // e.g. "₫", "$"
	Exponent  int32  // digits of the minor unit: 0 for VND/COP, 2 for USD
	Thousands string // thousands separator
	Decimal   string // decimal separator
	Suffix    bool   // symbol goes after the amount
}

// Known currencies by ISO code
var currencies = map[string]Currency{
	"VND": {Code: "VND", Symbol: "₫", Exponent: 0, Thousands: ".", Decimal: ",", Suffix: true},
	"COP": {Code: "COP", Symbol: "$", Exponent: 0, Thousands: ".", Decimal: ","},
	"USD": {Code: "USD", Symbol: "$", Exponent: 2, Thousands: ",", Decimal: "."},
}

// LookupCurrency returns the display settings for code, defaulting to VND
func LookupCurrency(code string) Currency {
	if c, ok := currencies[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return c
	}
	return currencies["VND"]
}

// FormatMoney formats an amount in minor units, e.g. 15900000 VND -> "15.900.000₫",
// 129999 USD -> "$1,299.99"
func FormatMoney(amount int64, cur Currency) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	fixed := decimal.New(amount, -cur.Exponent).StringFixed(cur.Exponent)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	// Pre-allocate: digits + separators + symbol
	b.Grow(len(fixed) + len(fixed)/3 + len(cur.Symbol) + 1)
	if neg {
		b.WriteString("-")
	}
	if !cur.Suffix {
		b.WriteString(cur.Symbol)
	}

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteString(cur.Thousands)
		b.WriteString(intPart[i : i+3])
	}
	if fracPart != "" {
		b.WriteString(cur.Decimal)
		b.WriteString(fracPart)
	}

	if cur.Suffix {
		b.WriteString(cur.Symbol)
	}
	return b.String()
}

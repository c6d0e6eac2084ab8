// Package money normalizes the price values the admin API returns.
package money

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a price as a plain number. It decodes JSON numbers and numeric
// strings ("1500.00"); null, empty and non-numeric strings decode to 0.
type Amount float64

func (a *Amount) UnmarshalJSON(raw []byte) error {
	*a = Amount(Parse(string(bytes.Trim(bytes.TrimSpace(raw), `"`))))
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

func (a Amount) Float64() float64 { return float64(a) }

// currencyPrefix matches a leading code or symbol: "NPR ", "Rs.", "$".
var currencyPrefix = regexp.MustCompile(`^(?:[A-Za-z]{1,3}\.?\s+|[A-Za-z]{1,3}\.|[$₹]\s*)`)

// Parse coerces a currency-like string to a number, returning 0 when it is
// not one. Thousands separators and a leading currency code or symbol are
// tolerated; a bare leading "." is part of the number.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	s = currencyPrefix.ReplaceAllString(s, "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// Format renders a in currency, e.g. "Rs 1,500.00" for NPR.
func Format(a Amount, currency string) string {
	if currency == "" {
		currency = gomoney.NPR
	}
	cents := decimal.NewFromFloat(float64(a)).Shift(2).Round(0).IntPart()
	return gomoney.New(cents, currency).Display()
}

// Discounted applies a discount to base the way the API computes
// effective_price: value is a percentage when percent is set, otherwise a
// flat amount. The result never drops below 0.
func Discounted(base Amount, percent bool, value Amount) Amount {
	b := decimal.NewFromFloat(float64(base))
	v := decimal.NewFromFloat(float64(value))
	if v.IsZero() {
		return base
	}
	off := v
	if percent {
		off = b.Mul(v).Div(decimal.NewFromInt(100))
	}
	out := b.Sub(off)
	if out.IsNegative() {
		return 0
	}
	f, _ := out.Round(2).Float64()
	return Amount(f)
}

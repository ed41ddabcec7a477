package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency renders an amount for display: rupee sign, thousands grouping,
// two decimal places.
func Currency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "₹" + b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

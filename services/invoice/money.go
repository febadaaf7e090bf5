package invoice

import (
	"fmt"
	"strings"
)

// FormatAmount renders a monetary value with a currency glyph prefix,
// thousands separators and two decimals, e.g. FormatAmount("$", 2599) ==
// "$2,599.00".
func FormatAmount(symbol string, amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := symbol + b.String() + "." + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

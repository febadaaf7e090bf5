package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		amount float64
		want   string
	}{
		{"zero", "$", 0, "$0.00"},
		{"small", "$", 100, "$100.00"},
		{"thousands", "$", 2599, "$2,599.00"},
		{"millions", "$", 1234567.89, "$1,234,567.89"},
		{"cents rounding", "$", 99.999, "$100.00"},
		{"negative", "$", -250.5, "-$250.50"},
		{"other glyph", "KSh ", 1500, "KSh 1,500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.symbol, tt.amount))
		})
	}
}

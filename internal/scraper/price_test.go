package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"dollar amount", "$12.50", 12.5, true},
		{"plain integer", "42", 42, true},
		{"currency prefix", "USD 19.99", 19.99, true},
		{"thousands with decimal", "1,234.56", 1234.56, true},
		// Comma alone is read as a decimal point
		{"comma without period", "1,234", 1.234, true},
		{"european decimal", "9,99", 9.99, true},
		{"thin space noise", "1 234.50", 1234.5, true},
		{"non-breaking space", "12 €", 12, true},
		{"negative sign dropped", "-12.50", 12.5, true},
		{"surrounding text", "Sale: $5.00", 5, true},
		{"empty", "", 0, false},
		{"no digits", "free shipping", 0, false},
		{"punctuation only", ".,-", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

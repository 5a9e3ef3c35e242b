package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonPriceChars = regexp.MustCompile(`[^0-9.,-]+`)
	numberRun     = regexp.MustCompile(`\d+\.\d+|\d+`)
)

// ParsePrice normalizes loosely-formatted price text into a numeric value.
// It returns false when no value can be extracted.
//
// When both ',' and '.' appear, ',' is assumed to be a thousands separator;
// with ',' alone it is assumed to be the decimal point. That means "1,234"
// parses to 1.234, not 1234. The input is ambiguous and this reading is
// kept deliberately.
func ParsePrice(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}

	// Thin spaces are noise, non-breaking spaces are ordinary spaces
	s := strings.ReplaceAll(text, " ", "")
	s = strings.ReplaceAll(s, " ", " ")

	s = nonPriceChars.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, " ", "")

	hasComma := strings.Contains(s, ",")
	hasPeriod := strings.Contains(s, ".")
	switch {
	case hasComma && hasPeriod:
		s = strings.ReplaceAll(s, ",", "")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	match := numberRun.FindString(s)
	if match == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

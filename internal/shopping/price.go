package shopping

import (
	"regexp"
	"strconv"
	"strings"
)

var pricePrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

// ParsePrice reads the numeric prefix of an opaque price string such as
// "2.49", "$3 each" or "€1.20/kg". A leading currency symbol is skipped.
// Anything unparseable is worth 0.
func ParsePrice(price string) float64 {
	s := strings.TrimSpace(price)
	s = strings.TrimLeft(s, "$£€¥")
	s = strings.TrimSpace(s)
	m := pricePrefix.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// PriceTotal sums the parseable prices of every line
func PriceTotal(items []GroupedIngredient) float64 {
	var total float64
	for _, it := range items {
		total += ParsePrice(it.Price)
	}
	return total
}

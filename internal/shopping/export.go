package shopping

import (
	"math"
	"strconv"
	"strings"
)

// FormatLine renders one line as "{amount} {unit} {name} ({productName}) - {price}".
// The product and price parts only appear when set.
func FormatLine(it GroupedIngredient) string {
	parts := []string{FormatAmount(it.Amount)}
	if it.Unit != "" {
		parts = append(parts, it.Unit)
	}
	parts = append(parts, it.Name)

	var b strings.Builder
	b.WriteString(strings.Join(parts, " "))
	if it.ProductName != "" {
		b.WriteString(" (" + it.ProductName + ")")
	}
	if it.Price != "" {
		b.WriteString(" - " + it.Price)
	}
	return b.String()
}

// FormatAmount rounds to two decimals and drops trailing zeros
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(math.Round(amount*100)/100, 'f', -1, 64)
}

// ExportText renders the list one line per ingredient for share, clipboard and print
func ExportText(items []GroupedIngredient) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = FormatLine(it)
	}
	return strings.Join(lines, "\n")
}

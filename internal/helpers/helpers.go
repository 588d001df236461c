package helpers

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency renders a rupee amount with Indian digit grouping and no
// decimals, e.g. ₹1,50,000.
func FormatCurrency(amount float64) string {
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return inrPrinter.Sprintf("-₹%d", -rounded)
	}
	return inrPrinter.Sprintf("₹%d", rounded)
}

// StringTrim strips whitespace and any quotes clients wrap path params in.
func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}

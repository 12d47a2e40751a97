package product

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice renders cents as Brazilian reais, e.g. "R$ 1.234,50".
func FormatPrice(cents int) string {
	return "R$ " + brPrinter.Sprintf("%.2f", float64(cents)/100)
}

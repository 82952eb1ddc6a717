package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const liraSign = "₺"

// FormatTRY renders an amount the way tr-TR shows Turkish Lira, e.g. ₺845.200,00.
// Amounts are currency-agnostic everywhere else.
func FormatTRY(amount float64) string {
	p := message.NewPrinter(language.Turkish)

	return liraSign + p.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders d as dollars with two decimals, e.g. "$1,234.50".
func FormatUSD(d decimal.Decimal) string {
	return usd.Sprintf("$%v", number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// Display is Summary rendered for people.
type Display struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

func (s Summary) Display() Display {
	return Display{
		Subtotal: FormatUSD(s.Subtotal),
		Shipping: FormatUSD(s.Shipping),
		Tax:      FormatUSD(s.Tax),
		Total:    FormatUSD(s.Total),
	}
}

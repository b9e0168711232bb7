package retirement

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxAmount is the largest accepted input amount, in dollars. It must match
// the lte ceilings on the input structs.
const MaxAmount = 1_000_000_000_000

var printer = message.NewPrinter(language.English)

var (
	maxDollars = decimal.NewFromInt(math.MaxInt64)
	minDollars = decimal.NewFromInt(-math.MaxInt64)
)

// WholeDollars rounds a currency amount to the nearest dollar, half away from
// zero. Amounts beyond the int64 range saturate so the sign survives; NaN is 0.
func WholeDollars(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxInt64
	case math.IsInf(v, -1):
		return -math.MaxInt64
	}
	d := decimal.NewFromFloat(v).Round(0)
	if d.GreaterThan(maxDollars) {
		return math.MaxInt64
	}
	if d.LessThan(minDollars) {
		return -math.MaxInt64
	}
	return d.IntPart()
}

// FormatDollars renders v as a rounded dollar amount with thousands
// separators, e.g. -$74,416.
func FormatDollars(v float64) string {
	n := WholeDollars(v)
	if n < 0 {
		return "-$" + printer.Sprintf("%d", -n)
	}
	return "$" + printer.Sprintf("%d", n)
}

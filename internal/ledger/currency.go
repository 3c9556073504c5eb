package ledger

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter renders amounts the way the driver sees them: always
// rounded up to a whole unit, never with decimals.
type CurrencyFormatter struct {
	printer *message.Printer
	symbol  string
}

func NewCurrencyFormatter(tag language.Tag, symbol string) *CurrencyFormatter {
	return &CurrencyFormatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// Format returns ceil(amount) with the locale's digit grouping.
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	whole := amount.Ceil()
	sign := ""
	if whole.IsNegative() {
		sign = "-"
		whole = whole.Neg()
	}
	return sign + f.symbol + f.group(whole)
}

// group renders a non-negative whole number. Values past int64 are grouped
// in threes with the locale's separator.
func (f *CurrencyFormatter) group(whole decimal.Decimal) string {
	if whole.LessThanOrEqual(maxInt64) {
		return f.printer.Sprintf("%d", whole.IntPart())
	}
	sep := f.separator()
	digits := whole.String()
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// separator is the grouping mark the locale puts in one million.
func (f *CurrencyFormatter) separator() string {
	m := strings.TrimPrefix(f.printer.Sprintf("%d", 1000000), "1")
	if i := strings.IndexByte(m, '0'); i > 0 {
		return m[:i]
	}
	return ""
}

var defaultCurrency = NewCurrencyFormatter(language.Turkish, "₺")

// FormatCurrency formats amount in Turkish lira, rounded up.
func FormatCurrency(amount decimal.Decimal) string {
	return defaultCurrency.Format(amount)
}

// FormatDistance formats a distance with one decimal, e.g. "250.0 km".
func FormatDistance(d decimal.Decimal) string {
	return d.StringFixed(1) + " km"
}

// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/theirongolddev/lifecost/internal/model"
)

var printer = message.NewPrinter(language.English)

// FormatMoney formats an amount with a currency symbol, digit grouping, and
// a fixed number of decimals.
// e.g., (6666.666, "$", 2) -> "$6,666.67", (500000000, "₩", 0) -> "₩500,000,000"
func FormatMoney(amount float64, symbol string, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	// Round first so "-0.00" cannot appear.
	scale := math.Pow(10, float64(decimals))
	amount = math.Round(amount*scale) / scale
	if amount == 0 {
		sign = ""
	}
	return sign + symbol + printer.Sprintf("%."+strconv.Itoa(decimals)+"f", amount)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRate formats a value already in percent, e.g. 3.5 -> "3.5%".
func FormatRate(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// FormatField formats a field value according to its kind.
func FormatField(f model.Field, v float64, symbol string, decimals int) string {
	switch f.Kind {
	case model.KindPercent:
		return FormatRate(v)
	case model.KindYears:
		return strconv.FormatFloat(v, 'f', -1, 64) + " yrs"
	case model.KindDailyMoney:
		return FormatMoney(v, symbol, decimals) + "/day"
	default:
		return FormatMoney(v, symbol, decimals)
	}
}

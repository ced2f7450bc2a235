// Package format renders game numbers for display.
package format

import (
	"github.com/shopspring/decimal"
)

// MagnitudeCodes are the suffixes for each power-of-1000 tier starting at 10^6.
var MagnitudeCodes = []string{
	"M", "B", "T", "Qa", "Qi", "Sx", "St", "Oc", "Nl",
	"Dc", "Ud", "Dd", "Td", "Qd", "Qu", "Sd", "G",
}

// CompactThreshold is the smallest value rendered with a magnitude code.
var CompactThreshold = decimal.NewFromInt(1_000_000)

// Points renders a non-negative value. Values below one million print as integers,
// larger ones as "<value with 2 decimals><code>". Values past the last tier clamp to it.
func Points(v decimal.Decimal) string {
	if v.LessThan(CompactThreshold) {
		return v.StringFixed(0)
	}

	tier := (IntegerDigits(v)-1)/3 - 2
	if tier >= len(MagnitudeCodes) {
		tier = len(MagnitudeCodes) - 1
	}

	scaled := v.Div(decimal.New(1, int32(3*(tier+2))))
	return scaled.StringFixed(2) + MagnitudeCodes[tier]
}

// IntegerDigits counts the digits of the integer part, i.e. floor(log10(|v|))+1 for |v| >= 1.
// It works from the coefficient and exponent, so huge exponents cost nothing.
func IntegerDigits(v decimal.Decimal) int {
	return v.NumDigits() + int(v.Exponent())
}

// Seconds renders a cooldown rounded to 2 decimals without trailing zeros ("1.8", "2", "0.1").
func Seconds(v decimal.Decimal) string {
	return v.Round(2).String()
}

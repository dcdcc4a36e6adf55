package pix

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a monetary value typed by a Brazilian user.
//
// Accepted shapes include "1.234,56", "R$ 10,00", "10,5" and "10.50". When
// both separators are present the last one is the decimal separator; a
// separator that repeats is treated as a thousands separator. Anything other
// than digits, separators, a leading minus sign and an optional "R$" prefix
// is rejected, so "1e3" is an error rather than 13. The number of decimal
// places is kept as typed.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "R$"))
	if strings.Trim(cleaned, ",.-") == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	for _, r := range cleaned {
		if (r < '0' || r > '9') && r != ',' && r != '.' && r != '-' {
			return decimal.Zero, ErrInvalidAmount
		}
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")

	var normalized string
	switch {
	case lastComma >= 0 && lastDot >= 0:
		decimalSep, groupSep := ",", "."
		if lastDot > lastComma {
			decimalSep, groupSep = ".", ","
		}
		normalized = strings.ReplaceAll(cleaned, groupSep, "")
		normalized = strings.Replace(normalized, decimalSep, ".", 1)
	case lastComma >= 0:
		normalized = separatorToPoint(cleaned, ",")
	case lastDot >= 0:
		normalized = separatorToPoint(cleaned, ".")
	default:
		normalized = cleaned
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// separatorToPoint treats a single separator as decimal and a repeated one as grouping.
func separatorToPoint(s, sep string) string {
	if strings.Count(s, sep) > 1 {
		return strings.ReplaceAll(s, sep, "")
	}
	return strings.Replace(s, sep, ".", 1)
}

// FormatBRL renders an amount as Brazilian reais, e.g. "R$ 1.234,56".
func FormatBRL(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return sign + "R$ " + b.String() + "," + frac
}

package validator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MinAmount validates that a monetary value is at least min.
func MinAmount(field string, value, min decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return value.GreaterThanOrEqual(min)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount must be at least " + min.StringFixed(2),
			TranslationKey: "validation.min_amount",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min.StringFixed(2),
			},
		},
	}
}

// MaxAmount validates that a monetary value does not exceed max.
func MaxAmount(field string, value, max decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return value.LessThanOrEqual(max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount must be at most " + max.StringFixed(2),
			TranslationKey: "validation.max_amount",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max.StringFixed(2),
			},
		},
	}
}

// DecimalPlaces rejects values written with more than places fractional
// digits. Trailing zeros count, so "1.230" fails for places=2.
func DecimalPlaces(field string, value decimal.Decimal, places int) Rule {
	return Rule{
		Check: func() bool {
			return -int(value.Exponent()) <= places
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("value cannot have more than %d decimal places", places),
			TranslationKey: "validation.decimal_places",
			TranslationValues: map[string]any{
				"field":  field,
				"places": places,
			},
		},
	}
}

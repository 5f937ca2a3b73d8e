// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	apperrors "github.com/allisson/orderflow/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// MaxRunes validates that a string holds at most max characters (not bytes).
func MaxRunes(max int) validation.Rule {
	return validation.RuneLength(0, max).
		ErrorObject(validation.NewError("validation_max_runes", "must be at most {{.max}} characters").
			SetParams(map[string]any{"max": max}))
}

// PositiveDecimal validates that a decimal.Decimal is strictly greater than zero.
var PositiveDecimal = validation.By(func(value interface{}) error {
	d, ok := toDecimal(value)
	if !ok {
		return validation.NewError("validation_decimal_type", "must be a decimal number")
	}
	if !d.IsPositive() {
		return validation.NewError("validation_positive_decimal", "must be greater than zero")
	}
	return nil
})

// DecimalPlaces validates that a decimal.Decimal has no more than places fractional digits.
func DecimalPlaces(places int32) validation.Rule {
	return validation.By(func(value interface{}) error {
		d, ok := toDecimal(value)
		if !ok {
			return validation.NewError("validation_decimal_type", "must be a decimal number")
		}
		if !d.Equal(d.Truncate(places)) {
			return validation.NewError("validation_decimal_places", "must have at most {{.places}} decimal places").
				SetParams(map[string]any{"places": places})
		}
		return nil
	})
}

func toDecimal(value interface{}) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, false
		}
		return *v, true
	default:
		return decimal.Zero, false
	}
}

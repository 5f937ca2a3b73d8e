package validation

import (
	"strings"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/orderflow/internal/errors"
)

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "regular name", value: "John Doe", shouldErr: false},
		{name: "surrounding spaces are fine", value: "  Laptop Pro ", shouldErr: false},
		{name: "only spaces", value: "   ", shouldErr: true},
		{name: "tabs and newlines", value: "\t\n", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, NotBlank)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "must not be blank")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaxRunes(t *testing.T) {
	t.Run("Success_ExactlyAtLimit", func(t *testing.T) {
		assert.NoError(t, validation.Validate(strings.Repeat("a", 200), MaxRunes(200)))
	})

	t.Run("Success_CountsCharactersNotBytes", func(t *testing.T) {
		// 200 two-byte characters
		assert.NoError(t, validation.Validate(strings.Repeat("é", 200), MaxRunes(200)))
	})

	t.Run("Error_OverLimit", func(t *testing.T) {
		err := validation.Validate(strings.Repeat("a", 201), MaxRunes(200))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must be at most 200 characters")
	})
}

func TestPositiveDecimal(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		shouldErr bool
	}{
		{name: "positive", value: decimal.RequireFromString("2500.00"), shouldErr: false},
		{name: "smallest cent", value: decimal.RequireFromString("0.01"), shouldErr: false},
		{name: "pointer", value: func() *decimal.Decimal { d := decimal.NewFromInt(3); return &d }(), shouldErr: false},
		{name: "zero", value: decimal.Zero, shouldErr: true},
		{name: "negative", value: decimal.NewFromInt(-10), shouldErr: true},
		{name: "not a decimal", value: 10, shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PositiveDecimal.Validate(tt.value)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecimalPlaces(t *testing.T) {
	rule := DecimalPlaces(2)

	assert.NoError(t, rule.Validate(decimal.RequireFromString("10")))
	assert.NoError(t, rule.Validate(decimal.RequireFromString("10.5")))
	assert.NoError(t, rule.Validate(decimal.RequireFromString("10.25")))

	err := rule.Validate(decimal.RequireFromString("10.255"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at most 2 decimal places")
}

func TestWrapValidationError(t *testing.T) {
	t.Run("Success_WrapsAsInvalidInput", func(t *testing.T) {
		err := WrapValidationError(validation.Validate("  ", NotBlank))
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "must not be blank")
	})

	t.Run("Success_NilStaysNil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})
}

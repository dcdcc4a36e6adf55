package validator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/pixkit/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	rule := validator.Required("name", "Maria")
	assert.True(t, rule.Check())
	assert.Equal(t, "name", rule.Error.Field)
	assert.Equal(t, "field is required", rule.Error.Message)
	assert.Equal(t, "validation.required", rule.Error.TranslationKey)
	assert.Equal(t, map[string]any{"field": "name"}, rule.Error.TranslationValues)

	assert.False(t, validator.Required("name", "").Check())
	assert.False(t, validator.Required("name", " \t\n").Check())
}

func TestMinLenMaxLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		min   int
		max   int
		okMin bool
		okMax bool
	}{
		{"ascii within bounds", "abcdef", 6, 6, true, true},
		{"multibyte counted as characters", "João", 4, 4, true, true},
		{"too short", "ab", 3, 10, false, true},
		{"too long", "abcdefghijk", 3, 10, true, false},
		{"empty", "", 1, 10, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.okMin, validator.MinLen("f", tt.value, tt.min).Check())
			assert.Equal(t, tt.okMax, validator.MaxLen("f", tt.value, tt.max).Check())
		})
	}

	rule := validator.MinLen("password", "123", 6)
	assert.Equal(t, "must be at least 6 characters long", rule.Error.Message)
	assert.Equal(t, "validation.min_length", rule.Error.TranslationKey)
	assert.Equal(t, 6, rule.Error.TranslationValues["min"])
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"ana@example.com", true},
		{"ana.silva+pix@mail.example.com.br", true},
		{"", false},
		{"   ", false},
		{"ana", false},
		{"ana@localhost", false},
		{"@example.com", false},
		{"ana@example..com", false},
		{"Ana <ana@example.com>", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.ValidEmail("email", tt.value).Check())
		})
	}
}

func TestValidCPF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"11144477735", true},
		{"111.444.777-35", true},
		{"12345678909", true},
		{"12345678900", false},
		{"00000000000", false},
		{"", false},
		{"123", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.ValidCPF("cpf", tt.value).Check())
		})
	}

	rule := validator.ValidCPF("cpf", "")
	assert.Equal(t, "invalid CPF, check the verification digits", rule.Error.Message)
	assert.Equal(t, "validation.cpf", rule.Error.TranslationKey)
}

func TestValidPixKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"111.444.777-35", true},
		{"11.222.333/0001-81", true},
		{"pagamentos@example.com", true},
		{"+5511987654321", true},
		{"123e4567-e89b-12d3-a456-426614174000", true},
		{"11987654321", false},
		{"11.222.333/0001-82", false},
		{"not a key", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.ValidPixKey("pix_key", tt.value).Check())
		})
	}

	assert.Equal(t, "validation.pix_key", validator.ValidPixKey("pix_key", "").Error.TranslationKey)
}

func TestMinAmount(t *testing.T) {
	t.Parallel()

	min := decimal.RequireFromString("0.01")

	assert.True(t, validator.MinAmount("amount", decimal.RequireFromString("0.01"), min).Check())
	assert.True(t, validator.MinAmount("amount", decimal.RequireFromString("150.00"), min).Check())
	assert.False(t, validator.MinAmount("amount", decimal.Zero, min).Check())
	assert.False(t, validator.MinAmount("amount", decimal.RequireFromString("-5"), min).Check())

	rule := validator.MinAmount("amount", decimal.Zero, min)
	assert.Equal(t, "amount must be at least 0.01", rule.Error.Message)
	assert.Equal(t, "validation.min_amount", rule.Error.TranslationKey)
	assert.Equal(t, "0.01", rule.Error.TranslationValues["min"])
}

func TestMaxAmount(t *testing.T) {
	t.Parallel()

	max := decimal.RequireFromString("1000")

	assert.True(t, validator.MaxAmount("amount", decimal.RequireFromString("999.99"), max).Check())
	assert.True(t, validator.MaxAmount("amount", max, max).Check())
	assert.False(t, validator.MaxAmount("amount", decimal.RequireFromString("1000.01"), max).Check())
	assert.Equal(t, "1000.00", validator.MaxAmount("amount", max, max).Error.TranslationValues["max"])
}

func TestDecimalPlaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{value: "10", valid: true},
		{value: "10.5", valid: true},
		{value: "0.01", valid: true},
		{value: "1234.56", valid: true},
		{value: "1.234", valid: false},
		{value: "0.011", valid: false},
		{value: "1.230", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			rule := validator.DecimalPlaces("amount", decimal.RequireFromString(tt.value), 2)
			assert.Equal(t, tt.valid, rule.Check())
		})
	}

	rule := validator.DecimalPlaces("amount", decimal.RequireFromString("0.011"), 2)
	assert.Equal(t, "value cannot have more than 2 decimal places", rule.Error.Message)
	assert.Equal(t, "validation.decimal_places", rule.Error.TranslationKey)
	assert.Equal(t, 2, rule.Error.TranslationValues["places"])
}

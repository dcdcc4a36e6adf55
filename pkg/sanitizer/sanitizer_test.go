package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/pixkit/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"  John.Doe...@Example.COM ": "john.doe@example.com",
		".user.@mail.com":            "user@mail.com",
		"no-at-sign":                 "no-at-sign",
		"A@B@C.com":                  "a@b@c.com",
		"":                           "",
	}
	for input, want := range tests {
		assert.Equal(t, want, sanitizer.NormalizeEmail(input), input)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", sanitizer.NormalizeWhitespace("  a \t b\n\nc "))
	assert.Equal(t, "", sanitizer.NormalizeWhitespace(" \n "))
}

func TestCapitalizeWords(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"joão da silva":     "João Da Silva",
		"  maria   clara  ": "Maria Clara",
		"joão DA silva":     "João DA Silva",
		"ana":               "Ana",
		"":                  "",
	}
	for input, want := range tests {
		assert.Equal(t, want, sanitizer.CapitalizeWords(input), input)
	}
}

func TestASCIIFold(t *testing.T) {
	t.Parallel()

	tests := []struct{ input, want string }{
		{"São Paulo", "Sao Paulo"},
		{"Florianópolis", "Florianopolis"},
		{"Açaí & Cia", "Acai & Cia"},
		{"emoji 🎉 removed", "emoji  removed"},
		{"tab\there", "tab here"},
		{"plain ascii 123", "plain ascii 123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizer.ASCIIFold(tt.input), tt.input)
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.NormalizeWhitespace, sanitizer.CapitalizeWords)
	assert.Equal(t, "João Da Silva", clean("  joão   da silva "))
	assert.Equal(t, "x", sanitizer.Apply("x"))
}

package validator

import (
	"github.com/dmitrymomot/pixkit/pkg/cpf"
	"github.com/dmitrymomot/pixkit/pkg/pix"
)

// ValidCPF validates a Brazilian individual taxpayer number. Punctuation is
// ignored, so "111.444.777-35" and "11144477735" are equivalent.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return cpf.IsValid(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid CPF, check the verification digits",
			TranslationKey: "validation.cpf",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPixKey validates a PIX key of any supported type: CPF, CNPJ, e-mail,
// +55 phone number or random (EVP) key.
func ValidPixKey(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := pix.ParseKey(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid PIX key",
			TranslationKey: "validation.pix_key",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

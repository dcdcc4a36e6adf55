package pix

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/pixkit/pkg/cpf"
)

// KeyType identifies the kind of a PIX key.
type KeyType string

const (
	KeyCPF   KeyType = "cpf"
	KeyCNPJ  KeyType = "cnpj"
	KeyEmail KeyType = "email"
	KeyPhone KeyType = "phone"
	KeyEVP   KeyType = "evp"
)

const maxEmailKeyLength = 77

// Key is a classified PIX key in the normalized form expected inside payloads.
type Key struct {
	Type  KeyType
	Value string
}

// ParseKey classifies raw and returns its normalized form.
// Phone keys must carry the +55 country code; CPF and CNPJ keys may be masked.
func ParseKey(raw string) (Key, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Key{}, ErrEmptyKey
	}

	switch {
	case strings.HasPrefix(raw, "+"):
		digits := cpf.Normalize(raw)
		if !strings.HasPrefix(digits, "55") || len(digits) < 12 || len(digits) > 13 || len(digits) != len(raw)-1 {
			return Key{}, ErrInvalidKey
		}
		return Key{Type: KeyPhone, Value: "+" + digits}, nil

	case strings.Contains(raw, "@"):
		email := strings.ToLower(raw)
		if !looksLikeEmail(email) {
			return Key{}, ErrInvalidKey
		}
		return Key{Type: KeyEmail, Value: email}, nil

	case len(raw) == 36 && strings.Count(raw, "-") == 4:
		id, err := uuid.Parse(raw)
		if err != nil {
			return Key{}, ErrInvalidKey
		}
		return Key{Type: KeyEVP, Value: id.String()}, nil
	}

	if strings.Trim(raw, "0123456789.-/ ") != "" {
		return Key{}, ErrInvalidKey
	}

	digits := cpf.Normalize(raw)
	switch len(digits) {
	case cpf.Length:
		if cpf.IsValid(digits) {
			return Key{Type: KeyCPF, Value: digits}, nil
		}
	case cnpjLength:
		if validCNPJ(digits) {
			return Key{Type: KeyCNPJ, Value: digits}, nil
		}
	}

	return Key{}, ErrInvalidKey
}

func looksLikeEmail(s string) bool {
	if len(s) > maxEmailKeyLength || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return !strings.Contains(domain, "..")
}

const cnpjLength = 14

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// validCNPJ checks a 14-digit company registry number.
func validCNPJ(digits string) bool {
	if len(digits) != cnpjLength || strings.Count(digits, digits[:1]) == cnpjLength {
		return false
	}
	return cnpjDigit(digits, cnpjFirstWeights) == digits[12] &&
		cnpjDigit(digits, cnpjSecondWeights) == digits[13]
}

func cnpjDigit(digits string, weights []int) byte {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	if r := sum % 11; r >= 2 {
		return byte('0' + 11 - r)
	}
	return '0'
}

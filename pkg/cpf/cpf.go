package cpf

import "strings"

// Length is the number of digits in a normalized CPF.
const Length = 11

const baseLength = Length - 2

// IsValid reports whether candidate is a structurally and arithmetically valid
// CPF. Formatting characters are ignored. It never panics.
func IsValid(candidate string) bool {
	digits := Normalize(candidate)
	if len(digits) != Length {
		return false
	}

	if allSame(digits) {
		return false
	}

	return checkDigit(digits[:baseLength]) == digits[9] &&
		checkDigit(digits[:baseLength+1]) == digits[10]
}

// Parse returns the digit-only form of s, or ErrInvalid.
func Parse(s string) (string, error) {
	digits := Normalize(s)
	if !IsValid(digits) {
		return "", ErrInvalid
	}
	return digits, nil
}

// Normalize drops every rune that is not an ASCII digit.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// CheckDigits computes the two check digits for a 9-digit base.
// The base is normalized first; ok is false when it does not hold exactly 9 digits.
func CheckDigits(base string) (digits string, ok bool) {
	base = Normalize(base)
	if len(base) != baseLength {
		return "", false
	}

	first := checkDigit(base)
	second := checkDigit(base + string(first))
	return string([]byte{first, second}), true
}

// Format renders an 11-digit value as 000.000.000-00.
// Inputs that do not normalize to 11 digits are returned unchanged.
func Format(s string) string {
	d := Normalize(s)
	if len(d) != Length {
		return s
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// Mask hides the first three and the check digits: ***.444.777-**.
// Inputs that do not normalize to 11 digits are fully masked.
func Mask(s string) string {
	d := Normalize(s)
	if len(d) != Length {
		return strings.Repeat("*", len(d))
	}
	return "***." + d[3:6] + "." + d[6:9] + "-**"
}

// checkDigit returns the modulo-11 check digit for prefix, weighting the
// leftmost digit with len(prefix)+1 down to 2 for the rightmost one.
func checkDigit(prefix string) byte {
	weight := len(prefix) + 1
	sum := 0
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (weight - i)
	}

	remainder := 11 - sum%11
	if remainder >= 10 {
		return '0'
	}
	return byte('0' + remainder)
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

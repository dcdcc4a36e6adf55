package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CapitalizeWords upper-cases the first letter of every word and keeps the
// rest of each word as typed: "joão DA silva" becomes "João DA Silva".
func CapitalizeWords(s string) string {
	s = NormalizeWhitespace(s)
	if s == "" {
		return s
	}
	// cases.Caser keeps internal state, so a new one is built per call.
	return cases.Title(language.BrazilianPortuguese, cases.NoLower).String(s)
}

// ASCIIFold strips diacritics and drops any rune that still falls outside
// printable ASCII: "São João" becomes "Sao Joao".
func ASCIIFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			if unicode.IsSpace(r) {
				return ' '
			}
			return -1
		}
		return r
	}, folded)
}

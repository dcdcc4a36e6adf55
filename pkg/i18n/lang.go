package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds the header size we are willing to parse.
const maxAcceptLanguageLength = 4096

type langWithQ struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader returns the header's language ranges ordered by
// quality, highest first. Malformed quality values count as 1.
func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ
	for part := range strings.SplitSeq(header, ",") {
		lang, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == "" || lang == "*" {
			continue
		}

		q := 1.0
		if qs, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if v, err := strconv.ParseFloat(qs, 64); err == nil && v >= 0 && v <= 1 {
				q = v
			}
		}
		if q == 0 {
			continue
		}
		languages = append(languages, langWithQ{lang: lang, q: q})
	}

	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})

	return languages
}

func baseLang(lang string) string {
	base, _, _ := strings.Cut(lang, "-")
	return base
}

// ParseAcceptLanguage picks the best supported language for an Accept-Language
// header. Exact matches win over base-language matches, so with "pt-BR" and
// "en" supported, "pt" and "pt-PT" both resolve to "pt-BR". The returned value
// is spelled as in supported.
func ParseAcceptLanguage(header string, supported []string, defaultLang string) string {
	languages := parseAcceptLanguageHeader(header)
	if len(languages) == 0 || len(supported) == 0 {
		return defaultLang
	}

	for _, lq := range languages {
		for _, s := range supported {
			if strings.EqualFold(s, lq.lang) {
				return s
			}
		}
	}

	for _, lq := range languages {
		for _, s := range supported {
			if strings.EqualFold(baseLang(s), baseLang(lq.lang)) {
				return s
			}
		}
	}

	return defaultLang
}

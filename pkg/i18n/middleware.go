package i18n

import "net/http"

// Middleware negotiates the response language from the Accept-Language header
// against the translator's catalog and stores it in the request context.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	supported := t.SupportedLanguages()
	fallback := t.DefaultLanguage()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ParseAcceptLanguage(r.Header.Get("Accept-Language"), supported, fallback)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

// Package i18n provides a small message catalog for user-facing text.
//
// Translations live in YAML files, one top-level tree per language:
//
//	pt-BR:
//	  validation:
//	    cpf: "CPF inválido. Verifique os dígitos verificadores."
//
// Nested keys are addressed with dots ("validation.cpf") and may contain
// named placeholders in the form %{name}. Lookups fall back to the default
// language and then to the key itself, so a missing translation never yields
// an empty string.
//
// The catalog shipped with the service is embedded and loaded with Default.
// Middleware negotiates the request language from Accept-Language and stores
// it in the request context for GetLocale.
package i18n

// Package sanitizer normalizes user input before it is validated or stored.
//
// The helpers cover what registration and payment forms need: e-mail
// normalization, whitespace cleanup, capitalization of personal names and
// folding of accented text into plain ASCII for fields that only accept it
// (such as the merchant name and city of a PIX payload).
//
//	clean := sanitizer.Compose(
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.CapitalizeWords,
//	)
//	name := clean("  joão   da silva ") // "João Da Silva"
//
// None of the helpers returns an error; they fall back to the most faithful
// result they can produce. There is no global mutable state, so the package is
// safe for concurrent use.
package sanitizer

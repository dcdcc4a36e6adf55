// Package cpf validates and formats Brazilian individual taxpayer numbers
// (Cadastro de Pessoas Físicas).
//
// A CPF is an 11-digit identifier whose last two digits are check digits
// computed from the preceding ones with a weighted modulo-11 sum. User input
// usually arrives masked ("111.444.777-35"), so every helper first strips
// anything that is not an ASCII digit.
//
// # Usage
//
//	import "github.com/dmitrymomot/pixkit/pkg/cpf"
//
//	if !cpf.IsValid("111.444.777-35") {
//		// reject the form
//	}
//
//	normalized, err := cpf.Parse(input) // "11144477735" or ErrInvalid
//	display := cpf.Format(normalized)   // "111.444.777-35"
//	safe := cpf.Mask(normalized)        // "***.444.777-**"
//
// # Repeated digits
//
// Sequences made of a single repeated digit ("000.000.000-00",
// "111.111.111-11", ...) satisfy the checksum arithmetic but were never issued,
// so IsValid rejects them explicitly.
//
// All functions are pure, allocation-light and safe for concurrent use.
package cpf

// Package user implements account registration, credential checks and
// profile pictures. CPF and e-mail are unique across accounts; a conflict on
// either (or both) is reported with a dedicated sentinel error.
package user

package cpf

import "errors"

// ErrInvalid is returned by Parse when the input is not a valid CPF.
var ErrInvalid = errors.New("invalid CPF")

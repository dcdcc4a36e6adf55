package pix

import "errors"

var (
	ErrEmptyKey       = errors.New("pix key is required")
	ErrInvalidKey     = errors.New("invalid pix key")
	ErrFieldTooLong   = errors.New("payload field exceeds maximum length")
	ErrEmptyField     = errors.New("payload field is empty")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidTxID    = errors.New("invalid transaction id")
	ErrMalformed      = errors.New("malformed pix payload")
	ErrChecksumFailed = errors.New("pix payload checksum mismatch")
)

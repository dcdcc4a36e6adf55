package qrcode

import skipqrcode "github.com/skip2/go-qrcode"

// RecoveryLevel is the error correction level of the rendered symbol.
type RecoveryLevel = skipqrcode.RecoveryLevel

const (
	Low     = skipqrcode.Low
	Medium  = skipqrcode.Medium
	High    = skipqrcode.High
	Highest = skipqrcode.Highest
)

type options struct {
	size     int
	level    RecoveryLevel
	noBorder bool
}

// Option customizes rendering.
type Option func(*options)

// WithSize sets the image width and height in pixels. Non-positive values keep
// the default; values above MaxSize are clamped.
func WithSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.size = min(px, MaxSize)
		}
	}
}

// WithRecoveryLevel sets the error correction level. Medium is the default.
func WithRecoveryLevel(level RecoveryLevel) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithoutBorder drops the quiet zone around the symbol.
func WithoutBorder() Option {
	return func(o *options) {
		o.noBorder = true
	}
}

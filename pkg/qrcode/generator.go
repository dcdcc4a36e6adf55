package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when content is empty or only whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToGenerateQRCode wraps failures of the underlying encoder,
	// such as content too long for any QR version.
	ErrFailedToGenerateQRCode = errors.New("failed to generate QR code")
)

const (
	// DefaultSize is the image size in pixels when WithSize is not given.
	DefaultSize = 256
	// MaxSize caps the rendered image size.
	MaxSize = 2048
)

// Generate renders content as a PNG image.
func Generate(content string, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	o := options{size: DefaultSize, level: Medium}
	for _, opt := range opts {
		opt(&o)
	}

	q, err := skipqrcode.New(content, o.level)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	q.DisableBorder = o.noBorder

	png, err := q.PNG(o.size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return png, nil
}

// GenerateBase64Image renders content as a "data:image/png;base64,..." URI
// suitable for an <img> src attribute.
func GenerateBase64Image(content string, opts ...Option) (string, error) {
	png, err := Generate(content, opts...)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

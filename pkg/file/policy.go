package file

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"
)

// Policy bounds what an upload may contain.
type Policy struct {
	MaxBytes     int64
	AllowedTypes []string
}

// ProfilePicturePolicy accepts JPEG, PNG and WebP images up to 500000 bytes.
var ProfilePicturePolicy = Policy{
	MaxBytes:     500_000,
	AllowedTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/webp"},
}

// Check validates fh against the policy and returns the sniffed MIME type.
func (p Policy) Check(fh *multipart.FileHeader) (string, error) {
	if p.MaxBytes > 0 {
		if err := ValidateSize(fh, p.MaxBytes); err != nil {
			return "", err
		}
	}
	return ValidateMIMEType(fh, p.AllowedTypes...)
}

// ValidateSize checks the size reported by the multipart parser.
func ValidateSize(fh *multipart.FileHeader, maxBytes int64) error {
	if fh == nil {
		return ErrNilFileHeader
	}
	if fh.Size > maxBytes {
		return fmt.Errorf("file size %d bytes exceeds %d bytes limit: %w", fh.Size, maxBytes, ErrFileTooLarge)
	}
	return nil
}

// ValidateMIMEType sniffs the content type and checks it against allowed.
// With no allowed types every type passes. The sniffed type is returned.
func ValidateMIMEType(fh *multipart.FileHeader, allowed ...string) (string, error) {
	mimeType, err := DetectMIMEType(fh)
	if err != nil {
		return "", err
	}
	if len(allowed) > 0 && !slices.Contains(allowed, mimeType) {
		return "", fmt.Errorf("MIME type %s not in allowed types %v: %w", mimeType, allowed, ErrMIMETypeNotAllowed)
	}
	return mimeType, nil
}

// DetectMIMEType reads the first 512 bytes of the upload and classifies them
// with http.DetectContentType.
func DetectMIMEType(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNilFileHeader
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 512)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	return http.DetectContentType(buf[:n]), nil
}

// Extension maps an image MIME type to the file extension used for storage keys.
func Extension(mimeType string) string {
	switch mimeType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}

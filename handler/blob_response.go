package handler

import (
	"net/http"
	"strconv"
)

// blobResponse writes raw bytes with a fixed content type.
type blobResponse struct {
	status      int
	contentType string
	data        []byte
	headers     http.Header
}

func (b blobResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for key, values := range b.headers {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.Header().Set("Content-Type", b.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b.data)))
	w.WriteHeader(b.status)
	_, err := w.Write(b.data)
	return err
}

// BlobOption configures a binary response.
type BlobOption func(*blobResponse)

// WithBlobHeader adds a response header.
func WithBlobHeader(key, value string) BlobOption {
	return func(b *blobResponse) {
		if b.headers == nil {
			b.headers = make(http.Header)
		}
		b.headers.Add(key, value)
	}
}

// Blob creates a 200 response carrying data as-is.
//
// Example:
//
//	return handler.Blob("image/png", png,
//		handler.WithBlobHeader("Cache-Control", "private, max-age=3600"),
//	)
func Blob(contentType string, data []byte, opts ...BlobOption) Response {
	b := &blobResponse{
		status:      http.StatusOK,
		contentType: contentType,
		data:        data,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

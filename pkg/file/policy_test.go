package file_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pixkit/pkg/file"
)

var (
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	pngBytes  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n', 0x00, 0x00}
	webpBytes = []byte("RIFF\x24\x00\x00\x00WEBPVP8 ")
	gifBytes  = []byte("GIF89a\x01\x00\x01\x00")
)

func createFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := &http.Request{
		Method: http.MethodPost,
		Header: http.Header{"Content-Type": []string{writer.FormDataContentType()}},
		Body:   io.NopCloser(body),
	}
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestDetectMIMEType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		content  []byte
		want     string
	}{
		{"jpeg", "a.jpg", jpegBytes, "image/jpeg"},
		{"png", "a.png", pngBytes, "image/png"},
		{"webp", "a.webp", webpBytes, "image/webp"},
		{"gif", "a.gif", gifBytes, "image/gif"},
		{"text renamed as png", "evil.png", []byte("hello world"), "text/plain; charset=utf-8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := file.DetectMIMEType(createFileHeader(t, tt.filename, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := file.DetectMIMEType(nil)
	assert.ErrorIs(t, err, file.ErrNilFileHeader)
}

func TestValidateSize(t *testing.T) {
	t.Parallel()

	fh := createFileHeader(t, "a.jpg", jpegBytes)
	assert.NoError(t, file.ValidateSize(fh, int64(len(jpegBytes))))
	assert.ErrorIs(t, file.ValidateSize(fh, int64(len(jpegBytes))-1), file.ErrFileTooLarge)
	assert.ErrorIs(t, file.ValidateSize(nil, 10), file.ErrNilFileHeader)
}

func TestValidateMIMEType(t *testing.T) {
	t.Parallel()

	fh := createFileHeader(t, "a.png", pngBytes)

	got, err := file.ValidateMIMEType(fh, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", got)

	got, err = file.ValidateMIMEType(fh)
	require.NoError(t, err)
	assert.Equal(t, "image/png", got)

	_, err = file.ValidateMIMEType(fh, "image/jpeg")
	assert.ErrorIs(t, err, file.ErrMIMETypeNotAllowed)
}

func TestProfilePicturePolicy(t *testing.T) {
	t.Parallel()

	t.Run("accepts supported images", func(t *testing.T) {
		t.Parallel()
		for _, content := range [][]byte{jpegBytes, pngBytes, webpBytes} {
			_, err := file.ProfilePicturePolicy.Check(createFileHeader(t, "avatar", content))
			assert.NoError(t, err)
		}
	})

	t.Run("rejects gif", func(t *testing.T) {
		t.Parallel()
		_, err := file.ProfilePicturePolicy.Check(createFileHeader(t, "avatar.gif", gifBytes))
		assert.ErrorIs(t, err, file.ErrMIMETypeNotAllowed)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		t.Parallel()
		big := append(bytes.Clone(jpegBytes), make([]byte, 500_000)...)
		_, err := file.ProfilePicturePolicy.Check(createFileHeader(t, "avatar.jpg", big))
		assert.ErrorIs(t, err, file.ErrFileTooLarge)
	})

	t.Run("accepts file at the limit", func(t *testing.T) {
		t.Parallel()
		exact := append(bytes.Clone(jpegBytes), make([]byte, 500_000-len(jpegBytes))...)
		mimeType, err := file.ProfilePicturePolicy.Check(createFileHeader(t, "avatar.jpg", exact))
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", mimeType)
	})
}

func TestExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".jpg", file.Extension("image/jpeg"))
	assert.Equal(t, ".jpg", file.Extension("image/jpg"))
	assert.Equal(t, ".png", file.Extension("image/png"))
	assert.Equal(t, ".webp", file.Extension("image/webp"))
	assert.Equal(t, "", file.Extension("application/pdf"))
}

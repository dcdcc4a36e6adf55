package file

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
)

// Object describes a stored file.
type Object struct {
	Key         string
	ContentType string
	Size        int64
	URL         string
}

// Storage persists uploaded files under slash-separated keys.
type Storage interface {
	// Put writes body under key, replacing any existing object.
	Put(ctx context.Context, key string, body io.Reader, contentType string) (*Object, error)
	// Delete removes the object; a missing object yields ErrFileNotFound.
	Delete(ctx context.Context, key string) error
	// URL returns the public URL of key.
	URL(key string) string
}

// cleanKey rejects keys that are empty or escape the storage root.
func cleanKey(key string) (string, error) {
	key = strings.TrimPrefix(strings.ReplaceAll(key, "\\", "/"), "/")
	if key == "" || strings.Contains(key, "\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}
	for part := range strings.SplitSeq(key, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
		}
	}
	key = path.Clean(key)
	if key == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}
	return key, nil
}

func joinURL(base, key string) string {
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(key, "/")
}

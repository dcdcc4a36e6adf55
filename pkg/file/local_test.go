package file_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pixkit/pkg/file"
)

func TestLocalStorage_PutDelete(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := file.NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	ctx := context.Background()
	obj, err := s.Put(ctx, "avatars/u1/picture.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "avatars/u1/picture.png", obj.Key)
	assert.Equal(t, int64(len("png-bytes")), obj.Size)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, "/uploads/avatars/u1/picture.png", obj.URL)

	data, err := os.ReadFile(filepath.Join(dir, "avatars", "u1", "picture.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	// overwrite
	_, err = s.Put(ctx, "avatars/u1/picture.png", strings.NewReader("v2"), "image/png")
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(dir, "avatars", "u1", "picture.png"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))

	entries, err := os.ReadDir(filepath.Join(dir, "avatars", "u1"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")

	require.NoError(t, s.Delete(ctx, "avatars/u1/picture.png"))
	assert.ErrorIs(t, s.Delete(ctx, "avatars/u1/picture.png"), file.ErrFileNotFound)
}

func TestLocalStorage_RejectsUnsafeKeys(t *testing.T) {
	t.Parallel()

	s, err := file.NewLocalStorage(t.TempDir(), "/uploads/")
	require.NoError(t, err)

	for _, key := range []string{"", "../escape.png", "a/../../escape.png", "a\\..\\..\\escape.png", ".", "/"} {
		_, err := s.Put(context.Background(), key, strings.NewReader("x"), "text/plain")
		assert.ErrorIs(t, err, file.ErrInvalidPath, "key %q", key)
		assert.ErrorIs(t, s.Delete(context.Background(), key), file.ErrInvalidPath, "key %q", key)
	}
}

func TestLocalStorage_CanceledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := file.NewLocalStorage(dir, "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Put(ctx, "a.png", strings.NewReader("x"), "image/png")
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(dir, "a.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewLocalStorage_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := file.NewLocalStorage("", "/uploads/")
	assert.ErrorIs(t, err, file.ErrInvalidConfig)
}

func TestNew(t *testing.T) {
	t.Parallel()

	s, err := file.New(context.Background(), file.Config{Driver: file.DriverLocal, LocalDir: t.TempDir(), LocalBaseURL: "/u/"})
	require.NoError(t, err)
	assert.IsType(t, &file.LocalStorage{}, s)
	assert.Equal(t, "/u/a.png", s.URL("a.png"))

	_, err = file.New(context.Background(), file.Config{Driver: "ftp"})
	assert.ErrorIs(t, err, file.ErrInvalidConfig)

	_, err = file.New(context.Background(), file.Config{Driver: file.DriverS3})
	assert.ErrorIs(t, err, file.ErrInvalidConfig)
}

package file

import (
	"context"
	"fmt"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Config selects and configures the storage backend.
type Config struct {
	Driver       string `env:"STORAGE_DRIVER" envDefault:"local"`
	LocalDir     string `env:"STORAGE_LOCAL_DIR" envDefault:"./uploads"`
	LocalBaseURL string `env:"STORAGE_LOCAL_BASE_URL" envDefault:"/uploads/"`
	S3           S3Config
}

// New builds the backend named by cfg.Driver.
func New(ctx context.Context, cfg Config, opts ...S3Option) (Storage, error) {
	switch cfg.Driver {
	case DriverLocal, "":
		return NewLocalStorage(cfg.LocalDir, cfg.LocalBaseURL)
	case DriverS3:
		return NewS3Storage(ctx, cfg.S3, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, cfg.Driver)
	}
}

package media

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"product-admin/internal/config"
)

// Folder is the namespace every product image is filed under.
const Folder = "products"

var ErrNotConfigured = errors.New("media host not configured")

// Result identifies an uploaded asset on the media host.
type Result struct {
	URL      string
	PublicID string
}

// Uploader sends a complete local file to the media host.
type Uploader interface {
	Upload(ctx context.Context, localPath, folder string) (Result, error)
}

// NewUploader builds the uploader selected by cfg.Provider.
func NewUploader(ctx context.Context, cfg config.MediaConfig) (Uploader, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "cloudinary":
		u, err := NewCloudinaryUploader(cfg.Cloudinary)
		if err != nil {
			return nil, err
		}
		return u, nil
	case "minio":
		u, err := NewMinIOUploader(ctx, cfg.MinIO)
		if err != nil {
			return nil, err
		}
		return u, nil
	default:
		return nil, fmt.Errorf("unknown media provider %q", cfg.Provider)
	}
}

// Unavailable is an Uploader whose every call fails with the given cause.
// It keeps the upload route mounted when the media host is misconfigured.
type Unavailable struct {
	Err error
}

func (u Unavailable) Upload(context.Context, string, string) (Result, error) {
	if u.Err == nil {
		return Result{}, ErrNotConfigured
	}
	return Result{}, u.Err
}

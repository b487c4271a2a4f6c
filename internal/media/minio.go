package media

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"product-admin/internal/config"
)

// MinIOUploader stores images in an S3-compatible bucket.
type MinIOUploader struct {
	client *minio.Client
	bucket string
}

// NewMinIOUploader creates the client and makes sure the bucket exists.
func NewMinIOUploader(ctx context.Context, cfg config.MinIOConfig) (*MinIOUploader, error) {
	u, err := newMinIOClient(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := u.client.MakeBucket(ctx, u.bucket, minio.MakeBucketOptions{}); err != nil {
		exists, xerr := u.client.BucketExists(ctx, u.bucket)
		if xerr != nil || !exists {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return u, nil
}

func newMinIOClient(cfg config.MinIOConfig) (*MinIOUploader, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("minio: %w", ErrNotConfigured)
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	return &MinIOUploader{client: mc, bucket: cfg.Bucket}, nil
}

func (u *MinIOUploader) Upload(ctx context.Context, localPath, folder string) (Result, error) {
	key := objectKey(folder, localPath)

	contentType := "application/octet-stream"
	if mt, err := mimetype.DetectFile(localPath); err == nil {
		contentType = mt.String()
	}

	if _, err := u.client.FPutObject(ctx, u.bucket, key, localPath, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return Result{}, fmt.Errorf("minio put %s: %w", key, err)
	}
	return Result{URL: u.objectURL(key), PublicID: key}, nil
}

func (u *MinIOUploader) objectURL(key string) string {
	return strings.TrimRight(u.client.EndpointURL().String(), "/") + "/" + u.bucket + "/" + key
}

func objectKey(folder, localPath string) string {
	return path.Join(folder, uuid.NewString()+strings.ToLower(filepath.Ext(localPath)))
}

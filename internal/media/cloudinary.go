package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"product-admin/internal/config"
)

// CloudinaryUploader uploads images to a Cloudinary account.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cfg config.CloudinaryConfig) (*CloudinaryUploader, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("cloudinary: %w", ErrNotConfigured)
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, localPath, folder string) (Result, error) {
	resp, err := u.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{Folder: folder})
	if err != nil {
		return Result{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	return cloudinaryResult(resp)
}

func cloudinaryResult(resp *uploader.UploadResult) (Result, error) {
	if resp == nil {
		return Result{}, errors.New("cloudinary upload: empty response")
	}
	if resp.Error.Message != "" {
		return Result{}, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return Result{}, errors.New("cloudinary upload: response has no secure_url")
	}
	return Result{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

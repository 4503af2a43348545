package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/yatube/api/internal/config"
)

// MaxImageSize caps post image uploads at 5 MiB
const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// MediaService stores post images in an S3-compatible object store. Objects
// get random names so uploads never collide or overwrite each other.
type MediaService struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMediaService creates a media service backed by MinIO. Returns nil when
// media uploads are disabled; callers treat a nil service as "no images".
func NewMediaService(cfg config.MediaConfig) (*MediaService, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &MediaService{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// EnsureBucket creates the media bucket if it does not exist yet
func (s *MediaService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// UploadImage stores an image and returns its public URL
func (s *MediaService) UploadImage(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	if !allowedImageTypes[contentType] {
		return "", ErrUnsupportedImage
	}
	if size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	objectName := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}

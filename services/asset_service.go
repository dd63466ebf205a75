// File: /services/asset_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
	"github.com/saeed5077/blog-app/config"
	"github.com/saeed5077/blog-app/models"
)

// AssetService stores post cover images in an S3-compatible object store.
type AssetService struct {
	client *minio.Client
	bucket string
	folder string
	logger zerolog.Logger
}

func NewAssetService(cfg *config.Config, logger zerolog.Logger) (*AssetService, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create asset store client: %w", err)
	}

	return &AssetService{
		client: client,
		bucket: cfg.MinioBucket,
		folder: "blog-app",
		logger: logger,
	}, nil
}

// Upload stores a cover image and returns the handle to persist on the post.
// The object name doubles as the deletable asset id.
func (s *AssetService) Upload(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (*models.CoverImage, error) {
	objectName := path.Join(s.folder, uuid.New().String()+path.Ext(filename))

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload cover image: %w", err)
	}

	return &models.CoverImage{
		URL:     s.client.EndpointURL().String() + "/" + s.bucket + "/" + objectName,
		AssetID: objectName,
	}, nil
}

// Delete removes a stored asset. Callers treat failures as best-effort.
func (s *AssetService) Delete(ctx context.Context, assetID string) error {
	err := s.client.RemoveObject(ctx, s.bucket, assetID, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	return nil
}

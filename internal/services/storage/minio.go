package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/onegreenvn/campaign-generator-backend/internal/config"
	"github.com/sirupsen/logrus"
)

// PresignExpiry is how long a download link of an uploaded export stays valid
const PresignExpiry = 24 * time.Hour

// ExportStore uploads export files to a MinIO bucket
type ExportStore struct {
	client *minio.Client
	bucket string
}

// NewExportStore connects to MinIO and makes sure the export bucket exists
func NewExportStore(ctx context.Context, cfg *config.Config) (*ExportStore, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket '%s' created", cfg.MinIOBucket)
	}

	logrus.WithField("endpoint", cfg.MinIOEndpoint).Info("MinIO connected")
	return &ExportStore{client: client, bucket: cfg.MinIOBucket}, nil
}

// ObjectName places a file under exports/<yyyy>/<mm>/<dd>/
func ObjectName(filename string, now time.Time) string {
	return path.Join("exports", now.UTC().Format("2006/01/02"), filename)
}

// Upload stores an export and returns a presigned download URL
func (s *ExportStore) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	objectName := ObjectName(filename, time.Now())

	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload export: %w", err)
	}

	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", filename))
	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, PresignExpiry, reqParams)
	if err != nil {
		return "", fmt.Errorf("failed to presign export URL: %w", err)
	}

	logrus.Infof("Export uploaded: %s", objectName)
	return presignedURL.String(), nil
}

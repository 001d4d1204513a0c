package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/UgurucanDuman/Autonova/pkg/utils"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ListingPhotoBucket holds every uploaded listing image, keyed
// <listing-id>/<index>-<filename>.
const ListingPhotoBucket = "listing-photos"

type Storager interface {
	SavePhoto(ctx context.Context, bucket, objectKey, contentType string, data []byte) error
	GetFileUrl(bucket string, objectKey string) (string, error)
	DeleteFile(ctx context.Context, bucket string, objectKey string) error
}

type MinioStorage struct {
	client *minio.Client
}

func NewMinioStorage() (*MinioStorage, error) {
	endpoint := utils.GetEnv("MINIO_ENDPOINT", "localhost:9000")
	accessKeyID := utils.GetEnv("MINIO_ACCESS_KEY", "minioadmin")
	secretAccessKey := utils.GetEnv("MINIO_SECRET_KEY", "minioadmin")
	useSSL := false

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioStorage{
		client: minioClient,
	}, nil
}

func (s *MinioStorage) SavePhoto(ctx context.Context, bucket, objectKey, contentType string, data []byte) error {
	// Check if bucket exists, create if not
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	if contentType == "" {
		contentType = "image/jpeg"
	}

	reader := bytes.NewReader(data)
	info, err := s.client.PutObject(ctx, bucket, objectKey, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload photo: %w", err)
	}
	slog.Info("Storage Layer: File uploaded", "key", info.Key, "size", info.Size)
	return nil
}

func (s *MinioStorage) GetFileUrl(bucket string, objectKey string) (string, error) {
	reqParams := make(url.Values)
	presignedURL, err := s.client.PresignedGetObject(context.Background(), bucket, objectKey, 24*time.Hour, reqParams)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return presignedURL.String(), nil
}

func (s *MinioStorage) DeleteFile(ctx context.Context, bucket string, objectKey string) error {
	if err := s.client.RemoveObject(ctx, bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

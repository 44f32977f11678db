package storage

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=../service/storage_mocks_test.go -package=service_test

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage defines the object storage operations used for exercise images.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows a PUT of the
	// object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL for a GET of the object.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	DeleteObject(ctx context.Context, objectKey string) error
}

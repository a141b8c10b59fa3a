package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage is the object-storage surface for generated visualization
// images. The server writes the bytes itself and hands the client a
// temporary download URL.
type FileStorage interface {
	// UploadObject stores the given bytes under objectKey.
	UploadObject(ctx context.Context, objectKey string, contentType string, data []byte) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for the object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

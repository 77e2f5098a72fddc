package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// AssetStorage is the object store holding mirrored copies of the
// motivational images.
type AssetStorage interface {
	// PresignedDownloadURL creates a temporary URL that allows GET requests
	// for viewing an object directly from the storage provider.
	PresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// ObjectExists reports whether objectKey is present in the bucket.
	// A missing object is (false, nil); err is reserved for failures.
	ObjectExists(ctx context.Context, objectKey string) (bool, error)
}

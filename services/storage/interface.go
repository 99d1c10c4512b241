package storage

import "context"

// StorageService defines the interface for media storage operations.
type StorageService interface {
	// UploadImage stores a local image file under the given folder and
	// returns its public URL and permanent identifier.
	UploadImage(ctx context.Context, localFilePath, destFolder string) (url string, publicID string, err error)
	// DeleteImage removes a stored image by its permanent identifier.
	DeleteImage(ctx context.Context, publicID string) error
}

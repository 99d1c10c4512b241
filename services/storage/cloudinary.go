package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements StorageService on Cloudinary.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &CloudinaryStorageService{
		cld:       cld,
		cloudName: cloudName,
	}
}

// UploadImage uploads a local image file into the given folder and returns
// its HTTPS delivery URL plus the Cloudinary public ID.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, localFilePath, destFolder string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", "", fmt.Errorf("CloudinaryStorageService: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("CloudinaryStorageService: no public ID returned")
	}
	return result.SecureURL, result.PublicID, nil
}

// DeleteImage removes an image from Cloudinary by its public ID.
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("CloudinaryStorageService: failed to delete file: %w", err)
	}
	return nil
}

package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"trailhub/models"
	"trailhub/services/storage"
	"trailhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageHandler handles trailer image uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

const maxImageSize = 10 << 20 // 10 MiB per file

// UploadTrailerImagesHandler handles POST /api/upload/trailer-images. It
// accepts a multipart form with one or more "images" files and returns one
// ImageItem per upload, ready to be merged into the photos section.
func (h *StorageHandler) UploadTrailerImagesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form: " + err.Error()})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no images provided"})
		return
	}

	destFolder := "trailers/" + userID
	items := make([]models.ImageItem, 0, len(files))
	for _, fileHeader := range files {
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if !allowedImageExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type: " + ext})
			return
		}
		if fileHeader.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image too large: " + fileHeader.Filename})
			return
		}

		tempFilePath := filepath.Join(os.TempDir(), uuid.New().String()+ext)
		if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
			logger.Error("failed to save uploaded file", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
			return
		}

		url, publicID, err := h.StorageSvc.UploadImage(c, tempFilePath, destFolder)
		os.Remove(tempFilePath)
		if err != nil {
			logger.Error("failed to upload image", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to upload image"})
			return
		}

		items = append(items, models.ImageItem{
			ID:       publicID,
			Name:     fileHeader.Filename,
			Size:     fileHeader.Size,
			URL:      url,
			Uploaded: true,
		})
	}

	c.JSON(http.StatusCreated, gin.H{"images": items})
}

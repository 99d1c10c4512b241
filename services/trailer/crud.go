package trailer

import (
	"context"
	"fmt"
	"time"

	"trailhub/models"
	"trailhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateFromListing publishes a new trailer from the listing workflow's
// formatted payload.
func (s *DefaultTrailerService) CreateFromListing(ownerID string, data models.TrailerApiData) (*models.Trailer, error) {
	logger := utils.GetLogger()

	now := time.Now()
	trailer := trailerFromApiData(data)
	trailer.ID = uuid.New().String()
	trailer.OwnerID = ownerID
	trailer.Available = true
	trailer.CreatedAt = now
	trailer.UpdatedAt = now

	if err := s.Repo.Create(&trailer); err != nil {
		logger.Error("CreateFromListing: failed to create trailer",
			zap.String("ownerID", ownerID), zap.Error(err))
		return nil, fmt.Errorf("failed to publish listing: %w", err)
	}
	return &trailer, nil
}

// UpdateFromListing replaces the content of an existing trailer. Ratings,
// ownership and timestamps are preserved.
func (s *DefaultTrailerService) UpdateFromListing(ownerID, trailerID string, data models.TrailerApiData) (*models.Trailer, error) {
	existing, err := s.Repo.GetByIDWithProjection(trailerID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load trailer: %w", err)
	}
	if existing == nil {
		return nil, ErrTrailerNotFound
	}
	if existing.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	updated := trailerFromApiData(data)
	updated.ID = existing.ID
	updated.OwnerID = existing.OwnerID
	updated.Available = existing.Available
	updated.Rating = existing.Rating
	updated.ReviewCount = existing.ReviewCount
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	if err := s.Repo.Update(&updated); err != nil {
		return nil, fmt.Errorf("failed to update trailer: %w", err)
	}
	return &updated, nil
}

func (s *DefaultTrailerService) GetTrailer(id string) (*models.Trailer, error) {
	trailer, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load trailer: %w", err)
	}
	if trailer == nil {
		return nil, ErrTrailerNotFound
	}
	return trailer, nil
}

func (s *DefaultTrailerService) GetByOwner(ownerID string) ([]models.Trailer, error) {
	return s.Repo.GetByOwner(ownerID)
}

func (s *DefaultTrailerService) Search(criteria models.TrailerSearchCriteria) ([]models.Trailer, error) {
	return s.Repo.Search(criteria)
}

// DeleteTrailer removes the trailer and, best effort, its stored image
// assets. A failed asset delete is logged and does not block the removal.
func (s *DefaultTrailerService) DeleteTrailer(ownerID, trailerID string) error {
	existing, err := s.Repo.GetByIDWithProjection(trailerID, bson.M{"id": 1, "ownerId": 1, "images": 1})
	if err != nil {
		return fmt.Errorf("failed to load trailer: %w", err)
	}
	if existing == nil {
		return ErrTrailerNotFound
	}
	if existing.OwnerID != ownerID {
		return ErrNotOwner
	}
	if err := s.Repo.Delete(trailerID); err != nil {
		return err
	}
	s.deleteImageAssets(trailerID, existing.Images)
	return nil
}

// deleteImageAssets removes the trailer's images from storage. Images
// published before public IDs were recorded are skipped.
func (s *DefaultTrailerService) deleteImageAssets(trailerID string, images []models.TrailerImage) {
	if s.Storage == nil {
		return
	}
	logger := utils.GetLogger()
	for _, img := range images {
		if img.PublicID == "" {
			continue
		}
		if err := s.Storage.DeleteImage(context.Background(), img.PublicID); err != nil {
			logger.Warn("DeleteTrailer: failed to delete image asset",
				zap.String("trailerID", trailerID),
				zap.String("publicID", img.PublicID), zap.Error(err))
		}
	}
}

func (s *DefaultTrailerService) SetAvailable(ownerID, trailerID string, available bool) error {
	existing, err := s.Repo.GetByIDWithProjection(trailerID, bson.M{"id": 1, "ownerId": 1})
	if err != nil {
		return fmt.Errorf("failed to load trailer: %w", err)
	}
	if existing == nil {
		return ErrTrailerNotFound
	}
	if existing.OwnerID != ownerID {
		return ErrNotOwner
	}
	return s.Repo.UpdateWithDocument(trailerID, bson.M{
		"available": available,
		"updatedAt": time.Now(),
	})
}

// RefreshRating stores a recomputed review aggregate on the trailer.
func (s *DefaultTrailerService) RefreshRating(trailerID string, rating float64, count int) error {
	return s.Repo.UpdateWithDocument(trailerID, bson.M{
		"rating":      rating,
		"reviewCount": count,
		"updatedAt":   time.Now(),
	})
}

// trailerFromApiData maps the wire payload onto the stored entity.
func trailerFromApiData(data models.TrailerApiData) models.Trailer {
	return models.Trailer{
		Type:        data.Type,
		Title:       data.Title,
		Description: data.Description,
		Address:     data.Address,
		City:        data.City,
		PostalCode:  data.PostalCode,
		Country:     data.Country,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		LocationGeo: models.GeoPoint{
			Type:        "Point",
			Coordinates: []float64{data.Longitude, data.Latitude},
		},
		Length:                 data.Length,
		Width:                  data.Width,
		Height:                 data.Height,
		Weight:                 data.Weight,
		Capacity:               data.Capacity,
		PricePerDay:            data.PricePerDay,
		SecurityDeposit:        data.SecurityDeposit,
		CancellationPolicy:     data.CancellationPolicy,
		MinRentalDuration:      data.MinRentalDuration,
		MaxRentalDuration:      data.MaxRentalDuration,
		Features:               data.Features,
		RequiresDriversLicense: data.RequiresDriversLicense,
		LicenseType:            data.LicenseType,
		IncludesInsurance:      data.IncludesInsurance,
		HomeDelivery:           data.HomeDelivery,
		DeliveryFee:            data.DeliveryFee,
		MaxDeliveryDistance:    data.MaxDeliveryDistance,
		Instructions:           data.Instructions,
		Images:                 data.Images,
		Availability:           data.Availability,
	}
}

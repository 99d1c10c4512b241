package rentalRepo

import (
	"fmt"
	"time"

	"trailhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRentalRepo) GetByID(id string) (*models.Rental, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var rental models.Rental
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rental); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rental with id %s: %w", id, err)
	}
	return &rental, nil
}

func (r *MongoRentalRepo) GetByRenter(renterID string) ([]models.Rental, error) {
	return r.findAll(bson.M{"renterId": renterID})
}

func (r *MongoRentalRepo) GetByOwner(ownerID string) ([]models.Rental, error) {
	return r.findAll(bson.M{"ownerId": ownerID})
}

// GetOverlapping returns non-cancelled rentals of a trailer whose date range
// intersects [startDate, endDate]. Dates are "2006-01-02" strings, which
// order lexicographically.
func (r *MongoRentalRepo) GetOverlapping(trailerID, startDate, endDate string) ([]models.Rental, error) {
	filter := bson.M{
		"trailerId": trailerID,
		"status":    bson.M{"$in": []string{models.RentalStatusPending, models.RentalStatusApproved}},
		"startDate": bson.M{"$lte": endDate},
		"endDate":   bson.M{"$gte": startDate},
	}
	return r.findAll(filter)
}

func (r *MongoRentalRepo) findAll(filter bson.M) ([]models.Rental, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rentals: %w", err)
	}
	defer cursor.Close(ctx)
	var rentals []models.Rental
	for cursor.Next(ctx) {
		var rental models.Rental
		if err := cursor.Decode(&rental); err != nil {
			return nil, fmt.Errorf("failed to decode rental: %w", err)
		}
		rentals = append(rentals, rental)
	}
	return rentals, cursor.Err()
}

package rentalRepo

import (
	"context"
	"fmt"
	"time"

	"trailhub/database"
	"trailhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRentalRepo implements RentalRepository using MongoDB.
type MongoRentalRepo struct {
	coll *mongo.Collection
}

// NewMongoRentalRepo creates a new instance of RentalRepository using MongoDB.
func NewMongoRentalRepo() RentalRepository {
	coll := database.Database().Collection("rentals")
	return &MongoRentalRepo{coll: coll}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// Create inserts a new rental document.
func (r *MongoRentalRepo) Create(rental *models.Rental) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, rental); err != nil {
		return fmt.Errorf("failed to create rental: %w", err)
	}
	return nil
}

// UpdateStatus transitions a rental to the given status.
func (r *MongoRentalRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update rental %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("rental with id %s not found", id)
	}
	return nil
}

// MarkReviewed flags a rental as reviewed.
func (r *MongoRentalRepo) MarkReviewed(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{"reviewed": true, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark rental %s reviewed: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("rental with id %s not found", id)
	}
	return nil
}

package trailerRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the trailer queries rely on.
func (r *MongoTrailerRepo) EnsureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "ownerId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "city", Value: 1}, {Key: "pricePerDay", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "locationGeo", Value: "2dsphere"}},
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create trailer indexes: %w", err)
	}
	return nil
}

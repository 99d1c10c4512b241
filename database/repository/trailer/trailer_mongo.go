package trailerRepo

import (
	"context"
	"time"

	"trailhub/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTrailerRepo implements TrailerRepository using MongoDB.
type MongoTrailerRepo struct {
	coll *mongo.Collection
}

// NewMongoTrailerRepo creates a new instance of TrailerRepository using MongoDB.
func NewMongoTrailerRepo() TrailerRepository {
	coll := database.Database().Collection("trailers")
	return &MongoTrailerRepo{coll: coll}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

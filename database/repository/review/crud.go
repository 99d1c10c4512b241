package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"trailhub/database"
	"trailhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	coll := database.Database().Collection("reviews")
	return &MongoReviewRepo{coll: coll}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) GetByTrailer(trailerID string) ([]models.Review, error) {
	return r.findAll(bson.M{"trailerId": trailerID})
}

func (r *MongoReviewRepo) GetByReviewee(userID string) ([]models.Review, error) {
	return r.findAll(bson.M{"revieweeId": userID})
}

func (r *MongoReviewRepo) findAll(filter bson.M) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)
	var reviews []models.Review
	for cursor.Next(ctx) {
		var review models.Review
		if err := cursor.Decode(&review); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, cursor.Err()
}

// AggregateForTrailer returns the average rating and review count for a trailer.
func (r *MongoReviewRepo) AggregateForTrailer(trailerID string) (float64, int, error) {
	return r.aggregate(bson.M{"trailerId": trailerID})
}

// AggregateForUser returns the average rating and review count for a reviewee.
func (r *MongoReviewRepo) AggregateForUser(userID string) (float64, int, error) {
	return r.aggregate(bson.M{"revieweeId": userID})
}

func (r *MongoReviewRepo) aggregate(match bson.M) (float64, int, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"avg":   bson.M{"$avg": "$rating"},
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("review aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)
	var result struct {
		Avg   float64 `bson:"avg"`
		Count int     `bson:"count"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, 0, fmt.Errorf("failed to decode aggregation result: %w", err)
		}
	}
	return result.Avg, result.Count, cursor.Err()
}

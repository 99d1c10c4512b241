package trailerRepo

import (
	"errors"
	"fmt"
	"time"

	"trailhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoTrailerRepo) GetByID(id string) (*models.Trailer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var trailer models.Trailer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&trailer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch trailer with id %s: %w", id, err)
	}
	return &trailer, nil
}

func (r *MongoTrailerRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Trailer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	var trailer models.Trailer
	err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&trailer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch trailer with id %s: %w", id, err)
	}
	return &trailer, nil
}

func (r *MongoTrailerRepo) GetByOwner(ownerID string) ([]models.Trailer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve trailers for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)
	var trailers []models.Trailer
	for cursor.Next(ctx) {
		var t models.Trailer
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode trailer: %w", err)
		}
		trailers = append(trailers, t)
	}
	return trailers, cursor.Err()
}

// Search performs a public trailer search. Only available listings with a
// placed location pin are returned, capped at 50, cheapest first.
func (r *MongoTrailerRepo) Search(criteria models.TrailerSearchCriteria) ([]models.Trailer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if criteria.City != "" {
		filter["city"] = bson.M{"$regex": criteria.City, "$options": "i"}
	}
	if criteria.Type != "" {
		filter["type"] = bson.M{"$regex": criteria.Type, "$options": "i"}
	}
	if criteria.MaxPrice > 0 {
		filter["pricePerDay"] = bson.M{"$lte": criteria.MaxPrice}
	}
	if criteria.MaxDistance > 0 {
		maxDistanceMeters := criteria.MaxDistance * 1000
		filter["locationGeo"] = bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{criteria.Longitude, criteria.Latitude},
				},
				"$maxDistance": maxDistanceMeters,
			},
		}
	}
	filter["available"] = true
	filter["latitude"] = bson.M{"$ne": 0}
	filter["longitude"] = bson.M{"$ne": 0}

	opts := options.Find().
		SetSort(bson.D{{Key: "pricePerDay", Value: 1}}).
		SetLimit(50)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("trailer search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var trailers []models.Trailer
	for cursor.Next(ctx) {
		var t models.Trailer
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode trailer: %w", err)
		}
		trailers = append(trailers, t)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return trailers, nil
}

package trailerRepo

import (
	"fmt"
	"time"

	"trailhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new trailer document.
func (r *MongoTrailerRepo) Create(trailer *models.Trailer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, trailer); err != nil {
		return fmt.Errorf("failed to create trailer: %w", err)
	}
	return nil
}

// Update replaces an existing trailer document.
func (r *MongoTrailerRepo) Update(trailer *models.Trailer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": trailer.ID}
	update := bson.M{"$set": trailer}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update trailer with id %s: %w", trailer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trailer with id %s not found", trailer.ID)
	}
	return nil
}

// UpdateWithDocument patches a trailer document with the given update document.
func (r *MongoTrailerRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to patch trailer with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trailer with id %s not found", id)
	}
	return nil
}

// Delete removes a trailer document by its ID.
func (r *MongoTrailerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trailer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("trailer with id %s not found", id)
	}
	return nil
}

package database

import (
	"context"
	"log"
	"time"

	"trailhub/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const databaseName = "trailhub"

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB connects the global client and verifies the connection. The process
// cannot serve anything without Mongo, so failure is fatal.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(config.AppConfig.DatabaseURL).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
}

// Database returns the application database handle.
func Database() *mongo.Database {
	return MongoClient.Database(databaseName)
}

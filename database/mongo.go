package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Connect opens a client for the given URI and verifies it with a ping.
// The caller owns the handle for the process lifetime.
func Connect(mongoURI string) (*mongo.Client, error) {
	connectionString := options.Client().ApplyURI(mongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectionString)
	if err != nil {
		log.Println("Mongo Connect error:", err)
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Println("Mongo Ping error:", err)
		return nil, err
	}

	log.Println("MongoDB connected successfully")
	return client, nil
}

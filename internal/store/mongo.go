package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	employeesCollection = "employees"
	workSlotsCollection = "workslots"
)

// Connect opens a Mongo client and verifies connectivity. The service
// refuses to start without its store, so any failure here is fatal.
func Connect(ctx context.Context, url string) *mongo.Client {
	opts := options.Client().
		ApplyURI(url).
		SetAppName("attendance-tracker").
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("connect to mongo: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("mongo ping failed: %v", err)
	}
	return client
}

// EnsureIndexes creates the unique indexes the handlers rely on:
// employee ids, (firstName,lastName) pairs, and at most one open slot
// per employee. The open-slot index is partial so closed slots never
// collide; it is what turns a lost check-in race into a clean conflict
// instead of two open slots.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(employeesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "first_name", Value: 1}, {Key: "last_name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(workSlotsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "employee_id", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"check_out": bson.M{"$type": "null"}}),
	})
	return err
}

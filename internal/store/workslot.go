package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"attendance-tracker/internal/models"
)

type MongoWorkSlotStore struct {
	col *mongo.Collection
}

func NewMongoWorkSlotStore(db *mongo.Database) *MongoWorkSlotStore {
	return &MongoWorkSlotStore{col: db.Collection(workSlotsCollection)}
}

func (s *MongoWorkSlotStore) FindOpen(ctx context.Context, employeeID string) (*models.WorkSlot, error) {
	var slot models.WorkSlot
	err := s.col.FindOne(ctx, bson.M{"employee_id": employeeID, "check_out": nil}).Decode(&slot)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *MongoWorkSlotStore) Insert(ctx context.Context, slot *models.WorkSlot) error {
	res, err := s.col.InsertOne(ctx, slot)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		slot.OID = oid
	}
	return nil
}

func (s *MongoWorkSlotStore) Update(ctx context.Context, slot *models.WorkSlot) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": slot.OID}, slot)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"attendance-tracker/internal/models"
)

type MongoEmployeeStore struct {
	col *mongo.Collection
}

func NewMongoEmployeeStore(db *mongo.Database) *MongoEmployeeStore {
	return &MongoEmployeeStore{col: db.Collection(employeesCollection)}
}

func (s *MongoEmployeeStore) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	return s.findOne(ctx, bson.M{"id": id})
}

func (s *MongoEmployeeStore) FindByName(ctx context.Context, firstName, lastName string) (*models.Employee, error) {
	return s.findOne(ctx, bson.M{"first_name": firstName, "last_name": lastName})
}

func (s *MongoEmployeeStore) findOne(ctx context.Context, filter bson.M) (*models.Employee, error) {
	var e models.Employee
	err := s.col.FindOne(ctx, filter).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *MongoEmployeeStore) Insert(ctx context.Context, e *models.Employee) error {
	_, err := s.col.InsertOne(ctx, e)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *MongoEmployeeStore) List(ctx context.Context, from, to *time.Time) ([]models.Employee, error) {
	filter := bson.M{}
	if from != nil && to != nil {
		filter["date_created"] = bson.M{"$gte": *from, "$lt": *to}
	}

	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	employees := make([]models.Employee, 0)
	if err := cur.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

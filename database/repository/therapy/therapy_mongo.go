package therapyRepo

import (
	"context"
	"fmt"
	"time"

	"ayursutra/database"
	"ayursutra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTherapyRepo implements TherapyRepository using MongoDB.
type MongoTherapyRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapyRepo constructs a new instance of MongoTherapyRepo.
func NewMongoTherapyRepo() TherapyRepository {
	return &MongoTherapyRepo{
		coll: database.DB().Collection("therapies"),
	}
}

func (repo *MongoTherapyRepo) Create(therapy *models.Therapy) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, therapy); err != nil {
		return fmt.Errorf("error creating therapy: %w", err)
	}
	return nil
}

func (repo *MongoTherapyRepo) GetByID(id string) (*models.Therapy, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var therapy models.Therapy
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&therapy); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching therapy %s: %w", id, err)
	}
	return &therapy, nil
}

func (repo *MongoTherapyRepo) GetActive() ([]models.Therapy, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("error finding therapies: %w", err)
	}
	defer cursor.Close(ctx)

	var therapies []models.Therapy
	for cursor.Next(ctx) {
		var t models.Therapy
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("error decoding therapy: %w", err)
		}
		therapies = append(therapies, t)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return therapies, nil
}

func (repo *MongoTherapyRepo) Update(therapy *models.Therapy) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": therapy.ID}, therapy)
	if err != nil {
		return fmt.Errorf("error updating therapy %s: %w", therapy.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"griya/mdp/internal/db"
	"griya/mdp/internal/models"
)

// HousingCollection is where seeded listings live in Mongo.
const HousingCollection = "housing"

// MongoSource reads the seed listings from the housing collection,
// ordered by id.
type MongoSource struct {
	db *mongo.Database
}

func NewMongoSource(db *mongo.Database) *MongoSource {
	return &MongoSource{db: db}
}

func (s *MongoSource) Housing(ctx context.Context) ([]models.Housing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := s.db.Collection(HousingCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query housing collection: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Housing
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode housing documents: %w", err)
	}
	return results, nil
}

// SeedMongo inserts listings into the housing collection. Listings whose id
// already exists are skipped and counted.
func SeedMongo(ctx context.Context, database *mongo.Database, listings []models.Housing) (inserted, skipped int, err error) {
	collection := database.Collection(HousingCollection)
	for _, h := range listings {
		if _, err := collection.InsertOne(ctx, h); err != nil {
			if db.IsDuplicateKeyError(err) {
				skipped++
				continue
			}
			return inserted, skipped, fmt.Errorf("failed to insert housing %d: %w", h.ID, err)
		}
		inserted++
	}
	return inserted, skipped, nil
}

package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates indexes mongo repositories rely on, calling it for existing indexes is no-op
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	indexes := map[string][]mongo.IndexModel{
		complaintsCollection: {
			unique("reference"),
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
		usersCollection:         {unique("username"), unique("email")},
		employeesCollection:     {unique("username"), unique("email")},
		departmentsCollection:   {unique("name")},
		refreshTokensCollection: {{Keys: bson.D{{Key: "userId", Value: 1}}}},
		tasksCollection:         {{Keys: bson.D{{Key: "assignedTo", Value: 1}}}},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s collection - %w", coll, err)
		}
	}
	return nil
}

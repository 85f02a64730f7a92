package seed

import (
	"context"

	"arone/db"

	"go.mongodb.org/mongo-driver/bson"
)

// MongoStore implements Store on the shared database handle.
type MongoStore struct{}

func (MongoStore) Count(ctx context.Context, collection string) (int64, error) {
	return db.Database.Collection(collection).CountDocuments(ctx, bson.M{})
}

func (MongoStore) InsertMany(ctx context.Context, collection string, docs []interface{}) error {
	_, err := db.Database.Collection(collection).InsertMany(ctx, docs)
	return err
}

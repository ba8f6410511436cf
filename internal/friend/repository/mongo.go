package repository

import (
	"context"
	"time"

	"github.com/agebook/agebook/internal/friend"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository using a MongoDB collection keyed by
// the "name" field.
type MongoRepo struct {
	col *mongo.Collection
}

// NewMongoRepo creates a repository for the given collection and ensures
// the unique index on "name".
func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepo{col: col}
}

func (r *MongoRepo) FindByName(ctx context.Context, name string) (*friend.Friend, error) {
	var f friend.Friend
	if err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&f); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// UpsertAge sets the age for name, inserting the record when absent.
// The write is a single atomic upsert on the store side, so two
// concurrent writers cannot lose an insert; the later $set simply wins.
func (r *MongoRepo) UpsertAge(ctx context.Context, name string, age int) (*friend.Friend, error) {
	filter, update := upsertAgeDocs(name, age, time.Now().UTC())
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var updated friend.Friend
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// upsertAgeDocs builds the filter and update for an age upsert. The
// insert branch takes "name" from the filter equality; naming it again
// in $setOnInsert would conflict with that path and fail the write.
func upsertAgeDocs(name string, age int, now time.Time) (bson.M, bson.M) {
	filter := bson.M{"name": name}
	update := bson.M{
		"$set":         bson.M{"age": age, "updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	return filter, update
}

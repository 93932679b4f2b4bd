package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type visitorDoc struct {
	VisitorID string    `bson:"visitor_id"`
	Key       string    `bson:"key"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps one document per (visitor_id, key). Expiry is left to the
// TTL index on updated_at.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoStore(client *mongo.Client, coll *mongo.Collection) *MongoStore {
	return &MongoStore{client: client, coll: coll}
}

func (s *MongoStore) Get(ctx context.Context, visitorID, key string) ([]byte, error) {
	var doc visitorDoc
	err := s.coll.FindOne(ctx, bson.M{"visitor_id": visitorID, "key": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.Value, nil
}

func (s *MongoStore) Set(ctx context.Context, visitorID, key string, value []byte) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"visitor_id": visitorID, "key": key},
		bson.M{"$set": bson.M{"value": value, "updated_at": time.Now().UTC()}},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) Delete(ctx context.Context, visitorID, key string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"visitor_id": visitorID, "key": key})
	return err
}

func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

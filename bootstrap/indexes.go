package bootstrap

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const VisitorStateCollection = "visitor_state"

// EnsureVisitorIndexes makes (visitor_id, key) unique and expires documents
// ttl after their last write.
func EnsureVisitorIndexes(ctx context.Context, db *mongo.Database, ttl time.Duration) error {
	models := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "visitor_id", Value: 1},
				{Key: "key", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_visitor_key"),
		},
	}
	if ttl > 0 {
		models = append(models, mongo.IndexModel{
			Keys:    bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())).SetName("ttl_updated_at"),
		})
	}
	_, err := db.Collection(VisitorStateCollection).Indexes().CreateMany(ctx, models)
	return err
}

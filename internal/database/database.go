package database

import (
	"context"
	"fmt"
	"time"

	"github.com/blognest/core/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	Users           = "users"
	Categories      = "categories"
	Blogs           = "blogs"
	Follows         = "follows"
	Votes           = "votes"
	Comments        = "comments"
	Reports         = "reports"
	OTPs            = "otps"
	LoginActivities = "login_activities"
)

const connectTimeout = 10 * time.Second

// Connect opens a MongoDB connection, pings it, and ensures the indexes the
// data model's invariants rely on.
func Connect(cfg *config.AppConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	db := client.Database(cfg.Mongo.Name)
	if err := EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("index bootstrap failed: %w", err)
	}
	return db, nil
}

// EnsureIndexes creates the unique and query indexes. Uniqueness of follow
// edges, votes and reports is enforced here, not in application code; writers
// catch the duplicate-key error and translate it to a domain error.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		Users: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		Categories: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		Blogs: {
			{Keys: bson.D{{Key: "author", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		Follows: {
			{Keys: bson.D{{Key: "follower", Value: 1}, {Key: "following", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "following", Value: 1}}},
		},
		Votes: {
			{Keys: bson.D{{Key: "blog", Value: 1}, {Key: "user", Value: 1}}, Options: unique},
		},
		Comments: {
			{Keys: bson.D{{Key: "blog", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		Reports: {
			{Keys: bson.D{{Key: "blog", Value: 1}, {Key: "reporter", Value: 1}}, Options: unique},
		},
		OTPs: {
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		LoginActivities: {
			{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", coll, err)
		}
	}
	return nil
}

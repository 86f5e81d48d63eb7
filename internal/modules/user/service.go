package user

import (
	"context"
	"errors"
	"time"

	"github.com/blognest/core/internal/database"
	"github.com/blognest/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrUserNotFound     = errors.New("User not found")
	ErrSelfFollow       = errors.New("You cannot follow yourself")
	ErrAlreadyFollowing = errors.New("You are already following this user")
	ErrNotFollowing     = errors.New("You are not following this user")
)

type Service struct {
	users   *mongo.Collection
	follows *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{
		users:   db.Collection(database.Users),
		follows: db.Collection(database.Follows),
	}
}

// Follow creates an edge follower→target. The duplicate pre-check gives the
// friendly 400; the unique index maps the insert race to the same error.
func (s *Service) Follow(ctx context.Context, followerID primitive.ObjectID, targetHex string) error {
	targetID, err := s.resolveTarget(ctx, targetHex)
	if err != nil {
		return err
	}
	if targetID == followerID {
		return ErrSelfFollow
	}

	count, err := s.follows.CountDocuments(ctx, bson.M{"follower": followerID, "following": targetID})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyFollowing
	}

	_, err = s.follows.InsertOne(ctx, models.Follow{
		Follower:  followerID,
		Following: targetID,
		CreatedAt: time.Now(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyFollowing
	}
	return err
}

func (s *Service) Unfollow(ctx context.Context, followerID primitive.ObjectID, targetHex string) error {
	targetID, err := s.resolveTarget(ctx, targetHex)
	if err != nil {
		return err
	}
	res, err := s.follows.DeleteOne(ctx, bson.M{"follower": followerID, "following": targetID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFollowing
	}
	return nil
}

// Followers lists who follows the given user, as populated summaries.
func (s *Service) Followers(ctx context.Context, targetHex string) ([]models.UserSummary, error) {
	targetID, err := s.resolveTarget(ctx, targetHex)
	if err != nil {
		return nil, err
	}
	return s.edgeSummaries(ctx, bson.M{"following": targetID}, "follower")
}

// Following lists who the given user follows.
func (s *Service) Following(ctx context.Context, targetHex string) ([]models.UserSummary, error) {
	targetID, err := s.resolveTarget(ctx, targetHex)
	if err != nil {
		return nil, err
	}
	return s.edgeSummaries(ctx, bson.M{"follower": targetID}, "following")
}

// ListOthers returns everyone except the caller, passwords stripped by the
// model's json mapping and a projection.
func (s *Service) ListOthers(ctx context.Context, callerID primitive.ObjectID) ([]models.User, error) {
	cursor, err := s.users.Find(ctx,
		bson.M{"_id": bson.M{"$ne": callerID}},
		options.Find().
			SetProjection(bson.M{"password": 0}).
			SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) resolveTarget(ctx context.Context, targetHex string) (primitive.ObjectID, error) {
	targetID, err := primitive.ObjectIDFromHex(targetHex)
	if err != nil {
		return primitive.NilObjectID, ErrUserNotFound
	}
	count, err := s.users.CountDocuments(ctx, bson.M{"_id": targetID})
	if err != nil {
		return primitive.NilObjectID, err
	}
	if count == 0 {
		return primitive.NilObjectID, ErrUserNotFound
	}
	return targetID, nil
}

// edgeSummaries joins follow edges to the user on the given side and
// projects name+email summaries.
func (s *Service) edgeSummaries(ctx context.Context, match bson.M, side string) ([]models.UserSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.Users,
			"localField":   side,
			"foreignField": "_id",
			"as":           "userDoc",
		}}},
		{{Key: "$unwind", Value: "$userDoc"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$userDoc"}}},
		{{Key: "$project", Value: bson.M{"name": 1, "email": 1}}},
	}
	cursor, err := s.follows.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	summaries := []models.UserSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

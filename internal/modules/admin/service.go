package admin

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
	ErrUserNotFound = errors.New("User not found")
	ErrEmailTaken   = errors.New("Email is already in use")
	ErrInvalidRole  = errors.New("Role must be 'user' or 'admin'")
)

type UpdateUserDTO struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// UserBlogCount pairs an account with how many blogs it has written.
type UserBlogCount struct {
	ID        primitive.ObjectID `bson:"_id"       json:"id"`
	Name      string             `bson:"name"      json:"name"`
	Email     string             `bson:"email"     json:"email"`
	BlogCount int64              `bson:"blogCount" json:"blogCount"`
}

// hourBucket is one $group row of the login histogram.
type hourBucket struct {
	Hour  int   `bson:"_id"`
	Count int64 `bson:"count"`
}

type Service struct {
	users  *mongo.Collection
	logins *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{
		users:  db.Collection(database.Users),
		logins: db.Collection(database.LoginActivities),
	}
}

// ListUsers returns every account, passwords stripped.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{},
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

// UpdateUser rewrites an account's name, email and role.
func (s *Service) UpdateUser(ctx context.Context, idHex string, dto *UpdateUserDTO) (*models.User, error) {
	if dto.Role != models.RoleUser && dto.Role != models.RoleAdmin {
		return nil, ErrInvalidRole
	}
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrUserNotFound
	}

	count, err := s.users.CountDocuments(ctx, bson.M{
		"email": dto.Email,
		"_id":   bson.M{"$ne": id},
	})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	res, err := s.users.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"name":  dto.Name,
		"email": dto.Email,
		"role":  dto.Role,
	}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}

	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"password": 0})).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) DeleteUser(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return ErrUserNotFound
	}
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UserBlogCounts joins users against blogs and projects a per-user count,
// sorted by name. Computed per request; nothing is cached.
func (s *Service) UserBlogCounts(ctx context.Context) ([]UserBlogCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         database.Blogs,
			"localField":   "_id",
			"foreignField": "author",
			"as":           "blogs",
		}}},
		{{Key: "$project", Value: bson.M{
			"name":      1,
			"email":     1,
			"blogCount": bson.M{"$size": "$blogs"},
		}}},
		{{Key: "$sort", Value: bson.M{"name": 1}}},
	}
	cursor, err := s.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	out := []UserBlogCount{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TodayLoginStats buckets today's login activity (UTC day) by hour and
// returns a dense 24-slot histogram.
func (s *Service) TodayLoginStats(ctx context.Context, now time.Time) ([24]int64, error) {
	dayStart := now.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"timestamp": bson.M{"$gte": dayStart, "$lt": dayEnd},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$hour": "$timestamp"},
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := s.logins.Aggregate(ctx, pipeline)
	if err != nil {
		return [24]int64{}, err
	}
	var buckets []hourBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return [24]int64{}, err
	}
	return denseHistogram(buckets), nil
}

// denseHistogram spreads sparse hour buckets over all 24 slots. Out-of-range
// hours are dropped.
func denseHistogram(buckets []hourBucket) [24]int64 {
	var out [24]int64
	for _, b := range buckets {
		if b.Hour < 0 || b.Hour > 23 {
			continue
		}
		out[b.Hour] = b.Count
	}
	return out
}

package comment

import (
	"context"
	"errors"
	"html"
	"strings"
	"time"

	"github.com/blognest/core/internal/database"
	"github.com/blognest/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrBlogNotFound = errors.New("Blog not found")
	ErrEmptyContent = errors.New("Comment content cannot be empty")
)

type AddCommentDTO struct {
	Content string `json:"content" binding:"required"`
}

// AuthorRef is the populated author shape on comment responses.
type AuthorRef struct {
	ID   primitive.ObjectID `bson:"_id"  json:"id"`
	Name string             `bson:"name" json:"name"`
}

// CommentResponse is a comment with its author name populated.
type CommentResponse struct {
	ID        primitive.ObjectID `bson:"_id"       json:"id"`
	Blog      primitive.ObjectID `bson:"blog"      json:"blog"`
	Author    AuthorRef          `bson:"authorDoc" json:"author"`
	Content   string             `bson:"content"   json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Service struct {
	comments *mongo.Collection
	blogs    *mongo.Collection
	users    *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{
		comments: db.Collection(database.Comments),
		blogs:    db.Collection(database.Blogs),
		users:    db.Collection(database.Users),
	}
}

// sanitizeContent trims and HTML-escapes user text. Escaping happens at
// write time; stored content is already safe to render.
func sanitizeContent(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyContent
	}
	return html.EscapeString(trimmed), nil
}

func (s *Service) Add(ctx context.Context, userID primitive.ObjectID, blogHex, content string) (*CommentResponse, error) {
	blogID, err := s.resolveBlog(ctx, blogHex)
	if err != nil {
		return nil, err
	}
	clean, err := sanitizeContent(content)
	if err != nil {
		return nil, err
	}

	cm := models.Comment{
		Blog:      blogID,
		Author:    userID,
		Content:   clean,
		CreatedAt: time.Now(),
	}
	res, err := s.comments.InsertOne(ctx, cm)
	if err != nil {
		return nil, err
	}

	var author models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&author); err != nil {
		return nil, err
	}
	return &CommentResponse{
		ID:        res.InsertedID.(primitive.ObjectID),
		Blog:      cm.Blog,
		Author:    AuthorRef{ID: author.ID, Name: author.Name},
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
	}, nil
}

// List returns a blog's comments newest first, author names populated.
func (s *Service) List(ctx context.Context, blogHex string) ([]CommentResponse, error) {
	blogID, err := s.resolveBlog(ctx, blogHex)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"blog": blogID}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.Users,
			"localField":   "author",
			"foreignField": "_id",
			"as":           "authorDoc",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$authorDoc",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
	cursor, err := s.comments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	out := []CommentResponse{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) resolveBlog(ctx context.Context, blogHex string) (primitive.ObjectID, error) {
	blogID, err := primitive.ObjectIDFromHex(blogHex)
	if err != nil {
		return primitive.NilObjectID, ErrBlogNotFound
	}
	count, err := s.blogs.CountDocuments(ctx, bson.M{"_id": blogID})
	if err != nil {
		return primitive.NilObjectID, err
	}
	if count == 0 {
		return primitive.NilObjectID, ErrBlogNotFound
	}
	return blogID, nil
}

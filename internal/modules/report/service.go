package report

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/blognest/core/internal/database"
	"github.com/blognest/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrBlogNotFound    = errors.New("Blog not found")
	ErrReportNotFound  = errors.New("Report not found")
	ErrSelfReport      = errors.New("You cannot report your own blog")
	ErrAlreadyReported = errors.New("You have already reported this blog")
	ErrReasonRequired  = errors.New("Report reason is required")
)

type CreateReportDTO struct {
	BlogID string `json:"blogId" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// BlogRef is the populated blog shape on report listings.
type BlogRef struct {
	ID        primitive.ObjectID `bson:"_id"       json:"id"`
	BlogTitle string             `bson:"blogTitle" json:"blogTitle"`
	Author    primitive.ObjectID `bson:"author"    json:"author"`
}

// ReportResponse is a report with blog and reporter populated for the
// moderation queue.
type ReportResponse struct {
	ID        primitive.ObjectID `bson:"_id"         json:"id"`
	Blog      BlogRef            `bson:"blogDoc"     json:"blog"`
	Reporter  models.UserSummary `bson:"reporterDoc" json:"reporter"`
	Reason    string             `bson:"reason"      json:"reason"`
	Seen      bool               `bson:"seen"        json:"seen"`
	CreatedAt time.Time          `bson:"createdAt"   json:"createdAt"`
}

type Service struct {
	reports *mongo.Collection
	blogs   *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{
		reports: db.Collection(database.Reports),
		blogs:   db.Collection(database.Blogs),
	}
}

// Create files a report. Authors cannot report their own blogs, and the
// unique (blog, reporter) index backs the duplicate pre-check against races.
func (s *Service) Create(ctx context.Context, reporterID primitive.ObjectID, dto *CreateReportDTO) (*models.Report, error) {
	reason := strings.TrimSpace(dto.Reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	blogID, err := primitive.ObjectIDFromHex(dto.BlogID)
	if err != nil {
		return nil, ErrBlogNotFound
	}
	var b models.Blog
	if err := s.blogs.FindOne(ctx, bson.M{"_id": blogID}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	if b.Author == reporterID {
		return nil, ErrSelfReport
	}

	count, err := s.reports.CountDocuments(ctx, bson.M{"blog": blogID, "reporter": reporterID})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyReported
	}

	r := models.Report{
		Blog:      blogID,
		Reporter:  reporterID,
		Reason:    reason,
		Seen:      false,
		CreatedAt: time.Now(),
	}
	res, err := s.reports.InsertOne(ctx, r)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrAlreadyReported
	}
	if err != nil {
		return nil, err
	}
	r.ID = res.InsertedID.(primitive.ObjectID)
	return &r, nil
}

// List returns the moderation queue newest first, blog and reporter
// populated.
func (s *Service) List(ctx context.Context) ([]ReportResponse, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.Blogs,
			"localField":   "blog",
			"foreignField": "_id",
			"as":           "blogDoc",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"blogTitle": 1, "author": 1}},
			},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.Users,
			"localField":   "reporter",
			"foreignField": "_id",
			"as":           "reporterDoc",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"name": 1, "email": 1}},
			},
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$blogDoc", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$unwind", Value: bson.M{"path": "$reporterDoc", "preserveNullAndEmptyArrays": true}}},
	}
	cursor, err := s.reports.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	out := []ReportResponse{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkSeen flags a report as reviewed.
func (s *Service) MarkSeen(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return ErrReportNotFound
	}
	res, err := s.reports.UpdateByID(ctx, id, bson.M{"$set": bson.M{"seen": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrReportNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return ErrReportNotFound
	}
	res, err := s.reports.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrReportNotFound
	}
	return nil
}

package blog

import (
	"context"
	"errors"
	"time"

	"github.com/blognest/core/internal/database"
	"github.com/blognest/core/internal/models"
	"github.com/blognest/core/internal/pkg/pagination"
	"github.com/blognest/core/internal/pkg/response"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrBlogNotFound = errors.New("Blog not found")
	ErrNotOwner     = errors.New("You are not authorized to modify this blog")
)

type Service struct {
	blogs    *mongo.Collection
	users    *mongo.Collection
	follows  *mongo.Collection
	votes    *mongo.Collection
	comments *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{
		blogs:    db.Collection(database.Blogs),
		users:    db.Collection(database.Users),
		follows:  db.Collection(database.Follows),
		votes:    db.Collection(database.Votes),
		comments: db.Collection(database.Comments),
	}
}

// authorLookup joins a blog to its author and strips everything but the
// summary fields.
var authorLookup = mongo.Pipeline{
	{{Key: "$lookup", Value: bson.M{
		"from":         database.Users,
		"localField":   "author",
		"foreignField": "_id",
		"as":           "authorDoc",
		"pipeline": bson.A{
			bson.M{"$project": bson.M{"name": 1, "profilePicture": 1}},
		},
	}}},
}

func (s *Service) Create(ctx context.Context, authorID primitive.ObjectID, dto *CreateBlogDTO) (*models.Blog, error) {
	now := time.Now()
	b := models.Blog{
		Author:         authorID,
		BlogType:       dto.BlogType,
		BlogTitle:      dto.BlogTitle,
		BlogSubTitle:   dto.BlogSubTitle,
		BlogContent:    dto.BlogContent,
		AttachedImages: decodeImages(dto.AttachedImages),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	res, err := s.blogs.InsertOne(ctx, b)
	if err != nil {
		return nil, err
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return &b, nil
}

// List returns active blogs newest first, author populated, content omitted.
func (s *Service) List(ctx context.Context) ([]BlogResponse, error) {
	return s.listPopulated(ctx, bson.M{"isActive": true}, false)
}

// GetByID returns one active blog with full content. A malformed id behaves
// like a missing one.
func (s *Service) GetByID(ctx context.Context, idHex string) (*BlogResponse, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrBlogNotFound
	}
	items, err := s.listPopulated(ctx, bson.M{"_id": id, "isActive": true}, true)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrBlogNotFound
	}
	return &items[0], nil
}

// ListByAuthor is the public author page: that author's active blogs.
func (s *Service) ListByAuthor(ctx context.Context, authorHex string) ([]BlogResponse, error) {
	authorID, err := primitive.ObjectIDFromHex(authorHex)
	if err != nil {
		return nil, ErrBlogNotFound
	}
	return s.listPopulated(ctx, bson.M{"author": authorID, "isActive": true}, false)
}

// OwnBlogs lists the caller's blogs, active or not.
func (s *Service) OwnBlogs(ctx context.Context, userID primitive.ObjectID) ([]BlogResponse, error) {
	return s.listPopulated(ctx, bson.M{"author": userID}, false)
}

// Feed pages through active blogs written by authors the caller follows,
// newest first, each enriched with vote and comment summaries.
func (s *Service) Feed(ctx context.Context, userID primitive.ObjectID, q pagination.Query) ([]FeedItem, response.Pagination, error) {
	cursor, err := s.follows.Find(ctx, bson.M{"follower": userID})
	if err != nil {
		return nil, response.Pagination{}, err
	}
	var edges []models.Follow
	if err := cursor.All(ctx, &edges); err != nil {
		return nil, response.Pagination{}, err
	}
	authorIDs := make([]primitive.ObjectID, 0, len(edges))
	for _, e := range edges {
		authorIDs = append(authorIDs, e.Following)
	}
	if len(authorIDs) == 0 {
		return []FeedItem{}, pagination.Meta(0, q), nil
	}

	filter := bson.M{"author": bson.M{"$in": authorIDs}, "isActive": true}
	blogs, pag, err := pagination.Find[models.Blog](ctx, s.blogs, filter, q,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, response.Pagination{}, err
	}

	authors, err := s.authorSummaries(ctx, blogs)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	items := make([]FeedItem, 0, len(blogs))
	for _, b := range blogs {
		item := FeedItem{BlogResponse: toResponse(populatedBlog{Blog: b}, false)}
		if author, ok := authors[b.Author]; ok {
			item.Author = author
		}
		if err := s.fillEngagement(ctx, b.ID, userID, &item); err != nil {
			return nil, response.Pagination{}, err
		}
		items = append(items, item)
	}
	return items, pag, nil
}

// authorSummaries batch-loads summaries for the distinct authors of a blog
// page.
func (s *Service) authorSummaries(ctx context.Context, blogs []models.Blog) (map[primitive.ObjectID]AuthorSummary, error) {
	out := map[primitive.ObjectID]AuthorSummary{}
	if len(blogs) == 0 {
		return out, nil
	}
	ids := make([]primitive.ObjectID, 0, len(blogs))
	for _, b := range blogs {
		if _, seen := out[b.Author]; !seen {
			out[b.Author] = AuthorSummary{ID: b.Author}
			ids = append(ids, b.Author)
		}
	}

	cursor, err := s.users.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"name": 1, "profilePicture": 1}))
	if err != nil {
		return nil, err
	}
	var summaries []AuthorSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	for _, sum := range summaries {
		out[sum.ID] = sum
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, userID primitive.ObjectID, idHex string, dto *UpdateBlogDTO) (*models.Blog, error) {
	b, err := s.ownedBlog(ctx, userID, idHex)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"blogType":     dto.BlogType,
		"blogTitle":    dto.BlogTitle,
		"blogSubTitle": dto.BlogSubTitle,
		"blogContent":  dto.BlogContent,
		"updatedAt":    time.Now(),
	}
	if dto.AttachedImages != nil {
		set["attachedImages"] = decodeImages(dto.AttachedImages)
	}
	if _, err := s.blogs.UpdateByID(ctx, b.ID, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	return s.rawByID(ctx, b.ID)
}

func (s *Service) Delete(ctx context.Context, userID primitive.ObjectID, idHex string) error {
	b, err := s.ownedBlog(ctx, userID, idHex)
	if err != nil {
		return err
	}
	_, err = s.blogs.DeleteOne(ctx, bson.M{"_id": b.ID})
	return err
}

// ownedBlog loads a blog and enforces that the caller authored it.
func (s *Service) ownedBlog(ctx context.Context, userID primitive.ObjectID, idHex string) (*models.Blog, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrBlogNotFound
	}
	b, err := s.rawByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Author != userID {
		return nil, ErrNotOwner
	}
	return b, nil
}

func (s *Service) rawByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	if err := s.blogs.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (s *Service) listPopulated(ctx context.Context, filter bson.M, withContent bool) ([]BlogResponse, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}
	pipeline = append(pipeline, authorLookup...)

	cursor, err := s.blogs.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var docs []populatedBlog
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]BlogResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toResponse(doc, withContent))
	}
	return out, nil
}

func (s *Service) fillEngagement(ctx context.Context, blogID, userID primitive.ObjectID, item *FeedItem) error {
	likes, err := s.votes.CountDocuments(ctx, bson.M{"blog": blogID, "type": models.VoteLike})
	if err != nil {
		return err
	}
	dislikes, err := s.votes.CountDocuments(ctx, bson.M{"blog": blogID, "type": models.VoteDislike})
	if err != nil {
		return err
	}
	comments, err := s.comments.CountDocuments(ctx, bson.M{"blog": blogID})
	if err != nil {
		return err
	}

	var own models.Vote
	err = s.votes.FindOne(ctx, bson.M{"blog": blogID, "user": userID}).Decode(&own)
	switch {
	case err == nil:
		item.UserVote = &own.Type
	case !errors.Is(err, mongo.ErrNoDocuments):
		return err
	}

	item.Likes = likes
	item.Dislikes = dislikes
	item.CommentCount = comments
	return nil
}

// toResponse flattens the lookup output. List shapes drop blogContent.
func toResponse(doc populatedBlog, withContent bool) BlogResponse {
	resp := BlogResponse{
		ID:             doc.ID,
		BlogType:       doc.BlogType,
		BlogTitle:      doc.BlogTitle,
		BlogSubTitle:   doc.BlogSubTitle,
		AttachedImages: encodeImages(doc.AttachedImages),
		IsActive:       doc.IsActive,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
	if withContent {
		resp.BlogContent = doc.BlogContent
	}
	if len(doc.AuthorDoc) > 0 {
		resp.Author = doc.AuthorDoc[0]
	} else {
		resp.Author = AuthorSummary{ID: doc.Author}
	}
	return resp
}

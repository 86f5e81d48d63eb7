package vote

import (
	"context"
	"errors"
	"time"

	"github.com/blognest/core/internal/database"
	"github.com/blognest/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrBlogNotFound = errors.New("Blog not found")
	ErrInvalidType  = errors.New("Vote type must be 'like' or 'dislike'")
)

// Summary is the response shape for both casting and reading votes. UserVote
// is nil when the caller holds no vote on the blog.
type Summary struct {
	Likes    int64   `json:"likes"`
	Dislikes int64   `json:"dislikes"`
	UserVote *string `json:"userVote"`
}

type CastVoteDTO struct {
	Type string `json:"type" binding:"required"`
}

type Service struct {
	votes *mongo.Collection
	blogs *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{
		votes: db.Collection(database.Votes),
		blogs: db.Collection(database.Blogs),
	}
}

// Cast applies the toggle: voting the same type again withdraws it, the
// opposite type flips it, no prior vote inserts one. Counts in the response
// are recomputed after the write, never derived client-side.
func (s *Service) Cast(ctx context.Context, userID primitive.ObjectID, blogHex, voteType string) (*Summary, error) {
	blogID, err := s.resolveBlog(ctx, blogHex)
	if err != nil {
		return nil, err
	}

	var existing *string
	var current models.Vote
	err = s.votes.FindOne(ctx, bson.M{"blog": blogID, "user": userID}).Decode(&current)
	switch {
	case err == nil:
		existing = &current.Type
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	action, err := nextAction(existing, voteType)
	if err != nil {
		return nil, err
	}

	switch action {
	case actionInsert:
		_, err = s.votes.InsertOne(ctx, models.Vote{
			Blog:      blogID,
			User:      userID,
			Type:      voteType,
			CreatedAt: time.Now(),
		})
		// A concurrent first cast wins the unique (blog, user) index;
		// converge the surviving document on the requested type.
		if mongo.IsDuplicateKeyError(err) {
			err = s.convergeVote(ctx, blogID, userID, voteType)
		}
	case actionMutate:
		_, err = s.votes.UpdateByID(ctx, current.ID, bson.M{"$set": bson.M{"type": voteType}})
	case actionDelete:
		_, err = s.votes.DeleteOne(ctx, bson.M{"_id": current.ID})
	}
	if err != nil {
		return nil, err
	}

	return s.summary(ctx, blogID, userID)
}

// Get returns live counts plus the caller's own vote.
func (s *Service) Get(ctx context.Context, userID primitive.ObjectID, blogHex string) (*Summary, error) {
	blogID, err := s.resolveBlog(ctx, blogHex)
	if err != nil {
		return nil, err
	}
	return s.summary(ctx, blogID, userID)
}

// convergeVote re-reads the vote that won an insert race and rewrites its
// type if it differs from what the caller asked for.
func (s *Service) convergeVote(ctx context.Context, blogID, userID primitive.ObjectID, voteType string) error {
	var raced models.Vote
	err := s.votes.FindOne(ctx, bson.M{"blog": blogID, "user": userID}).Decode(&raced)
	if err != nil {
		// The racing vote may already be toggled off again; nothing to do.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil
		}
		return err
	}
	if raced.Type == voteType {
		return nil
	}
	_, err = s.votes.UpdateByID(ctx, raced.ID, bson.M{"$set": bson.M{"type": voteType}})
	return err
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

func (s *Service) summary(ctx context.Context, blogID, userID primitive.ObjectID) (*Summary, error) {
	likes, err := s.votes.CountDocuments(ctx, bson.M{"blog": blogID, "type": models.VoteLike})
	if err != nil {
		return nil, err
	}
	dislikes, err := s.votes.CountDocuments(ctx, bson.M{"blog": blogID, "type": models.VoteDislike})
	if err != nil {
		return nil, err
	}

	sum := &Summary{Likes: likes, Dislikes: dislikes}
	var own models.Vote
	err = s.votes.FindOne(ctx, bson.M{"blog": blogID, "user": userID}).Decode(&own)
	switch {
	case err == nil:
		sum.UserVote = &own.Type
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}
	return sum, nil
}

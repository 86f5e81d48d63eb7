package vote

import (
	"context"
	"testing"

	"github.com/blognest/core/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func voteDoc(blogID, userID primitive.ObjectID, voteType string) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "blog", Value: blogID},
		{Key: "user", Value: userID},
		{Key: "type", Value: voteType},
	}
}

func TestCastInsertRace(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("racing vote already holds the requested type", func(mt *mtest.T) {
		svc := NewService(mt.DB)
		userID := primitive.NewObjectID()
		blogID := primitive.NewObjectID()

		mt.AddMockResponses(
			// blog exists
			mtest.CreateCursorResponse(0, "blognest.blogs", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			// caller holds no vote yet
			mtest.CreateCursorResponse(0, "blognest.votes", mtest.FirstBatch),
			// insert loses the unique (blog, user) index race
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}),
			// re-read finds the winner, same type, no rewrite needed
			mtest.CreateCursorResponse(0, "blognest.votes", mtest.FirstBatch, voteDoc(blogID, userID, models.VoteLike)),
			// summary: likes, dislikes, own vote
			mtest.CreateCursorResponse(0, "blognest.votes", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			mtest.CreateCursorResponse(0, "blognest.votes", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "blognest.votes", mtest.FirstBatch, voteDoc(blogID, userID, models.VoteLike)),
		)

		sum, err := svc.Cast(context.Background(), userID, blogID.Hex(), models.VoteLike)
		assert.NoError(mt, err)
		assert.Equal(mt, int64(1), sum.Likes)
		assert.Equal(mt, int64(0), sum.Dislikes)
		if assert.NotNil(mt, sum.UserVote) {
			assert.Equal(mt, models.VoteLike, *sum.UserVote)
		}
	})

	mt.Run("racing vote of the opposite type is rewritten", func(mt *mtest.T) {
		svc := NewService(mt.DB)
		userID := primitive.NewObjectID()
		blogID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "blognest.blogs", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			mtest.CreateCursorResponse(0, "blognest.votes", mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}),
			// winner voted dislike, the requested like overwrites it
			mtest.CreateCursorResponse(0, "blognest.votes", mtest.FirstBatch, voteDoc(blogID, userID, models.VoteDislike)),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, "blognest.votes", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			mtest.CreateCursorResponse(0, "blognest.votes", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "blognest.votes", mtest.FirstBatch, voteDoc(blogID, userID, models.VoteLike)),
		)

		sum, err := svc.Cast(context.Background(), userID, blogID.Hex(), models.VoteLike)
		assert.NoError(mt, err)
		assert.Equal(mt, int64(1), sum.Likes)
		if assert.NotNil(mt, sum.UserVote) {
			assert.Equal(mt, models.VoteLike, *sum.UserVote)
		}
	})
}

func TestCastUnknownBlog(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing blog maps to not found", func(mt *mtest.T) {
		svc := NewService(mt.DB)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "blognest.blogs", mtest.FirstBatch),
		)

		_, err := svc.Cast(context.Background(), primitive.NewObjectID(), primitive.NewObjectID().Hex(), models.VoteLike)
		assert.ErrorIs(mt, err, ErrBlogNotFound)
	})
}

package blog

import (
	"context"
	"testing"

	"github.com/blognest/core/internal/models"
	"github.com/blognest/core/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inactive or missing blog maps to not found", func(mt *mtest.T) {
		svc := NewService(mt.DB)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "blognest.blogs", mtest.FirstBatch),
		)

		_, err := svc.GetByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrBlogNotFound)

		// The lookup itself must pin isActive, so a soft-deleted blog can
		// never reach the response even when the id is right.
		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "aggregate", evt.CommandName)
		stages, err := evt.Command.Lookup("pipeline").Array().Values()
		require.NoError(mt, err)
		require.NotEmpty(mt, stages)
		match := stages[0].Document().Lookup("$match").Document()
		assert.True(mt, match.Lookup("isActive").Boolean())
	})

	mt.Run("malformed id maps to not found", func(mt *mtest.T) {
		svc := NewService(mt.DB)

		_, err := svc.GetByID(context.Background(), "not-a-hex-id")
		assert.ErrorIs(mt, err, ErrBlogNotFound)
	})

	mt.Run("active blog returns full content", func(mt *mtest.T) {
		svc := NewService(mt.DB)
		blogID := primitive.NewObjectID()
		authorID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "blognest.blogs", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: blogID},
				{Key: "author", Value: authorID},
				{Key: "blogType", Value: "tech"},
				{Key: "blogTitle", Value: "title"},
				{Key: "blogSubTitle", Value: "subtitle"},
				{Key: "blogContent", Value: "<p>body</p>"},
				{Key: "isActive", Value: true},
				{Key: "authorDoc", Value: bson.A{bson.D{
					{Key: "_id", Value: authorID},
					{Key: "name", Value: "Ada"},
				}}},
			}),
		)

		resp, err := svc.GetByID(context.Background(), blogID.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, "<p>body</p>", resp.BlogContent)
		assert.Equal(mt, "Ada", resp.Author.Name)
	})
}

func TestFeed(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty following set yields an empty page", func(mt *mtest.T) {
		svc := NewService(mt.DB)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "blognest.follows", mtest.FirstBatch),
		)

		items, pag, err := svc.Feed(context.Background(), primitive.NewObjectID(), pagination.Query{Page: 1, Size: 10})
		require.NoError(mt, err)
		assert.Empty(mt, items)
		assert.Equal(mt, int64(0), pag.Total)
		assert.False(mt, pag.HasNextPage)
	})

	mt.Run("page enriched with author and engagement", func(mt *mtest.T) {
		svc := NewService(mt.DB)
		callerID := primitive.NewObjectID()
		authorID := primitive.NewObjectID()
		blogID := primitive.NewObjectID()

		mt.AddMockResponses(
			// one followed author
			mtest.CreateCursorResponse(0, "blognest.follows", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "follower", Value: callerID},
				{Key: "following", Value: authorID},
			}),
			// count + page of blogs
			mtest.CreateCursorResponse(0, "blognest.blogs", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			mtest.CreateCursorResponse(0, "blognest.blogs", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: blogID},
				{Key: "author", Value: authorID},
				{Key: "blogType", Value: "tech"},
				{Key: "blogTitle", Value: "title"},
				{Key: "blogSubTitle", Value: "subtitle"},
				{Key: "isActive", Value: true},
			}),
			// author summaries
			mtest.CreateCursorResponse(0, "blognest.users", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: authorID},
				{Key: "name", Value: "Ada"},
			}),
			// engagement: likes, dislikes, comments, own vote
			mtest.CreateCursorResponse(0, "blognest.votes", mtest.FirstBatch, bson.D{{Key: "n", Value: 2}}),
			mtest.CreateCursorResponse(0, "blognest.votes", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "blognest.comments", mtest.FirstBatch, bson.D{{Key: "n", Value: 3}}),
			mtest.CreateCursorResponse(0, "blognest.votes", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "blog", Value: blogID},
				{Key: "user", Value: callerID},
				{Key: "type", Value: models.VoteLike},
			}),
		)

		items, pag, err := svc.Feed(context.Background(), callerID, pagination.Query{Page: 1, Size: 10})
		require.NoError(mt, err)
		require.Len(mt, items, 1)

		item := items[0]
		assert.Equal(mt, "Ada", item.Author.Name)
		assert.Empty(mt, item.BlogContent)
		assert.Equal(mt, int64(2), item.Likes)
		assert.Equal(mt, int64(0), item.Dislikes)
		assert.Equal(mt, int64(3), item.CommentCount)
		if assert.NotNil(mt, item.UserVote) {
			assert.Equal(mt, models.VoteLike, *item.UserVote)
		}
		assert.Equal(mt, int64(1), pag.Total)
		assert.False(mt, pag.HasNextPage)
	})
}

package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFollowDuplicate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("existing edge is rejected by the pre-check", func(mt *mtest.T) {
		svc := NewService(mt.DB)
		follower := primitive.NewObjectID()
		target := primitive.NewObjectID()

		mt.AddMockResponses(
			// target exists
			mtest.CreateCursorResponse(0, "blognest.users", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			// edge already present
			mtest.CreateCursorResponse(0, "blognest.follows", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
		)

		err := svc.Follow(context.Background(), follower, target.Hex())
		assert.ErrorIs(mt, err, ErrAlreadyFollowing)
	})

	mt.Run("insert race on the unique index maps to the same error", func(mt *mtest.T) {
		svc := NewService(mt.DB)
		follower := primitive.NewObjectID()
		target := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "blognest.users", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			// pre-check sees nothing, the concurrent insert lands first
			mtest.CreateCursorResponse(0, "blognest.follows", mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}),
		)

		err := svc.Follow(context.Background(), follower, target.Hex())
		assert.ErrorIs(mt, err, ErrAlreadyFollowing)
	})
}

func TestFollowSelf(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("self follow is rejected", func(mt *mtest.T) {
		svc := NewService(mt.DB)
		id := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "blognest.users", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
		)

		err := svc.Follow(context.Background(), id, id.Hex())
		assert.ErrorIs(mt, err, ErrSelfFollow)
	})
}

func TestFollowUnknownTarget(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing target maps to not found", func(mt *mtest.T) {
		svc := NewService(mt.DB)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "blognest.users", mtest.FirstBatch),
		)

		err := svc.Follow(context.Background(), primitive.NewObjectID(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})

	mt.Run("malformed target id maps to not found", func(mt *mtest.T) {
		svc := NewService(mt.DB)

		err := svc.Follow(context.Background(), primitive.NewObjectID(), "not-a-hex-id")
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})
}

func TestUnfollowWithoutEdge(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleting a missing edge is rejected", func(mt *mtest.T) {
		svc := NewService(mt.DB)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "blognest.users", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		err := svc.Unfollow(context.Background(), primitive.NewObjectID(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrNotFollowing)
	})
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Follow is a directed edge: follower subscribes to following's blogs.
// (follower, following) is unique; follower == following is rejected before
// insert.
type Follow struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Follower  primitive.ObjectID `bson:"follower"      json:"follower"`
	Following primitive.ObjectID `bson:"following"     json:"following"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}

// Vote types.
const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

// Vote holds at most one like/dislike per (blog, user) pair, enforced by a
// unique index.
type Vote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Blog      primitive.ObjectID `bson:"blog"          json:"blog"`
	User      primitive.ObjectID `bson:"user"          json:"user"`
	Type      string             `bson:"type"          json:"type"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}

// Report flags a blog for moderation. One report per (blog, reporter),
// unique-indexed.
type Report struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Blog      primitive.ObjectID `bson:"blog"          json:"blog"`
	Reporter  primitive.ObjectID `bson:"reporter"      json:"reporter"`
	Reason    string             `bson:"reason"        json:"reason"`
	Seen      bool               `bson:"seen"          json:"seen"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}

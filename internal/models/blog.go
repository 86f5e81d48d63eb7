package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is an embedded attachment stored as raw bytes. The HTTP boundary
// always speaks base64; only the document holds binary.
type Image struct {
	Data        []byte `bson:"data"        json:"-"`
	ContentType string `bson:"contentType" json:"contentType"`
}

// Blog is a published post. BlogType holds the category *name*, not its id;
// category transfer rewrites this string in bulk.
type Blog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"  json:"id"`
	Author         primitive.ObjectID `bson:"author"         json:"author"`
	BlogType       string             `bson:"blogType"       json:"blogType"`
	BlogTitle      string             `bson:"blogTitle"      json:"blogTitle"`
	BlogSubTitle   string             `bson:"blogSubTitle"   json:"blogSubTitle"`
	BlogContent    string             `bson:"blogContent,omitempty" json:"blogContent,omitempty"`
	AttachedImages []Image            `bson:"attachedImages,omitempty" json:"-"`
	IsActive       bool               `bson:"isActive"       json:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt"      json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"      json:"updatedAt"`
}

// Category tags blogs by name. Soft-deletable via IsActive; hard delete
// carries a cascade policy for dependent blogs.
type Category struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name"          json:"name"`
	IsActive bool               `bson:"isActive"      json:"isActive"`
}

// Comment is user text attached to a blog.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Blog      primitive.ObjectID `bson:"blog"          json:"blog"`
	Author    primitive.ObjectID `bson:"author"        json:"author"`
	Content   string             `bson:"content"       json:"content"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}

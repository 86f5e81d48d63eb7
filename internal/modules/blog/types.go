package blog

import (
	"time"

	"github.com/blognest/core/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageDTO is the wire form of an attachment: base64 payload plus MIME type.
type ImageDTO struct {
	Data        string `json:"data" binding:"required"`
	ContentType string `json:"contentType"`
}

type CreateBlogDTO struct {
	BlogType       string     `json:"blogType" binding:"required"`
	BlogTitle      string     `json:"blogTitle" binding:"required"`
	BlogSubTitle   string     `json:"blogSubTitle" binding:"required"`
	BlogContent    string     `json:"blogContent" binding:"required"`
	AttachedImages []ImageDTO `json:"attachedImages"`
}

type UpdateBlogDTO struct {
	BlogType       string     `json:"blogType" binding:"required"`
	BlogTitle      string     `json:"blogTitle" binding:"required"`
	BlogSubTitle   string     `json:"blogSubTitle" binding:"required"`
	BlogContent    string     `json:"blogContent" binding:"required"`
	AttachedImages []ImageDTO `json:"attachedImages"`
}

// AuthorSummary is the populated author shape for blog listings.
type AuthorSummary struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Name           string             `bson:"name" json:"name"`
	ProfilePicture string             `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
}

// BlogResponse is a blog with its author populated and images re-encoded.
// List endpoints leave BlogContent empty; detail includes it.
type BlogResponse struct {
	ID             primitive.ObjectID `json:"id"`
	Author         AuthorSummary      `json:"author"`
	BlogType       string             `json:"blogType"`
	BlogTitle      string             `json:"blogTitle"`
	BlogSubTitle   string             `json:"blogSubTitle"`
	BlogContent    string             `json:"blogContent,omitempty"`
	AttachedImages []ImageDTO         `json:"attachedImages"`
	IsActive       bool               `json:"isActive"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// FeedItem is a blog response enriched with engagement summaries.
type FeedItem struct {
	BlogResponse
	Likes        int64   `json:"likes"`
	Dislikes     int64   `json:"dislikes"`
	UserVote     *string `json:"userVote"`
	CommentCount int64   `json:"commentCount"`
}

// populatedBlog is the aggregation output of a blog joined to its author.
type populatedBlog struct {
	models.Blog `bson:",inline"`
	AuthorDoc   []AuthorSummary `bson:"authorDoc"`
}

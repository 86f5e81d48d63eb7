package pagination

import (
	"context"
	"strconv"

	"github.com/blognest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page int
	Size int
}

// FromContext extracts and validates pagination params from the request.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	size := parseIntOr(c.DefaultQuery("size", "10"), DefaultSize)

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	return Query{Page: page, Size: size}
}

// Find runs a paginated query against a collection and returns the page of
// documents plus pagination metadata. The caller supplies sort/projection via
// opts; skip and limit are applied here.
func Find[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, q Query, opts *options.FindOptions) ([]T, response.Pagination, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	if opts == nil {
		opts = options.Find()
	}
	opts.SetSkip(int64((q.Page - 1) * q.Size)).SetLimit(int64(q.Size))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, response.Pagination{}, err
	}

	return docs, Meta(total, q), nil
}

// Meta computes pagination metadata for a total count and query.
func Meta(total int64, q Query) response.Pagination {
	totalPage := int((total + int64(q.Size) - 1) / int64(q.Size))
	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   totalPage,
		Size:        q.Size,
		HasNextPage: q.Page < totalPage,
	}
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

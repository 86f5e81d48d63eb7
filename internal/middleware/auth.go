package middleware

import (
	"errors"
	"strings"

	"github.com/blognest/core/internal/database"
	"github.com/blognest/core/internal/models"
	"github.com/blognest/core/internal/pkg/jwt"
	"github.com/blognest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const contextKeyUser = "user"

// Auth returns a middleware that enforces Bearer JWT authentication and
// stores the token's principal in the request context. No database round
// trip happens here; role re-checks are RequireAdmin's job.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := validateToken(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(contextKeyUser, claims.User)
		c.Next()
	}
}

// RequireAdmin re-fetches the authenticated user and rejects anyone whose
// stored role is not admin. Must be chained after Auth.
func RequireAdmin(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentUser(c)
		if !ok {
			response.Unauthorized(c)
			return
		}
		id, err := primitive.ObjectIDFromHex(principal.ID)
		if err != nil {
			response.Unauthorized(c)
			return
		}

		var user models.User
		err = db.Collection(database.Users).FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&user)
		if errors.Is(err, mongo.ErrNoDocuments) {
			response.NotFound(c, "User not found")
			return
		}
		if err != nil {
			response.InternalError(c, err)
			return
		}
		if user.Role != models.RoleAdmin {
			response.Forbidden(c, "Access denied. Admin role required.")
			return
		}
		c.Next()
	}
}

// CurrentUser extracts the authenticated principal from the context.
func CurrentUser(c *gin.Context) (jwt.Principal, bool) {
	v, exists := c.Get(contextKeyUser)
	if !exists {
		return jwt.Principal{}, false
	}
	p, ok := v.(jwt.Principal)
	return p, ok
}

// CurrentUserID returns the authenticated user's ObjectID, or false if the
// request is unauthenticated or the id is malformed.
func CurrentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	p, ok := CurrentUser(c)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func validateToken(rawToken string) (*jwt.Claims, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return nil, errors.New("token is required")
	}
	return jwt.Parse(token)
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}

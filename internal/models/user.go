package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a platform account.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"     json:"id"`
	Name           string             `bson:"name"              json:"name"`
	Email          string             `bson:"email"             json:"email"`
	Password       string             `bson:"password"          json:"-"`
	Role           string             `bson:"role"              json:"role"`
	ProfilePicture string             `bson:"profilePicture"    json:"profilePicture"`
	LastLogin      time.Time          `bson:"lastLogin"         json:"lastLogin"`
	IsActive       bool               `bson:"isActive"          json:"isActive"`
	Suspended      bool               `bson:"suspended"         json:"suspended"`
	CreatedAt      time.Time          `bson:"createdAt"         json:"createdAt"`
}

// UserSummary is the populated author/reporter shape embedded in list views.
type UserSummary struct {
	ID    primitive.ObjectID `bson:"_id"   json:"id"`
	Name  string             `bson:"name"  json:"name"`
	Email string             `bson:"email" json:"email,omitempty"`
}

// LoginActivity records one successful password login, used by the admin
// hourly histogram.
type LoginActivity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user"          json:"user"`
	Timestamp time.Time          `bson:"timestamp"     json:"timestamp"`
}

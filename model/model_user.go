package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account. The password hash never leaves the
// server: it is excluded from JSON and only loaded for sign-in.
type User struct {
	ID        bson.ObjectID   `json:"id"               bson:"_id,omitempty"`
	FullName  string          `json:"fullName"         bson:"full_name"`
	Email     string          `json:"email"            bson:"email"`
	Password  string          `json:"-"                bson:"password,omitempty"`
	Role      string          `json:"role"             bson:"role"`
	Avatar    string          `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Posts     []bson.ObjectID `json:"posts"            bson:"posts"`
	CreatedAt time.Time       `json:"createdAt"        bson:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt"        bson:"updated_at"`
}

// Author is the projection of a user attached to posts and comments.
type Author struct {
	ID       bson.ObjectID `json:"id"       bson:"_id"`
	FullName string        `json:"fullName" bson:"full_name"`
	Email    string        `json:"email"    bson:"email"`
}

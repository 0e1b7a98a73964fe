package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Reactions holds the two membership lists of a post. A user id appears
// in at most one of them at any time.
type Reactions struct {
	Likes    []bson.ObjectID `json:"likes"    bson:"likes"`
	Dislikes []bson.ObjectID `json:"dislikes" bson:"dislikes"`
}

type Post struct {
	ID        bson.ObjectID `json:"id"              bson:"_id,omitempty"`
	Title     string        `json:"title,omitempty" bson:"title,omitempty"`
	Content   string        `json:"content"         bson:"content"`
	Image     string        `json:"image,omitempty" bson:"image,omitempty"`
	AuthorID  bson.ObjectID `json:"authorId"        bson:"author"`
	Reactions Reactions     `json:"reactions"       bson:"reactions"`
	CreatedAt time.Time     `json:"createdAt"       bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt"       bson:"updated_at"`
}

// PostWithAuthor is the read model for responses: the author reference
// expanded to its display projection.
type PostWithAuthor struct {
	ID        bson.ObjectID `json:"id"              bson:"_id"`
	Title     string        `json:"title,omitempty" bson:"title,omitempty"`
	Content   string        `json:"content"         bson:"content"`
	Image     string        `json:"image,omitempty" bson:"image,omitempty"`
	Author    Author        `json:"author"          bson:"author"`
	Reactions Reactions     `json:"reactions"       bson:"reactions"`
	CreatedAt time.Time     `json:"createdAt"       bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt"       bson:"updated_at"`
}

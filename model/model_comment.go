package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Text      string        `json:"text"      bson:"text"`
	PostID    bson.ObjectID `json:"postId"    bson:"post"`
	AuthorID  bson.ObjectID `json:"authorId"  bson:"author"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

type CommentWithAuthor struct {
	ID        bson.ObjectID `json:"id"        bson:"_id"`
	Text      string        `json:"text"      bson:"text"`
	PostID    bson.ObjectID `json:"postId"    bson:"post"`
	Author    Author        `json:"author"    bson:"author"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Zibuza/Reschool-HW-B/internal/repository"
	"github.com/Zibuza/Reschool-HW-B/model"
	"github.com/Zibuza/Reschool-HW-B/services"
)

// The handlers consume these store interfaces; the mongo repositories
// implement them. Absence is always repository.ErrNotFound.

type UserStore interface {
	Create(ctx context.Context, u *model.User) (bson.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	Update(ctx context.Context, id bson.ObjectID, upd repository.UserUpdate) (*model.User, error)
	EmailTaken(ctx context.Context, email string, exclude bson.ObjectID) (bool, error)
	PushPost(ctx context.Context, userID, postID bson.ObjectID) error
	PullPost(ctx context.Context, userID, postID bson.ObjectID) error
}

type PostStore interface {
	Create(ctx context.Context, p *model.Post) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	FindByIDWithAuthor(ctx context.Context, id bson.ObjectID) (*model.PostWithAuthor, error)
	List(ctx context.Context, sort repository.PostSort) ([]model.PostWithAuthor, error)
	Update(ctx context.Context, id bson.ObjectID, upd repository.PostUpdate) error
	Delete(ctx context.Context, id bson.ObjectID) error
	React(ctx context.Context, postID, userID bson.ObjectID, kind services.ReactionKind) (*model.Post, error)
}

type CommentStore interface {
	Create(ctx context.Context, postID, authorID bson.ObjectID, text string) (*model.CommentWithAuthor, error)
	ListByPost(ctx context.Context, postID bson.ObjectID) ([]model.CommentWithAuthor, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error)
	UpdateText(ctx context.Context, id bson.ObjectID, text string) (*model.CommentWithAuthor, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

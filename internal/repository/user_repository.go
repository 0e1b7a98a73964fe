package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Zibuza/Reschool-HW-B/model"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// userProjection excludes the password hash. Only FindByEmail, which
// backs sign-in, reads it.
var userProjection = bson.M{"password": 0}

// Create inserts a user. A duplicate on the unique email index comes
// back as ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, u *model.User) (bson.ObjectID, error) {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Posts == nil {
		u.Posts = []bson.ObjectID{}
	}
	if u.Role == "" {
		u.Role = model.RoleUser
	}

	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return bson.NilObjectID, ErrDuplicateEmail
		}
		return bson.NilObjectID, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

// FindByEmail loads a user including the password hash, for sign-in.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(userProjection)).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserUpdate carries the profile fields a user may change about
// themselves. Nil pointers leave the stored value alone.
type UserUpdate struct {
	FullName *string
	Email    *string
	Avatar   *string
}

// Update applies a partial profile update and returns the new document.
func (r *UserRepository) Update(ctx context.Context, id bson.ObjectID, upd UserUpdate) (*model.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.FullName != nil {
		set["full_name"] = *upd.FullName
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Avatar != nil {
		set["avatar"] = *upd.Avatar
	}

	var u model.User
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(userProjection),
	).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// EmailTaken reports whether another account already owns the email.
func (r *UserRepository) EmailTaken(ctx context.Context, email string, exclude bson.ObjectID) (bool, error) {
	filter := bson.M{"email": email, "_id": bson.M{"$ne": exclude}}
	err := r.col.FindOne(ctx, filter,
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PushPost and PullPost maintain the denormalized authored-post list.
// Both are best-effort: the post document is the source of truth.

func (r *UserRepository) PushPost(ctx context.Context, userID, postID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"posts": postID}})
	return err
}

func (r *UserRepository) PullPost(ctx context.Context, userID, postID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"posts": postID}})
	return err
}

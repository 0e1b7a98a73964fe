package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Zibuza/Reschool-HW-B/model"
)

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection("comments")}
}

// Create inserts a comment and returns it with the author expanded, the
// shape responses use.
func (r *CommentRepository) Create(ctx context.Context, postID, authorID bson.ObjectID, text string) (*model.CommentWithAuthor, error) {
	now := time.Now().UTC()
	com := model.Comment{
		Text:      text,
		PostID:    postID,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.col.InsertOne(ctx, com)
	if err != nil {
		return nil, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return r.findByIDWithAuthor(ctx, id)
}

// ListByPost returns a post's comments newest-first with expanded authors.
func (r *CommentRepository) ListByPost(ctx context.Context, postID bson.ObjectID) ([]model.CommentWithAuthor, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"post": postID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}
	pipeline = append(pipeline, lookupAuthor()...)

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []model.CommentWithAuthor{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var com model.Comment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&com)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &com, nil
}

func (r *CommentRepository) UpdateText(ctx context.Context, id bson.ObjectID, text string) (*model.CommentWithAuthor, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"text": text, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.findByIDWithAuthor(ctx, id)
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommentRepository) findByIDWithAuthor(ctx context.Context, id bson.ObjectID) (*model.CommentWithAuthor, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, lookupAuthor()...)

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []model.CommentWithAuthor
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, ErrNotFound
	}
	return &comments[0], nil
}

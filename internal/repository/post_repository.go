package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Zibuza/Reschool-HW-B/model"
	"github.com/Zibuza/Reschool-HW-B/services"
)

// PostSort selects a listing order.
type PostSort string

const (
	SortNewest     PostSort = "newest"
	SortDateAsc    PostSort = "date-asc"
	SortTitleAsc   PostSort = "title-asc"
	SortMostLiked  PostSort = "most-liked"
	SortLeastLiked PostSort = "least-liked"
)

// ParsePostSort maps the query value onto a sort order; anything
// unrecognized falls back to newest-first.
func ParsePostSort(q string) PostSort {
	switch PostSort(q) {
	case SortDateAsc, SortTitleAsc, SortMostLiked, SortLeastLiked:
		return PostSort(q)
	default:
		return SortNewest
	}
}

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

// lookupAuthor expands the author reference into its display projection,
// the aggregation equivalent of a populate.
func lookupAuthor() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "author",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: "$author"}},
	}
}

func (r *PostRepository) Create(ctx context.Context, p *model.Post) (bson.ObjectID, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Reactions.Likes == nil {
		p.Reactions.Likes = []bson.ObjectID{}
	}
	if p.Reactions.Dislikes == nil {
		p.Reactions.Dislikes = []bson.ObjectID{}
	}

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return bson.NilObjectID, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	var p model.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) FindByIDWithAuthor(ctx context.Context, id bson.ObjectID) (*model.PostWithAuthor, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, lookupAuthor()...)

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []model.PostWithAuthor
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNotFound
	}
	return &posts[0], nil
}

// List returns every post in the requested order with expanded authors.
// Like-count orders sort on the computed cardinality of the likes list,
// ties broken newest-first.
func (r *PostRepository) List(ctx context.Context, sort PostSort) ([]model.PostWithAuthor, error) {
	var pipeline mongo.Pipeline

	switch sort {
	case SortMostLiked, SortLeastLiked:
		dir := -1
		if sort == SortLeastLiked {
			dir = 1
		}
		pipeline = append(pipeline,
			bson.D{{Key: "$addFields", Value: bson.M{
				"likes_count": bson.M{"$size": bson.M{"$ifNull": bson.A{"$reactions.likes", bson.A{}}}},
			}}},
			bson.D{{Key: "$sort", Value: bson.D{
				{Key: "likes_count", Value: dir},
				{Key: "_id", Value: -1},
			}}},
		)
	case SortDateAsc:
		pipeline = append(pipeline,
			bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}})
	case SortTitleAsc:
		pipeline = append(pipeline,
			bson.D{{Key: "$sort", Value: bson.D{{Key: "title", Value: 1}}}})
	default:
		pipeline = append(pipeline,
			bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}})
	}
	pipeline = append(pipeline, lookupAuthor()...)

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []model.PostWithAuthor{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// PostUpdate carries the author-editable fields. Nil pointers keep the
// stored value.
type PostUpdate struct {
	Title   *string
	Content *string
	Image   *string
}

func (r *PostRepository) Update(ctx context.Context, id bson.ObjectID, upd PostUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// React executes the toggle as a single pipeline update, so the
// read-decide-write of the membership lists happens atomically inside
// the document store. Two concurrent toggles by the same user serialize
// there instead of racing a load-then-save. The transition mirrors
// services.ApplyReaction. Returns the post as it stands after the
// toggle.
func (r *PostRepository) React(ctx context.Context, postID, userID bson.ObjectID, kind services.ReactionKind) (*model.Post, error) {
	if !kind.Valid() {
		return nil, services.ErrUnsupportedReaction
	}

	likes := bson.M{"$ifNull": bson.A{"$reactions.likes", bson.A{}}}
	dislikes := bson.M{"$ifNull": bson.A{"$reactions.dislikes", bson.A{}}}
	// toggled(list): drop the user when present, append when absent.
	toggled := func(list bson.M) bson.M {
		return bson.M{"$cond": bson.A{
			bson.M{"$in": bson.A{userID, list}},
			bson.M{"$setDifference": bson.A{list, bson.A{userID}}},
			bson.M{"$concatArrays": bson.A{list, bson.A{userID}}},
		}}
	}
	// cleared(list): the opposite side always loses the user.
	cleared := func(list bson.M) bson.M {
		return bson.M{"$setDifference": bson.A{list, bson.A{userID}}}
	}

	set := bson.M{"updated_at": "$$NOW"}
	if kind == services.ReactionLike {
		set["reactions.likes"] = toggled(likes)
		set["reactions.dislikes"] = cleared(dislikes)
	} else {
		set["reactions.dislikes"] = toggled(dislikes)
		set["reactions.likes"] = cleared(likes)
	}

	update := mongo.Pipeline{bson.D{{Key: "$set", Value: set}}}

	var p model.Post
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": postID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

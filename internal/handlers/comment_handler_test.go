package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Zibuza/Reschool-HW-B/dto"
	"github.com/Zibuza/Reschool-HW-B/internal/repository"
	"github.com/Zibuza/Reschool-HW-B/model"
)

func newCommentApp(uid bson.ObjectID, comments *mockCommentStore, posts *mockPostStore) *fiber.App {
	h := &CommentHandler{Comments: comments, Posts: posts, Log: testLogger()}
	app := fiber.New()
	app.Post("/comments/:postId", fakeAuth(uid), h.Create)
	app.Get("/comments/:postId", h.List)
	app.Put("/comments/comment/:commentId", fakeAuth(uid), h.Update)
	app.Delete("/comments/comment/:commentId", fakeAuth(uid), h.Delete)
	return app
}

func TestCreateCommentUnknownPost(t *testing.T) {
	uid := bson.NewObjectID()
	postID := bson.NewObjectID()

	posts := new(mockPostStore)
	posts.On("FindByID", mock.Anything, postID).Return(nil, repository.ErrNotFound)
	comments := new(mockCommentStore)

	app := newCommentApp(uid, comments, posts)
	resp, err := app.Test(jsonRequest("POST", "/comments/"+postID.Hex(),
		dto.CreateCommentRequest{Text: "hi"}))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCommentBlankText(t *testing.T) {
	uid := bson.NewObjectID()
	postID := bson.NewObjectID()

	app := newCommentApp(uid, new(mockCommentStore), new(mockPostStore))
	resp, err := app.Test(jsonRequest("POST", "/comments/"+postID.Hex(),
		dto.CreateCommentRequest{Text: "   "}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateComment(t *testing.T) {
	uid := bson.NewObjectID()
	postID := bson.NewObjectID()

	posts := new(mockPostStore)
	posts.On("FindByID", mock.Anything, postID).
		Return(&model.Post{ID: postID, AuthorID: bson.NewObjectID()}, nil)

	comments := new(mockCommentStore)
	comments.On("Create", mock.Anything, postID, uid, "Nice blog!").
		Return(&model.CommentWithAuthor{
			ID:     bson.NewObjectID(),
			Text:   "Nice blog!",
			PostID: postID,
			Author: model.Author{ID: uid, FullName: "John Doe", Email: "john@example.com"},
		}, nil)

	app := newCommentApp(uid, comments, posts)
	resp, err := app.Test(jsonRequest("POST", "/comments/"+postID.Hex(),
		dto.CreateCommentRequest{Text: "Nice blog!"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body model.CommentWithAuthor
	require.NoError(t, decodeBody(resp.Body, &body))
	assert.Equal(t, "John Doe", body.Author.FullName)
}

func TestUpdateCommentForbiddenForNonAuthor(t *testing.T) {
	actor := bson.NewObjectID()
	commentID := bson.NewObjectID()

	comments := new(mockCommentStore)
	comments.On("FindByID", mock.Anything, commentID).Return(&model.Comment{
		ID:       commentID,
		AuthorID: bson.NewObjectID(),
		PostID:   bson.NewObjectID(),
	}, nil)

	app := newCommentApp(actor, comments, new(mockPostStore))
	resp, err := app.Test(jsonRequest("PUT", "/comments/comment/"+commentID.Hex(),
		dto.UpdateCommentRequest{Text: "edited"}))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	comments.AssertNotCalled(t, "UpdateText", mock.Anything, mock.Anything, mock.Anything)
}

// The dual-ownership rule: the comment's author and the parent post's
// author may both delete; anyone else is rejected.
func TestDeleteCommentDualOwnership(t *testing.T) {
	commentAuthor := bson.NewObjectID()
	postAuthor := bson.NewObjectID()
	stranger := bson.NewObjectID()
	postID := bson.NewObjectID()
	commentID := bson.NewObjectID()

	comment := &model.Comment{ID: commentID, AuthorID: commentAuthor, PostID: postID}
	post := &model.Post{ID: postID, AuthorID: postAuthor}

	t.Run("comment author may delete", func(t *testing.T) {
		comments := new(mockCommentStore)
		comments.On("FindByID", mock.Anything, commentID).Return(comment, nil)
		comments.On("Delete", mock.Anything, commentID).Return(nil)

		app := newCommentApp(commentAuthor, comments, new(mockPostStore))
		resp, err := app.Test(jsonRequest("DELETE", "/comments/comment/"+commentID.Hex(), nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		comments.AssertExpectations(t)
	})

	t.Run("post author may delete", func(t *testing.T) {
		comments := new(mockCommentStore)
		comments.On("FindByID", mock.Anything, commentID).Return(comment, nil)
		comments.On("Delete", mock.Anything, commentID).Return(nil)

		posts := new(mockPostStore)
		posts.On("FindByID", mock.Anything, postID).Return(post, nil)

		app := newCommentApp(postAuthor, comments, posts)
		resp, err := app.Test(jsonRequest("DELETE", "/comments/comment/"+commentID.Hex(), nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		comments.AssertExpectations(t)
	})

	t.Run("third user may not delete", func(t *testing.T) {
		comments := new(mockCommentStore)
		comments.On("FindByID", mock.Anything, commentID).Return(comment, nil)

		posts := new(mockPostStore)
		posts.On("FindByID", mock.Anything, postID).Return(post, nil)

		app := newCommentApp(stranger, comments, posts)
		resp, err := app.Test(jsonRequest("DELETE", "/comments/comment/"+commentID.Hex(), nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		comments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestDeleteCommentNotFound(t *testing.T) {
	commentID := bson.NewObjectID()

	comments := new(mockCommentStore)
	comments.On("FindByID", mock.Anything, commentID).Return(nil, repository.ErrNotFound)

	app := newCommentApp(bson.NewObjectID(), comments, new(mockPostStore))
	resp, err := app.Test(jsonRequest("DELETE", "/comments/comment/"+commentID.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListCommentsIsPublic(t *testing.T) {
	postID := bson.NewObjectID()

	comments := new(mockCommentStore)
	comments.On("ListByPost", mock.Anything, postID).
		Return([]model.CommentWithAuthor{}, nil)

	app := newCommentApp(bson.NewObjectID(), comments, new(mockPostStore))
	resp, err := app.Test(jsonRequest("GET", "/comments/"+postID.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

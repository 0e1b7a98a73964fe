package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/Zibuza/Reschool-HW-B/dto"
	"github.com/Zibuza/Reschool-HW-B/internal/authctx"
	"github.com/Zibuza/Reschool-HW-B/internal/repository"
)

type CommentHandler struct {
	Comments CommentStore
	Posts    PostStore
	Log      *zap.Logger
}

// Create adds a comment to a post.
//
//	@Summary	Create a comment
//	@Tags		Comments
//	@Security	BearerAuth
//	@Accept		json
//	@Param		postId	path	string					true	"post id"
//	@Param		body	body	dto.CreateCommentRequest	true	"comment text"
//	@Success	201	{object}	model.CommentWithAuthor
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/comments/{postId} [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Message: "unauthorized"})
	}
	postID, err := bson.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid post id"})
	}

	var body dto.CreateCommentRequest
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.Text) == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "comment text is required"})
	}

	if _, err := h.Posts.FindByID(c.Context(), postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "post not found"})
		}
		h.Log.Error("get post", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}

	com, err := h.Comments.Create(c.Context(), postID, uid, strings.TrimSpace(body.Text))
	if err != nil {
		h.Log.Error("create comment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(com)
}

// List returns a post's comments, newest first. Public.
//
//	@Summary	Get comments for a post
//	@Tags		Comments
//	@Param		postId	path	string	true	"post id"
//	@Success	200	{array}	model.CommentWithAuthor
//	@Router		/comments/{postId} [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := bson.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid post id"})
	}

	comments, err := h.Comments.ListByPost(c.Context(), postID)
	if err != nil {
		h.Log.Error("list comments", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	return c.JSON(comments)
}

// Update edits a comment's text. Only the comment's author may do it.
//
//	@Summary	Update a comment
//	@Tags		Comments
//	@Security	BearerAuth
//	@Accept		json
//	@Param		commentId	path	string					true	"comment id"
//	@Param		body		body	dto.UpdateCommentRequest	true	"new text"
//	@Success	200	{object}	model.CommentWithAuthor
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/comments/comment/{commentId} [put]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Message: "unauthorized"})
	}
	commentID, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid comment id"})
	}

	var body dto.UpdateCommentRequest
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.Text) == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "comment text is required"})
	}

	com, err := h.Comments.FindByID(c.Context(), commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "comment not found"})
		}
		h.Log.Error("get comment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	if com.AuthorID != uid {
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Message: "you do not have permission"})
	}

	updated, err := h.Comments.UpdateText(c.Context(), commentID, strings.TrimSpace(body.Text))
	if err != nil {
		h.Log.Error("update comment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	return c.JSON(updated)
}

// Delete removes a comment. Allowed for the comment's author and for
// the parent post's author, nobody else.
//
//	@Summary	Delete a comment
//	@Tags		Comments
//	@Security	BearerAuth
//	@Param		commentId	path	string	true	"comment id"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/comments/comment/{commentId} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Message: "unauthorized"})
	}
	commentID, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid comment id"})
	}

	com, err := h.Comments.FindByID(c.Context(), commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "comment not found"})
		}
		h.Log.Error("get comment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}

	allowed := com.AuthorID == uid
	if !allowed {
		// The parent post's author moderates their own comment section.
		if post, err := h.Posts.FindByID(c.Context(), com.PostID); err == nil {
			allowed = post.AuthorID == uid
		}
	}
	if !allowed {
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Message: "you do not have permission"})
	}

	if err := h.Comments.Delete(c.Context(), commentID); err != nil {
		h.Log.Error("delete comment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	return c.JSON(dto.MessageResponse{Message: "comment deleted"})
}

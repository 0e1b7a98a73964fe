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
	"github.com/Zibuza/Reschool-HW-B/internal/storage"
	"github.com/Zibuza/Reschool-HW-B/model"
	"github.com/Zibuza/Reschool-HW-B/services"
)

type PostHandler struct {
	Posts PostStore
	Users UserStore
	Media storage.MediaStore
	Log   *zap.Logger
}

// List returns all posts in the requested order.
//
//	@Summary	List posts
//	@Tags		Posts
//	@Security	BearerAuth
//	@Param		sort	query	string	false	"most-liked | least-liked | date-asc | title-asc"
//	@Success	200	{array}	model.PostWithAuthor
//	@Router		/posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	sort := repository.ParsePostSort(c.Query("sort"))

	posts, err := h.Posts.List(c.Context(), sort)
	if err != nil {
		h.Log.Error("list posts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	return c.JSON(posts)
}

// Create makes a new post for the caller, uploading the optional image
// first. The author's denormalized post list is updated best-effort.
//
//	@Summary	Create a new post
//	@Tags		Posts
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Param		title	formData	string	false	"title"
//	@Param		content	formData	string	true	"content"
//	@Param		image	formData	file	false	"image file"
//	@Success	201	{object}	dto.CreatePostResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Message: "unauthorized"})
	}

	content := strings.TrimSpace(c.FormValue("content"))
	if content == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "content is required"})
	}

	post := model.Post{
		Title:    strings.TrimSpace(c.FormValue("title")),
		Content:  content,
		AuthorID: uid,
	}

	if fh, err := c.FormFile("image"); err == nil {
		url, err := storeFormFile(c.Context(), h.Media, fh)
		if err != nil {
			h.Log.Error("upload post image", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "server error"})
		}
		post.Image = url
	}

	postID, err := h.Posts.Create(c.Context(), &post)
	if err != nil {
		h.Log.Error("create post", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}

	if err := h.Users.PushPost(c.Context(), uid, postID); err != nil {
		h.Log.Warn("push post to author list", zap.Error(err))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreatePostResponse{
		Message: "post created successfully",
		PostID:  postID.Hex(),
	})
}

// Get returns one post with its author expanded.
//
//	@Summary	Get post by ID
//	@Tags		Posts
//	@Security	BearerAuth
//	@Param		id	path	string	true	"post id"
//	@Success	200	{object}	model.PostWithAuthor
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/posts/{id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "id is invalid"})
	}

	post, err := h.Posts.FindByIDWithAuthor(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "not found"})
		}
		h.Log.Error("get post", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	return c.JSON(post)
}

// Update edits a post's title/content/image. Only the author may do it;
// blank form fields keep the stored values.
//
//	@Summary	Update a post
//	@Tags		Posts
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Param		id	path	string	true	"post id"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/posts/{id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Message: "unauthorized"})
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "id is invalid"})
	}

	// Existence first: a missing post is 404 for everyone, owner or not.
	post, err := h.Posts.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "not found"})
		}
		h.Log.Error("get post", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	if post.AuthorID != uid {
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Message: "you do not have permission"})
	}

	var upd repository.PostUpdate
	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		upd.Title = &title
	}
	if content := strings.TrimSpace(c.FormValue("content")); content != "" {
		upd.Content = &content
	}
	if fh, err := c.FormFile("image"); err == nil {
		url, err := storeFormFile(c.Context(), h.Media, fh)
		if err != nil {
			h.Log.Error("upload post image", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "server error"})
		}
		upd.Image = &url
	}

	if err := h.Posts.Update(c.Context(), id, upd); err != nil {
		h.Log.Error("update post", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	return c.JSON(dto.MessageResponse{Message: "post updated successfully"})
}

// Delete removes a post. Only the author may do it.
//
//	@Summary	Delete a post
//	@Tags		Posts
//	@Security	BearerAuth
//	@Param		id	path	string	true	"post id"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Message: "unauthorized"})
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "id is invalid"})
	}

	post, err := h.Posts.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "not found"})
		}
		h.Log.Error("get post", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	if post.AuthorID != uid {
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Message: "you do not have permission"})
	}

	if err := h.Posts.Delete(c.Context(), id); err != nil {
		h.Log.Error("delete post", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	if err := h.Users.PullPost(c.Context(), uid, id); err != nil {
		h.Log.Warn("pull post from author list", zap.Error(err))
	}

	return c.JSON(dto.MessageResponse{Message: "post deleted successfully"})
}

// React toggles the caller's like/dislike on a post. The reaction type
// is checked before the post is even looked up; the toggle itself runs
// as one atomic update in the store.
//
//	@Summary	React to a post (like/dislike)
//	@Tags		Posts
//	@Security	BearerAuth
//	@Param		id		path	string				true	"post id"
//	@Param		body	body	dto.ReactionRequest	true	"reaction type"
//	@Success	200	{object}	dto.ReactionResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/posts/{id}/reactions [post]
func (h *PostHandler) React(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Message: "unauthorized"})
	}

	var body dto.ReactionRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid body"})
	}
	kind := services.ReactionKind(body.Type)
	if !kind.Valid() {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "wrong reaction type"})
	}

	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "id is invalid"})
	}

	post, err := h.Posts.React(c.Context(), id, uid, kind)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "post not found"})
		}
		h.Log.Error("react to post", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}

	return c.JSON(dto.ReactionResponse{
		Message: "reaction updated successfully",
		State:   string(services.StateOf(post.Reactions, uid)),
	})
}

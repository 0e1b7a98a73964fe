package handlers

import (
	"context"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Zibuza/Reschool-HW-B/dto"
	"github.com/Zibuza/Reschool-HW-B/internal/storage"
)

type UploadHandler struct {
	Media storage.MediaStore
	Log   *zap.Logger
}

// Upload pushes a standalone image to the media host.
//
//	@Summary	Upload an image
//	@Tags		Upload
//	@Accept		multipart/form-data
//	@Param		image	formData	file	true	"image file"
//	@Success	200	{object}	dto.UploadResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "image file is required"})
	}

	url, err := storeFormFile(c.Context(), h.Media, fh)
	if err != nil {
		h.Log.Error("upload image", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	return c.JSON(dto.UploadResponse{URL: url})
}

// storeFormFile streams a multipart file into the media store. Shared by
// the upload, post and profile handlers.
func storeFormFile(ctx context.Context, media storage.MediaStore, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return media.Upload(ctx, fh.Filename, f, fh.Size, fh.Header.Get("Content-Type"))
}

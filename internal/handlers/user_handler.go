package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Zibuza/Reschool-HW-B/dto"
	"github.com/Zibuza/Reschool-HW-B/internal/authctx"
	"github.com/Zibuza/Reschool-HW-B/internal/repository"
	"github.com/Zibuza/Reschool-HW-B/internal/storage"
)

type UserHandler struct {
	Users UserStore
	Media storage.MediaStore
	Log   *zap.Logger
}

// Profile returns the caller's own record.
//
//	@Summary	Get own profile
//	@Tags		Users
//	@Security	BearerAuth
//	@Success	200	{object}	model.User
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Message: "unauthorized"})
	}

	user, err := h.Users.FindByID(c.Context(), uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "user not found"})
		}
		h.Log.Error("find user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	return c.JSON(user)
}

// Update changes the caller's name, email or avatar. A new email must
// not belong to anyone else.
//
//	@Summary	Update own profile
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Param		fullName	formData	string	false	"display name"
//	@Param		email		formData	string	false	"email"
//	@Param		avatar		formData	file	false	"avatar image"
//	@Success	200	{object}	dto.UpdateProfileResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/users [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Message: "unauthorized"})
	}

	var upd repository.UserUpdate
	if name := strings.TrimSpace(c.FormValue("fullName")); name != "" {
		upd.FullName = &name
	}
	if email := normalizeEmail(c.FormValue("email")); email != "" {
		taken, err := h.Users.EmailTaken(c.Context(), email, uid)
		if err != nil {
			h.Log.Error("check email", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "server error"})
		}
		if taken {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "email already exists"})
		}
		upd.Email = &email
	}
	if fh, err := c.FormFile("avatar"); err == nil {
		url, err := storeFormFile(c.Context(), h.Media, fh)
		if err != nil {
			h.Log.Error("upload avatar", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "server error"})
		}
		upd.Avatar = &url
	}

	user, err := h.Users.Update(c.Context(), uid, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "user not found"})
		}
		h.Log.Error("update user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}

	return c.JSON(dto.UpdateProfileResponse{
		Message: "profile updated successfully",
		User:    user,
	})
}

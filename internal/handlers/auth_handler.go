package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zibuza/Reschool-HW-B/dto"
	"github.com/Zibuza/Reschool-HW-B/internal/authctx"
	"github.com/Zibuza/Reschool-HW-B/internal/repository"
	"github.com/Zibuza/Reschool-HW-B/internal/token"
	"github.com/Zibuza/Reschool-HW-B/model"
)

type AuthHandler struct {
	Users    UserStore
	Tokens   *token.Service
	Validate *validator.Validate
	Log      *zap.Logger
}

// SignUp registers a new account.
//
//	@Summary	Register a new user
//	@Tags		Auth
//	@Accept		json
//	@Param		body	body	dto.SignUpRequest	true	"registration fields"
//	@Success	201	{object}	dto.MessageResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/auth/sign-up [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var body dto.SignUpRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid body"})
	}
	if err := h.Validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "fullName, email and password are required"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("hash password", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}

	user := model.User{
		FullName: strings.TrimSpace(body.FullName),
		Email:    normalizeEmail(body.Email),
		Password: string(hashed),
	}
	if _, err := h.Users.Create(c.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "user already exist"})
		}
		h.Log.Error("create user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}

	return c.Status(fiber.StatusCreated).
		JSON(dto.MessageResponse{Message: "user registered successfully"})
}

// SignIn exchanges credentials for a bearer token. Unknown email and
// wrong password produce the same response so callers cannot probe
// which one was off.
//
//	@Summary	Login and get a JWT token
//	@Tags		Auth
//	@Accept		json
//	@Param		body	body	dto.SignInRequest	true	"credentials"
//	@Success	200	{object}	dto.SignInResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/auth/sign-in [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var body dto.SignInRequest
	if err := c.BodyParser(&body); err != nil || body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "email and password is required"})
	}

	user, err := h.Users.FindByEmail(c.Context(), normalizeEmail(body.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "email or password is invalid"})
		}
		h.Log.Error("find user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)) != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "email or password is invalid"})
	}

	tok, err := h.Tokens.Sign(user.ID.Hex(), user.Role)
	if err != nil {
		h.Log.Error("sign token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "server error"})
	}
	return c.JSON(dto.SignInResponse{Token: tok})
}

// CurrentUser returns the caller's profile, password hash excluded.
//
//	@Summary	Get current authenticated user
//	@Tags		Auth
//	@Security	BearerAuth
//	@Success	200	{object}	model.User
//	@Failure	401	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/auth/current-user [get]
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
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

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

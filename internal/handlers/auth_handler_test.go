package handlers

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zibuza/Reschool-HW-B/dto"
	"github.com/Zibuza/Reschool-HW-B/internal/repository"
	"github.com/Zibuza/Reschool-HW-B/internal/token"
	"github.com/Zibuza/Reschool-HW-B/model"
)

func newAuthApp(users *mockUserStore) *fiber.App {
	h := &AuthHandler{
		Users:    users,
		Tokens:   token.NewService("test-secret", time.Hour),
		Validate: validator.New(),
		Log:      testLogger(),
	}
	app := fiber.New()
	app.Post("/auth/sign-up", h.SignUp)
	app.Post("/auth/sign-in", h.SignIn)
	return app
}

func TestSignUpValidation(t *testing.T) {
	cases := []struct {
		name string
		body dto.SignUpRequest
	}{
		{"missing full name", dto.SignUpRequest{Email: "a@b.com", Password: "password123"}},
		{"missing email", dto.SignUpRequest{FullName: "A", Password: "password123"}},
		{"bad email", dto.SignUpRequest{FullName: "A", Email: "not-an-email", Password: "password123"}},
		{"short password", dto.SignUpRequest{FullName: "A", Email: "a@b.com", Password: "123"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := new(mockUserStore)
			app := newAuthApp(users)

			resp, err := app.Test(jsonRequest("POST", "/auth/sign-up", tc.body))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestSignUpSuccess(t *testing.T) {
	users := new(mockUserStore)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// Email is lowercased and the password stored only as a hash.
		return u.Email == "john@example.com" && u.Password != "password123"
	})).Return(bson.NewObjectID(), nil)

	app := newAuthApp(users)
	resp, err := app.Test(jsonRequest("POST", "/auth/sign-up", dto.SignUpRequest{
		FullName: "John Doe",
		Email:    "John@Example.com",
		Password: "password123",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	users.AssertExpectations(t)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	users := new(mockUserStore)
	users.On("Create", mock.Anything, mock.Anything).
		Return(bson.NilObjectID, repository.ErrDuplicateEmail)

	app := newAuthApp(users)
	resp, err := app.Test(jsonRequest("POST", "/auth/sign-up", dto.SignUpRequest{
		FullName: "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSignInNoCredentialLeak(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	known := &model.User{
		ID:       bson.NewObjectID(),
		Email:    "john@example.com",
		Password: string(hash),
		Role:     model.RoleUser,
	}

	users := new(mockUserStore)
	users.On("FindByEmail", mock.Anything, "john@example.com").Return(known, nil)
	users.On("FindByEmail", mock.Anything, "nobody@example.com").
		Return(nil, repository.ErrNotFound)

	app := newAuthApp(users)

	// Wrong password for a real account and an unknown email must be
	// indistinguishable.
	var bodies []dto.ErrorResponse
	for _, creds := range []dto.SignInRequest{
		{Email: "john@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "whatever"},
	} {
		resp, err := app.Test(jsonRequest("POST", "/auth/sign-in", creds))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body dto.ErrorResponse
		require.NoError(t, decodeBody(resp.Body, &body))
		bodies = append(bodies, body)
	}
	assert.Equal(t, bodies[0], bodies[1])
}

func TestSignInMissingFields(t *testing.T) {
	users := new(mockUserStore)
	app := newAuthApp(users)

	resp, err := app.Test(jsonRequest("POST", "/auth/sign-in", dto.SignInRequest{Email: "a@b.com"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestSignInSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := new(mockUserStore)
	users.On("FindByEmail", mock.Anything, "john@example.com").Return(&model.User{
		ID:       bson.NewObjectID(),
		Email:    "john@example.com",
		Password: string(hash),
		Role:     model.RoleUser,
	}, nil)

	app := newAuthApp(users)
	resp, err := app.Test(jsonRequest("POST", "/auth/sign-in", dto.SignInRequest{
		Email:    "john@example.com",
		Password: "correct-password",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.SignInResponse
	require.NoError(t, decodeBody(resp.Body, &body))
	assert.NotEmpty(t, body.Token)
}

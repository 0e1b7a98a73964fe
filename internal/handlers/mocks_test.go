package handlers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Zibuza/Reschool-HW-B/internal/repository"
	"github.com/Zibuza/Reschool-HW-B/model"
	"github.com/Zibuza/Reschool-HW-B/services"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Create(ctx context.Context, u *model.User) (bson.ObjectID, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserStore) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, id bson.ObjectID, upd repository.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserStore) EmailTaken(ctx context.Context, email string, exclude bson.ObjectID) (bool, error) {
	args := m.Called(ctx, email, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) PushPost(ctx context.Context, userID, postID bson.ObjectID) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *mockUserStore) PullPost(ctx context.Context, userID, postID bson.ObjectID) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

type mockPostStore struct{ mock.Mock }

func (m *mockPostStore) Create(ctx context.Context, p *model.Post) (bson.ObjectID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *mockPostStore) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *mockPostStore) FindByIDWithAuthor(ctx context.Context, id bson.ObjectID) (*model.PostWithAuthor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostWithAuthor), args.Error(1)
}

func (m *mockPostStore) List(ctx context.Context, sort repository.PostSort) ([]model.PostWithAuthor, error) {
	args := m.Called(ctx, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PostWithAuthor), args.Error(1)
}

func (m *mockPostStore) Update(ctx context.Context, id bson.ObjectID, upd repository.PostUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *mockPostStore) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPostStore) React(ctx context.Context, postID, userID bson.ObjectID, kind services.ReactionKind) (*model.Post, error) {
	args := m.Called(ctx, postID, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

type mockCommentStore struct{ mock.Mock }

func (m *mockCommentStore) Create(ctx context.Context, postID, authorID bson.ObjectID, text string) (*model.CommentWithAuthor, error) {
	args := m.Called(ctx, postID, authorID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CommentWithAuthor), args.Error(1)
}

func (m *mockCommentStore) ListByPost(ctx context.Context, postID bson.ObjectID) ([]model.CommentWithAuthor, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CommentWithAuthor), args.Error(1)
}

func (m *mockCommentStore) FindByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *mockCommentStore) UpdateText(ctx context.Context, id bson.ObjectID, text string) (*model.CommentWithAuthor, error) {
	args := m.Called(ctx, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CommentWithAuthor), args.Error(1)
}

func (m *mockCommentStore) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMediaStore struct{ mock.Mock }

func (m *mockMediaStore) Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, filename, r, size, contentType)
	return args.String(0), args.Error(1)
}

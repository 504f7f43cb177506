// Package mocks holds testify mocks of the core repositories.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"neighbornet/internal/core"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetLocation(ctx context.Context, userID int64) (core.Location, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(core.Location), args.Error(1)
}

func (m *UserRepository) GetProfile(ctx context.Context, userID int64) (*core.UserModel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.UserModel), args.Error(1)
}

func (m *UserRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) ListActive(ctx context.Context, page core.Page) ([]core.PostRow, int64, error) {
	args := m.Called(ctx, page)
	return rows(args.Get(0)), args.Get(1).(int64), args.Error(2)
}

func (m *PostRepository) ListPriority(ctx context.Context, since time.Time, priorities []core.Priority, limit int) ([]core.PostRow, error) {
	args := m.Called(ctx, since, priorities, limit)
	return rows(args.Get(0)), args.Error(1)
}

func (m *PostRepository) Search(ctx context.Context, filter core.SearchFilter) ([]core.PostRow, error) {
	args := m.Called(ctx, filter)
	return rows(args.Get(0)), args.Error(1)
}

func (m *PostRepository) Get(ctx context.Context, postID int64) (*core.PostRow, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.PostRow), args.Error(1)
}

func (m *PostRepository) Create(ctx context.Context, post core.NewPost) (*core.PostRow, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.PostRow), args.Error(1)
}

type TagRepository struct {
	mock.Mock
}

func (m *TagRepository) ForPosts(ctx context.Context, postIDs ...int64) (map[int64][]core.TagModel, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]core.TagModel), args.Error(1)
}

func (m *TagRepository) All(ctx context.Context) ([]core.TagModel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.TagModel), args.Error(1)
}

type IncidentRepository struct {
	mock.Mock
}

func (m *IncidentRepository) ForPosts(ctx context.Context, postIDs ...int64) (map[int64]core.IncidentModel, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]core.IncidentModel), args.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishPostCreated(ctx context.Context, event core.PostCreatedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func rows(v any) []core.PostRow {
	if v == nil {
		return nil
	}
	return v.([]core.PostRow)
}

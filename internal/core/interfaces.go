package core

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type DB interface {
	Model(a any) *gorm.DB
	WithContext(ctx context.Context) *gorm.DB
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	EstimatedCount(ctx context.Context, tableName string) (int64, error)
	DB() (*sql.DB, error)
}

type Migrator interface {
	Up(ctx context.Context) error
	Down(ctx context.Context) error
}

type UserRepository interface {
	GetLocation(ctx context.Context, userID int64) (Location, error)
	GetProfile(ctx context.Context, userID int64) (*UserModel, error)
	Exists(ctx context.Context, userID int64) (bool, error)
}

type PostRepository interface {
	ListActive(ctx context.Context, page Page) ([]PostRow, int64, error)
	ListPriority(ctx context.Context, since time.Time, priorities []Priority, limit int) ([]PostRow, error)
	Search(ctx context.Context, filter SearchFilter) ([]PostRow, error)
	Get(ctx context.Context, postID int64) (*PostRow, error)
	Create(ctx context.Context, post NewPost) (*PostRow, error)
}

type TagRepository interface {
	ForPosts(ctx context.Context, postIDs ...int64) (map[int64][]TagModel, error)
	All(ctx context.Context) ([]TagModel, error)
}

type IncidentRepository interface {
	ForPosts(ctx context.Context, postIDs ...int64) (map[int64]IncidentModel, error)
}

// Cache stores JSON encoded values. Get reports whether the key was found.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type EventPublisher interface {
	PublishPostCreated(ctx context.Context, event PostCreatedEvent) error
}

package tags

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"neighbornet/internal/config"
	"neighbornet/internal/core"
	"neighbornet/internal/persistence"
)

const allTagsKey = "tags:all"

type Repository struct {
	Logger *slog.Logger
	Config *config.Config
	DB     core.DB
	Cache  core.Cache
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "tags.Repository")
	return nil
}

type postTag struct {
	PostID int64 `gorm:"column:post_id"`
	core.TagModel
}

// ForPosts fetches the tags of all given posts in one query, each list in association order.
func (r *Repository) ForPosts(ctx context.Context, postIDs ...int64) (map[int64][]core.TagModel, error) {
	if len(postIDs) == 0 {
		return map[int64][]core.TagModel{}, nil
	}

	var rows []postTag
	err := r.DB.WithContext(ctx).
		Table("post_tags AS pt").
		Select("pt.post_id, t.tag_id, t.name, t.category, t.color").
		Joins("JOIN tags AS t ON t.tag_id = pt.tag_id").
		Where("pt.post_id IN ?", lo.Uniq(postIDs)).
		Order("pt.post_id").
		Order("pt.created_at").
		Order("pt.tag_id").
		Find(&rows).Error
	if err != nil {
		return nil, persistence.Translate(err, "post tags")
	}

	grouped := lo.GroupBy(rows, func(row postTag) int64 {
		return row.PostID
	})

	return lo.MapValues(grouped, func(rows []postTag, _ int64) []core.TagModel {
		return lo.Map(rows, func(row postTag, _ int) core.TagModel {
			return row.TagModel
		})
	}), nil
}

func (r *Repository) All(ctx context.Context) ([]core.TagModel, error) {
	var tags []core.TagModel

	found, err := r.Cache.Get(ctx, allTagsKey, &tags)
	if err != nil {
		r.Logger.Warn("failed to read tags from cache", "error", err)
	}
	if found {
		return tags, nil
	}

	err = r.DB.WithContext(ctx).
		Order("category").
		Order("name").
		Find(&tags).Error
	if err != nil {
		return nil, persistence.Translate(err, "tags")
	}

	if err := r.Cache.Set(ctx, allTagsKey, tags, r.ttl()); err != nil {
		r.Logger.Warn("failed to cache tags", "error", err)
	}

	return tags, nil
}

func (r *Repository) ttl() time.Duration {
	if r.Config.CacheTTL > 0 {
		return r.Config.CacheTTL
	}
	return 5 * time.Minute
}

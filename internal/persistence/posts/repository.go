package posts

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"neighbornet/internal/core"
	"neighbornet/internal/persistence"
)

const authorColumns = `u.user_id AS author_id,
	u.name AS author_name,
	u.profile_image_url AS author_image,
	u.verification_status AS author_verification,
	u.street AS author_street,
	u.latitude AS author_latitude,
	u.longitude AS author_longitude`

type Repository struct {
	Logger *slog.Logger
	DB     core.DB
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "posts.Repository")
	return nil
}

func (r *Repository) ListActive(ctx context.Context, page core.Page) ([]core.PostRow, int64, error) {
	query := r.withAuthor(ctx).
		Scopes(active).
		Order("p.is_pinned DESC").
		Order("p.created_at DESC").
		Order("p.post_id DESC")

	if page.Size > 0 {
		query = query.Offset(page.Offset()).Limit(page.Size)
	}

	var rows []core.PostRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, persistence.Translate(err, "active posts")
	}

	if page.Size == 0 {
		return rows, int64(len(rows)), nil
	}

	var total int64
	err := r.DB.WithContext(ctx).
		Table("posts AS p").
		Scopes(active).
		Count(&total).Error
	if err != nil {
		return nil, 0, persistence.Translate(err, "active posts count")
	}

	return rows, total, nil
}

func (r *Repository) ListPriority(ctx context.Context, since time.Time, priorities []core.Priority, limit int) ([]core.PostRow, error) {
	var rows []core.PostRow
	err := r.withAuthor(ctx).
		Scopes(active).
		Where("p.priority IN ?", priorities).
		Where("p.created_at >= ?", since).
		Order("CASE p.priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 ELSE 2 END").
		Order("p.created_at DESC").
		Limit(limit).
		Find(&rows).Error

	return rows, persistence.Translate(err, "priority posts")
}

func (r *Repository) Search(ctx context.Context, filter core.SearchFilter) ([]core.PostRow, error) {
	var rows []core.PostRow
	err := r.withAuthor(ctx).
		Scopes(searchScopes(filter)...).
		Order("p.created_at DESC").
		Find(&rows).Error

	return rows, persistence.Translate(err, "search posts")
}

func (r *Repository) Get(ctx context.Context, postID int64) (*core.PostRow, error) {
	var row core.PostRow
	err := r.withAuthor(ctx).
		Scopes(active).
		Where("p.post_id = ?", postID).
		Take(&row).Error
	if err != nil {
		return nil, persistence.Translate(err, "post")
	}
	return &row, nil
}

// Create inserts the post, its tag links and its incident report in one transaction.
func (r *Repository) Create(ctx context.Context, newPost core.NewPost) (*core.PostRow, error) {
	post := newPost.Post

	err := r.DB.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return persistence.Translate(err, "post")
		}

		if len(newPost.TagIDs) > 0 {
			links := lo.Map(lo.Uniq(newPost.TagIDs), func(tagID int64, _ int) core.PostTagModel {
				return core.PostTagModel{PostID: post.PostID, TagID: tagID}
			})
			if err := tx.Create(&links).Error; err != nil {
				return persistence.Translate(err, "tag")
			}
		}

		if newPost.Incident != nil {
			incident := *newPost.Incident
			incident.PostID = post.PostID
			if err := tx.Create(&incident).Error; err != nil {
				return persistence.Translate(err, "incident report")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("post created", "post_id", post.PostID, "post_type", post.PostType)

	return r.Get(ctx, post.PostID)
}

func (r *Repository) withAuthor(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table("posts AS p").
		Select("p.*, " + authorColumns).
		Joins("JOIN users AS u ON u.user_id = p.user_id")
}

func active(db *gorm.DB) *gorm.DB {
	return db.Where("p.status = ?", core.PostStatusActive)
}

// searchScopes composes the predicates present in the filter on top of the active posts scope.
func searchScopes(filter core.SearchFilter) []func(*gorm.DB) *gorm.DB {
	scopes := []func(*gorm.DB) *gorm.DB{active}

	if filter.HasText() {
		pattern := filter.ContainsPattern()
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("p.content ILIKE ?", pattern)
		})
	}

	if filter.HasTag() {
		tag := filter.Tag
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where(`EXISTS (
				SELECT 1 FROM post_tags AS pt
				JOIN tags AS t ON t.tag_id = pt.tag_id
				WHERE pt.post_id = p.post_id AND t.name = ?)`, tag)
		})
	}

	return scopes
}

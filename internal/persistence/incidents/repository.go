package incidents

import (
	"context"

	"github.com/samber/lo"

	"neighbornet/internal/core"
	"neighbornet/internal/persistence"
)

type Repository struct {
	DB core.DB
}

// ForPosts fetches the incident reports of the given posts keyed by post id.
func (r *Repository) ForPosts(ctx context.Context, postIDs ...int64) (map[int64]core.IncidentModel, error) {
	if len(postIDs) == 0 {
		return map[int64]core.IncidentModel{}, nil
	}

	var incidents []core.IncidentModel
	err := r.DB.WithContext(ctx).
		Where("post_id IN ?", lo.Uniq(postIDs)).
		Find(&incidents).Error
	if err != nil {
		return nil, persistence.Translate(err, "incident reports")
	}

	return lo.KeyBy(incidents, func(incident core.IncidentModel) int64 {
		return incident.PostID
	}), nil
}

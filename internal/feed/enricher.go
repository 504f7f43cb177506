package feed

import (
	"context"
	"log/slog"
	"math"

	"github.com/samber/lo"

	"neighbornet/internal/core"
	"neighbornet/pkg/geo"
)

type DistanceMode int

const (
	// DistanceNone skips distance entirely.
	DistanceNone DistanceMode = iota
	// DistancePostOrAuthor prefers the post location and falls back to the author location.
	DistancePostOrAuthor
	// DistanceAuthor only considers the author location.
	DistanceAuthor
)

type Options struct {
	Distance  DistanceMode
	Incidents bool
}

// Item is a post row with everything resolved for presentation.
type Item struct {
	Row      core.PostRow
	Media    *Media
	Tags     []core.TagModel
	Incident *core.IncidentModel
	Distance *float64
}

type Enricher struct {
	Logger    *slog.Logger
	Tags      core.TagRepository
	Incidents core.IncidentRepository
}

func (e *Enricher) Init(_ context.Context) error {
	e.Logger = e.Logger.With("component", "feed.Enricher")
	return nil
}

// Enrich resolves tags, incidents, media and distance for rows. Tags and incidents are fetched
// with one query each, the output keeps the order of rows.
func (e *Enricher) Enrich(ctx context.Context, rows []core.PostRow, viewer *geo.Point, opts Options) ([]Item, error) {
	if len(rows) == 0 {
		return []Item{}, nil
	}

	ids := lo.Map(rows, func(row core.PostRow, _ int) int64 {
		return row.PostID
	})

	tags, err := e.Tags.ForPosts(ctx, ids...)
	if err != nil {
		return nil, err
	}

	incidents := map[int64]core.IncidentModel{}
	if opts.Incidents {
		incidentIDs := lo.FilterMap(rows, func(row core.PostRow, _ int) (int64, bool) {
			return row.PostID, row.PostType == core.PostTypeIncident
		})

		if len(incidentIDs) > 0 {
			incidents, err = e.Incidents.ForPosts(ctx, incidentIDs...)
			if err != nil {
				return nil, err
			}
		}
	}

	return lo.Map(rows, func(row core.PostRow, _ int) Item {
		item := Item{
			Row:      row,
			Media:    ParseMedia(row.MediaURLs),
			Tags:     lo.Ternary(tags[row.PostID] != nil, tags[row.PostID], []core.TagModel{}),
			Distance: resolveDistance(viewer, row, opts.Distance),
		}

		if item.Media != nil && !item.Media.OK {
			e.Logger.Warn("malformed media metadata, passing raw value through", "post_id", row.PostID)
		}

		if incident, ok := incidents[row.PostID]; ok && row.PostType == core.PostTypeIncident {
			item.Incident = &incident
		}

		return item
	}), nil
}

func resolveDistance(viewer *geo.Point, row core.PostRow, mode DistanceMode) *float64 {
	if viewer == nil || mode == DistanceNone {
		return nil
	}

	target := geo.PointOf(row.AuthorLatitude, row.AuthorLongitude)
	if mode == DistancePostOrAuthor {
		if postLocation := geo.PointOf(row.LocationLat, row.LocationLng); postLocation != nil {
			target = postLocation
		}
	}

	if target == nil {
		return nil
	}

	return lo.ToPtr(viewer.DistanceTo(*target))
}

// RoundedMeters rounds a distance to the nearest meter.
func RoundedMeters(distance *float64) *int64 {
	if distance == nil {
		return nil
	}
	return lo.ToPtr(int64(math.Round(*distance)))
}

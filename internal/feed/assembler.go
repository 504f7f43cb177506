package feed

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/samber/lo"

	"neighbornet/internal/core"
	"neighbornet/pkg/geo"
)

const (
	PriorityWindow = 24 * time.Hour
	PriorityLimit  = 10
)

var alertPriorities = []core.Priority{core.PriorityUrgent, core.PriorityHigh}

type Assembler struct {
	Logger   *slog.Logger
	Users    core.UserRepository
	Posts    core.PostRepository
	Enricher *Enricher

	now func() time.Time
}

func (a *Assembler) Init(_ context.Context) error {
	a.Logger = a.Logger.With("component", "feed.Assembler")
	return nil
}

// Full returns every active post, pinned first and most recent first within each group.
func (a *Assembler) Full(ctx context.Context, viewerID int64, page core.Page) (*FeedPage, error) {
	viewer, err := a.viewerPoint(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	rows, total, err := a.Posts.ListActive(ctx, page)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(rows, byPinnedThenRecent)

	items, err := a.Enricher.Enrich(ctx, rows, viewer, Options{Distance: DistancePostOrAuthor, Incidents: true})
	if err != nil {
		return nil, err
	}

	a.Logger.Debug("full feed assembled", "viewer_id", viewerID, "posts", len(items), "total", total)

	return &FeedPage{
		Success:    true,
		Posts:      lo.Map(items, newFeedItem),
		Pagination: paginate(page, len(items), total),
	}, nil
}

// Priority returns at most PriorityLimit urgent or high posts from the last PriorityWindow.
func (a *Assembler) Priority(ctx context.Context, viewerID int64) (*AlertDigest, error) {
	viewer, err := a.viewerPoint(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	since := a.clock().Add(-PriorityWindow)

	rows, err := a.Posts.ListPriority(ctx, since, alertPriorities, PriorityLimit)
	if err != nil {
		return nil, err
	}

	rows = lo.Filter(rows, func(row core.PostRow, _ int) bool {
		return row.Status == core.PostStatusActive &&
			lo.Contains(alertPriorities, row.Priority) &&
			!row.CreatedAt.Before(since)
	})
	slices.SortStableFunc(rows, byPriorityThenRecent)
	if len(rows) > PriorityLimit {
		rows = rows[:PriorityLimit]
	}

	items, err := a.Enricher.Enrich(ctx, rows, viewer, Options{Distance: DistanceAuthor, Incidents: true})
	if err != nil {
		return nil, err
	}

	a.Logger.Debug("priority feed assembled", "viewer_id", viewerID, "alerts", len(items))

	return &AlertDigest{
		Success: true,
		Alerts:  lo.Map(items, newAlertItem),
	}, nil
}

// Search matches active posts by content and/or tag. It never computes distance or incidents.
func (a *Assembler) Search(ctx context.Context, filter core.SearchFilter) (*SearchResults, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	rows, err := a.Posts.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(rows, byRecent)

	items, err := a.Enricher.Enrich(ctx, rows, nil, Options{Distance: DistanceNone})
	if err != nil {
		return nil, err
	}

	results := &SearchResults{
		Success: true,
		Posts:   lo.Map(items, newSearchItem),
	}
	if filter.HasText() {
		results.Query = lo.ToPtr(filter.Query)
	}

	return results, nil
}

// Post returns a single active post with its tags and incident report.
func (a *Assembler) Post(ctx context.Context, postID int64) (*PostDetail, error) {
	row, err := a.Posts.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	items, err := a.Enricher.Enrich(ctx, []core.PostRow{*row}, nil, Options{Distance: DistanceNone, Incidents: true})
	if err != nil {
		return nil, err
	}

	return lo.ToPtr(NewPostDetail(items[0])), nil
}

func (a *Assembler) viewerPoint(ctx context.Context, viewerID int64) (*geo.Point, error) {
	location, err := a.Users.GetLocation(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return geo.PointOf(location.Latitude, location.Longitude), nil
}

func (a *Assembler) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}

func paginate(page core.Page, count int, total int64) Pagination {
	if page.Size == 0 {
		return Pagination{Page: 1, Limit: count, Total: int64(count), Pages: 1}
	}

	pages := int((total + int64(page.Size) - 1) / int64(page.Size))

	return Pagination{
		Page:  max(page.Number, 1),
		Limit: page.Size,
		Total: total,
		Pages: max(pages, 1),
	}
}

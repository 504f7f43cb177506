package feed

import (
	"io"
	"log/slog"
	"time"

	"neighbornet/internal/core"
	"neighbornet/internal/core/mocks"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	assembler *Assembler
	users     *mocks.UserRepository
	posts     *mocks.PostRepository
	tags      *mocks.TagRepository
	incidents *mocks.IncidentRepository
}

func newFixture() fixture {
	f := fixture{
		users:     &mocks.UserRepository{},
		posts:     &mocks.PostRepository{},
		tags:      &mocks.TagRepository{},
		incidents: &mocks.IncidentRepository{},
	}

	f.assembler = &Assembler{
		Logger: discard,
		Users:  f.users,
		Posts:  f.posts,
		Enricher: &Enricher{
			Logger:    discard,
			Tags:      f.tags,
			Incidents: f.incidents,
		},
		now: func() time.Time { return now },
	}

	return f
}

func postRow(id int64, opts ...func(*core.PostRow)) core.PostRow {
	row := core.PostRow{
		PostModel: core.PostModel{
			PostID:           id,
			UserID:           100,
			Content:          "hello neighbors",
			PostType:         core.PostTypeGeneral,
			Priority:         core.PriorityNormal,
			VisibilityRadius: core.DefaultVisibilityRadius,
			Status:           core.PostStatusActive,
			CreatedAt:        now.Add(-time.Hour),
			UpdatedAt:        now.Add(-time.Hour),
		},
		AuthorID:           100,
		AuthorName:         "Author",
		AuthorVerification: "verified",
	}

	for _, opt := range opts {
		opt(&row)
	}

	return row
}

func pinned(row *core.PostRow) {
	row.IsPinned = true
}

func incident(row *core.PostRow) {
	row.PostType = core.PostTypeIncident
}

func createdAgo(d time.Duration) func(*core.PostRow) {
	return func(row *core.PostRow) {
		row.CreatedAt = now.Add(-d)
	}
}

func withPriority(p core.Priority) func(*core.PostRow) {
	return func(row *core.PostRow) {
		row.Priority = p
	}
}

func at(lat, lng float64) func(*core.PostRow) {
	return func(row *core.PostRow) {
		row.LocationLat = &lat
		row.LocationLng = &lng
	}
}

func authorAt(lat, lng float64) func(*core.PostRow) {
	return func(row *core.PostRow) {
		row.AuthorLatitude = &lat
		row.AuthorLongitude = &lng
	}
}

func withMedia(raw string) func(*core.PostRow) {
	return func(row *core.PostRow) {
		row.MediaURLs = &raw
	}
}

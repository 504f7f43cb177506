package feed

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"neighbornet/internal/core"
	"neighbornet/pkg/geo"
)

func TestResolveDistance(t *testing.T) {
	t.Parallel()

	viewer := &geo.Point{Lat: 0, Lng: 0}

	t.Run("prefers the post location", func(t *testing.T) {
		t.Parallel()

		row := postRow(1, at(0, 1), authorAt(0, 2))
		distance := resolveDistance(viewer, row, DistancePostOrAuthor)

		require.NotNil(t, distance)
		assert.InDelta(t, geo.Distance(0, 0, 0, 1), *distance, 1e-6)
	})

	t.Run("falls back to the author location", func(t *testing.T) {
		t.Parallel()

		row := postRow(1, authorAt(0, 2))
		distance := resolveDistance(viewer, row, DistancePostOrAuthor)

		require.NotNil(t, distance)
		assert.InDelta(t, geo.Distance(0, 0, 0, 2), *distance, 1e-6)
	})

	t.Run("author only ignores the post location", func(t *testing.T) {
		t.Parallel()

		row := postRow(1, at(0, 1), authorAt(0, 2))
		distance := resolveDistance(viewer, row, DistanceAuthor)

		require.NotNil(t, distance)
		assert.InDelta(t, geo.Distance(0, 0, 0, 2), *distance, 1e-6)

		assert.Nil(t, resolveDistance(viewer, postRow(1, at(0, 1)), DistanceAuthor))
	})

	t.Run("null without any candidate location", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, resolveDistance(viewer, postRow(1), DistancePostOrAuthor))
	})

	t.Run("null without viewer location", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, resolveDistance(nil, postRow(1, at(0, 1), authorAt(0, 2)), DistancePostOrAuthor))
	})

	t.Run("null when disabled", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, resolveDistance(viewer, postRow(1, at(0, 1)), DistanceNone))
	})
}

func TestEnricher_Enrich(t *testing.T) {
	t.Parallel()

	t.Run("incident details only for incident posts", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		rows := []core.PostRow{postRow(1, incident), postRow(2), postRow(3, incident)}

		f.tags.On("ForPosts", mock.Anything, []int64{1, 2, 3}).Return(map[int64][]core.TagModel{
			2: {{TagID: 7, Name: "crime", Category: "safety", Color: "#DC2626"}},
		}, nil)
		f.incidents.On("ForPosts", mock.Anything, []int64{1, 3}).Return(map[int64]core.IncidentModel{
			1: {IncidentID: 11, PostID: 1, IncidentType: "theft", Severity: "high"},
			3: {IncidentID: 13, PostID: 3, IncidentType: "fire", Severity: "critical"},
		}, nil)

		items, err := f.assembler.Enricher.Enrich(t.Context(), rows, nil, Options{Incidents: true})
		require.NoError(t, err)
		require.Len(t, items, 3)

		assert.Equal(t, []int64{1, 2, 3}, lo.Map(items, func(item Item, _ int) int64 { return item.Row.PostID }))

		for _, item := range items {
			assert.Equal(t, item.Row.PostType == core.PostTypeIncident, item.Incident != nil)
		}
		assert.Equal(t, "fire", items[2].Incident.IncidentType)

		assert.Empty(t, items[0].Tags)
		assert.NotNil(t, items[0].Tags)
		assert.Equal(t, "crime", items[1].Tags[0].Name)

		f.tags.AssertExpectations(t)
		f.incidents.AssertExpectations(t)
	})

	t.Run("no incident lookup without incident posts", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.tags.On("ForPosts", mock.Anything, []int64{1}).Return(map[int64][]core.TagModel{}, nil)

		items, err := f.assembler.Enricher.Enrich(t.Context(), []core.PostRow{postRow(1)}, nil, Options{Incidents: true})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Nil(t, items[0].Incident)

		f.incidents.AssertNotCalled(t, "ForPosts", mock.Anything, mock.Anything)
	})

	t.Run("malformed media is passed through", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		rows := []core.PostRow{
			postRow(1, withMedia(`["https://cdn.example.com/a.jpg"]`)),
			postRow(2, withMedia(`not json [`)),
		}
		f.tags.On("ForPosts", mock.Anything, []int64{1, 2}).Return(map[int64][]core.TagModel{}, nil)

		items, err := f.assembler.Enricher.Enrich(t.Context(), rows, nil, Options{})
		require.NoError(t, err)
		require.Len(t, items, 2)

		require.True(t, items[0].Media.OK)
		assert.Equal(t, []any{"https://cdn.example.com/a.jpg"}, items[0].Media.Items)

		require.False(t, items[1].Media.OK)
		assert.Equal(t, `not json [`, items[1].Media.Raw)
	})

	t.Run("tag lookup failure propagates", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.tags.On("ForPosts", mock.Anything, []int64{1}).Return(nil, core.ErrUpstream)

		_, err := f.assembler.Enricher.Enrich(t.Context(), []core.PostRow{postRow(1)}, nil, Options{})
		require.ErrorIs(t, err, core.ErrUpstream)
	})

	t.Run("empty input makes no lookups", func(t *testing.T) {
		t.Parallel()

		f := newFixture()

		items, err := f.assembler.Enricher.Enrich(t.Context(), nil, nil, Options{Incidents: true})
		require.NoError(t, err)
		assert.Empty(t, items)

		f.tags.AssertNotCalled(t, "ForPosts", mock.Anything, mock.Anything)
	})
}

func TestParseMedia(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ParseMedia(nil))
	assert.Nil(t, ParseMedia(lo.ToPtr("")))

	cases := []struct {
		name string
		raw  string
		ok   bool
		json string
	}{
		{"list", `["a.jpg","b.jpg"]`, true, `["a.jpg","b.jpg"]`},
		{"empty list", `[]`, true, `[]`},
		{"object", `{"url":"a.jpg"}`, false, `"{\"url\":\"a.jpg\"}"`},
		{"garbage", `a.jpg,b.jpg`, false, `"a.jpg,b.jpg"`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			media := ParseMedia(&c.raw)
			require.NotNil(t, media)
			assert.Equal(t, c.ok, media.OK)

			encoded, err := media.MarshalJSON()
			require.NoError(t, err)
			assert.JSONEq(t, c.json, string(encoded))
		})
	}
}

func TestDistanceText(t *testing.T) {
	t.Parallel()

	assert.Nil(t, DistanceText(nil))
	assert.Equal(t, "0.0 km away", *DistanceText(lo.ToPtr(47.6)))
	assert.Equal(t, "1.3 km away", *DistanceText(lo.ToPtr(1290.0)))
	assert.Equal(t, "12.0 km away", *DistanceText(lo.ToPtr(12000.0)))

	assert.Nil(t, RoundedMeters(nil))
	assert.Equal(t, int64(48), *RoundedMeters(lo.ToPtr(47.6)))
}

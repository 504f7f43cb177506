package metrics

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type countingDB struct {
	counts map[string]int64
}

func (db countingDB) Model(any) *gorm.DB                  { return nil }
func (db countingDB) WithContext(context.Context) *gorm.DB { return nil }
func (db countingDB) DB() (*sql.DB, error)                 { return nil, nil }

func (db countingDB) Transaction(context.Context, func(tx *gorm.DB) error) error {
	return nil
}

func (db countingDB) EstimatedCount(_ context.Context, table string) (int64, error) {
	count, ok := db.counts[table]
	if !ok {
		return 0, errors.New("relation does not exist")
	}
	return count, nil
}

func TestCollector_collect(t *testing.T) {
	collector := &Collector{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		DB:     countingDB{counts: map[string]int64{"posts": 12, "users": 3, "tags": 8}},
	}
	require.NoError(t, collector.Init(t.Context()))

	collector.collect(t.Context())

	assert.InDelta(t, 12, testutil.ToFloat64(tableCount.WithLabelValues("posts")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(tableCount.WithLabelValues("users")), 0)
	assert.InDelta(t, 8, testutil.ToFloat64(tableCount.WithLabelValues("tags")), 0)
}

func TestCollector_Run(t *testing.T) {
	t.Parallel()

	collector := &Collector{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		DB:       countingDB{},
		interval: time.Millisecond,
	}
	require.NoError(t, collector.Init(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, collector.Run(ctx))
}

func TestObserveRequest(t *testing.T) {
	t.Parallel()

	ObserveRequest("GET", "/api/feed", 200, 15*time.Millisecond)
	ObserveRequest("GET", "", 404, time.Millisecond)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(requestDuration), 2)
}

package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm/schema"

	"neighbornet/internal/core"
)

var (
	tableCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "neighbornet_table_estimated_count",
		Help: "Estimated record count for a table.",
	}, []string{"table"})

	collectedTables = []schema.Tabler{
		core.UserModel{},
		core.PostModel{},
		core.TagModel{},
		core.IncidentModel{},
	}
)

type Collector struct {
	Logger *slog.Logger
	DB     core.DB

	interval time.Duration
}

func (c *Collector) Init(_ context.Context) error {
	c.Logger = c.Logger.With("component", "metrics.Collector")
	if c.interval == 0 {
		c.interval = 15 * time.Second
	}
	return nil
}

func (c *Collector) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.Logger.Debug("Collecting metrics")
			c.collect(ctx)
		}
	}
}

func (c *Collector) collect(ctx context.Context) {
	for _, tabler := range collectedTables {
		if err := c.collectTableEstimatedCount(ctx, tabler); err != nil {
			c.Logger.Warn("failed to estimate table size", "table", tabler.TableName(), "error", err)
		}
	}
}

func (c *Collector) collectTableEstimatedCount(ctx context.Context, tabler schema.Tabler) error {
	count, err := c.DB.EstimatedCount(ctx, tabler.TableName())
	if err != nil {
		return err
	}
	tableCount.WithLabelValues(tabler.TableName()).Set(float64(count))
	return nil
}

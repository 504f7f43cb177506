package cache

import (
	"context"
	"time"
)

// Noop is used when no redis url is configured, every lookup is a miss.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

func (Noop) Set(context.Context, string, any, time.Duration) error {
	return nil
}

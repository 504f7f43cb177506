package cache

import (
	"github.com/zhulik/pal"

	"neighbornet/internal/core"
)

// Provide registers the redis cache, or a no-op cache when redisURL is empty.
func Provide(redisURL string) pal.ServiceDef {
	if redisURL == "" {
		return pal.Provide[core.Cache](&Noop{})
	}
	return pal.Provide[core.Cache](&Redis{})
}

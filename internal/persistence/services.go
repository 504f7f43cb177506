package persistence

import (
	"github.com/zhulik/pal"

	"neighbornet/internal/core"
)

// Provide registers the database and the migrator.
func Provide() pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide[core.DB](&DB{}),
		pal.Provide[core.Migrator](&Migrator{}),
	)
}

package nats

import (
	"github.com/zhulik/pal"

	"neighbornet/internal/core"
)

func Provide() pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide(&NATS{}),
	)
}

// ProvidePublisher registers the JetStream publisher, or a no-op one when natsURL is empty.
func ProvidePublisher(natsURL string) pal.ServiceDef {
	if natsURL == "" {
		return pal.Provide[core.EventPublisher](&NoopPublisher{})
	}
	return pal.ProvideList(
		Provide(),
		pal.Provide[core.EventPublisher](&Publisher{}),
	)
}

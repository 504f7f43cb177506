package nats

import (
	"context"
	"encoding/json"
	"strconv"

	libnats "github.com/nats-io/nats.go"

	"neighbornet/internal/core"
)

type Publisher struct {
	NATS *NATS
}

func (p *Publisher) PublishPostCreated(ctx context.Context, event core.PostCreatedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &libnats.Msg{
		Subject: SubjectPostCreated,
		Data:    payload,
		Header: libnats.Header{
			libnats.MsgIdHdr: []string{"post-" + strconv.FormatInt(event.PostID, 10)},
		},
	}

	_, err = p.NATS.JS.PublishMsg(ctx, msg)
	return err
}

// NoopPublisher drops events, used when no NATS url is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishPostCreated(context.Context, core.PostCreatedEvent) error {
	return nil
}

package alerts

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/samber/lo"

	"neighbornet/internal/core"
	"neighbornet/internal/nats"
)

const consumerName = "alerts"

var (
	alertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "neighbornet_priority_alerts_total",
		Help: "Urgent and high priority posts seen by the alerts watcher.",
	}, []string{"priority", "post_type"})

	alertPriorities = []core.Priority{core.PriorityUrgent, core.PriorityHigh}
)

// Watcher follows post.created events and reports urgent and high priority posts as they appear.
type Watcher struct {
	Logger *slog.Logger
	NATS   *nats.NATS
}

func (w *Watcher) Init(_ context.Context) error {
	w.Logger = w.Logger.With("component", "alerts.Watcher")
	return nil
}

func (w *Watcher) Run(ctx context.Context) error {
	stream, err := w.NATS.Stream(ctx)
	if err != nil {
		return err
	}

	consumer, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       consumerName,
		FilterSubject: nats.SubjectPostCreated,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return err
	}

	consumeCtx, err := consumer.Consume(w.handle)
	if err != nil {
		return err
	}
	defer consumeCtx.Stop()

	w.Logger.Info("Watching for priority posts", "subject", nats.SubjectPostCreated)

	<-ctx.Done()
	return nil
}

func (w *Watcher) handle(msg jetstream.Msg) {
	event, err := decode(msg.Data())
	if err != nil {
		w.Logger.Error("dropping malformed event", "subject", msg.Subject(), "error", err)
		if err := msg.Term(); err != nil {
			w.Logger.Error("failed to terminate message", "error", err)
		}
		return
	}

	w.process(event)

	if err := msg.Ack(); err != nil {
		w.Logger.Error("failed to ack message", "post_id", event.PostID, "error", err)
	}
}

// process reports whether the event is an alert.
func (w *Watcher) process(event core.PostCreatedEvent) bool {
	if !lo.Contains(alertPriorities, event.Priority) {
		w.Logger.Debug("ignoring post", "post_id", event.PostID, "priority", event.Priority)
		return false
	}

	alertsTotal.WithLabelValues(string(event.Priority), string(event.PostType)).Inc()
	w.Logger.Warn("priority post created",
		"post_id", event.PostID,
		"user_id", event.UserID,
		"priority", event.Priority,
		"post_type", event.PostType,
	)
	return true
}

func decode(data []byte) (core.PostCreatedEvent, error) {
	var event core.PostCreatedEvent
	err := json.Unmarshal(data, &event)
	return event, err
}

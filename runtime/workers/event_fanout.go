package workers

import (
	"context"
	"log/slog"
	"time"

	"meet-lab/contract"
)

// EventFanout drains the coordinator's outbound publications and hands
// them to the broker publisher, one bounded publish at a time.
//
// Delivery is best effort relative to the domain operation that produced
// the event: a failed or slow publish is logged and dropped, it never
// propagates back to the join or leave that triggered it.
//
// EventFanout is safe for concurrent use by multiple goroutines.
type EventFanout struct {
	log            *slog.Logger
	publisher      contract.EventPublisher
	outbound       <-chan contract.Publication
	publishTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, publisher contract.EventPublisher,
	outbound <-chan contract.Publication, publishTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:            log,
		publisher:      publisher,
		outbound:       outbound,
		publishTimeout: publishTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case publication := <-w.outbound:
			w.Fanout(ctx, publication)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout publishes one event to every recipient queue under a deadline.
// Publish errors are logged and swallowed.
func (w *EventFanout) Fanout(ctx context.Context, publication contract.Publication) {
	publishCtx, cancel := context.WithTimeout(ctx, w.publishTimeout)
	defer cancel()

	if err := w.publisher.Publish(publishCtx, publication.Recipients, publication.Event); err != nil {
		w.log.Warn("Event publication failed",
			"type", publication.Event.Type(),
			"meeting", publication.Event.MeetingID(),
			"recipients", len(publication.Recipients),
			"error", err)
	}
}

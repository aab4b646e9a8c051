// Package broker delivers domain events to per-user queues on Redis.
//
// Each user owns one durable stream named from their id. XADD creates the
// stream on first append, so queues are declared idempotently, and entries
// survive until trimmed: delivery is at least once.
package broker

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"meet-lab/domain"
	"meet-lab/domain/event"
	"meet-lab/errors"
)

const queuePrefix = "events:user:"

// QueueName derives the durable queue of a user deterministically from
// their id.
func QueueName(userID domain.UserID) string {
	return queuePrefix + string(userID)
}

// RedisPublisher fans one serialized event out to every recipient stream.
type RedisPublisher struct {
	client *redis.Client
	log    *slog.Logger
}

func NewRedisPublisher(client *redis.Client, log *slog.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, log: log}
}

// Publish appends the canonical serialization of evt to each recipient
// queue. A failing queue does not stop delivery to the others; the
// combined error is returned for logging only, callers must not fail
// their own operation on it.
func (p *RedisPublisher) Publish(ctx context.Context, recipients []domain.UserID, evt event.DomainEvent) error {
	payload, err := Encode(evt)
	if err != nil {
		return fmt.Errorf("%w: encoding %s event: %v", errors.ErrDependency, evt.Type(), err)
	}

	var failures []error
	for _, userID := range recipients {
		addErr := p.client.XAdd(ctx, &redis.XAddArgs{
			Stream: QueueName(userID),
			Values: map[string]interface{}{"event": payload},
		}).Err()
		if addErr != nil {
			p.log.Warn("Queue append failed", "queue", QueueName(userID), "error", addErr)
			failures = append(failures, fmt.Errorf("queue %s: %w", QueueName(userID), addErr))
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("%w: %v", errors.ErrDependency, stderrors.Join(failures...))
	}
	return nil
}

// Healthy probes broker liveness, independently of publish traffic.
func (p *RedisPublisher) Healthy(ctx context.Context) bool {
	return p.client.Ping(ctx).Err() == nil
}

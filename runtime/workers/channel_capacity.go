package workers

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"meet-lab/observability"
)

type NamedChannel struct {
	Name    string
	Channel any
}

// ChannelCapacityWorker periodically samples the length and capacity of
// the watched channels into the monitor. Reading len(channel) and
// cap(channel) is non-blocking, so sampling never interferes with the
// goroutines draining them.
type ChannelCapacityWorker struct {
	log            *slog.Logger
	channels       []NamedChannel
	monitor        *observability.Monitor
	metricInterval time.Duration
}

func NewChannelCapacityWorker(log *slog.Logger, channels []NamedChannel,
	monitor *observability.Monitor, metricInterval time.Duration) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{
		log:            log,
		channels:       channels,
		monitor:        monitor,
		metricInterval: metricInterval,
	}
}

func (w ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping channel sampling")
			return nil
		case <-ticker.C:
			for _, nc := range w.channels {
				v := reflect.ValueOf(nc.Channel)
				// Verify if this is a channel
				if v.Kind() != reflect.Chan {
					w.log.Error("Provided object is not a channel", "name", nc.Name)
					continue
				}
				w.monitor.UpdateQueue(nc.Name, v.Len(), v.Cap())
			}
		}
	}
}

package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"meet-lab/contract"
	"meet-lab/observability"
)

// HeartbeatWorker periodically probes broker liveness and logs process
// health (CPU, RAM, queue gauges). It is the operational pulse of the
// service: one log line per interval, whatever the traffic.
type HeartbeatWorker struct {
	log       *slog.Logger
	publisher contract.EventPublisher
	monitor   *observability.Monitor
	interval  time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, publisher contract.EventPublisher,
	monitor *observability.Monitor, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:       log,
		publisher: publisher,
		monitor:   monitor,
		interval:  interval,
	}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			snapshot := w.monitor.GetLatest()
			w.log.Info("Heartbeat",
				"broker_up", w.publisher.Healthy(ctx),
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"alloc_mem_mb", snapshot.AllocMemMb,
				"num_gc", snapshot.NumGC,
				"queues", snapshot.Queues,
				"uptime", snapshot.Uptime,
			)
		}
	}
}

// selfStats retrieves memory and CPU usage of the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}

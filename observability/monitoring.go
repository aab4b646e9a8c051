// Package observability tracks in-process runtime stats for the
// coordination service.
package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"time"
)

// QueueGauge is one sampled channel depth.
type QueueGauge struct {
	Name     string `json:"name"`
	Length   int    `json:"length"`
	Capacity int    `json:"capacity"`
}

// Snapshot aggregates the latest gauges plus Go runtime metrics.
type Snapshot struct {
	Queues     []QueueGauge `json:"queues"`
	AllocMemMb uint64       `json:"alloc_mem_mb"`
	NumGC      uint32       `json:"num_gc"`
	Uptime     string       `json:"uptime"`
}

// Monitor holds the latest sampled gauges. Writers are the sampling
// workers; readers are the heartbeat worker and the debug endpoint.
type Monitor struct {
	log     *slog.Logger
	mu      sync.RWMutex
	queues  map[string]QueueGauge
	started time.Time
}

func NewMonitor(log *slog.Logger) *Monitor {
	return &Monitor{
		log:     log,
		queues:  make(map[string]QueueGauge),
		started: time.Now(),
	}
}

// UpdateQueue records the latest depth of a named channel.
func (m *Monitor) UpdateQueue(name string, length, capacity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queues[name] = QueueGauge{Name: name, Length: length, Capacity: capacity}
}

// GetLatest returns the current snapshot with fresh runtime metrics.
func (m *Monitor) GetLatest() Snapshot {
	m.mu.RLock()
	queues := make([]QueueGauge, 0, len(m.queues))
	for _, g := range m.queues {
		queues = append(queues, g)
	}
	m.mu.RUnlock()

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	snapshot := Snapshot{
		Queues:     queues,
		AllocMemMb: stats.Alloc / 1024 / 1024,
		NumGC:      stats.NumGC,
		Uptime:     time.Since(m.started).Round(time.Second).String(),
	}
	m.log.Debug("Stats snapshot",
		"alloc_mem_mb", snapshot.AllocMemMb,
		"num_gc", snapshot.NumGC,
		"queues", len(snapshot.Queues),
	)
	return snapshot
}

package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"relay-lab/contract"
	"relay-lab/observability"
)

var _ contract.Worker = (*HeartbeatWorker)(nil)

// HeartbeatWorker periodically logs process health (CPU, RSS, OS status)
// together with a snapshot of the service counters.
type HeartbeatWorker struct {
	log      *slog.Logger
	metrics  *observability.Metrics
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, metrics *observability.Metrics, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, metrics: metrics, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			stats := w.metrics.Snapshot()
			w.log.Info("Heartbeat",
				"pid", os.Getpid(),
				"pid_status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"tasks_submitted", stats.TasksSubmitted,
				"tasks_completed", stats.TasksCompleted,
				"tasks_failed", stats.TasksFailed,
				"messages_routed", stats.MessagesRouted,
				"room_drops", stats.RoomDropCount,
				"session_drops", stats.SessionDropCount,
				"worker_restarts", stats.WorkerRestarts,
			)
		}
	}
}

// selfStats retrieves memory, CPU and OS status for the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}

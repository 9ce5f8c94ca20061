package workers

import (
	"collab-hub/contract"
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*StatsWorker)(nil)

// StatsWorker periodically logs the membership counts and the process footprint.
type StatsWorker struct {
	log      *slog.Logger
	source   contract.IStatsSource
	interval time.Duration
}

func NewStatsWorker(log *slog.Logger, source contract.IStatsSource, interval time.Duration) *StatsWorker {
	return &StatsWorker{log: log, source: source, interval: interval}
}

func (w *StatsWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping stats worker")
			return nil
		case <-ticker.C:
			stats := w.source.Stats()
			attrs := []any{
				"connections", stats.Connections,
				"rooms", stats.Rooms,
				"workspaces", stats.Workspaces,
				"onlineUsers", stats.OnlineUsers,
				"partitionBacklog", stats.PartitionBacklog,
				"taskBacklog", stats.TaskBacklog,
				"goroutines", runtime.NumGoroutine(),
			}
			if mem, err := p.MemoryInfo(); err == nil {
				attrs = append(attrs, "rssBytes", mem.RSS)
			}
			if cpu, err := p.CPUPercent(); err == nil {
				attrs = append(attrs, "cpuPercent", cpu)
			}
			w.log.Info("Hub stats", attrs...)
		}
	}
}

package workers

import (
	"context"
	"log/slog"
	"time"

	"ml-showcase/observability"
)

type StatsSource interface {
	GetLatest() observability.MonitoringStats
}

// TelemetryWorker logs a process stats sample every interval.
type TelemetryWorker struct {
	log      *slog.Logger
	source   StatsSource
	interval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, source StatsSource, interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, source: source, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats := w.source.GetLatest()
			w.log.Debug("Process stats",
				"uptime_seconds", stats.UptimeSeconds,
				"requests", stats.Requests,
				"server_errors", stats.ServerErrors,
				"cpu_percent", stats.Process.CPUPercent,
				"mem_mb", stats.AllocMemMb,
				"num_gc", stats.NumGC,
			)
		}
	}
}

package observability

import (
	"log/slog"
	"os"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_GetLatest(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a manager that saw three requests, one of them failing
	mm := NewMonitoringManager(log)
	for range 3 {
		mm.IncrRequests()
	}
	mm.IncrServerErrors()

	// When sampling
	stats := mm.GetLatest()

	// Then counters and process identity are reported
	req.Equal(uint64(3), stats.Requests)
	req.Equal(uint64(1), stats.ServerErrors)
	req.Equal(int32(os.Getpid()), stats.Process.PID)
	req.GreaterOrEqual(stats.UptimeSeconds, 0.0)
	req.GreaterOrEqual(stats.Process.CPUPercent, 0.0)
}

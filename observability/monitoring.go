package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

type ProcessStats struct {
	PID           int32   `json:"pid"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float32 `json:"memory_percent"`
	RSSBytes      uint64  `json:"rss_bytes"`
}

// MonitoringStats is a point-in-time view of the server process.
type MonitoringStats struct {
	UptimeSeconds float64      `json:"uptime_seconds"`
	Requests      uint64       `json:"requests"`
	ServerErrors  uint64       `json:"server_errors"`
	AllocMemMb    uint64       `json:"alloc_mem_mb"`
	NumGC         uint32       `json:"num_gc"`
	Process       ProcessStats `json:"process"`
}

// MonitoringManager counts requests and samples the process on demand.
type MonitoringManager struct {
	log       *slog.Logger
	startedAt time.Time
	process   *process.Process

	requests     uint64
	serverErrors uint64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	mm := &MonitoringManager{log: log, startedAt: time.Now()}
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process stats unavailable", "error", err)
	} else {
		mm.process = p
	}
	return mm
}

func (mm *MonitoringManager) IncrRequests() {
	atomic.AddUint64(&mm.requests, 1)
}

func (mm *MonitoringManager) IncrServerErrors() {
	atomic.AddUint64(&mm.serverErrors, 1)
}

func (mm *MonitoringManager) Uptime() time.Duration {
	return time.Since(mm.startedAt)
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	stats := MonitoringStats{
		UptimeSeconds: mm.Uptime().Seconds(),
		Requests:      atomic.LoadUint64(&mm.requests),
		ServerErrors:  atomic.LoadUint64(&mm.serverErrors),
		AllocMemMb:    m.Alloc / 1024 / 1024,
		NumGC:         m.NumGC,
		Process:       ProcessStats{PID: int32(os.Getpid())},
	}
	if mm.process == nil {
		return stats
	}

	// Sampling errors leave the field at zero.
	if cpu, err := mm.process.CPUPercent(); err == nil {
		stats.Process.CPUPercent = cpu
	}
	if memory, err := mm.process.MemoryPercent(); err == nil {
		stats.Process.MemoryPercent = memory
	}
	if info, err := mm.process.MemoryInfo(); err == nil {
		stats.Process.RSSBytes = info.RSS
	}
	return stats
}

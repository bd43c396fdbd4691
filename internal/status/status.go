// Package status collects a process resource snapshot for the HTTP sidecar.
package status

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Snapshot describes the serving process at a point in time.
type Snapshot struct {
	PID           int32   `json:"pid"`
	Goroutines    int     `json:"goroutines"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryRSS     uint64  `json:"memory_rss_bytes"`
	MemoryPercent float32 `json:"memory_percent"`
	UptimeSeconds int64   `json:"uptime_seconds"`
}

// Collect gathers a snapshot for the current process.
func Collect() (*Snapshot, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to inspect process: %w", err)
	}

	snap := &Snapshot{
		PID:        proc.Pid,
		Goroutines: runtime.NumGoroutine(),
	}

	if cpu, err := proc.CPUPercent(); err == nil {
		snap.CPUPercent = cpu
	}
	if mem, err := proc.MemoryInfo(); err == nil {
		snap.MemoryRSS = mem.RSS
	}
	if pct, err := proc.MemoryPercent(); err == nil {
		snap.MemoryPercent = pct
	}
	if created, err := proc.CreateTime(); err == nil {
		snap.UptimeSeconds = int64(time.Since(time.UnixMilli(created)).Seconds())
	}

	return snap, nil
}

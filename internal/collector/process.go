// Process collector — all visible processes with resource usage and state.
package collector

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/mkows/sysscope/internal/models"
)

// statusLabels maps raw gopsutil status strings to display labels. The
// status set is OS-defined and open: values missing here pass through with
// the first letter capitalized instead of being rejected.
var statusLabels = map[string]string{
	"running": "Running",
	"sleep":   "Sleeping",
	"idle":    "Idle",
	"stop":    "Stopped",
	"zombie":  "Zombie",
	"wait":    "Waiting",
	"lock":    "Locked",
	"blocked": "Blocked",
}

// normalizeStatus renders a raw status value as a display label.
// An empty status (common on Windows) becomes "Unknown".
func normalizeStatus(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "Unknown"
	}
	if label, ok := statusLabels[key]; ok {
		return label
	}
	runes := []rune(key)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ProcessCollector enumerates running processes.
type ProcessCollector struct{}

// NewProcessCollector creates a new process collector.
func NewProcessCollector() *ProcessCollector {
	return &ProcessCollector{}
}

// Name returns the collector identifier.
func (c *ProcessCollector) Name() string { return "process" }

// Snapshot enumerates all visible processes in OS order. Processes that
// vanish mid-walk or refuse individual reads are skipped field-by-field;
// only a failed enumeration of the process table itself is an error.
func (c *ProcessCollector) Snapshot(ctx context.Context) ([]models.ProcessEntry, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, &CollectionError{Subsystem: "process", Err: err}
	}

	now := time.Now().UnixMilli()
	entries := make([]models.ProcessEntry, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue // gone between enumeration and read
		}

		cpuPct, _ := p.CPUPercentWithContext(ctx)

		var memBytes uint64
		if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			memBytes = mi.RSS
		}

		var raw string
		if statuses, err := p.StatusWithContext(ctx); err == nil && len(statuses) > 0 {
			raw = statuses[0]
		}

		var runTime uint64
		if created, err := p.CreateTimeWithContext(ctx); err == nil && created > 0 && now > created {
			runTime = uint64(now-created) / 1000
		}

		cmdline, _ := p.CmdlineSliceWithContext(ctx)
		if cmdline == nil {
			cmdline = []string{}
		}

		entries = append(entries, models.ProcessEntry{
			Pid:         uint32(p.Pid),
			Name:        name,
			CPUUsage:    float32(cpuPct),
			MemoryUsage: memBytes,
			Status:      normalizeStatus(raw),
			RunTime:     runTime,
			Command:     cmdline,
		})
	}
	return entries, nil
}

// Collect implements Collector.
func (c *ProcessCollector) Collect(ctx context.Context) (any, error) {
	return c.Snapshot(ctx)
}

// IsAvailable returns true — process listing is available on all platforms.
func (c *ProcessCollector) IsAvailable() bool { return true }

// Memory collector — physical and swap counters with a derived percentage.
package collector

import (
	"context"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/mkows/sysscope/internal/models"
)

// MemoryCollector collects physical and swap memory usage.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Name returns the collector identifier.
func (c *MemoryCollector) Name() string { return "memory" }

// Snapshot gathers memory counters. A failed read leaves zero values; the
// percentage guard keeps that case well-defined.
func (c *MemoryCollector) Snapshot(ctx context.Context) models.MemoryInfo {
	var info models.MemoryInfo

	if v, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.TotalMemory = v.Total
		info.UsedMemory = v.Used
		info.FreeMemory = v.Free
	}
	if s, err := mem.SwapMemoryWithContext(ctx); err == nil {
		info.TotalSwap = s.Total
		info.UsedSwap = s.Used
		info.FreeSwap = s.Free
	}

	info.MemoryPercent = usedPercent(info.UsedMemory, info.TotalMemory)
	return info
}

// Collect implements Collector.
func (c *MemoryCollector) Collect(ctx context.Context) (any, error) {
	return c.Snapshot(ctx), nil
}

// IsAvailable returns true — memory metrics are available on all platforms.
func (c *MemoryCollector) IsAvailable() bool { return true }

// usedPercent returns 100*used/total, or 0 when total is 0.
func usedPercent(used, total uint64) float32 {
	if total == 0 {
		return 0
	}
	return float32(float64(used) / float64(total) * 100)
}

// CPU collector — per-logical-core identity and usage plus load averages.
// Usage percentages come from the process-wide sampler so that they measure
// a real interval between two reads instead of a single isolated sample.
package collector

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"

	"github.com/mkows/sysscope/internal/models"
	"github.com/mkows/sysscope/internal/sampler"
)

// CPUCollector collects one CpuCore entry per logical core. The physical
// core count and the load averages are whole-machine values repeated on
// every entry.
type CPUCollector struct {
	sampler *sampler.Sampler
}

// NewCPUCollector creates a CPU collector reading usage from the sampler.
func NewCPUCollector(s *sampler.Sampler) *CPUCollector {
	return &CPUCollector{sampler: s}
}

// Name returns the collector identifier.
func (c *CPUCollector) Name() string { return "cpu" }

// Snapshot gathers per-core identity and usage. If core enumeration fails
// entirely it returns an empty sequence rather than an error; identity
// fields that cannot be read stay empty.
func (c *CPUCollector) Snapshot(ctx context.Context) []models.CpuCore {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		infos = nil
	}

	usages := c.sampler.CPUPercents()
	logical := len(usages)
	if logical == 0 {
		if n, err := cpu.CountsWithContext(ctx, true); err == nil {
			logical = n
		}
	}
	if logical == 0 {
		return []models.CpuCore{}
	}

	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		physical = 0
	}
	la := loadAverages(ctx)

	cores := make([]models.CpuCore, 0, logical)
	for i := 0; i < logical; i++ {
		// On Linux cpu.Info has one entry per logical core; on other
		// platforms a single entry describes the whole package.
		var info cpu.InfoStat
		if i < len(infos) {
			info = infos[i]
		} else if len(infos) > 0 {
			info = infos[0]
		}

		var usage float32
		if i < len(usages) {
			usage = float32(usages[i])
		}

		cores = append(cores, models.CpuCore{
			Name:      fmt.Sprintf("cpu%d", i),
			VendorID:  info.VendorID,
			Brand:     info.ModelName,
			Frequency: uint64(info.Mhz),
			Usage:     usage,
			Cores:     physical,
			LoadAvg:   la,
		})
	}
	return cores
}

// Collect implements Collector.
func (c *CPUCollector) Collect(ctx context.Context) (any, error) {
	return c.Snapshot(ctx), nil
}

// IsAvailable returns true — CPU metrics are available on all platforms.
func (c *CPUCollector) IsAvailable() bool { return true }

// loadAverages reads the three load windows, falling back to zeros on
// platforms without load averages (Windows).
func loadAverages(ctx context.Context) models.LoadAverage {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return models.LoadAverage{}
	}
	return models.LoadAverage{
		OneMin:     avg.Load1,
		FiveMin:    avg.Load5,
		FifteenMin: avg.Load15,
	}
}

// Report aggregator — composes one coordinated snapshot from all collectors.
package collector

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mkows/sysscope/internal/models"
)

// reportProcessCap bounds the process list embedded in a full report. It is
// a fixed design constant, not a query parameter; the standalone process
// endpoints return the uncapped list.
const reportProcessCap = 20

// Aggregator builds full reports by running every registered collector in
// one refresh cycle.
type Aggregator struct {
	registry *Registry
	logger   *zap.Logger
}

// NewAggregator creates an aggregator over the given registry.
func NewAggregator(registry *Registry, logger *zap.Logger) *Aggregator {
	return &Aggregator{registry: registry, logger: logger}
}

// Full runs all collectors concurrently and assembles a FullReport. A
// collector that fails outright leaves its section empty; the report is
// still produced. Sequence sections are always non-nil so the JSON shape
// stays identical between calls.
func (a *Aggregator) Full(ctx context.Context) models.FullReport {
	results := a.registry.CollectAll(ctx)

	report := models.FullReport{
		CPU:       []models.CpuCore{},
		Disks:     []models.DiskVolume{},
		Networks:  []models.NetworkInterface{},
		Processes: []models.ProcessEntry{},
		Timestamp: time.Now().Format(models.TimeFormat),
	}

	if v, ok := results["host"].(models.HostInfo); ok {
		report.System = v
	}
	if v, ok := results["cpu"].([]models.CpuCore); ok {
		report.CPU = v
	}
	if v, ok := results["memory"].(models.MemoryInfo); ok {
		report.Memory = v
	}
	if v, ok := results["disk"].([]models.DiskVolume); ok {
		report.Disks = v
	}
	if v, ok := results["network"].([]models.NetworkInterface); ok {
		report.Networks = v
	}
	if v, ok := results["process"].([]models.ProcessEntry); ok {
		if len(v) > reportProcessCap {
			v = v[:reportProcessCap]
		}
		report.Processes = v
	}

	a.logger.Debug("Assembled full report",
		zap.Int("cores", len(report.CPU)),
		zap.Int("disks", len(report.Disks)),
		zap.Int("networks", len(report.Networks)),
		zap.Int("processes", len(report.Processes)))
	return report
}

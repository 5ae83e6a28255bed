// Host info collector — static and slow-changing host facts.
// Every underlying OS query falls back independently: string fields to
// "Unknown", numeric fields to 0. Host collection itself never fails.
package collector

import (
	"context"
	"os/user"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/mkows/sysscope/internal/models"
)

// unknown is the sentinel for string fields the OS cannot supply.
const unknown = "Unknown"

// HostCollector collects OS name, hostname, kernel version, uptime, boot
// time and the current user.
type HostCollector struct{}

// NewHostCollector creates a new host info collector.
func NewHostCollector() *HostCollector {
	return &HostCollector{}
}

// Name returns the collector identifier.
func (c *HostCollector) Name() string { return "host" }

// Snapshot gathers host facts with per-field fallbacks.
func (c *HostCollector) Snapshot(ctx context.Context) models.HostInfo {
	info := models.HostInfo{
		OS:            unknown,
		Hostname:      unknown,
		KernelVersion: unknown,
		CurrentUser:   unknown,
	}

	if hi, err := host.InfoWithContext(ctx); err == nil {
		if hi.Platform != "" {
			info.OS = hi.Platform
			if hi.PlatformVersion != "" {
				info.OS = hi.Platform + " " + hi.PlatformVersion
			}
		}
		if hi.Hostname != "" {
			info.Hostname = hi.Hostname
		}
		if hi.KernelVersion != "" {
			info.KernelVersion = hi.KernelVersion
		}
		info.Uptime = hi.Uptime
		info.BootTime = hi.BootTime
	}

	if u, err := user.Current(); err == nil && u.Username != "" {
		info.CurrentUser = u.Username
	}

	return info
}

// Collect implements Collector.
func (c *HostCollector) Collect(ctx context.Context) (any, error) {
	return c.Snapshot(ctx), nil
}

// IsAvailable returns true — host facts are readable on all platforms.
func (c *HostCollector) IsAvailable() bool { return true }

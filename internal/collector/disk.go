// Disk collector — mounted volumes with capacity and usage.
// The mount table is re-enumerated on every call; nothing is cached.
package collector

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/zap"

	"github.com/mkows/sysscope/internal/models"
)

// pseudoFSTypes lists virtual, system and network filesystems that do not
// represent local storage and are excluded from the volume list.
var pseudoFSTypes = map[string]bool{
	"autofs":      true,
	"binfmt_misc": true,
	"bpf":         true,
	"cgroup":      true,
	"cgroup2":     true,
	"configfs":    true,
	"debugfs":     true,
	"devfs":       true,
	"devtmpfs":    true,
	"efivarfs":    true,
	"fusectl":     true,
	"hugetlbfs":   true,
	"mqueue":      true,
	"nsfs":        true,
	"overlay":     true,
	"proc":        true,
	"procfs":      true,
	"pstore":      true,
	"ramfs":       true,
	"securityfs":  true,
	"squashfs":    true,
	"sysfs":       true,
	"tmpfs":       true,
	"tracefs":     true,

	"9p":         true,
	"cifs":       true,
	"fuse.sshfs": true,
	"glusterfs":  true,
	"nfs":        true,
	"nfs4":       true,
	"smbfs":      true,
}

// DiskCollector collects per-mount volume usage.
type DiskCollector struct {
	logger *zap.Logger
}

// NewDiskCollector creates a new disk collector.
func NewDiskCollector(logger *zap.Logger) *DiskCollector {
	return &DiskCollector{logger: logger}
}

// Name returns the collector identifier.
func (c *DiskCollector) Name() string { return "disk" }

// Snapshot enumerates mounted volumes in mount-table order. UsedSpace is
// derived from total minus available so it can never disagree with them.
// Inaccessible mounts are skipped; only a failed enumeration of the mount
// table itself is an error.
func (c *DiskCollector) Snapshot(ctx context.Context) ([]models.DiskVolume, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, &CollectionError{Subsystem: "disk", Err: err}
	}

	volumes := make([]models.DiskVolume, 0, len(partitions))
	for _, p := range partitions {
		if pseudoFSTypes[p.Fstype] {
			c.logger.Debug("Skipping pseudo filesystem",
				zap.String("mount", p.Mountpoint),
				zap.String("fstype", p.Fstype))
			continue
		}

		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			continue // mount vanished or is not readable
		}
		if usage.Total == 0 {
			continue
		}

		volumes = append(volumes, newVolume(p.Device, p.Fstype, p.Mountpoint, usage.Total, usage.Free))
	}
	return volumes, nil
}

// Collect implements Collector.
func (c *DiskCollector) Collect(ctx context.Context) (any, error) {
	return c.Snapshot(ctx)
}

// IsAvailable returns true — disk metrics are available on all platforms.
func (c *DiskCollector) IsAvailable() bool { return true }

// newVolume builds a DiskVolume with the used-space derivation applied.
func newVolume(device, fstype, mount string, total, available uint64) models.DiskVolume {
	return models.DiskVolume{
		Name:           device,
		FileSystem:     fstype,
		TotalSpace:     total,
		AvailableSpace: available,
		UsedSpace:      total - available,
		MountPoint:     mount,
		IsRemovable:    isRemovable(device),
	}
}

// isRemovable probes the kernel's removable flag for the device backing a
// volume. Best-effort: only Linux exposes this, everything else reports
// false.
func isRemovable(device string) bool {
	if runtime.GOOS != "linux" {
		return false
	}
	name := filepath.Base(device)
	for _, candidate := range []string{name, strings.TrimRight(name, "0123456789")} {
		if candidate == "" {
			continue
		}
		data, err := os.ReadFile("/sys/class/block/" + candidate + "/removable")
		if err != nil {
			continue
		}
		return strings.TrimSpace(string(data)) == "1"
	}
	return false
}

// Network collector — per-interface traffic counters.
// Cumulative counters are read fresh from the OS on every call; per-refresh
// deltas come from the process-wide sampler, which tracks the baseline
// between its last two readings. The two must never be conflated.
package collector

import (
	"context"

	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/mkows/sysscope/internal/models"
	"github.com/mkows/sysscope/internal/sampler"
)

// NetworkCollector collects per-interface traffic counters.
type NetworkCollector struct {
	sampler *sampler.Sampler
}

// NewNetworkCollector creates a network collector reading deltas from the
// sampler.
func NewNetworkCollector(s *sampler.Sampler) *NetworkCollector {
	return &NetworkCollector{sampler: s}
}

// Name returns the collector identifier.
func (c *NetworkCollector) Name() string { return "network" }

// Snapshot enumerates interfaces in OS order. MAC addresses are best-effort;
// an interface without one gets an empty string. Only a failed enumeration
// of the counter table itself is an error.
func (c *NetworkCollector) Snapshot(ctx context.Context) ([]models.NetworkInterface, error) {
	counters, err := gnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, &CollectionError{Subsystem: "network", Err: err}
	}

	macs := make(map[string]string)
	if ifaces, err := gnet.InterfacesWithContext(ctx); err == nil {
		for _, iface := range ifaces {
			macs[iface.Name] = iface.HardwareAddr
		}
	}

	out := make([]models.NetworkInterface, 0, len(counters))
	for _, cnt := range counters {
		delta := c.sampler.NetworkDelta(cnt.Name)
		out = append(out, models.NetworkInterface{
			Name:               cnt.Name,
			MacAddress:         macs[cnt.Name],
			ReceivedBytes:      delta.RecvBytes,
			TransmittedBytes:   delta.SentBytes,
			PacketsReceived:    delta.RecvPackets,
			PacketsTransmitted: delta.SentPackets,
			TotalReceived:      cnt.BytesRecv,
			TotalTransmitted:   cnt.BytesSent,
		})
	}
	return out, nil
}

// Collect implements Collector.
func (c *NetworkCollector) Collect(ctx context.Context) (any, error) {
	return c.Snapshot(ctx)
}

// IsAvailable returns true — network metrics are available on all platforms.
func (c *NetworkCollector) IsAvailable() bool { return true }

// Package sampler maintains the process-wide usage baseline. CPU usage and
// per-refresh network deltas are only meaningful as the difference between
// two time-separated reads of the same OS handle, so a single long-lived
// sampler refreshes both on a fixed interval and exposes the latest reading
// to concurrent requests under a read lock. Staleness is bounded by one
// sampling interval.
package sampler

import (
	"context"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	gnet "github.com/shirou/gopsutil/v3/net"
	"go.uber.org/zap"
)

// Delta holds per-interface traffic accumulated between the two most recent
// refreshes. Counters that move backwards (interface reset) produce a zero
// delta rather than an underflowed one.
type Delta struct {
	RecvBytes   uint64
	SentBytes   uint64
	RecvPackets uint64
	SentPackets uint64
}

type cpuReader func(ctx context.Context) ([]float64, error)
type netReader func(ctx context.Context) ([]gnet.IOCountersStat, error)

// Sampler periodically refreshes per-core CPU usage and per-interface
// traffic counters. All reads of the published snapshot are lock-guarded
// and return copies.
type Sampler struct {
	interval time.Duration
	logger   *zap.Logger

	readCPU cpuReader
	readNet netReader

	mu          sync.RWMutex
	cpuPercents []float64
	netPrev     map[string]gnet.IOCountersStat
	netDeltas   map[string]Delta
	updatedAt   time.Time
}

// New creates a sampler backed by gopsutil reads at the given interval.
func New(interval time.Duration, logger *zap.Logger) *Sampler {
	return newWithReaders(interval, logger,
		func(ctx context.Context) ([]float64, error) {
			return cpu.PercentWithContext(ctx, 0, true)
		},
		func(ctx context.Context) ([]gnet.IOCountersStat, error) {
			return gnet.IOCountersWithContext(ctx, true)
		})
}

// newWithReaders allows tests to substitute the OS reads.
func newWithReaders(interval time.Duration, logger *zap.Logger, readCPU cpuReader, readNet netReader) *Sampler {
	return &Sampler{
		interval:  interval,
		logger:    logger,
		readCPU:   readCPU,
		readNet:   readNet,
		netPrev:   make(map[string]gnet.IOCountersStat),
		netDeltas: make(map[string]Delta),
	}
}

// Run refreshes the snapshot on every tick until the context is cancelled.
// The first refresh runs immediately and primes the baselines, so deltas
// and usage stay zero until the second tick.
func (s *Sampler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

// refresh performs one read of both sources and publishes the result.
// A failed read keeps the previous published values.
func (s *Sampler) refresh(ctx context.Context) {
	percents, cpuErr := s.readCPU(ctx)
	counters, netErr := s.readNet(ctx)

	if cpuErr != nil {
		s.logger.Warn("CPU usage refresh failed", zap.Error(cpuErr))
	}
	if netErr != nil {
		s.logger.Warn("Network counter refresh failed", zap.Error(netErr))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cpuErr == nil {
		s.cpuPercents = percents
	}
	if netErr == nil {
		deltas := make(map[string]Delta, len(counters))
		prev := make(map[string]gnet.IOCountersStat, len(counters))
		for _, c := range counters {
			if last, ok := s.netPrev[c.Name]; ok {
				deltas[c.Name] = Delta{
					RecvBytes:   monotonicDiff(c.BytesRecv, last.BytesRecv),
					SentBytes:   monotonicDiff(c.BytesSent, last.BytesSent),
					RecvPackets: monotonicDiff(c.PacketsRecv, last.PacketsRecv),
					SentPackets: monotonicDiff(c.PacketsSent, last.PacketsSent),
				}
			}
			prev[c.Name] = c
		}
		s.netPrev = prev
		s.netDeltas = deltas
	}
	s.updatedAt = time.Now()
}

// CPUPercents returns the most recent per-core usage percentages.
// The slice is a copy; an empty slice means no refresh has completed yet.
func (s *Sampler) CPUPercents() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]float64, len(s.cpuPercents))
	copy(out, s.cpuPercents)
	return out
}

// NetworkDelta returns the traffic accumulated on the named interface
// between the two most recent refreshes. Unknown interfaces (including
// everything before the second refresh) report zero deltas.
func (s *Sampler) NetworkDelta(name string) Delta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.netDeltas[name]
}

// UpdatedAt reports when the published snapshot was last refreshed.
func (s *Sampler) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

func monotonicDiff(cur, prev uint64) uint64 {
	if cur < prev {
		return 0
	}
	return cur - prev
}

// Service is the facade the transport layer talks to: typed point queries
// per collector plus the composite full report.
package collector

import (
	"context"

	"go.uber.org/zap"

	"github.com/mkows/sysscope/internal/models"
	"github.com/mkows/sysscope/internal/sampler"
)

// Service wires the six collectors and the aggregator together. It holds no
// mutable state of its own, so concurrent requests need no locking here.
type Service struct {
	host       *HostCollector
	cpu        *CPUCollector
	memory     *MemoryCollector
	disk       *DiskCollector
	network    *NetworkCollector
	process    *ProcessCollector
	aggregator *Aggregator
}

// NewService builds all collectors, registers them, and returns the facade.
func NewService(s *sampler.Sampler, logger *zap.Logger) *Service {
	svc := &Service{
		host:    NewHostCollector(),
		cpu:     NewCPUCollector(s),
		memory:  NewMemoryCollector(),
		disk:    NewDiskCollector(logger),
		network: NewNetworkCollector(s),
		process: NewProcessCollector(),
	}

	registry := NewRegistry(logger)
	registry.Register(svc.host)
	registry.Register(svc.cpu)
	registry.Register(svc.memory)
	registry.Register(svc.disk)
	registry.Register(svc.network)
	registry.Register(svc.process)

	svc.aggregator = NewAggregator(registry, logger)
	return svc
}

// Host returns the host info snapshot.
func (s *Service) Host(ctx context.Context) models.HostInfo {
	return s.host.Snapshot(ctx)
}

// CPU returns the per-core CPU snapshot.
func (s *Service) CPU(ctx context.Context) []models.CpuCore {
	return s.cpu.Snapshot(ctx)
}

// Memory returns the memory snapshot.
func (s *Service) Memory(ctx context.Context) models.MemoryInfo {
	return s.memory.Snapshot(ctx)
}

// Disks returns the mounted volume snapshot.
func (s *Service) Disks(ctx context.Context) ([]models.DiskVolume, error) {
	return s.disk.Snapshot(ctx)
}

// Networks returns the network interface snapshot.
func (s *Service) Networks(ctx context.Context) ([]models.NetworkInterface, error) {
	return s.network.Snapshot(ctx)
}

// Processes returns the uncapped process snapshot.
func (s *Service) Processes(ctx context.Context) ([]models.ProcessEntry, error) {
	return s.process.Snapshot(ctx)
}

// FullReport returns one coordinated snapshot across all collectors.
func (s *Service) FullReport(ctx context.Context) models.FullReport {
	return s.aggregator.Full(ctx)
}

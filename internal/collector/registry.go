package collector

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Registry holds the registered collectors and runs them concurrently for
// composite queries. Individual collector failures are logged and leave the
// collector's slot absent from the result map; they never abort the others.
type Registry struct {
	collectors []Collector
	logger     *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{logger: logger}
}

// Register adds a collector if it is available on the current platform.
func (r *Registry) Register(c Collector) {
	if !c.IsAvailable() {
		r.logger.Warn("Collector not available on this platform, skipping",
			zap.String("name", c.Name()))
		return
	}
	r.collectors = append(r.collectors, c)
	r.logger.Info("Registered collector", zap.String("name", c.Name()))
}

// CollectAll runs every registered collector concurrently and returns a map
// of collector name to snapshot. Each collector performs its own fresh OS
// read, so the map represents one coordinated refresh cycle.
func (r *Registry) CollectAll(ctx context.Context) map[string]any {
	results := make(map[string]any, len(r.collectors))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, c := range r.collectors {
		wg.Add(1)
		go func(col Collector) {
			defer wg.Done()
			start := time.Now()
			data, err := col.Collect(ctx)
			if err != nil {
				r.logger.Error("Collection failed",
					zap.String("collector", col.Name()),
					zap.Error(err))
				return
			}
			r.logger.Debug("Collected",
				zap.String("collector", col.Name()),
				zap.Duration("elapsed", time.Since(start)))
			mu.Lock()
			results[col.Name()] = data
			mu.Unlock()
		}(c)
	}

	wg.Wait()
	return results
}

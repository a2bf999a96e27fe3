package entigo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCreate is called after each entity creation.
	// duration is the total time taken.
	RecordCreate(duration time.Duration)

	// RecordDestroy is called after each entity destruction attempt.
	// destroyed is false when the handle was already stale.
	RecordDestroy(duration time.Duration, destroyed bool)

	// RecordRegister is called after each component type registration.
	// err is nil if successful.
	RecordRegister(err error)

	// RecordClose is called after the world drains its storages.
	// stores is the number of storages drained.
	RecordClose(stores int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCreate(time.Duration)        {}
func (NoopMetricsCollector) RecordDestroy(time.Duration, bool) {}
func (NoopMetricsCollector) RecordRegister(error)              {}
func (NoopMetricsCollector) RecordClose(int, time.Duration)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CreateCount        atomic.Int64
	CreateTotalNanos   atomic.Int64
	DestroyCount       atomic.Int64
	DestroyStale       atomic.Int64
	RegisterCount      atomic.Int64
	RegisterErrors     atomic.Int64
	CloseCount         atomic.Int64
	CloseStoresDrained atomic.Int64
}

// RecordCreate implements MetricsCollector.
func (c *BasicMetricsCollector) RecordCreate(d time.Duration) {
	c.CreateCount.Add(1)
	c.CreateTotalNanos.Add(d.Nanoseconds())
}

// RecordDestroy implements MetricsCollector.
func (c *BasicMetricsCollector) RecordDestroy(d time.Duration, destroyed bool) {
	c.DestroyCount.Add(1)
	if !destroyed {
		c.DestroyStale.Add(1)
	}
}

// RecordRegister implements MetricsCollector.
func (c *BasicMetricsCollector) RecordRegister(err error) {
	c.RegisterCount.Add(1)
	if err != nil {
		c.RegisterErrors.Add(1)
	}
}

// RecordClose implements MetricsCollector.
func (c *BasicMetricsCollector) RecordClose(stores int, d time.Duration) {
	c.CloseCount.Add(1)
	c.CloseStoresDrained.Add(int64(stores))
}

package faultstats

import (
	"sync"

	"github.com/Goden-Gun/fault-lib/pkg/fault"
)

// Collector accumulates faults from concurrent request handlers for the
// monitoring path. Record and Snapshot are safe for concurrent use.
//
// The collector keeps references to the recorded faults; since faults are
// read-only after construction this shares no mutable state.
type Collector struct {
	mu     sync.Mutex
	faults []*fault.Fault
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record adds a fault to the collection. Nil faults are ignored.
func (c *Collector) Record(f *fault.Fault) {
	if c == nil || f == nil {
		return
	}
	c.mu.Lock()
	c.faults = append(c.faults, f)
	c.mu.Unlock()
}

// Len returns the number of recorded faults.
func (c *Collector) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.faults)
}

// Snapshot aggregates the current collection without clearing it.
func (c *Collector) Snapshot() Stats {
	if c == nil {
		return Aggregate(nil)
	}
	c.mu.Lock()
	batch := make([]*fault.Fault, len(c.faults))
	copy(batch, c.faults)
	c.mu.Unlock()
	return Aggregate(batch)
}

// Drain aggregates the current collection and resets it, returning the stats
// for the drained batch.
func (c *Collector) Drain() Stats {
	if c == nil {
		return Aggregate(nil)
	}
	c.mu.Lock()
	batch := c.faults
	c.faults = nil
	c.mu.Unlock()
	return Aggregate(batch)
}

package entigo

import (
	"sync"

	"github.com/hupe1980/entigo/core"
)

// Allocator issues and retires entity handles. Destroying an entity bumps
// the generation recorded for its index, so handles to the old incarnation
// go stale; the index itself is recycled for later Create calls.
//
// Allocator implements storage.Generations: storages consult it before
// every operation and never write to it.
type Allocator struct {
	mu   sync.RWMutex
	gens []core.Generation
	free []core.Index
	next core.Index
}

// NewAllocator creates an empty allocator. capacity is a hint for the
// number of live entities expected; zero is fine.
func NewAllocator(capacity int) *Allocator {
	return &Allocator{
		gens: make([]core.Generation, 0, capacity),
		free: make([]core.Index, 0, capacity),
	}
}

// Create issues a live entity, reusing a freed index if one is available.
// It panics once the index space is exhausted (core.MaxIndex).
func (a *Allocator) Create() core.Entity {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		return core.NewEntity(i, a.gens[i])
	}

	i := a.next
	e := core.NewEntity(i, core.FirstGeneration)
	a.next++
	for int(i) >= len(a.gens) {
		a.gens = append(a.gens, core.FirstGeneration)
	}
	return e
}

// Destroy retires e, bumping the generation for its index and recycling
// the index. It reports false if e is already stale.
func (a *Allocator) Destroy(e core.Entity) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := e.Index()
	if int(i) >= len(a.gens) || a.gens[i] != e.Generation() {
		return false
	}
	a.gens[i]++
	a.free = append(a.free, i)
	return true
}

// IsAlive reports whether e is the current incarnation of its index.
func (a *Allocator) IsAlive(e core.Entity) bool {
	return a.Generation(e.Index()) == e.Generation()
}

// Generation returns the currently valid generation for index i,
// defaulting to core.FirstGeneration for indices never allocated.
func (a *Allocator) Generation(i core.Index) core.Generation {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if int(i) >= len(a.gens) {
		return core.FirstGeneration
	}
	return a.gens[i]
}

// Live returns the number of live entities.
func (a *Allocator) Live() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return int(a.next) - len(a.free)
}

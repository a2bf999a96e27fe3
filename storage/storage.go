package storage

import (
	"github.com/hupe1980/entigo/core"
)

// Generations is the allocator-side lookup consulted before every facade
// operation. Implementations report the currently valid generation for a
// slot, defaulting to core.FirstGeneration for indices never allocated.
type Generations interface {
	Generation(i core.Index) core.Generation
}

// ReadStorage is the shared-access facade over a masked storage. Multiple
// readers may hold one simultaneously; an external arbitration layer
// guarantees no writer is active in the same window.
type ReadStorage[T any] struct {
	alloc Generations
	data  *MaskedStorage[T]
}

// NewReadStorage creates a shared-access facade.
func NewReadStorage[T any](alloc Generations, data *MaskedStorage[T]) *ReadStorage[T] {
	return &ReadStorage[T]{
		alloc: alloc,
		data:  data,
	}
}

// hasGen reports whether the entity's generation is the one the allocator
// currently considers valid for its index. Validity is never cached: two
// inserts under different generations advance nothing here, whichever
// generation the allocator recognizes at call time wins.
func (s *ReadStorage[T]) hasGen(e core.Entity) bool {
	return e.Generation() == s.alloc.Generation(e.Index())
}

// Contains reports whether e currently has a live value.
func (s *ReadStorage[T]) Contains(e core.Entity) bool {
	return s.data.mask.Contains(e.Index()) && s.hasGen(e)
}

// Get returns a copy of the value associated with e. It reports false if
// the index is absent or the entity's generation is stale; both are
// ordinary outcomes, not errors.
func (s *ReadStorage[T]) Get(e core.Entity) (T, bool) {
	if s.data.mask.Contains(e.Index()) && s.hasGen(e) {
		return *s.data.inner.Get(e.Index()), true
	}
	var zero T
	return zero, false
}

// Open exposes the (mask, view) pair for join iteration. The view's
// unchecked Get is valid only for indices contained in the returned mask.
func (s *ReadStorage[T]) Open() (Mask, ReadView[T]) {
	return s.data.mask, ReadView[T]{inner: s.data.inner}
}

// WriteStorage is the exclusive-access facade. It extends ReadStorage with
// mutation; the arbitration layer guarantees no concurrent reader or
// writer shares its window.
type WriteStorage[T any] struct {
	ReadStorage[T]
}

// NewWriteStorage creates an exclusive-access facade.
func NewWriteStorage[T any](alloc Generations, data *MaskedStorage[T]) *WriteStorage[T] {
	return &WriteStorage[T]{
		ReadStorage: ReadStorage[T]{
			alloc: alloc,
			data:  data,
		},
	}
}

// GetMut returns a pointer to the value associated with e for in-place
// mutation, under the same validity rule as Get.
func (s *WriteStorage[T]) GetMut(e core.Entity) (*T, bool) {
	if s.data.mask.Contains(e.Index()) && s.hasGen(e) {
		return s.data.inner.Get(e.Index()), true
	}
	return nil, false
}

// Insert associates v with e. It reports false, mutating nothing, when the
// entity's generation is stale: writes through recycled handles are
// silently rejected and existing data for the index stays untouched.
// A valid insert overwrites in place if the index is already present.
func (s *WriteStorage[T]) Insert(e core.Entity, v T) bool {
	if !s.hasGen(e) {
		return false
	}
	i := e.Index()
	if s.data.mask.Contains(i) {
		*s.data.inner.Get(i) = v
	} else {
		s.data.mask.Add(i)
		s.data.inner.Insert(i, v)
	}
	return true
}

// Remove extracts the value associated with e. A stale generation returns
// false without touching the storage.
func (s *WriteStorage[T]) Remove(e core.Entity) (T, bool) {
	if !s.hasGen(e) {
		var zero T
		return zero, false
	}
	return s.data.Remove(e.Index())
}

// Clear empties the storage unconditionally. This is a bulk administrative
// operation; generations are not consulted.
func (s *WriteStorage[T]) Clear() {
	s.data.Clear()
}

// OpenMut exposes the (mask, view) pair for mutable join iteration.
func (s *WriteStorage[T]) OpenMut() (Mask, WriteView[T]) {
	return s.data.mask, WriteView[T]{inner: s.data.inner}
}

package storage

import "github.com/hupe1980/entigo/core"

// UnprotectedStorage is raw, index-keyed storage for one component type.
// All operations are unchecked: the caller must have established presence
// through the owning bitset before touching a slot. A violated precondition
// is a programming error, not a reportable failure.
type UnprotectedStorage[T any] interface {
	// Clean visits every slot the storage physically holds and zeroes the
	// slots has reports as not present. Slots outside the presence set hold
	// either never-written zero values or the stale remains of a removed
	// value; zeroing them severs any references they still carry. Slots
	// marked present are released together with the storage itself.
	Clean(has func(core.Index) bool)

	// Get returns a pointer to the slot's value. The index must be present.
	Get(i core.Index) *T

	// Insert writes v into the slot for i. The caller marks i present,
	// either now (first insert) or already (overwrite).
	Insert(i core.Index, v T)

	// Remove extracts and returns the value at i. The slot must not be
	// observed again until a subsequent Insert at the same index.
	Remove(i core.Index) T
}

// VecStorage is dense slice-backed storage. Best suited for components
// present on most entities: O(1) access, no hashing, cache-friendly joins.
type VecStorage[T any] struct {
	data []T
}

// NewVecStorage creates an empty dense storage.
func NewVecStorage[T any]() *VecStorage[T] {
	return &VecStorage[T]{}
}

// Clean zeroes the dead slots and releases the buffer.
func (s *VecStorage[T]) Clean(has func(core.Index) bool) {
	var zero T
	for i := range s.data {
		if !has(core.Index(i)) {
			// Slot was never written or its value was already moved out.
			s.data[i] = zero
		}
	}
	s.data = nil
}

// Get returns a pointer to the slot's value.
func (s *VecStorage[T]) Get(i core.Index) *T {
	return &s.data[i]
}

// Insert writes v into the slot for i, growing the buffer to i+1 if needed.
// Slots exposed by growth stay logically dead until their own insert.
func (s *VecStorage[T]) Insert(i core.Index, v T) {
	if n := int(i) + 1; n > len(s.data) {
		if n > cap(s.data) {
			grown := make([]T, n, max(n, 2*cap(s.data)))
			copy(grown, s.data)
			s.data = grown
		} else {
			s.data = s.data[:n]
		}
	}
	s.data[i] = v
}

// Remove reads the value out of the slot and zeroes it, so the dead slot
// does not keep the extracted value's references reachable.
func (s *VecStorage[T]) Remove(i core.Index) T {
	v := s.data[i]
	var zero T
	s.data[i] = zero
	return v
}

// MapStorage is hash-backed storage. Best suited for components present on
// few entities out of a large entity space. Values are boxed so that Get
// hands out stable pointers.
type MapStorage[T any] struct {
	m map[core.Index]*T
}

// NewMapStorage creates an empty hash-backed storage.
func NewMapStorage[T any]() *MapStorage[T] {
	return &MapStorage[T]{
		m: make(map[core.Index]*T),
	}
}

// Clean is a no-op: the map only ever holds entries that were inserted,
// so there are no ambiguous slots to discard.
func (s *MapStorage[T]) Clean(has func(core.Index) bool) {}

// Get returns a pointer to the slot's value.
func (s *MapStorage[T]) Get(i core.Index) *T {
	return s.m[i]
}

// Insert writes v into the slot for i. An existing value is overwritten
// in place so pointers handed out earlier stay valid.
func (s *MapStorage[T]) Insert(i core.Index, v T) {
	if p, ok := s.m[i]; ok {
		*p = v
		return
	}
	s.m[i] = &v
}

// Remove extracts and returns the value at i.
func (s *MapStorage[T]) Remove(i core.Index) T {
	p := s.m[i]
	delete(s.m, i)
	return *p
}

// NullStorage holds a single shared zero value. Use it for components that
// carry no data and act purely as presence flags: every Get returns the
// shared value, Insert is a no-op, and Remove returns a copy of it.
type NullStorage[T any] struct {
	flag T
}

// NewNullStorage creates a flag storage.
func NewNullStorage[T any]() *NullStorage[T] {
	return &NullStorage[T]{}
}

// Clean is a no-op.
func (s *NullStorage[T]) Clean(has func(core.Index) bool) {}

// Get returns the shared flag value regardless of index.
func (s *NullStorage[T]) Get(core.Index) *T {
	return &s.flag
}

// Insert is a no-op.
func (s *NullStorage[T]) Insert(core.Index, T) {}

// Remove returns a copy of the shared flag value.
func (s *NullStorage[T]) Remove(core.Index) T {
	return s.flag
}

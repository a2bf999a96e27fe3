package storage

import (
	"iter"

	"github.com/hupe1980/entigo/bitset"
	"github.com/hupe1980/entigo/core"
)

// Mask is the presence set half of an opened storage. Join consumers must
// not mutate it.
type Mask = *bitset.BitSet

// ReadView is the shared half of an opened ReadStorage. Get is unchecked:
// it must only be called with indices contained in the mask returned by
// the same Open call (in practice, indices produced by Join over it).
type ReadView[T any] struct {
	inner UnprotectedStorage[T]
}

// Get returns a copy of the value at i. The index must be present.
func (v ReadView[T]) Get(i core.Index) T {
	return *v.inner.Get(i)
}

// WriteView is the exclusive half of an opened WriteStorage. It has the
// same opening contract as ReadView and differs only in handing out
// mutable access.
type WriteView[T any] struct {
	inner UnprotectedStorage[T]
}

// Get returns a pointer to the value at i. The index must be present.
func (v WriteView[T]) Get(i core.Index) *T {
	return v.inner.Get(i)
}

// Join returns an ordered iterator over the indices present in every mask.
// Combine it with the views obtained from the same Open/OpenMut calls to
// iterate the intersection of several storages:
//
//	pm, pv := positions.Open()
//	vm, vv := velocities.OpenMut()
//	for i := range storage.Join(pm, vm) {
//		vv.Get(i).Apply(pv.Get(i))
//	}
func Join(first Mask, rest ...Mask) iter.Seq[core.Index] {
	return bitset.Intersect(first, rest...)
}

package storage

import (
	"github.com/hupe1980/entigo/bitset"
	"github.com/hupe1980/entigo/core"
)

// MaskedStorage couples an unprotected storage with the bitset that knows
// which slots hold live values. It is created when a component type is
// registered with a world and owns both halves for its lifetime.
type MaskedStorage[T any] struct {
	mask  *bitset.BitSet
	inner UnprotectedStorage[T]
}

// NewMaskedStorage creates an empty masked storage around inner.
func NewMaskedStorage[T any](inner UnprotectedStorage[T]) *MaskedStorage[T] {
	return &MaskedStorage[T]{
		mask:  bitset.New(),
		inner: inner,
	}
}

// Clear drains every present slot through the inner storage's Clean pass,
// then empties the mask. Safe to call any number of times. The order is
// load-bearing: Clean must run while the mask still describes which slots
// are live.
func (m *MaskedStorage[T]) Clear() {
	m.inner.Clean(m.mask.Contains)
	m.mask.Clear()
}

// Remove removes the slot at i. It reports false if i is not present.
// The mask is updated before the slot is read out, so no observer within
// the same access window sees a marked-but-extracted slot.
func (m *MaskedStorage[T]) Remove(i core.Index) (T, bool) {
	if !m.mask.Remove(i) {
		var zero T
		return zero, false
	}
	return m.inner.Remove(i), true
}

// Mask returns the presence set. Callers must treat it as read-only.
func (m *MaskedStorage[T]) Mask() *bitset.BitSet {
	return m.mask
}

// Close clears the storage. Every teardown path must drain present slots
// before the storage is released.
func (m *MaskedStorage[T]) Close() error {
	m.Clear()
	return nil
}

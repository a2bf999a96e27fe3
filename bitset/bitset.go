// Package bitset provides the presence set used to mask component storage.
package bitset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/entigo/core"
)

// BitSet is a set of slot indices backed by a 32-bit Roaring Bitmap.
// It wraps the official roaring implementation.
// A storage's bitset marks exactly the indices holding a live value.
type BitSet struct {
	rb *roaring.Bitmap
}

// New creates a new empty bitset.
func New() *BitSet {
	return &BitSet{
		rb: roaring.New(),
	}
}

// Add adds an index to the set. It returns true if the index was
// newly added, false if it was already present.
func (b *BitSet) Add(i core.Index) bool {
	return b.rb.CheckedAdd(uint32(i))
}

// Remove removes an index from the set. It returns true if the index
// was present.
func (b *BitSet) Remove(i core.Index) bool {
	return b.rb.CheckedRemove(uint32(i))
}

// Contains checks if an index is in the set.
func (b *BitSet) Contains(i core.Index) bool {
	return b.rb.Contains(uint32(i))
}

// IsEmpty returns true if the set is empty.
func (b *BitSet) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of indices in the set.
func (b *BitSet) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (b *BitSet) Clone() *BitSet {
	return &BitSet{
		rb: b.rb.Clone(),
	}
}

// Clear removes all indices from the set.
func (b *BitSet) Clear() {
	b.rb.Clear()
}

// Iterator returns an ordered iterator over the indices in the set.
func (b *BitSet) Iterator() iter.Seq[core.Index] {
	return func(yield func(core.Index) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(core.Index(it.Next())) {
				return
			}
		}
	}
}

// And replaces the set with the intersection of itself and other.
func (b *BitSet) And(other *BitSet) {
	b.rb.And(other.rb)
}

// Or replaces the set with the union of itself and other.
func (b *BitSet) Or(other *BitSet) {
	b.rb.Or(other.rb)
}

// Intersect returns an ordered iterator over the indices present in every
// given set. The inputs are not modified.
func Intersect(first *BitSet, rest ...*BitSet) iter.Seq[core.Index] {
	if len(rest) == 0 {
		return first.Iterator()
	}
	out := first.Clone()
	for _, b := range rest {
		out.And(b)
	}
	return out.Iterator()
}

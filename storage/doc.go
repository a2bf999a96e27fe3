// Package storage implements presence-masked, generation-checked component
// storage.
//
// A MaskedStorage couples one presence bitset with one raw storage backend
// and keeps the two in lock-step: an index is in the bitset exactly when the
// backend slot holds a live value. The raw backends (VecStorage, MapStorage,
// NullStorage) are unchecked; they must never be asked about a slot the
// bitset does not mark.
//
// ReadStorage and WriteStorage are the facades callers operate through.
// Every operation re-derives the entity's generation validity from the
// Generations source, so writes and reads for recycled entities are
// silently rejected without touching live data.
//
// Joining storages iterates the intersection of their presence sets:
//
//	am, av := a.Open()
//	bm, bv := b.Open()
//	for i := range storage.Join(am, bm) {
//		use(av.Get(i), bv.Get(i))
//	}
//
// The unchecked view fetches are safe exactly for indices produced by a
// Join over the masks obtained from the same openings.
package storage

// Package core defines the identifier types shared by all entigo packages.
package core

import "fmt"

// Index is a dense slot index for an entity within a world.
// It is strictly 32-bit and used for all hot-path structures
// (presence bitsets, dense storage buffers, join iteration).
type Index uint32

// MaxIndex is the packing capacity for an Index. Allocating beyond it
// is a fatal condition raised at entity construction time.
const MaxIndex = Index(1<<24 - 1)

// Generation distinguishes successive uses of the same Index. A slot that
// has never been allocated is considered to be at generation 1.
type Generation uint32

// FirstGeneration is the generation of a freshly allocated slot.
const FirstGeneration = Generation(1)

// Entity is a handle of (Index, Generation) identifying a logical entity.
// It is an immutable value: only the Allocator issues and retires entities.
type Entity struct {
	index Index
	gen   Generation
}

// NewEntity creates an entity handle. It panics if index exceeds MaxIndex.
func NewEntity(index Index, gen Generation) Entity {
	if index > MaxIndex {
		panic(fmt.Sprintf("entigo: index %d exceeds packing capacity %d", index, MaxIndex))
	}
	return Entity{index: index, gen: gen}
}

// Index returns the slot index of the entity.
func (e Entity) Index() Index { return e.index }

// Generation returns the generation tag of the entity.
func (e Entity) Generation() Generation { return e.gen }

// String implements fmt.Stringer.
func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d, gen %d)", e.index, e.gen)
}

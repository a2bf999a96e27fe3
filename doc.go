// Package entigo provides generation-checked, presence-masked component
// storage for data-oriented object models in Go.
//
// Entigo binds one typed value per entity and component type, checks
// presence through a Roaring-bitmap mask, and validates every handle
// against the allocator's generation table, so identifiers recycled since
// a value was written are rejected without corrupting live data.
//
// # Quick Start
//
// Create a world and register component types, each bound to the storage
// backend that fits its population density:
//
//	w := entigo.New()
//	_ = entigo.Register[Position](w, storage.NewVecStorage[Position]())  // on most entities
//	_ = entigo.Register[Burning](w, storage.NewMapStorage[Burning]())    // on few entities
//	_ = entigo.Register[Frozen](w, storage.NewNullStorage[Frozen]())     // presence flag only
//	defer w.Close()
//
// Create entities and attach data inside an exclusive access window:
//
//	e := w.CreateEntity()
//	_ = entigo.Write(w, func(s *storage.WriteStorage[Position]) {
//		s.Insert(e, Position{X: 1, Y: 2})
//	})
//
// Read back under shared access:
//
//	_ = entigo.Read(w, func(s *storage.ReadStorage[Position]) {
//		if p, ok := s.Get(e); ok {
//			fmt.Println(p)
//		}
//	})
//
// # Joins
//
// Iterate entities present in several storages at once by intersecting
// their presence masks:
//
//	_ = entigo.Write(w, func(vel *storage.WriteStorage[Velocity]) {
//		_ = entigo.Read(w, func(pos *storage.ReadStorage[Position]) {
//			pm, pv := pos.Open()
//			vm, vv := vel.OpenMut()
//			for i := range storage.Join(pm, vm) {
//				vv.Get(i).Integrate(pv.Get(i))
//			}
//		})
//	})
//
// # Generations
//
// Destroying an entity bumps its index's generation. Handles to the old
// incarnation go stale: Get and Remove report absent, Insert reports
// failure and mutates nothing. Staleness is re-derived from the allocator
// on every call, never cached by a storage.
package entigo

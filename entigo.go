package entigo

import (
	"reflect"
	"sync"
	"time"

	"github.com/hupe1980/entigo/core"
	"github.com/hupe1980/entigo/storage"
)

// store pairs a masked storage with the lock arbitrating access to it.
// Readers share the lock, writers hold it exclusively; the storage facades
// themselves perform no locking.
type store struct {
	mu    sync.RWMutex
	data  any // *storage.MaskedStorage[T]
	drain func()
}

// World owns the entity allocator and the component registry. Each
// component type is bound to exactly one storage backend at registration
// time; the binding never changes for that type.
type World struct {
	opts  options
	alloc *Allocator

	mu     sync.RWMutex
	stores map[reflect.Type]*store
	closed bool
}

// New creates an empty world.
func New(opts ...Option) *World {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range opts {
		fn(&o)
	}

	return &World{
		opts:   o,
		alloc:  NewAllocator(o.capacity),
		stores: make(map[reflect.Type]*store),
	}
}

// Allocator returns the world's entity allocator.
func (w *World) Allocator() *Allocator {
	return w.alloc
}

// CreateEntity issues a live entity.
func (w *World) CreateEntity() core.Entity {
	start := time.Now()
	e := w.alloc.Create()
	w.opts.metrics.RecordCreate(time.Since(start))
	w.opts.logger.LogCreate(e)
	return e
}

// DestroyEntity retires e. Component data written under the retired handle
// is not swept eagerly: generation checks neutralize it, and it is
// reclaimed on overwrite or Clear.
func (w *World) DestroyEntity(e core.Entity) bool {
	start := time.Now()
	destroyed := w.alloc.Destroy(e)
	w.opts.metrics.RecordDestroy(time.Since(start), destroyed)
	w.opts.logger.LogDestroy(e, destroyed)
	return destroyed
}

// Register binds component type T to the given storage backend. It returns
// ErrAlreadyRegistered if T is already bound.
func Register[T any](w *World, inner storage.UnprotectedStorage[T]) error {
	t := reflect.TypeFor[T]()

	w.mu.Lock()
	var err error
	if w.closed {
		err = ErrClosed
	} else if _, ok := w.stores[t]; ok {
		err = &ErrAlreadyRegistered{Type: t}
	} else {
		ms := storage.NewMaskedStorage[T](inner)
		s := &store{data: ms}
		s.drain = func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			ms.Clear()
		}
		w.stores[t] = s
	}
	w.mu.Unlock()

	w.opts.metrics.RecordRegister(err)
	w.opts.logger.LogRegister(t.String(), err)
	return err
}

func lookup[T any](w *World) (*store, *storage.MaskedStorage[T], error) {
	t := reflect.TypeFor[T]()

	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return nil, nil, ErrClosed
	}
	s, ok := w.stores[t]
	if !ok {
		return nil, nil, &ErrNotRegistered{Type: t}
	}
	return s, s.data.(*storage.MaskedStorage[T]), nil
}

// Read grants fn a shared access window on T's storage. Any number of
// readers may run concurrently; no writer runs during the window.
func Read[T any](w *World, fn func(*storage.ReadStorage[T])) error {
	s, ms, err := lookup[T](w)
	if err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(storage.NewReadStorage(w.alloc, ms))
	return nil
}

// Write grants fn an exclusive access window on T's storage.
func Write[T any](w *World, fn func(*storage.WriteStorage[T])) error {
	s, ms, err := lookup[T](w)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	fn(storage.NewWriteStorage(w.alloc, ms))
	return nil
}

// Close drains every registered storage and marks the world closed.
// Draining runs each storage's clean pass before the mask is dropped, on
// this as on every other teardown path.
func (w *World) Close() error {
	start := time.Now()

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	w.closed = true
	drains := make([]func(), 0, len(w.stores))
	for _, s := range w.stores {
		drains = append(drains, s.drain)
	}
	w.mu.Unlock()

	for _, drain := range drains {
		drain()
	}

	w.opts.metrics.RecordClose(len(drains), time.Since(start))
	w.opts.logger.LogClose(len(drains))
	return nil
}

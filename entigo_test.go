package entigo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/entigo/storage"
)

type position struct{ X, Y int }
type health struct{ HP int }

func TestWorld_RegisterTwice(t *testing.T) {
	w := New()

	require.NoError(t, Register[position](w, storage.NewVecStorage[position]()))

	err := Register[position](w, storage.NewMapStorage[position]())
	var already *ErrAlreadyRegistered
	require.ErrorAs(t, err, &already)
}

func TestWorld_UnregisteredType(t *testing.T) {
	w := New()

	err := Read(w, func(*storage.ReadStorage[position]) {})
	var notReg *ErrNotRegistered
	require.ErrorAs(t, err, &notReg)

	err = Write(w, func(*storage.WriteStorage[position]) {})
	require.ErrorAs(t, err, &notReg)
}

func TestWorld_Lifecycle(t *testing.T) {
	w := New(WithCapacity(64))
	require.NoError(t, Register[position](w, storage.NewVecStorage[position]()))
	require.NoError(t, Register[health](w, storage.NewMapStorage[health]()))

	e := w.CreateEntity()

	require.NoError(t, Write(w, func(s *storage.WriteStorage[position]) {
		assert.True(t, s.Insert(e, position{X: 1, Y: 2}))
	}))

	require.NoError(t, Read(w, func(s *storage.ReadStorage[position]) {
		p, ok := s.Get(e)
		require.True(t, ok)
		assert.Equal(t, position{X: 1, Y: 2}, p)
	}))

	// Destroying the entity makes the handle stale everywhere.
	require.True(t, w.DestroyEntity(e))
	require.NoError(t, Read(w, func(s *storage.ReadStorage[position]) {
		_, ok := s.Get(e)
		assert.False(t, ok)
	}))

	// The recycled index belongs to the new incarnation only.
	e2 := w.CreateEntity()
	require.Equal(t, e.Index(), e2.Index())

	require.NoError(t, Write(w, func(s *storage.WriteStorage[position]) {
		assert.False(t, s.Insert(e, position{X: 9}), "stale handle must not write")
		assert.True(t, s.Insert(e2, position{X: 3}))
	}))

	require.NoError(t, Read(w, func(s *storage.ReadStorage[position]) {
		p, ok := s.Get(e2)
		require.True(t, ok)
		assert.Equal(t, 3, p.X)
	}))
}

func TestWorld_StaleDataNeutralizedAfterRecycle(t *testing.T) {
	w := New()
	require.NoError(t, Register[health](w, storage.NewMapStorage[health]()))

	e := w.CreateEntity()
	require.NoError(t, Write(w, func(s *storage.WriteStorage[health]) {
		require.True(t, s.Insert(e, health{HP: 100}))
	}))

	require.True(t, w.DestroyEntity(e))
	e2 := w.CreateEntity()
	require.Equal(t, e.Index(), e2.Index())

	// The old value is still physically present but unreachable through
	// the new handle until overwritten.
	require.NoError(t, Read(w, func(s *storage.ReadStorage[health]) {
		_, ok := s.Get(e)
		assert.False(t, ok)
	}))

	require.NoError(t, Write(w, func(s *storage.WriteStorage[health]) {
		require.True(t, s.Insert(e2, health{HP: 50}))
	}))
	require.NoError(t, Read(w, func(s *storage.ReadStorage[health]) {
		h, ok := s.Get(e2)
		require.True(t, ok)
		assert.Equal(t, 50, h.HP)
	}))
}

func TestWorld_Close(t *testing.T) {
	w := New()
	require.NoError(t, Register[position](w, storage.NewVecStorage[position]()))

	e := w.CreateEntity()
	require.NoError(t, Write(w, func(s *storage.WriteStorage[position]) {
		require.True(t, s.Insert(e, position{X: 1}))
	}))

	require.NoError(t, w.Close())

	assert.ErrorIs(t, Read(w, func(*storage.ReadStorage[position]) {}), ErrClosed)
	assert.ErrorIs(t, Register[health](w, storage.NewMapStorage[health]()), ErrClosed)
	assert.ErrorIs(t, w.Close(), ErrClosed)
}

func TestWorld_Metrics(t *testing.T) {
	mc := &BasicMetricsCollector{}
	w := New(WithMetricsCollector(mc))

	require.NoError(t, Register[position](w, storage.NewVecStorage[position]()))
	_ = Register[position](w, storage.NewVecStorage[position]())

	e := w.CreateEntity()
	w.DestroyEntity(e)
	w.DestroyEntity(e)
	require.NoError(t, w.Close())

	assert.Equal(t, int64(2), mc.RegisterCount.Load())
	assert.Equal(t, int64(1), mc.RegisterErrors.Load())
	assert.Equal(t, int64(1), mc.CreateCount.Load())
	assert.Equal(t, int64(2), mc.DestroyCount.Load())
	assert.Equal(t, int64(1), mc.DestroyStale.Load())
	assert.Equal(t, int64(1), mc.CloseCount.Load())
	assert.Equal(t, int64(1), mc.CloseStoresDrained.Load())
}

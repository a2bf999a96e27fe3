package bitset

import (
	"testing"

	"github.com/hupe1980/entigo/core"
)

func TestBitSet(t *testing.T) {
	b := New()

	if !b.IsEmpty() {
		t.Errorf("expected new set to be empty")
	}

	if !b.Add(10) {
		t.Errorf("expected first add of 10 to report newly added")
	}
	if b.Add(10) {
		t.Errorf("expected second add of 10 to report already present")
	}
	if !b.Contains(10) {
		t.Errorf("expected 10 to be present")
	}
	if b.Cardinality() != 1 {
		t.Errorf("expected cardinality 1, got %d", b.Cardinality())
	}

	if !b.Remove(10) {
		t.Errorf("expected remove of 10 to report was-present")
	}
	if b.Remove(10) {
		t.Errorf("expected second remove of 10 to report absent")
	}

	b.Add(10)
	b.Add(20)
	b.Add(30)
	if b.Cardinality() != 3 {
		t.Errorf("expected cardinality 3, got %d", b.Cardinality())
	}

	b.Clear()
	if !b.IsEmpty() {
		t.Errorf("expected set to be empty after clear")
	}
}

func TestBitSet_IteratorOrdered(t *testing.T) {
	b := New()
	for _, i := range []core.Index{512, 3, 70000, 3, 12} {
		b.Add(i)
	}

	var got []core.Index
	for i := range b.Iterator() {
		got = append(got, i)
	}

	want := []core.Index{3, 12, 512, 70000}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestBitSet_Clone(t *testing.T) {
	b := New()
	b.Add(1)
	b.Add(2)

	c := b.Clone()
	c.Remove(1)

	if !b.Contains(1) {
		t.Errorf("expected clone to be independent of the original")
	}
	if c.Contains(1) {
		t.Errorf("expected 1 to be removed from the clone")
	}
}

func TestIntersect(t *testing.T) {
	a := New()
	b := New()
	c := New()
	for i := core.Index(0); i < 100; i++ {
		a.Add(i)
		if i%2 == 0 {
			b.Add(i)
		}
		if i%3 == 0 {
			c.Add(i)
		}
	}

	var got []core.Index
	for i := range Intersect(a, b, c) {
		got = append(got, i)
	}

	for n, i := range got {
		if i%6 != 0 {
			t.Errorf("unexpected index %d in intersection", i)
		}
		if n > 0 && got[n-1] >= i {
			t.Errorf("intersection not ordered: %v", got)
		}
	}
	if len(got) != 17 {
		t.Errorf("expected 17 indices, got %d", len(got))
	}

	// Inputs must not be modified.
	if a.Cardinality() != 100 {
		t.Errorf("expected input set to be untouched, cardinality %d", a.Cardinality())
	}
}

func TestIntersect_SingleSet(t *testing.T) {
	a := New()
	a.Add(5)
	a.Add(9)

	var got []core.Index
	for i := range Intersect(a) {
		got = append(got, i)
	}
	if len(got) != 2 || got[0] != 5 || got[1] != 9 {
		t.Errorf("expected [5 9], got %v", got)
	}
}

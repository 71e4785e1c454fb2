package render

import "testing"

func TestRenderPoolAcquireRelease(t *testing.T) {
	p := NewRenderPool()

	h1, d1 := p.Acquire()
	h2, d2 := p.Acquire()

	if d1 == d2 {
		t.Fatal("expected distinct instances")
	}
	if h1.ID == h2.ID {
		t.Fatal("expected distinct slot IDs")
	}
	if p.Len() != 2 || p.Live() != 2 {
		t.Errorf("expected Len=2 Live=2, got Len=%d Live=%d", p.Len(), p.Live())
	}

	if !p.Release(h1) {
		t.Error("expected release of live handle to succeed")
	}
	if p.Len() != 2 {
		t.Errorf("slots are stable: expected Len=2 after release, got %d", p.Len())
	}
	if p.Live() != 1 {
		t.Errorf("expected Live=1 after release, got %d", p.Live())
	}

	// h2 is untouched by h1's release.
	if got, ok := p.Get(h2); !ok || got != d2 {
		t.Error("releasing one handle must not invalidate another")
	}
}

func TestRenderPoolReuseIsCleared(t *testing.T) {
	p := NewRenderPool()

	h1, d1 := p.Acquire()
	d1.Resize(5)
	d1.Material = &Material{Name: "sprite"}
	d1.UpdateSizeAndPivot(20, 20, 0.5, 0.5)
	d1.VertexCount = 5
	d1.IndexCount = 9
	d1.UVDirty = false
	d1.VertDirty = false
	p.Release(h1)

	h2, d2 := p.Acquire()
	if h2.ID != h1.ID {
		t.Fatalf("expected slot reuse, got slot %d instead of %d", h2.ID, h1.ID)
	}
	if len(d2.Verts) != 0 || len(d2.Indices) != 0 {
		t.Error("reacquired data must have empty sequences")
	}
	if d2.Material != nil {
		t.Error("reacquired data must have nil material")
	}
	if d2.Width != 0 || d2.Height != 0 || d2.PivotX != 0 || d2.PivotY != 0 {
		t.Error("reacquired data must have zero size/pivot")
	}
	if d2.VertexCount != 0 || d2.IndexCount != 0 {
		t.Error("reacquired data must have zero counts")
	}
	if !d2.UVDirty || !d2.VertDirty {
		t.Error("reacquired data must have both dirty flags raised")
	}
}

func TestRenderPoolStaleHandles(t *testing.T) {
	p := NewRenderPool()

	h1, _ := p.Acquire()
	p.Release(h1)

	if _, ok := p.Get(h1); ok {
		t.Error("released handle must not resolve")
	}
	if p.Release(h1) {
		t.Error("double release must be rejected")
	}

	// The slot gets reused; the old handle still must not alias it.
	h2, d2 := p.Acquire()
	if _, ok := p.Get(h1); ok {
		t.Error("stale handle must not alias the slot's new occupant")
	}
	if got, ok := p.Get(h2); !ok || got != d2 {
		t.Error("fresh handle must resolve to its instance")
	}

	// Handles that never existed.
	if _, ok := p.Get(Handle{ID: 99}); ok {
		t.Error("out-of-range handle must not resolve")
	}
	if p.Release(Handle{ID: 99}) {
		t.Error("out-of-range release must be rejected")
	}
}

func TestRenderPoolSharedVertexPool(t *testing.T) {
	p := NewRenderPool()

	_, d1 := p.Acquire()
	_, d2 := p.Acquire()

	d1.Resize(4)
	d2.Resize(6)

	if p.VertexPool().Len() != 10 {
		t.Errorf("expected shared pool to hold 10 live records, got %d", p.VertexPool().Len())
	}

	d1.Resize(0)
	if p.VertexPool().Len() != 6 {
		t.Errorf("expected 6 live records after d1 shrink, got %d", p.VertexPool().Len())
	}
	// d2's records survive the neighbour's shrink.
	for i, v := range d2.Verts {
		if v == nil {
			t.Fatalf("d2 vert %d lost after d1 shrink", i)
		}
	}
}

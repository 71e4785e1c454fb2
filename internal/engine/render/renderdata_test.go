package render

import "testing"

func TestResizeExactLength(t *testing.T) {
	tests := []struct {
		name  string
		steps []int
	}{
		{"grow from empty", []int{0, 4}},
		{"grow then shrink", []int{6, 2}},
		{"shrink to zero", []int{3, 0}},
		{"same length", []int{5, 5}},
		{"up and down repeatedly", []int{4, 8, 3, 3, 10, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := NewVertexPool()
			d := NewRenderData(vp)
			for _, n := range tt.steps {
				d.Resize(n)
				if len(d.Verts) != n {
					t.Fatalf("after Resize(%d): expected %d verts, got %d", n, n, len(d.Verts))
				}
				if vp.Len() != n {
					t.Errorf("after Resize(%d): expected pool size %d, got %d", n, n, vp.Len())
				}
			}
		})
	}
}

func TestResizeGrowAppendsDefaultRecords(t *testing.T) {
	vp := NewVertexPool()
	d := NewRenderData(vp)

	d.Resize(2)
	d.Verts[0].X = 42
	d.Verts[0].U = 0.5
	d.Verts[0].Color = Red

	d.Resize(5)
	if vp.Len() != 5 {
		t.Errorf("expected pool to grow to 5, got %d", vp.Len())
	}
	// Existing records are untouched, new ones come out in default state.
	if d.Verts[0].X != 42 {
		t.Error("grow must not touch existing records")
	}
	for i := 2; i < 5; i++ {
		v := d.Verts[i]
		if v.X != 0 || v.Y != 0 || v.Z != 0 || v.U != 0 || v.V != 0 {
			t.Errorf("vert %d: expected origin/zero UV, got %+v", i, v)
		}
		if v.Color != White {
			t.Errorf("vert %d: expected white color, got %+v", i, v.Color)
		}
	}
}

func TestResizeShrinkReleasesToPool(t *testing.T) {
	vp := NewVertexPool()
	d := NewRenderData(vp)

	d.Resize(6)
	kept := append([]*Vertex(nil), d.Verts[:2]...)

	d.Resize(2)
	if len(d.Verts) != 2 {
		t.Fatalf("expected 2 verts, got %d", len(d.Verts))
	}
	if vp.Len() != 2 {
		t.Errorf("expected pool size 2 after shrink, got %d", vp.Len())
	}
	if vp.Spare() != 4 {
		t.Errorf("expected 4 records parked for reuse, got %d", vp.Spare())
	}
	for i, v := range kept {
		if d.Verts[i] != v {
			t.Errorf("vert %d: shrink must not replace surviving records", i)
		}
	}
}

func TestResizeReusesReleasedRecords(t *testing.T) {
	vp := NewVertexPool()
	d := NewRenderData(vp)

	d.Resize(3)
	d.Verts[2].X = 7
	d.Verts[2].Color = Blue
	d.Resize(1)
	d.Resize(3)

	// Growth after a shrink must reuse parked records, reset to default.
	if vp.Spare() != 0 {
		t.Errorf("expected parked records to be reused, %d still spare", vp.Spare())
	}
	for i := 1; i < 3; i++ {
		v := d.Verts[i]
		if v.X != 0 || v.Color != White {
			t.Errorf("vert %d: reused record not in default state: %+v", i, v)
		}
	}
}

func TestResizeDoesNotTouchDirtyFlags(t *testing.T) {
	d := NewRenderData(NewVertexPool())
	d.UVDirty = false
	d.VertDirty = false

	d.Resize(4)
	d.Resize(1)
	d.Resize(1)

	if d.UVDirty || d.VertDirty {
		t.Error("Resize must not touch dirty flags")
	}
}

func TestUpdateSizeAndPivot(t *testing.T) {
	tests := []struct {
		name          string
		w, h, px, py  float32
		wantVertDirty bool
	}{
		{"width changed", 11, 10, 0.5, 0.5, true},
		{"height changed", 10, 11, 0.5, 0.5, true},
		{"pivot x changed", 10, 10, 0.6, 0.5, true},
		{"pivot y changed", 10, 10, 0.5, 0.6, true},
		{"all equal", 10, 10, 0.5, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewRenderData(NewVertexPool())
			d.UpdateSizeAndPivot(10, 10, 0.5, 0.5)
			d.VertDirty = false
			d.UVDirty = false

			d.UpdateSizeAndPivot(tt.w, tt.h, tt.px, tt.py)

			if d.VertDirty != tt.wantVertDirty {
				t.Errorf("expected VertDirty=%v, got %v", tt.wantVertDirty, d.VertDirty)
			}
			if d.UVDirty {
				t.Error("UpdateSizeAndPivot must never touch UVDirty")
			}
		})
	}
}

func TestUpdateSizeAndPivotIdempotent(t *testing.T) {
	d := NewRenderData(NewVertexPool())

	d.UpdateSizeAndPivot(10, 10, 0, 0)
	if !d.VertDirty {
		t.Fatal("expected VertDirty after first update")
	}

	// Second identical call leaves the flag exactly as it was: still
	// raised, not reset and re-raised.
	d.UpdateSizeAndPivot(10, 10, 0, 0)
	if !d.VertDirty {
		t.Error("identical update must leave VertDirty unchanged")
	}

	// And with a clean flag it stays clean.
	d.VertDirty = false
	d.UpdateSizeAndPivot(10, 10, 0, 0)
	if d.VertDirty {
		t.Error("identical update must not re-dirty a clean flag")
	}
}

func TestClear(t *testing.T) {
	vp := NewVertexPool()
	d := NewRenderData(vp)
	mat := &Material{Name: "button"}

	d.Resize(8)
	d.Indices = append(d.Indices, 0, 1, 2)
	d.Material = mat
	d.VertexCount = 8
	d.IndexCount = 3
	d.UpdateSizeAndPivot(64, 32, 0.5, 1)
	d.UVDirty = false
	d.VertDirty = false

	for i := 0; i < 2; i++ { // idempotent
		d.Clear()

		if len(d.Verts) != 0 {
			t.Errorf("clear %d: expected empty verts, got %d", i, len(d.Verts))
		}
		if len(d.Indices) != 0 {
			t.Errorf("clear %d: expected empty indices, got %d", i, len(d.Indices))
		}
		if d.PivotX != 0 || d.PivotY != 0 || d.Width != 0 || d.Height != 0 {
			t.Errorf("clear %d: expected zero pivot/size", i)
		}
		if !d.UVDirty || !d.VertDirty {
			t.Errorf("clear %d: expected both dirty flags raised", i)
		}
		if d.Material != nil {
			t.Errorf("clear %d: expected nil material", i)
		}
		if d.VertexCount != 0 || d.IndexCount != 0 {
			t.Errorf("clear %d: expected zero counts", i)
		}
	}

	// Records went back to the pool rather than leaking as live.
	if vp.Len() != 0 {
		t.Errorf("expected empty live pool after clear, got %d", vp.Len())
	}
	if vp.Spare() != 8 {
		t.Errorf("expected 8 parked records after clear, got %d", vp.Spare())
	}
}

// Full element lifetime: acquire, resize, mutate, clear.
func TestElementLifecycleScenario(t *testing.T) {
	p := NewRenderPool()

	_, d := p.Acquire()

	d.Resize(3)
	if len(d.Verts) != 3 {
		t.Fatalf("expected 3 verts, got %d", len(d.Verts))
	}

	d.UpdateSizeAndPivot(10, 10, 0, 0)
	if !d.VertDirty {
		t.Fatal("expected VertDirty after size change")
	}

	d.UpdateSizeAndPivot(10, 10, 0, 0)
	if !d.VertDirty {
		t.Error("expected VertDirty unchanged after identical update")
	}

	d.Material = &Material{Name: "panel"}
	d.Clear()
	if len(d.Verts) != 0 {
		t.Errorf("expected empty verts after clear, got %d", len(d.Verts))
	}
	if d.Material != nil {
		t.Error("expected nil material after clear")
	}
}

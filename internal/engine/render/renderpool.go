package render

// Handle identifies an acquired RenderData slot. ID is the slot's
// position in the pool's backing storage at acquisition; Gen is the
// slot's generation at that moment, letting the pool detect a handle
// that outlived its slot's reuse.
type Handle struct {
	ID  int32
	Gen uint32
}

type slot struct {
	data *RenderData
	gen  uint32
	live bool
}

// RenderPool hands out RenderData instances through stable slot handles.
//
// The pool is an explicitly constructed object: create it when the
// renderer comes up and drop it at shutdown. Slots never move — released
// slots go on a free list and are reused in place, so releasing one
// handle never shifts another live instance. Each release bumps the
// slot's generation, so a stale handle resolves to nothing instead of
// silently aliasing the slot's next occupant.
type RenderPool struct {
	verts *VertexPool
	slots []slot
	free  []int32
}

// NewRenderPool creates an empty pool with its own shared vertex pool.
func NewRenderPool() *RenderPool {
	return &RenderPool{
		verts: NewVertexPool(),
	}
}

// VertexPool exposes the shared vertex pool, mainly for diagnostics and
// pre-warming (pool.Grow).
func (p *RenderPool) VertexPool() *VertexPool {
	return p.verts
}

// Acquire returns a handle to a fully-cleared RenderData. Freed slots are
// reused before the backing storage grows.
func (p *RenderPool) Acquire() (Handle, *RenderData) {
	var id int32
	if n := len(p.free); n > 0 {
		id = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		id = int32(len(p.slots))
		p.slots = append(p.slots, slot{data: NewRenderData(p.verts)})
	}
	s := &p.slots[id]
	s.live = true
	return Handle{ID: id, Gen: s.gen}, s.data
}

// Release clears the slot's data and returns the slot to the free list.
// Returns false for a stale or already-released handle, in which case
// nothing happens.
func (p *RenderPool) Release(h Handle) bool {
	if int(h.ID) >= len(p.slots) {
		return false
	}
	s := &p.slots[h.ID]
	if !s.live || s.gen != h.Gen {
		return false
	}
	s.data.Clear()
	s.live = false
	s.gen++
	p.free = append(p.free, h.ID)
	return true
}

// Get resolves a handle. The second return is false when the handle is
// stale (its slot was released, and possibly reacquired, since).
func (p *RenderPool) Get(h Handle) (*RenderData, bool) {
	if int(h.ID) >= len(p.slots) {
		return nil, false
	}
	s := &p.slots[h.ID]
	if !s.live || s.gen != h.Gen {
		return nil, false
	}
	return s.data, true
}

// Len returns the size of the backing storage, including freed slots.
func (p *RenderPool) Len() int {
	return len(p.slots)
}

// Live returns the number of currently acquired instances.
func (p *RenderPool) Live() int {
	return len(p.slots) - len(p.free)
}

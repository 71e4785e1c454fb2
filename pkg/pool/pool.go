// Package pool provides a factory-backed object pool with indexed access.
//
// Unlike sync.Pool, the pool is deterministic and single-threaded: acquired
// objects stay in an indexable live sequence until removed, and removed
// objects are parked on a free list for reuse instead of being handed to
// the garbage collector.
package pool

// Pool holds live objects of type T in an ordered backing slice and
// recycles removed objects through a free list.
//
// All operations assume a single goroutine; callers that share a Pool
// across goroutines must serialize access themselves.
type Pool[T any] struct {
	factory func() *T
	reset   func(*T)

	live []*T
	free []*T
}

// New creates a pool. factory produces a fresh object in default state.
// reset restores a recycled object to default state before reuse; it may
// be nil if T's zero value needs no fixup, in which case recycled objects
// are returned as-is.
func New[T any](factory func() *T, reset func(*T)) *Pool[T] {
	return &Pool[T]{
		factory: factory,
		reset:   reset,
	}
}

// Acquire returns an object in default state and appends it to the live
// sequence. Recycled objects are preferred over new allocations.
func (p *Pool[T]) Acquire() *T {
	var v *T
	if n := len(p.free); n > 0 {
		v = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		if p.reset != nil {
			p.reset(v)
		}
	} else {
		v = p.factory()
	}
	p.live = append(p.live, v)
	return v
}

// RemoveAt removes the object at position i from the live sequence and
// parks it for reuse, returning it. Compaction is shift-left: every
// element above i moves down one position, so relative order is kept and
// indices above i are shifted. Out-of-range i panics.
func (p *Pool[T]) RemoveAt(i int) *T {
	v := p.live[i]
	copy(p.live[i:], p.live[i+1:])
	p.live[len(p.live)-1] = nil
	p.live = p.live[:len(p.live)-1]
	p.free = append(p.free, v)
	return v
}

// Remove finds v in the live sequence and removes it. Returns false if v
// is not live.
func (p *Pool[T]) Remove(v *T) bool {
	for i, cur := range p.live {
		if cur == v {
			p.RemoveAt(i)
			return true
		}
	}
	return false
}

// Len returns the number of live objects.
func (p *Pool[T]) Len() int {
	return len(p.live)
}

// At returns the live object at position i.
func (p *Pool[T]) At(i int) *T {
	return p.live[i]
}

// Spare returns the number of parked objects available for reuse.
func (p *Pool[T]) Spare() int {
	return len(p.free)
}

// Grow pre-allocates n spare objects so the next n acquisitions do not
// hit the factory at a hot moment.
func (p *Pool[T]) Grow(n int) {
	for i := 0; i < n; i++ {
		p.free = append(p.free, p.factory())
	}
}

package effect

// Pool is a fixed-capacity arena with a live-count cursor
// Live items occupy backing[:active]; removal swaps the last live item into
// the freed slot so neither acquire nor release allocates
type Pool[T any] struct {
	backing []T
	active  int
}

// NewPool allocates the full backing store once
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{backing: make([]T, capacity)}
}

// Acquire returns the next free slot, or nil when saturated
// The slot holds stale data and must be fully initialized by the caller
func (p *Pool[T]) Acquire() *T {
	if p.active >= len(p.backing) {
		return nil
	}
	item := &p.backing[p.active]
	p.active++
	return item
}

// Release frees slot i by moving the last live item into it
func (p *Pool[T]) Release(i int) {
	if i < 0 || i >= p.active {
		return
	}
	p.active--
	p.backing[i] = p.backing[p.active]
}

// Retain keeps items for which alive returns true, releasing the rest
// Order of live items is not preserved
func (p *Pool[T]) Retain(alive func(item *T) bool) {
	for i := 0; i < p.active; {
		if alive(&p.backing[i]) {
			i++
			continue
		}
		p.Release(i)
	}
}

// Active returns a view of live items, valid until the next mutation
func (p *Pool[T]) Active() []T {
	return p.backing[:p.active]
}

func (p *Pool[T]) Len() int  { return p.active }
func (p *Pool[T]) Cap() int  { return len(p.backing) }
func (p *Pool[T]) Free() int { return len(p.backing) - p.active }

// Clear releases every item without touching the backing store
func (p *Pool[T]) Clear() {
	p.active = 0
}

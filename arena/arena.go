// Package arena provides pooled allocation for the node types used by the
// ART index.
//
// The tree constantly replaces nodes as they grow, shrink, split, and
// collapse (§4.5/§4.6 of the index's design). Rather than letting every one
// of those replacements fall on the garbage collector, an [Arena] hands out
// recycled node memory from a per-type [sync.Pool] and reclaims it eagerly
// when a node is retired, matching the single-writer discipline the index
// documents (no concurrent reader can be holding a reference to a node the
// writer has already unlinked and freed).
package arena

import (
	"reflect"
	"sync"

	"github.com/flier/art/internal/debug"
)

// Arena hands out and reclaims node memory for a single tree.
//
// A zero-value Arena is ready to use. An Arena must not be shared between
// trees mutated by different goroutines without external synchronization,
// matching the tree's own single-writer contract.
type Arena struct {
	mu    sync.Mutex
	pools map[reflect.Type]*sync.Pool

	allocs, frees int64
}

// Stats reports how many nodes an Arena has handed out and reclaimed.
type Stats struct {
	Allocs int64
	Frees  int64
}

// Stats returns a snapshot of this arena's allocation counters.
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Stats{Allocs: a.allocs, Frees: a.frees}
}

func (a *Arena) poolFor(t reflect.Type) *sync.Pool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pools == nil {
		a.pools = make(map[reflect.Type]*sync.Pool)
	}

	p, ok := a.pools[t]
	if !ok {
		p = new(sync.Pool)
		a.pools[t] = p
	}

	return p
}

// New returns a pointer to a fresh T, reusing previously [Free]d memory of
// the same type when available.
func New[T any](a *Arena, value T) *T {
	var zero T

	pool := a.poolFor(reflect.TypeOf(zero))

	p, _ := pool.Get().(*T)
	if p == nil {
		p = new(T)
	}

	*p = value

	a.mu.Lock()
	a.allocs++
	a.mu.Unlock()

	debug.Log("New", "%T %p", p, p)

	return p
}

// Free returns p to its type's pool for reuse by a future [New] call.
//
// After Free, p must not be read or written by the caller. Free is a no-op
// for a nil pointer.
func Free[T any](a *Arena, p *T) {
	if p == nil {
		return
	}

	debug.Log("Free", "%T %p", p, p)

	var zero T
	*p = zero

	a.poolFor(reflect.TypeOf(zero)).Put(p)

	a.mu.Lock()
	a.frees++
	a.mu.Unlock()
}

package node

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/internal/debug"
)

// node16 holds between 5 and 16 children in parallel, sorted arrays, the
// same layout as Node4 at a larger capacity.
type node16 struct {
	base
	keys     [16]byte
	children [16]Node
}

// NewNode16 allocates an empty Node16.
func NewNode16(a *arena.Arena) Node {
	return arena.New(a, node16{})
}

func (n *node16) Kind() Kind { return KindNode16 }

func (n *node16) Full() bool { return n.count == 16 }

func (n *node16) Minimum() *Leaf {
	if n.count == 0 {
		return nil
	}
	return n.children[0].Minimum()
}

func (n *node16) Maximum() *Leaf {
	if n.count == 0 {
		return nil
	}
	return n.children[n.count-1].Maximum()
}

// FindChild does a scalar ascending scan of the sorted key array. The
// teacher's AVX2 variant (simd.FindKeyIndex) is not ported here; the scan
// below is its portable fallback path, generalized to any architecture.
func (n *node16) FindChild(b byte) *Node {
	for i := 0; i < n.count; i++ {
		if n.keys[i] == b {
			return &n.children[i]
		}
		if n.keys[i] > b {
			break
		}
	}
	return nil
}

func (n *node16) AddChild(a *arena.Arena, b byte, child Node) {
	debug.Assert(!n.Full() || n.FindChild(b) != nil, "node must not be full")

	i := 0
	for ; i < n.count; i++ {
		if n.keys[i] == b {
			n.children[i] = child
			return
		}
		if b < n.keys[i] {
			break
		}
	}

	copy(n.keys[i+1:n.count+1], n.keys[i:n.count])
	copy(n.children[i+1:n.count+1], n.children[i:n.count])
	n.keys[i] = b
	n.children[i] = child
	n.count++
}

func (n *node16) RemoveChild(a *arena.Arena, b byte) {
	for i := 0; i < n.count; i++ {
		if n.keys[i] != b {
			continue
		}

		copy(n.keys[i:], n.keys[i+1:n.count])
		copy(n.children[i:], n.children[i+1:n.count])
		n.count--
		n.children[n.count] = nil
		return
	}
}

func (n *node16) EachChild(fn func(child Node) bool) bool {
	for i := 0; i < n.count; i++ {
		if !fn(n.children[i]) {
			return true
		}
	}
	return false
}

func (n *node16) Grow(a *arena.Arena) Node {
	nn := arena.New(a, node48{base: n.base})
	for i := 0; i < n.count; i++ {
		nn.keys[n.keys[i]] = uint8(i + 1)
		nn.children[i] = n.children[i]
	}
	nn.count = n.count

	arena.Free(a, n)

	return nn
}

// Shrink demotes to Node4 once the child count drops below 4, Node4's
// capacity.
func (n *node16) Shrink(a *arena.Arena) Node {
	if n.count >= 4 {
		return n
	}

	nn := arena.New(a, node4{base: n.base})
	copy(nn.keys[:], n.keys[:n.count])
	copy(nn.children[:], n.children[:n.count])
	nn.count = n.count

	arena.Free(a, n)

	return nn
}

func (n *node16) Release(a *arena.Arena) {
	arena.Free(a, n)
}

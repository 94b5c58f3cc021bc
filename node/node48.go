package node

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/internal/debug"
)

// node48 holds between 17 and 48 children. It indexes them indirectly: keys
// is a 256-entry byte-to-slot map (0 meaning "absent", 1..48 meaning
// children[idx-1]), trading array density for O(1) lookup at the cost of a
// 256-byte header.
type node48 struct {
	base
	keys     [256]uint8
	children [48]Node
}

// NewNode48 allocates an empty Node48.
func NewNode48(a *arena.Arena) Node {
	return arena.New(a, node48{})
}

func (n *node48) Kind() Kind { return KindNode48 }

func (n *node48) Full() bool { return n.count == 48 }

func (n *node48) Minimum() *Leaf {
	for i := 0; i < 256; i++ {
		if idx := n.keys[i]; idx != 0 {
			return n.children[idx-1].Minimum()
		}
	}
	return nil
}

func (n *node48) Maximum() *Leaf {
	for i := 255; i >= 0; i-- {
		if idx := n.keys[i]; idx != 0 {
			return n.children[idx-1].Maximum()
		}
	}
	return nil
}

func (n *node48) FindChild(b byte) *Node {
	idx := n.keys[b]
	if idx == 0 {
		return nil
	}
	return &n.children[idx-1]
}

func (n *node48) AddChild(a *arena.Arena, b byte, child Node) {
	debug.Assert(!n.Full() || n.keys[b] != 0, "node must not be full")

	if idx := n.keys[b]; idx != 0 {
		n.children[idx-1] = child
		return
	}

	for i := 0; i < 48; i++ {
		if n.children[i] == nil {
			n.children[i] = child
			n.keys[b] = uint8(i + 1)
			n.count++
			return
		}
	}
}

func (n *node48) RemoveChild(a *arena.Arena, b byte) {
	idx := n.keys[b]
	if idx == 0 {
		return
	}

	n.children[idx-1] = nil
	n.keys[b] = 0
	n.count--
}

func (n *node48) EachChild(fn func(child Node) bool) bool {
	for b := 0; b < 256; b++ {
		if idx := n.keys[b]; idx != 0 {
			if !fn(n.children[idx-1]) {
				return true
			}
		}
	}
	return false
}

func (n *node48) Grow(a *arena.Arena) Node {
	nn := arena.New(a, node256{base: n.base})
	for b := 0; b < 256; b++ {
		if idx := n.keys[b]; idx != 0 {
			nn.children[b] = n.children[idx-1]
		}
	}
	nn.count = n.count

	arena.Free(a, n)

	return nn
}

// Shrink demotes to Node16 once the child count drops below 16, Node16's
// capacity.
func (n *node48) Shrink(a *arena.Arena) Node {
	if n.count >= 16 {
		return n
	}

	nn := arena.New(a, node16{base: n.base})
	for b := 0; b < 256; b++ {
		if idx := n.keys[b]; idx != 0 {
			nn.keys[nn.count] = byte(b)
			nn.children[nn.count] = n.children[idx-1]
			nn.count++
		}
	}

	arena.Free(a, n)

	return nn
}

func (n *node48) Release(a *arena.Arena) {
	arena.Free(a, n)
}

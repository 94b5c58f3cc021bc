package node

import "github.com/flier/art/arena"

// node256 holds between 49 and 256 children directly indexed by key byte.
// It never grows further and, per the design, is never reported Full: the
// tree always has a child slot available once a node reaches this variant.
type node256 struct {
	base
	children [256]Node
}

// NewNode256 allocates an empty Node256.
func NewNode256(a *arena.Arena) Node {
	return arena.New(a, node256{})
}

func (n *node256) Kind() Kind { return KindNode256 }

func (n *node256) Full() bool { return false }

func (n *node256) Minimum() *Leaf {
	for i := 0; i < 256; i++ {
		if n.children[i] != nil {
			return n.children[i].Minimum()
		}
	}
	return nil
}

func (n *node256) Maximum() *Leaf {
	for i := 255; i >= 0; i-- {
		if n.children[i] != nil {
			return n.children[i].Maximum()
		}
	}
	return nil
}

func (n *node256) FindChild(b byte) *Node {
	if n.children[b] == nil {
		return nil
	}
	return &n.children[b]
}

func (n *node256) AddChild(a *arena.Arena, b byte, child Node) {
	if n.children[b] == nil {
		n.count++
	}
	n.children[b] = child
}

func (n *node256) RemoveChild(a *arena.Arena, b byte) {
	if n.children[b] == nil {
		return
	}
	n.children[b] = nil
	n.count--
}

func (n *node256) EachChild(fn func(child Node) bool) bool {
	for b := 0; b < 256; b++ {
		if n.children[b] != nil {
			if !fn(n.children[b]) {
				return true
			}
		}
	}
	return false
}

// Grow panics: Node256 is the largest variant and Full always reports
// false, so the tree never calls Grow on it.
func (n *node256) Grow(a *arena.Arena) Node {
	panic("art/node: node256 cannot grow")
}

// Shrink demotes to Node48 once the child count drops below 48, Node48's
// capacity.
func (n *node256) Shrink(a *arena.Arena) Node {
	if n.count >= 48 {
		return n
	}

	nn := arena.New(a, node48{base: n.base})
	for b := 0; b < 256; b++ {
		if n.children[b] != nil {
			nn.children[nn.count] = n.children[b]
			nn.keys[b] = uint8(nn.count + 1)
			nn.count++
		}
	}

	arena.Free(a, n)

	return nn
}

func (n *node256) Release(a *arena.Arena) {
	arena.Free(a, n)
}

package node

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/internal/debug"
)

// node4 holds between 2 and 4 children in parallel, sorted arrays: Node4
// is the smallest variant and the one every new inner node starts life as.
type node4 struct {
	base
	keys     [4]byte
	children [4]Node
}

// NewNode4 allocates an empty Node4.
func NewNode4(a *arena.Arena) Node {
	return arena.New(a, node4{})
}

func (n *node4) Kind() Kind { return KindNode4 }

func (n *node4) Full() bool { return n.count == 4 }

func (n *node4) Minimum() *Leaf {
	if n.count == 0 {
		return nil
	}
	return n.children[0].Minimum()
}

func (n *node4) Maximum() *Leaf {
	if n.count == 0 {
		return nil
	}
	return n.children[n.count-1].Maximum()
}

func (n *node4) FindChild(b byte) *Node {
	for i := 0; i < n.count; i++ {
		if n.keys[i] == b {
			return &n.children[i]
		}
	}
	return nil
}

// AddChild inserts child at the position that keeps keys sorted ascending.
// If b already has a child, it is replaced in place.
func (n *node4) AddChild(a *arena.Arena, b byte, child Node) {
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

func (n *node4) RemoveChild(a *arena.Arena, b byte) {
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

func (n *node4) EachChild(fn func(child Node) bool) bool {
	for i := 0; i < n.count; i++ {
		if !fn(n.children[i]) {
			return true
		}
	}
	return false
}

func (n *node4) Grow(a *arena.Arena) Node {
	nn := arena.New(a, node16{base: n.base})
	copy(nn.keys[:], n.keys[:n.count])
	copy(nn.children[:], n.children[:n.count])
	nn.count = n.count

	arena.Free(a, n)

	return nn
}

// Shrink collapses a Node4 holding exactly one child into that child,
// combining this node's prefix, the key byte leading to the child, and the
// child's own prefix into the child's new prefix. A leaf child is returned
// as-is; an inner-node child absorbs the merged prefix.
func (n *node4) Shrink(a *arena.Arena) Node {
	if n.count != 1 {
		return n
	}

	child := n.children[0]

	if _, ok := child.(*Leaf); ok {
		arena.Free(a, n)
		return child
	}

	combinedLen := n.prefixLen + 1 + child.PrefixLen()

	var buf [PrefixCap]byte
	w := copy(buf[:], n.Prefix())
	if w < PrefixCap {
		buf[w] = n.keys[0]
		w++
	}
	if w < PrefixCap {
		w += copy(buf[w:], child.Prefix())
	}

	child.SetPrefix(buf[:w], combinedLen)
	arena.Free(a, n)

	return child
}

func (n *node4) Release(a *arena.Arena) {
	arena.Free(a, n)
}

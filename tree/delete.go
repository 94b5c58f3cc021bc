package tree

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/internal/debug"
	"github.com/flier/art/node"
)

// Delete walks from ref looking for key and removes it if found, returning
// the removed leaf or nil.
func Delete(a *arena.Arena, ref *node.Node, key []byte, depth int) *node.Leaf {
	if *ref == nil {
		return nil
	}

	if l, ok := (*ref).(*node.Leaf); ok {
		if l.Matches(key) {
			*ref = nil
			return l
		}
		return nil
	}

	curr := *ref

	if n := curr.PrefixLen(); n > 0 {
		if checkPrefix(curr, key, depth) != len(curr.Prefix()) {
			return nil
		}
		depth += n
	}

	if depth > len(key) {
		return nil
	}

	b := byteAt(key, depth)

	child := curr.FindChild(b)
	if child == nil {
		return nil
	}

	if l, ok := (*child).(*node.Leaf); ok {
		if l.Matches(key) {
			removeChild(a, ref, b)
			return l
		}
		return nil
	}

	return Delete(a, child, key, depth+1)
}

// removeChild deletes the child keyed by b from *ref and shrinks *ref to a
// smaller variant if its new child count warrants it.
func removeChild(a *arena.Arena, ref *node.Node, b byte) {
	curr := *ref
	debug.Assert(curr != nil, "ref must be a node")
	curr.RemoveChild(a, b)

	if n := curr.Shrink(a); n != curr {
		*ref = n
	}
}

package tree

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/internal/debug"
	"github.com/flier/art/node"
)

// Insert walks from ref, creating or splitting nodes as needed to store key
// and value at depth. It returns the previous value and true if key already
// existed; if replace is false, an existing key's value is left untouched.
func Insert(a *arena.Arena, ref *node.Node, key, value []byte, depth int, replace bool) ([]byte, bool) {
	if *ref == nil {
		*ref = node.NewLeaf(a, key, value)
		return nil, false
	}

	if leaf, ok := (*ref).(*node.Leaf); ok {
		return insertToLeaf(a, ref, leaf, key, value, depth, replace)
	}

	return insertToNode(a, ref, key, value, depth, replace)
}

func insertToLeaf(a *arena.Arena, ref *node.Node, curr *node.Leaf, key, value []byte, depth int, replace bool) ([]byte, bool) {
	debug.Assert(curr != nil, "current node must be a leaf")

	if curr.Matches(key) {
		old := curr.Value()
		if replace {
			curr.SetValue(value)
		}
		return old, true
	}

	newNode := node.NewNode4(a)

	if i := longestCommonPrefix(key, curr.Key(), depth); i > depth {
		newNode.SetPrefix(key[depth:i], i-depth)
		depth = i
	}

	newLeaf := node.NewLeaf(a, key, value)
	newNode.AddChild(a, byteAt(key, depth), newLeaf)
	newNode.AddChild(a, byteAt(curr.Key(), depth), curr)

	*ref = newNode

	return nil, false
}

func insertToNode(a *arena.Arena, ref *node.Node, key, value []byte, depth int, replace bool) ([]byte, bool) {
	curr := *ref
	debug.Assert(curr != nil, "current node must be a node")

	if curr.PrefixLen() > 0 {
		diff := prefixMismatch(curr, key, depth)

		if diff >= curr.PrefixLen() {
			depth += curr.PrefixLen()
		} else {
			splitNode := node.NewNode4(a)
			splitNode.SetPrefix(curr.Prefix()[:min(diff, len(curr.Prefix()))], diff)

			splitByte := byteAtPrefixOffset(curr, diff, depth)

			truncatePrefix(curr, diff+1, depth)
			splitNode.AddChild(a, splitByte, curr)

			*ref = splitNode
			curr = splitNode
			depth += diff
		}
	}

	b := byteAt(key, depth)

	if child := curr.FindChild(b); child != nil {
		return Insert(a, child, key, value, depth+1, replace)
	}

	addChild(a, ref, b, node.NewLeaf(a, key, value))

	return nil, false
}

// addChild inserts child under b on *ref, growing the node to the next
// variant first if it's already full.
func addChild(a *arena.Arena, ref *node.Node, b byte, child node.Node) {
	curr := *ref

	if curr.Full() {
		curr = curr.Grow(a)
		*ref = curr
	}

	curr.AddChild(a, b, child)
}

// Package node implements the node family of the adaptive radix tree: a
// closed set of four inner-node variants (Node4, Node16, Node48, Node256)
// plus Leaf, dispatched through a Kind tag and a single Node interface.
//
// Each inner variant stores the same inline, length-capped prefix header
// (PrefixCap bytes) and differs only in how it indexes its children. Callers
// outside this package normally only need the Node interface and Leaf;
// variant selection and promotion/demotion between variants happens inside
// Insert/Delete in package tree.
package node

import "github.com/flier/art/arena"

// PrefixCap bounds how many bytes of a node's compressed path segment are
// stored inline. The logical prefix length tracked alongside it may exceed
// PrefixCap; bytes beyond the cap are reconstructed pessimistically by
// walking down to a descendant leaf's full key.
const PrefixCap = 8

// Kind identifies which of the five node variants a Node value is.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindLeaf
	KindNode4
	KindNode16
	KindNode48
	KindNode256
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindNode4:
		return "Node4"
	case KindNode16:
		return "Node16"
	case KindNode48:
		return "Node48"
	case KindNode256:
		return "Node256"
	default:
		return "Invalid"
	}
}

// Node is implemented by Leaf and by the four inner-node variants. A single
// inner node's children are stored as Node values directly in the variant's
// own array, so FindChild returns the address of that array slot rather
// than a boxed reference.
type Node interface {
	Kind() Kind

	// Prefix returns the inline, capped prefix bytes. For inner nodes
	// len(Prefix()) <= PrefixCap; a Leaf returns its full key instead.
	Prefix() []byte
	// PrefixLen returns the logical prefix length, which may exceed PrefixCap.
	// A Leaf reports the length of its full key.
	PrefixLen() int
	// SetPrefix replaces the node's prefix. On inner nodes data is copied and
	// truncated to PrefixCap bytes and length is the logical length to record;
	// a Leaf replaces its key with a full copy of data and ignores length.
	SetPrefix(data []byte, length int)

	// Minimum and Maximum return the leftmost/rightmost leaf reachable from
	// this node.
	Minimum() *Leaf
	Maximum() *Leaf

	// NumChildren reports how many children are currently occupied. Leaf
	// always reports 0.
	NumChildren() int
	// Full reports whether the node has no room for another child.
	Full() bool

	// FindChild returns the address of the child slot keyed by b, or nil if
	// no such child exists.
	FindChild(b byte) *Node
	// AddChild inserts child under key b. The caller must ensure Full()
	// is false (or that b replaces an existing child) before calling.
	AddChild(a *arena.Arena, b byte, child Node)
	// RemoveChild deletes the child keyed by b, if present.
	RemoveChild(a *arena.Arena, b byte)
	// EachChild visits occupied children in ascending key order, stopping
	// early if fn returns false. It reports whether fn stopped it early.
	EachChild(fn func(child Node) bool) bool

	// Grow promotes this node to the next larger variant, copying its
	// children across, and releases the receiver. Node256 never grows.
	Grow(a *arena.Arena) Node
	// Shrink demotes this node to the next smaller variant when its child
	// count has dropped below that variant's lower bound, releasing the
	// receiver and returning the replacement. It returns the receiver
	// unchanged when no demotion is needed. Node4 instead collapses into
	// its sole remaining child when exactly one child is left.
	Shrink(a *arena.Arena) Node

	// Release returns the node's memory to the arena. Callers must not use
	// the node afterward.
	Release(a *arena.Arena)
}

// base holds the fields common to every inner-node variant: the inline
// compressed-path prefix and the logical child count.
type base struct {
	prefix    [PrefixCap]byte
	prefixLen int
	count     int
}

func (b *base) Prefix() []byte {
	n := b.prefixLen
	if n > PrefixCap {
		n = PrefixCap
	}
	return b.prefix[:n]
}

func (b *base) PrefixLen() int { return b.prefixLen }

func (b *base) SetPrefix(data []byte, length int) {
	b.prefixLen = length
	n := copy(b.prefix[:], data)
	for i := n; i < PrefixCap; i++ {
		b.prefix[i] = 0
	}
}

func (b *base) NumChildren() int { return b.count }

// matchPrefix returns how many of the node's inline prefix bytes match
// key[depth:], bounded by PrefixCap, the logical prefix length, and the
// remaining key length. It never looks past the inline bytes; callers that
// need the full logical prefix compared must fall back to a descendant
// leaf's key once this returns PrefixCap.
func (b *base) matchPrefix(key []byte, depth int) int {
	limit := b.prefixLen
	if limit > PrefixCap {
		limit = PrefixCap
	}
	if rem := len(key) - depth; limit > rem {
		limit = rem
	}

	i := 0
	for i < limit && b.prefix[i] == key[depth+i] {
		i++
	}
	return i
}

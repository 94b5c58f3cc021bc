package node

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/internal/debug"
	"github.com/flier/art/view"
)

// Leaf is the terminal node of the tree: it stores the full key (lazy
// expansion means no inner node ever stores a complete key) and its
// associated value.
type Leaf struct {
	key   []byte
	value []byte
}

// NewLeaf allocates a Leaf holding copies of key and value.
func NewLeaf(a *arena.Arena, key, value []byte) *Leaf {
	debug.Assert(a != nil, "arena must not be nil")
	debug.Assert(len(key) > 0, "key must not be nil or empty")

	return arena.New(a, Leaf{
		key:   view.Clone(key),
		value: view.Clone(value),
	})
}

func (l *Leaf) Kind() Kind { return KindLeaf }

// Key returns the leaf's full stored key.
func (l *Leaf) Key() []byte { return l.key }

// Value returns the leaf's stored value.
func (l *Leaf) Value() []byte { return l.value }

// SetValue replaces the leaf's value with a copy of value.
func (l *Leaf) SetValue(value []byte) {
	l.value = view.Clone(value)
}

// Matches reports whether the leaf's key is exactly key.
func (l *Leaf) Matches(key []byte) bool {
	return view.Equal(l.key, key)
}

// MatchesPrefix reports whether the leaf's key begins with prefix.
func (l *Leaf) MatchesPrefix(prefix []byte) bool {
	return view.HasPrefix(l.key, prefix)
}

func (l *Leaf) Prefix() []byte { return l.key }
func (l *Leaf) PrefixLen() int { return len(l.key) }
func (l *Leaf) SetPrefix(data []byte, length int) {
	l.key = view.Clone(data)
}

func (l *Leaf) Minimum() *Leaf { return l }
func (l *Leaf) Maximum() *Leaf { return l }

func (l *Leaf) NumChildren() int { return 0 }
func (l *Leaf) Full() bool       { return true }

func (l *Leaf) FindChild(b byte) *Node {
	panic("art/node: leaf has no children")
}

func (l *Leaf) AddChild(a *arena.Arena, b byte, child Node) {
	panic("art/node: leaf cannot accept children")
}

func (l *Leaf) RemoveChild(a *arena.Arena, b byte) {
	panic("art/node: leaf cannot remove children")
}

func (l *Leaf) EachChild(fn func(child Node) bool) bool {
	panic("art/node: leaf has no children")
}

func (l *Leaf) Grow(a *arena.Arena) Node {
	panic("art/node: leaf cannot grow")
}

func (l *Leaf) Shrink(a *arena.Arena) Node {
	panic("art/node: leaf cannot shrink")
}

func (l *Leaf) Release(a *arena.Arena) {
	arena.Free(a, l)
}

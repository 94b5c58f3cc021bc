// Package art implements an in-memory Adaptive Radix Tree: a space-
// efficient, ordered index over byte-string keys.
//
// Adaptive Radix Trees compress common key prefixes into single nodes and
// pick among four inner-node layouts (Node4, Node16, Node48, Node256) based
// on how many children a node has, giving it the memory profile of a trie
// with close to the lookup cost of a balanced tree. See package node for the
// node family and package tree for the traversal algorithms.
//
// A Tree is not safe for concurrent use. Every Insert, Delete, and
// structural change must come from a single writer; concurrent readers
// require external synchronization with that writer (see Tree's doc
// comment).
package art

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/node"
	"github.com/flier/art/tree"
)

// Tree is an Adaptive Radix Tree keyed by []byte.
//
// The zero value is an empty, ready-to-use tree. All mutating methods take
// an explicit *arena.Arena from which nodes are allocated and to which
// retired nodes are returned; callers that want pooled reuse across
// multiple trees share one Arena, and callers that don't can pass a fresh
// &arena.Arena{} per tree.
//
// Tree must not be mutated from more than one goroutine at a time, and must
// not be read from one goroutine while being mutated from another without
// external synchronization.
type Tree struct {
	root node.Node
	size int
}

// Len returns the number of keys currently stored in the tree.
func (t *Tree) Len() int { return t.size }

// Search looks up key and returns its value, or (nil, false) if key is not
// present.
func (t *Tree) Search(key []byte) ([]byte, bool) {
	return tree.Search(t.root, key)
}

// Insert stores value under key, replacing any existing value for that
// key. It returns the previous value and true if key already existed.
func (t *Tree) Insert(a *arena.Arena, key, value []byte) ([]byte, bool) {
	old, existed := tree.Insert(a, &t.root, key, value, 0, true)
	if !existed {
		t.size++
	}
	return old, existed
}

// InsertNoReplace stores value under key only if key is not already
// present. It returns the existing value and true if key already existed,
// leaving that value untouched.
func (t *Tree) InsertNoReplace(a *arena.Arena, key, value []byte) ([]byte, bool) {
	old, existed := tree.Insert(a, &t.root, key, value, 0, false)
	if !existed {
		t.size++
	}
	return old, existed
}

// Delete removes key from the tree, returning its value and true if it was
// present.
func (t *Tree) Delete(a *arena.Arena, key []byte) ([]byte, bool) {
	l := tree.Delete(a, &t.root, key, 0)
	if l == nil {
		return nil, false
	}

	value := l.Value()
	l.Release(a)
	t.size--

	return value, true
}

// Min returns the lexicographically smallest key in the tree.
func (t *Tree) Min() (key, value []byte, ok bool) {
	if t.root == nil {
		return nil, nil, false
	}
	l := t.root.Minimum()
	if l == nil {
		return nil, nil, false
	}
	return l.Key(), l.Value(), true
}

// Max returns the lexicographically largest key in the tree.
func (t *Tree) Max() (key, value []byte, ok bool) {
	if t.root == nil {
		return nil, nil, false
	}
	l := t.root.Maximum()
	if l == nil {
		return nil, nil, false
	}
	return l.Key(), l.Value(), true
}

// Visit performs an in-order traversal of every key in the tree. Returning
// true from cb stops the traversal early; Visit reports whether cb did so.
func (t *Tree) Visit(cb func(key, value []byte) bool) bool {
	return tree.Visit(t.root, cb)
}

// VisitPrefix traverses only the keys beginning with prefix, in order.
// Returning true from cb stops the traversal early; VisitPrefix reports
// whether cb did so.
func (t *Tree) VisitPrefix(prefix []byte, cb func(key, value []byte) bool) bool {
	return tree.VisitPrefix(t.root, prefix, cb)
}

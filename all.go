//go:build go1.23

package art

import (
	"iter"

	"github.com/flier/art/tree"
)

// All returns a Go 1.23+ iterator over every key-value pair in the tree, in
// lexicographic key order.
func (t *Tree) All() iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		tree.Visit(t.root, func(key, value []byte) bool {
			return !yield(key, value)
		})
	}
}

// AllPrefix returns a Go 1.23+ iterator over the key-value pairs whose key
// begins with prefix, in lexicographic order.
func (t *Tree) AllPrefix(prefix []byte) iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		tree.VisitPrefix(t.root, prefix, func(key, value []byte) bool {
			return !yield(key, value)
		})
	}
}

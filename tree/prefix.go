// Package tree implements the recursive search, insert, delete, and
// traversal algorithms over the node family in package node. It operates on
// *node.Node child-slot addresses rather than a boxed reference type, so the
// zero value of a slot (nil) means "empty" throughout.
package tree

import (
	"github.com/flier/art/node"
	"github.com/flier/art/view"
)

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// byteAt returns the byte of key at depth, or 0 once depth runs past the end
// of key. This sentinel is what lets one stored key be a proper prefix of
// another: the shorter key's leaf ends up as the child keyed on 0 under the
// node the longer key continues into. It relies on the tree's precondition
// that no stored key contains an embedded 0x00 byte, so the sentinel never
// collides with a real continuation byte.
func byteAt(key []byte, depth int) byte {
	if depth < len(key) {
		return key[depth]
	}
	return 0
}

// longestCommonPrefix returns how far l and r agree starting at depth.
func longestCommonPrefix(l, r []byte, depth int) int {
	return view.CommonPrefixLen(l, r, depth)
}

// checkPrefix reports how many of n's inline prefix bytes match key[depth:].
// It does not look past PrefixCap. Search and Delete use this to decide
// whether to optimistically advance depth by n's full logical prefix
// length: if the bytes beyond the cap actually diverge from key, the
// traversal still ends in a correct "not found" once it reaches a leaf
// whose full key fails to match.
func checkPrefix(n node.Node, key []byte, depth int) int {
	inline := n.Prefix()

	limit := len(inline)
	if rem := len(key) - depth; limit > rem {
		limit = rem
	}

	i := 0
	for i < limit && inline[i] == key[depth+i] {
		i++
	}
	return i
}

// prefixMismatch returns the number of bytes of n's logical prefix that
// match key[depth:], consulting a descendant leaf once the comparison runs
// past the inline PrefixCap bytes. This is the pessimistic path: it is only
// needed when Insert or VisitPrefix must find the exact byte offset at which
// a prefix diverges, not merely whether a match continues.
func prefixMismatch(n node.Node, key []byte, depth int) int {
	limit := n.PrefixLen()
	if rem := len(key) - depth; limit > rem {
		limit = rem
	}

	inline := n.Prefix()

	i := 0
	for i < limit && i < len(inline) {
		if inline[i] != key[depth+i] {
			return i
		}
		i++
	}
	if i >= limit || i < len(inline) {
		return i
	}

	l := n.Minimum()
	if l == nil {
		return i
	}

	lk := l.Key()
	for i < limit {
		idx := depth + i
		if idx >= len(lk) || lk[idx] != key[idx] {
			break
		}
		i++
	}
	return i
}

// byteAtPrefixOffset returns the byte at logical offset pos within n's
// prefix, recovering bytes beyond PrefixCap from a descendant leaf. depth is
// the global key position at which n's prefix begins.
func byteAtPrefixOffset(n node.Node, pos, depth int) byte {
	inline := n.Prefix()
	if pos < len(inline) {
		return inline[pos]
	}

	if l := n.Minimum(); l != nil {
		if idx := depth + pos; idx < len(l.Key()) {
			return l.Key()[idx]
		}
	}
	return 0
}

// truncatePrefix drops the leading skip bytes of n's logical prefix,
// recovering replacement bytes from a descendant leaf if the inline array
// doesn't hold enough of the remainder. depth is the global key position at
// which n's prefix begins, before truncation.
func truncatePrefix(n node.Node, skip, depth int) {
	newLen := n.PrefixLen() - skip
	if newLen < 0 {
		newLen = 0
	}

	old := n.Prefix()

	var buf [node.PrefixCap]byte
	w := 0
	if skip < len(old) {
		w = copy(buf[:], old[skip:])
	}

	if w < node.PrefixCap && w < newLen {
		if l := n.Minimum(); l != nil {
			key := l.Key()
			start := depth + skip + w
			if start < len(key) {
				end := start + (node.PrefixCap - w)
				if end > len(key) {
					end = len(key)
				}
				w += copy(buf[w:], key[start:end])
			}
		}
	}

	n.SetPrefix(buf[:w], newLen)
}

package tree

import "github.com/flier/art/node"

// Visit performs an in-order traversal of ref, invoking cb for every leaf.
// Returning true from cb stops the traversal early; Visit reports whether
// cb did so.
func Visit(ref node.Node, cb func(key, value []byte) bool) bool {
	if ref == nil {
		return false
	}

	if l, ok := ref.(*node.Leaf); ok {
		return cb(l.Key(), l.Value())
	}

	return ref.EachChild(func(child node.Node) bool {
		return !Visit(child, cb)
	})
}

// VisitPrefix traverses only the subtree of ref whose keys begin with
// prefix, invoking cb for every matching leaf. cb's return value and
// VisitPrefix's result follow the same convention as Visit.
func VisitPrefix(ref node.Node, prefix []byte, cb func(key, value []byte) bool) bool {
	depth := 0

	for ref != nil {
		if l, ok := ref.(*node.Leaf); ok {
			if l.MatchesPrefix(prefix) {
				return cb(l.Key(), l.Value())
			}
			return false
		}

		if depth == len(prefix) {
			if l := ref.Minimum(); l != nil && l.MatchesPrefix(prefix) {
				return Visit(ref, cb)
			}
			return false
		}

		if n := ref.PrefixLen(); n > 0 {
			matched := prefixMismatch(ref, prefix, depth)
			if depth+matched == len(prefix) {
				return Visit(ref, cb)
			}
			if matched < n {
				return false
			}
			depth += n
		}

		child := ref.FindChild(byteAt(prefix, depth))
		if child == nil {
			return false
		}

		ref = *child
		depth++
	}

	return false
}

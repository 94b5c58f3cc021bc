package tree

import "github.com/flier/art/node"

// Search walks from ref looking for key. It returns the matching leaf's
// value, or (nil, false) if key is not present.
func Search(ref node.Node, key []byte) ([]byte, bool) {
	depth := 0

	for ref != nil {
		if l, ok := ref.(*node.Leaf); ok {
			if l.Matches(key) {
				return l.Value(), true
			}
			return nil, false
		}

		if n := ref.PrefixLen(); n > 0 {
			matched := checkPrefix(ref, key, depth)
			if matched != len(ref.Prefix()) {
				return nil, false
			}
			depth += n
		}

		if depth > len(key) {
			return nil, false
		}

		child := ref.FindChild(byteAt(key, depth))
		if child == nil {
			return nil, false
		}

		ref = *child
		depth++
	}

	return nil, false
}

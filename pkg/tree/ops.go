package tree

// Find searches the tree in pre-order (a node before its children, children
// left to right) and returns the first value equal to value. The second
// return is false when the tree is a Leaf or no node matches.
func Find[T comparable](t Tree[T], value T) (T, bool) {
	return FindFunc(t, func(v T) bool { return v == value })
}

// FindFunc is Find with a caller-supplied match function, for value types
// that are not comparable or need a looser notion of equality.
func FindFunc[T any](t Tree[T], match func(T) bool) (T, bool) {
	var zero T
	switch n := t.(type) {
	case leaf[T]:
		return zero, false
	case *node[T]:
		if match(n.value) {
			return n.value, true
		}
		for _, child := range n.children {
			if v, ok := FindFunc(child, match); ok {
				return v, true
			}
		}
		return zero, false
	}
	panic("[BUG] FindFunc: unknown tree variant")
}

// Insert returns a new tree with value appended as a childless node at the
// root. A Leaf becomes New(value); a Node keeps its value and children and
// gains one more child at the end of the sequence. The append always happens
// at the root, regardless of where equal values already live in the tree.
func Insert[T any](t Tree[T], value T) Tree[T] {
	switch n := t.(type) {
	case leaf[T]:
		return New(value)
	case *node[T]:
		kids := make([]Tree[T], 0, len(n.children)+1)
		kids = append(kids, n.children...)
		kids = append(kids, New(value))
		return &node[T]{value: n.value, children: kids}
	}
	panic("[BUG] Insert: unknown tree variant")
}

// Delete returns a new tree with occurrences of value removed. A Leaf is
// returned unchanged. A Node whose value matches is replaced by its first
// child when it has any, otherwise by a Leaf; children beyond the first are
// discarded with the matched node. A Node whose value does not match keeps
// its value and has every child rewritten by a recursive Delete, so several
// occurrences of value at different depths can be removed in one call.
func Delete[T comparable](t Tree[T], value T) Tree[T] {
	switch n := t.(type) {
	case leaf[T]:
		return t
	case *node[T]:
		if n.value == value {
			if len(n.children) > 0 {
				return n.children[0]
			}
			return leaf[T]{}
		}
		kids := make([]Tree[T], len(n.children))
		for i, child := range n.children {
			kids[i] = Delete(child, value)
		}
		return &node[T]{value: n.value, children: kids}
	}
	panic("[BUG] Delete: unknown tree variant")
}

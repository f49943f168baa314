package tree

// Tree is a generic multi-way tree value. It is a closed type: the only two
// variants are the Leaf and the Node, both produced by the constructors in
// this package. A Tree value is immutable, operations that "change" it
// return a new value and share the untouched subtrees with the old one.
type Tree[T any] interface {
	// sealed, so a type switch over the variants is exhaustive
	isTree()
}

// terminal variant, carries no value and no children
type leaf[T any] struct{}

// the value-carrying variant, children order is meaningful
type node[T any] struct {
	value    T
	children []Tree[T]
}

func (leaf[T]) isTree()  {}
func (*node[T]) isTree() {}

// Leaf returns the terminal tree variant.
func Leaf[T any]() Tree[T] {
	return leaf[T]{}
}

// Node returns a tree rooted at value with the given ordered children.
// The children slice is copied, so the caller may keep mutating its own
// slice without affecting the returned tree.
func Node[T any](value T, children []Tree[T]) Tree[T] {
	kids := make([]Tree[T], len(children))
	copy(kids, children)
	return &node[T]{value: value, children: kids}
}

// New returns a childless tree rooted at value. Shorthand for Node(value, nil).
func New[T any](value T) Tree[T] {
	return Node(value, nil)
}

// Size returns the total number of node instances in the tree, counting
// Leaf and Node variants alike. A bare Leaf has size 1.
func Size[T any](t Tree[T]) int {
	switch n := t.(type) {
	case leaf[T]:
		return 1
	case *node[T]:
		size := 1
		for _, child := range n.children {
			size += Size[T](child)
		}
		return size
	}
	panic("[BUG] Size: unknown tree variant")
}

// Equal reports whether two trees are structurally equal: same variant at
// every position, same values, same child order.
func Equal[T comparable](a, b Tree[T]) bool {
	switch an := a.(type) {
	case leaf[T]:
		_, ok := b.(leaf[T])
		return ok
	case *node[T]:
		bn, ok := b.(*node[T])
		if !ok || an.value != bn.value || len(an.children) != len(bn.children) {
			return false
		}
		for i := range an.children {
			if !Equal[T](an.children[i], bn.children[i]) {
				return false
			}
		}
		return true
	}
	panic("[BUG] Equal: unknown tree variant")
}

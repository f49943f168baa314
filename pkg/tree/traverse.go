package tree

// DFS walks the tree in pre-order and calls visit for each node value.
// A Leaf contributes nothing; a Node is visited before its children and the
// children are walked left to right.
func DFS[T any](t Tree[T], visit func(T)) {
	switch n := t.(type) {
	case leaf[T]:
	case *node[T]:
		visit(n.value)
		for _, child := range n.children {
			DFS(child, visit)
		}
	default:
		panic("[BUG] DFS: unknown tree variant")
	}
}

// BFS walks the tree in level order and calls visit for each node value:
// every value at depth d is visited before any value at depth d+1.
func BFS[T any](t Tree[T], visit func(T)) {
	queue := []Tree[T]{t}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		switch n := current.(type) {
		case leaf[T]:
		case *node[T]:
			visit(n.value)
			queue = append(queue, n.children...)
		default:
			panic("[BUG] BFS: unknown tree variant")
		}
	}
}

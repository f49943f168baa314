// ## Overview
// Package tree implements a generic, immutable multi-way tree.
// A tree value is either a Leaf (terminal, no value, no children) or a Node
// holding one value and an ordered sequence of child trees. Every operation
// is persistent: find, insert and delete return a new tree value and never
// mutate the one they were given, sharing unaffected subtrees by reference.
// The package also provides pre-order and level-order traversal, and a text
// renderer that prints the tree with box-drawing connectors, one line per
// node.
//
// ## Example usage:
//
//	// build a tree
//	t := tree.Node(1, []tree.Tree[int]{
//		tree.New(2),
//		tree.Node(3, []tree.Tree[int]{tree.New(4)}),
//	})
//
//	// evolve it (the original value is untouched)
//	t2 := tree.Insert(t, 5)
//
//	// search it
//	if v, ok := tree.Find(t2, 3); ok {
//		fmt.Println("found:", v)
//	}
//
//	// walk it in pre-order
//	tree.DFS(t2, func(v int) { fmt.Println(v) })
//
//	// print it
//	fmt.Println(tree.Render(t2))
//
// This package uses generics so a tree can carry values of any type; the
// operations that rely on value equality constrain the type to comparable
// and offer a Func variant for caller-supplied matching.
package tree

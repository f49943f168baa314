package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFindOnLeaf verifies that searching a Leaf never matches.
func TestFindOnLeaf(t *testing.T) {
	_, ok := Find(Leaf[int](), 7)
	assert.False(t, ok, "Find on a Leaf should report no match")
}

// TestFindRoot verifies that the root value of a fresh tree is found.
func TestFindRoot(t *testing.T) {
	v, ok := Find(New("a"), "a")
	assert.True(t, ok, "the root value should be found")
	assert.Equal(t, "a", v)
}

// TestFindPreOrder verifies that Find returns the first match in pre-order,
// not the shallowest one.
func TestFindPreOrder(t *testing.T) {
	// pre-order visits 1, 2, 9, 9(right); the deep 9 under 2 comes first
	root := Node(1, []Tree[int]{
		Node(2, []Tree[int]{New(9)}),
		New(9),
	})

	order := []int{}
	found, ok := FindFunc(root, func(v int) bool {
		order = append(order, v)
		return v == 9
	})
	assert.True(t, ok)
	assert.Equal(t, 9, found)
	assert.Equal(t, []int{1, 2, 9}, order, "search should stop at the first pre-order match")
}

// TestFindAbsent verifies that a value absent from every node is reported
// as not found.
func TestFindAbsent(t *testing.T) {
	root := Node(1, []Tree[int]{New(2), Node(3, []Tree[int]{New(4)})})
	_, ok := Find(root, 5)
	assert.False(t, ok, "absent values should be reported as not found")
}

// TestInsertIntoLeaf verifies that inserting into a Leaf yields a childless
// root node.
func TestInsertIntoLeaf(t *testing.T) {
	got := Insert(Leaf[int](), 5)
	assert.True(t, Equal[int](got, New(5)), "inserting into a Leaf should yield New(value)")
}

// TestInsertAppendsAtRoot verifies the root-level append policy: the new
// value becomes the last child of the root, wherever equal values live.
func TestInsertAppendsAtRoot(t *testing.T) {
	root := Node(1, []Tree[int]{New(2)})
	got := Insert(root, 2)

	want := Node(1, []Tree[int]{New(2), New(2)})
	assert.True(t, Equal[int](got, want), "Insert should append at the root, not at the matched position")
}

// TestInsertIsPersistent verifies that the old tree value is untouched by an
// insert.
func TestInsertIsPersistent(t *testing.T) {
	root := Node(1, []Tree[int]{New(2)})
	before := Render[int](root)

	_ = Insert(root, 3)

	assert.Equal(t, before, Render[int](root), "Insert must not mutate its input")
	assert.Equal(t, 2, Size[int](root), "the old tree keeps its node count")
}

// TestDeleteOnLeaf verifies that deleting from a Leaf is a no-op.
func TestDeleteOnLeaf(t *testing.T) {
	got := Delete(Leaf[int](), 1)
	assert.True(t, Equal[int](got, Leaf[int]()), "Delete on a Leaf should return a Leaf")
}

// TestDeleteCollapsesChildlessRoot verifies that a matching root with no
// children collapses to a Leaf.
func TestDeleteCollapsesChildlessRoot(t *testing.T) {
	got := Delete(New(7), 7)
	assert.True(t, Equal[int](got, Leaf[int]()), "a childless matching root should collapse to a Leaf")
}

// TestDeleteRootReplacedByFirstChild verifies that a matching root is
// replaced by its first child and the remaining children are discarded.
func TestDeleteRootReplacedByFirstChild(t *testing.T) {
	root := Node(1, []Tree[int]{New(2), New(3)})
	got := Delete(root, 1)

	assert.True(t, Equal[int](got, New(2)), "the first child should replace the matched root")
	_, ok := Find(got, 3)
	assert.False(t, ok, "children past the first are discarded with the matched node")
}

// TestDeleteRewritesAllChildren verifies the unconditional recursion: one
// call removes occurrences of the value at several depths.
func TestDeleteRewritesAllChildren(t *testing.T) {
	root := Node(1, []Tree[int]{
		Node(2, []Tree[int]{New(9)}),
		New(9),
		Node(9, []Tree[int]{New(3)}),
	})

	got := Delete(root, 9)

	want := Node(1, []Tree[int]{
		Node(2, []Tree[int]{Leaf[int]()}),
		Leaf[int](),
		New(3),
	})
	assert.True(t, Equal[int](got, want), "every child should be rewritten, removing all occurrences in one call")
}

// TestDeleteIsPersistent verifies that the old tree value survives a delete.
func TestDeleteIsPersistent(t *testing.T) {
	root := Node(1, []Tree[int]{New(2), New(3)})
	before := Render[int](root)

	_ = Delete(root, 2)

	assert.Equal(t, before, Render[int](root), "Delete must not mutate its input")
}

func BenchmarkInsert(b *testing.B) {
	root := New(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root = Insert(root, i)
	}
}

func BenchmarkFind(b *testing.B) {
	root := New(0)
	for i := 1; i <= 1024; i++ {
		root = Insert(root, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(root, 1024)
	}
}

// Package treegen builds random trees for demos and benchmarks. It is a
// caller of the tree package, not part of its core contract.
package treegen

import (
	"math/rand"

	"github.com/khalid-nowaf/multitree/pkg/tree"
)

// Generator produces random trees bounded by a maximum depth and a maximum
// number of children per node. Values come from the caller's factory.
type Generator[T any] struct {
	maxDepth    int
	maxChildren int
	factory     func() T
	rng         *rand.Rand
}

type Option[T any] func(*Generator[T]) *Generator[T]

// WithSeed makes the generator deterministic for a given seed.
func WithSeed[T any](seed int64) Option[T] {
	return func(g *Generator[T]) *Generator[T] {
		g.rng = rand.New(rand.NewSource(seed))
		return g
	}
}

// WithRand supplies the random source directly.
func WithRand[T any](rng *rand.Rand) Option[T] {
	return func(g *Generator[T]) *Generator[T] {
		g.rng = rng
		return g
	}
}

// New returns a generator for trees at most maxDepth levels of nodes deep,
// each node carrying up to maxChildren children. Without options the
// generator is seeded from the global source.
func New[T any](maxDepth int, maxChildren int, factory func() T, opts ...Option[T]) *Generator[T] {
	g := &Generator[T]{
		maxDepth:    maxDepth,
		maxChildren: maxChildren,
		factory:     factory,
		rng:         rand.New(rand.NewSource(rand.Int63())),
	}
	for _, opt := range opts {
		g = opt(g)
	}
	return g
}

// Generate builds one random tree. Node levels run out at maxDepth, where
// every slot bottoms out in a Leaf, so the result never exceeds the bound.
func (g *Generator[T]) Generate() tree.Tree[T] {
	return g.generate(0)
}

func (g *Generator[T]) generate(depth int) tree.Tree[T] {
	if depth >= g.maxDepth {
		return tree.Leaf[T]()
	}

	children := make([]tree.Tree[T], g.rng.Intn(g.maxChildren+1))
	for i := range children {
		children[i] = g.generate(depth + 1)
	}
	return tree.Node(g.factory(), children)
}

// Sequential returns a value factory counting up from start. Handy for demo
// trees whose labels should stay readable.
func Sequential(start int) func() int {
	next := start
	return func() int {
		v := next
		next++
		return v
	}
}

package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/khalid-nowaf/multitree/pkg/tree"
	"github.com/khalid-nowaf/multitree/pkg/treegen"
)

type DemoCmd struct {
	Depth    int   `help:"Maximum depth of the generated tree" default:"4"`
	Children int   `help:"Maximum children per node" default:"3"`
	Ops      int   `help:"Number of random operations to run" default:"20"`
	Seed     int64 `help:"Random seed, 0 picks one from the clock"`
	Color    bool  `help:"Colorize the rendering by depth"`
}

// records the outcome of one random operation for reporting
type opResult struct {
	op     string
	value  int
	found  bool
	before int
	after  int
}

func (r opResult) String() string {
	switch r.op {
	case "find":
		if r.found {
			return fmt.Sprintf("find %d: found", r.value)
		}
		return fmt.Sprintf("find %d: not found", r.value)
	default:
		return fmt.Sprintf("%s %d: %d -> %d nodes", r.op, r.value, r.before, r.after)
	}
}

// Run executes the demo command: seed a random tree, evolve it through a
// sequence of random find/insert/delete calls while timing them, then print
// the final rendering.
func (cmd *DemoCmd) Run(ctx *Context) error {
	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	next := treegen.Sequential(1)

	t := treegen.New(cmd.Depth, cmd.Children, next, treegen.WithRand[int](rng)).Generate()
	fmt.Fprintf(ctx.Out, "seed %d, initial tree has %d nodes\n", seed, tree.Size[int](t))

	started := time.Now()
	for i := 0; i < cmd.Ops; i++ {
		var result opResult
		t, result = randomOp(rng, t, next)
		fmt.Fprintln(ctx.Out, result.String())
	}
	fmt.Fprintf(ctx.Out, "%d operations took %s\n", cmd.Ops, time.Since(started))

	return writeRendering[int](ctx.Out, t, cmd.Color)
}

// randomOp applies one random operation and returns the (possibly new) tree
// value together with a report line. Targets are drawn from the value range
// the sequential factory has handed out so far, so finds and deletes hit
// live values often enough to be interesting.
func randomOp(rng *rand.Rand, t tree.Tree[int], next func() int) (tree.Tree[int], opResult) {
	target := rng.Intn(tree.Size[int](t) + 1)

	switch rng.Intn(3) {
	case 0:
		_, found := tree.Find(t, target)
		return t, opResult{op: "find", value: target, found: found}
	case 1:
		value := next()
		before := tree.Size[int](t)
		t = tree.Insert(t, value)
		return t, opResult{op: "insert", value: value, before: before, after: tree.Size[int](t)}
	default:
		before := tree.Size[int](t)
		t = tree.Delete(t, target)
		return t, opResult{op: "delete", value: target, before: before, after: tree.Size[int](t)}
	}
}

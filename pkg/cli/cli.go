package cli

import (
	"io"
)

// Context carries the shared state commands run against.
type Context struct {
	Out io.Writer
}

// CLI is the top-level command set parsed by kong.
var CLI struct {
	Demo   DemoCmd   `cmd:"" help:"Generate a random tree, run random operations on it, and print the result"`
	Render RenderCmd `cmd:"" help:"Render a tree file as box-drawing text"`
	Export ExportCmd `cmd:"" help:"Export a traversal of a tree file to JSON or CSV"`
}

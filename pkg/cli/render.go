package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/khalid-nowaf/multitree/pkg/tree"
)

type RenderCmd struct {
	File  string `arg:"" type:"existingfile" help:"Tree file in JSON or CSV format"`
	Color bool   `help:"Colorize the rendering by depth"`
}

var (
	colorEven = color.New(color.FgHiYellow)
	colorOdd  = color.New(color.FgHiCyan)
)

// Run executes the render command.
func (cmd *RenderCmd) Run(ctx *Context) error {
	t, err := ParseFile(cmd.File)
	if err != nil {
		return err
	}
	return writeRendering[string](ctx.Out, t, cmd.Color)
}

// writeRendering prints the rendered tree, alternating colors by depth when
// colorize is set.
func writeRendering[T any](w io.Writer, t tree.Tree[T], colorize bool) error {
	for _, line := range tree.RenderLines[T](t) {
		var err error
		if colorize {
			c := colorEven
			if lineDepth(line)%2 == 1 {
				c = colorOdd
			}
			_, err = c.Fprintln(w, line)
		} else {
			_, err = fmt.Fprintln(w, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// lineDepth recovers a rendered line's depth from its glyph prefix: one
// four-rune column per ancestor plus one for the line's own connector.
func lineDepth(line string) int {
	glyphs := 0
	for _, r := range line {
		switch r {
		case ' ', '│', '├', '└', '─':
			glyphs++
		default:
			return glyphs/4 - 1
		}
	}
	return 0
}

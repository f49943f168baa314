package tree

import (
	"fmt"
	"io"
	"strings"
)

// Connector glyphs for the rendered tree. A node line starts with the branch
// glyph when a later sibling follows it, or the terminal glyph when it is the
// last sibling. Ancestor columns still awaiting siblings carry the vertical
// bar, exhausted ones carry blank padding.
const (
	branchGlyph   = "├── "
	terminalGlyph = "└── "
	verticalBar   = "│   "
	blankPad      = "    "
	leafLabel     = "(Leaf)"
)

// Render returns the tree as a single string, the rendered lines joined by
// newlines. See RenderLines for the line contract.
func Render[T any](t Tree[T]) string {
	return strings.Join(RenderLines[T](t), "\n")
}

// RenderLines renders the tree one line per node instance (Leaf and Node
// alike), labelling node values with fmt.Sprint. Every line ends in a value
// label or the Leaf marker, never in bare padding, so the vertical connector
// strokes are continuous and no blank row ever appears.
func RenderLines[T any](t Tree[T]) []string {
	return RenderLinesFunc(t, func(v T) string { return fmt.Sprint(v) })
}

// RenderLinesFunc is RenderLines with a caller-supplied value label function.
func RenderLinesFunc[T any](t Tree[T], label func(T) string) []string {
	return buildLines(t, "", true, label, nil)
}

// Fprint writes the rendered tree to w, one line per node, newline
// terminated.
func Fprint[T any](w io.Writer, t Tree[T]) error {
	for _, line := range RenderLines[T](t) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// buildLines appends the rendering of t to lines. prefix carries one glyph
// column per ancestor; isTail marks t as the last of its sibling group, which
// picks the connector on t's own line and the padding its descendants see in
// t's column. The root is rendered as a tail.
func buildLines[T any](t Tree[T], prefix string, isTail bool, label func(T) string, lines []string) []string {
	connector := branchGlyph
	if isTail {
		connector = terminalGlyph
	}

	switch n := t.(type) {
	case leaf[T]:
		return append(lines, prefix+connector+leafLabel)
	case *node[T]:
		lines = append(lines, prefix+connector+label(n.value))

		childPrefix := prefix + verticalBar
		if isTail {
			childPrefix = prefix + blankPad
		}
		for i, child := range n.children {
			lines = buildLines(child, childPrefix, i == len(n.children)-1, label, lines)
		}
		return lines
	}
	panic("[BUG] buildLines: unknown tree variant")
}

// Package debug builds indented textual dumps of parsed value trees
// for debug logging.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates one dump. Depth is rendered as two spaces per
// level so nested function arguments line up under their call.
type TreeWriter struct {
	b strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{}
}

func (tw *TreeWriter) String() string {
	return tw.b.String()
}

// Line writes a single formatted node line.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(&tw.b, format, args...)
	tw.b.WriteByte('\n')
}

// TextBlock writes a labeled leaf holding raw source text. The text is
// quoted so whitespace and separator characters survive the dump; an
// empty value keeps just the label.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.b.WriteString(strings.Repeat("  ", depth))
	tw.b.WriteString(label)
	tw.b.WriteString(": ")
	if value != "" {
		tw.b.WriteString(strconv.Quote(value))
	}
	tw.b.WriteByte('\n')
}

package nonempty

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// A palette for dump output: the statically held slot is the interesting part
// of a non-empty collection, so it gets the loud color.
var (
	staticColor  = color.New(color.FgGreen, color.Bold)
	dynamicColor = color.New(color.FgBlue)
	frameColor   = color.New(color.Faint)
)

// DumpSeq outputs the internal structure of a sequence, i.e. the split
// between its statically held item and the dynamic portion (for debugging
// purposes). Items are printed with their default formatting, the static slot
// and the dynamic portion in distinct colors. Output wraps at the terminal
// width whenever stdout is a terminal, at a fixed width otherwise.
func DumpSeq[T any](w io.Writer, s *Seq[T]) {
	width := dumpLineWidth()
	fmt.Fprintf(w, "%s %s\n", frameColor.Sprintf("seq(len=%d)", s.Len()), s.Capacity())
	line := 0
	write := func(col *color.Color, field string) {
		if line > 0 && line+len(field)+1 > width {
			io.WriteString(w, "\n")
			line = 0
		} else if line > 0 {
			io.WriteString(w, " ")
			line++
		}
		io.WriteString(w, col.Sprint(field))
		line += len(field)
	}
	write(staticColor, fmt.Sprintf("[%v]", s.first))
	for _, item := range s.dynamic {
		write(dynamicColor, fmt.Sprintf("%v", item))
	}
	io.WriteString(w, "\n")
}

// dumpLineWidth checks wether stdout is a terminal, and if so reads the
// terminal's width for wrapping dump output.
func dumpLineWidth() int {
	if !term.IsTerminal(0) {
		return 65
	}
	w, _, err := term.GetSize(0)
	if err != nil || w <= 10 {
		return 65
	}
	return w - 5
}

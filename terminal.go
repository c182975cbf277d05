package glyphart

import (
	"io"

	"github.com/muesli/termenv"
)

// Terminal repositions the cursor between animation frames.
type Terminal interface {
	ResetCursor(rows int)
	ShowCursor(show bool)
}

// Xterm drives any terminal that understands the common xterm sequences.
type Xterm struct {
	out *termenv.Output
}

func NewXterm(w io.Writer) *Xterm {
	return &Xterm{out: termenv.NewOutput(w)}
}

// ResetCursor moves the cursor to the start of the line rows lines up.
func (term *Xterm) ResetCursor(rows int) {
	if rows > 0 {
		term.out.CursorPrevLine(rows)
	}
}

func (term *Xterm) ShowCursor(show bool) {
	if show {
		term.out.ShowCursor()
	} else {
		term.out.HideCursor()
	}
}

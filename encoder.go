package glyphart

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"
)

// An Encoder renders a glyph grid somewhere.
type Encoder interface {
	Encode(g Glyphs) error
}

// Encode writes g to w as plain text.
func Encode(w io.Writer, g Glyphs) error {
	return NewTextEncoder(w).Encode(g)
}

// TextEncoder writes the characters only, one line per row.
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (enc *TextEncoder) Encode(g Glyphs) error {
	if len(g) == 0 {
		return nil
	}
	_, err := io.WriteString(enc.w, g.String()+"\n")
	return err
}

// ANSIEncoder writes colored glyphs using terminal escape sequences. Colors
// are degraded to what the profile supports; termenv.Ascii drops them.
type ANSIEncoder struct {
	w       io.Writer
	profile termenv.Profile
}

func NewANSIEncoder(w io.Writer, profile termenv.Profile) *ANSIEncoder {
	return &ANSIEncoder{w: w, profile: profile}
}

func (enc *ANSIEncoder) Encode(g Glyphs) error {
	bw := bufio.NewWriter(enc.w)
	for _, row := range g {
		for _, cell := range row {
			s := string(cell.Char)
			if hex, ok := hexColor(cell.Color); ok && cell.Char != ' ' {
				s = enc.profile.String(s).Foreground(enc.profile.Color(hex)).String()
			}
			if _, err := bw.WriteString(s); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

package glyphart

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrUnknownCharset is returned by ParseCharset.
var ErrUnknownCharset = errors.New("unknown character set")

// Charset is a character ramp ordered from lightest (index 0) to densest.
type Charset string

const (
	Basic    Charset = " .:-=+*#%@"
	Extended Charset = " .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"
)

func ParseCharset(s string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return Basic, nil
	case "extended":
		return Extended, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCharset, s)
}

// Len is the number of glyphs in the ramp.
func (cs Charset) Len() int {
	return len([]rune(cs))
}

// Index maps an ink value to a position in a ramp of n glyphs.
func Index(ink uint8, n int) int {
	if n <= 0 {
		return 0
	}
	return int(ink) * (n - 1) / 255
}

// GlyphCell is one character of output and its color. A nil or fully
// transparent Color means the cell carries no color.
type GlyphCell struct {
	Char  rune
	Color color.Color
}

// Transparent reports whether the cell has no color.
func (c GlyphCell) Transparent() bool {
	if c.Color == nil {
		return true
	}
	_, _, _, a := c.Color.RGBA()
	return a == 0
}

// Glyphs is a row-major grid of cells. Every row has the same length.
type Glyphs [][]GlyphCell

// Extents returns the column and row counts.
func (g Glyphs) Extents() (cols, rows int) {
	for _, row := range g {
		cols = max(cols, len(row))
	}
	return cols, len(g)
}

// String serializes the characters only: cells joined without a separator,
// rows joined with newlines.
func (g Glyphs) String() string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteRune(cell.Char)
		}
	}
	return sb.String()
}

// Coloring selects where glyph colors come from.
type Coloring int

const (
	ColorGradient Coloring = iota
	ColorOriginal
	ColorNone
)

func ParseColoring(s string) (Coloring, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gradient":
		return ColorGradient, nil
	case "original":
		return ColorOriginal, nil
	case "none", "mono":
		return ColorNone, nil
	}
	return ColorNone, fmt.Errorf("unknown coloring %q", s)
}

// A Mapper turns a processed grid into glyphs. original is the unprocessed
// sampled grid with the same dimensions.
type Mapper interface {
	Map(processed, original *PixelGrid) Glyphs
}

// CharsetMapper picks a glyph from a fixed ramp by inverted luminance.
type CharsetMapper struct {
	Charset    Charset
	Palette    Palette
	Coloring   Coloring
	SampleSize int
}

func (m CharsetMapper) Map(processed, original *PixelGrid) Glyphs {
	if processed.Empty() {
		return Glyphs{}
	}
	ramp := []rune(m.Charset)
	out := make(Glyphs, processed.Height)
	for y := range out {
		row := make([]GlyphCell, processed.Width)
		for x := range row {
			p := processed.RGBAAt(x, y)
			idx := Index(Ink(p.R, p.G, p.B), len(ramp))
			cell := GlyphCell{Char: ramp[idx]}
			switch m.Coloring {
			case ColorGradient:
				if idx < len(m.Palette) {
					cell.Color = m.Palette[idx]
				}
			case ColorOriginal:
				cell.Color = neighborhood(original, x, y, m.SampleSize)
			}
			row[x] = cell
		}
		out[y] = row
	}
	return out
}

// TextMapper lays caller text over the dark cells of the processed grid. A
// single cursor advances through the text across the whole grid and wraps
// around at its end. Light cells become transparent spaces. Dark cells take
// the original image's colors unless Coloring is ColorNone; there is no
// gradient for text.
type TextMapper struct {
	Text       []rune
	Coloring   Coloring
	SampleSize int
}

func (m TextMapper) Map(processed, original *PixelGrid) Glyphs {
	if processed.Empty() {
		return Glyphs{}
	}
	out := make(Glyphs, processed.Height)
	cursor := 0
	for y := range out {
		row := make([]GlyphCell, processed.Width)
		for x := range row {
			p := processed.RGBAAt(x, y)
			if len(m.Text) == 0 || average(p.R, p.G, p.B) >= 128 {
				row[x] = GlyphCell{Char: ' ', Color: color.Transparent}
				continue
			}
			cell := GlyphCell{Char: m.Text[cursor%len(m.Text)]}
			cursor++
			if m.Coloring != ColorNone {
				cell.Color = neighborhood(original, x, y, m.SampleSize)
			}
			row[x] = cell
		}
		out[y] = row
	}
	return out
}

// neighborhood averages the size×size block whose top-left sample is (x, y).
// Coordinates past the grid clamp to the last row or column.
func neighborhood(g *PixelGrid, x, y, size int) color.Color {
	if g.Empty() {
		return nil
	}
	size = max(size, 1)
	var r, gr, b, n int
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			sx := min(max(x+dx, 0), g.Width-1)
			sy := min(max(y+dy, 0), g.Height-1)
			p := g.RGBAAt(sx, sy)
			r += int(p.R)
			gr += int(p.G)
			b += int(p.B)
			n++
		}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(gr / n), B: uint8(b / n), A: 255}
}

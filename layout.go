package glyphart

import "math"

// CharAspect is the width:height ratio assumed for a glyph cell.
const CharAspect = 0.5

type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// LayoutResult is the font size, in the medium's units, that fits a glyph
// grid, and the orientation it was fitted in.
type LayoutResult struct {
	FontSize    float64
	Orientation Orientation
}

// Medium describes a bounding box that glyph grids are fitted into.
type Medium struct {
	Width, Height float64 // portrait dimensions
	Margin        float64 // reserved on every side
	Fill          float64 // usable fraction of the box after margins
	LineHeight    float64 // line height as a multiple of the font size
	Shrink        float64 // safety factor applied before rounding down; 0 keeps the exact size
	Rotatable     bool    // whether a landscape grid may turn the box
}

// A4 is a portrait A4 page in points.
var A4 = Medium{
	Width:      595,
	Height:     842,
	Margin:     6,
	Fill:       1,
	LineHeight: 1.2,
	Shrink:     0.95,
	Rotatable:  true,
}

// Screen is a w×h pixel viewport, as used by fullscreen display.
func Screen(w, h float64) Medium {
	return Medium{Width: w, Height: h, Fill: 0.95, LineHeight: 1}
}

// Fit returns the largest font size at which a cols×rows grid fits the
// medium. An empty grid or box yields the zero result. On a medium that
// rounds down, a grid too large to print at one unit also gets size 0.
func (m Medium) Fit(cols, rows int) LayoutResult {
	if cols <= 0 || rows <= 0 || m.Width <= 0 || m.Height <= 0 {
		return LayoutResult{}
	}

	var res LayoutResult
	content := float64(cols) * CharAspect / float64(rows)
	boxW, boxH := m.Width, m.Height
	if content > boxW/boxH {
		res.Orientation = Landscape
		if m.Rotatable {
			boxW, boxH = boxH, boxW
		}
	}

	fill := m.Fill
	if fill == 0 {
		fill = 1
	}
	lineHeight := m.LineHeight
	if lineHeight == 0 {
		lineHeight = 1
	}
	availW := (boxW - 2*m.Margin) * fill
	availH := (boxH - 2*m.Margin) * fill

	size := math.Min(
		availW/(float64(cols)*CharAspect),
		availH/(float64(rows)*lineHeight),
	)
	if m.Shrink > 0 {
		size = math.Floor(size * m.Shrink)
	}
	res.FontSize = math.Max(size, 0)
	return res
}

// FitGlyphs is Fit over the extents of g.
func (m Medium) FitGlyphs(g Glyphs) LayoutResult {
	cols, rows := g.Extents()
	return m.Fit(cols, rows)
}

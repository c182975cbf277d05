package glyphart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// PNGEncoder rasterizes glyphs onto a fixed-size canvas, sized the way a
// fullscreen view would size them, and writes it as PNG.
type PNGEncoder struct {
	w      io.Writer
	width  int
	height int
	dark   bool
}

func NewPNGEncoder(w io.Writer, width, height int, dark bool) *PNGEncoder {
	return &PNGEncoder{w: w, width: width, height: height, dark: dark}
}

func (enc *PNGEncoder) Encode(g Glyphs) error {
	img, err := enc.Render(g)
	if err != nil {
		return err
	}
	return png.Encode(enc.w, img)
}

// Render draws g and returns the canvas.
func (enc *PNGEncoder) Render(g Glyphs) (*image.RGBA, error) {
	bg, fg := color.Color(color.White), color.Color(color.Black)
	if enc.dark {
		bg, fg = color.Black, color.White
	}
	canvas := image.NewRGBA(image.Rect(0, 0, enc.width, enc.height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	medium := Screen(float64(enc.width), float64(enc.height))
	layout := medium.FitGlyphs(g)
	if layout.FontSize <= 0 {
		return canvas, nil
	}

	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    layout.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	defer face.Close()

	cols, rows := g.Extents()
	pitch := layout.FontSize * CharAspect
	line := layout.FontSize * medium.LineHeight
	// Center the block.
	left := (float64(enc.width) - float64(cols)*pitch) / 2
	top := (float64(enc.height) - float64(rows)*line) / 2
	ascent := face.Metrics().Ascent

	d := &font.Drawer{Dst: canvas, Face: face}
	for y, row := range g {
		for x, cell := range row {
			if cell.Char == ' ' {
				continue
			}
			var c color.Color = fg
			if !cell.Transparent() {
				c = cell.Color
			}
			d.Src = image.NewUniform(c)
			d.Dot = fixed.Point26_6{
				X: fixed.Int26_6((left + float64(x)*pitch) * 64),
				Y: fixed.Int26_6((top+float64(y)*line)*64) + ascent,
			}
			d.DrawString(string(cell.Char))
		}
	}
	return canvas, nil
}

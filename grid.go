package glyphart

import (
	"image"
	"image/color"
)

// PixelGrid is a row-major grid of non-premultiplied RGBA samples, four bytes
// per sample. A grid is owned by the stage that produced it.
type PixelGrid struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewPixelGrid allocates a zeroed grid. Negative dimensions produce an empty grid.
func NewPixelGrid(width, height int) *PixelGrid {
	if width <= 0 || height <= 0 {
		return &PixelGrid{Width: max(width, 0), Height: max(height, 0)}
	}
	return &PixelGrid{
		Pix:    make([]uint8, width*height*4),
		Width:  width,
		Height: height,
	}
}

// GridFromNRGBA copies an NRGBA image into a new grid.
func GridFromNRGBA(img *image.NRGBA) *PixelGrid {
	b := img.Bounds()
	grid := NewPixelGrid(b.Dx(), b.Dy())
	for y := 0; y < grid.Height; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+grid.Width*4]
		copy(grid.Pix[y*grid.Width*4:], src)
	}
	return grid
}

// Empty reports whether the grid has no samples.
func (g *PixelGrid) Empty() bool {
	return g == nil || g.Width == 0 || g.Height == 0
}

// Clone returns a deep copy of g.
func (g *PixelGrid) Clone() *PixelGrid {
	if g == nil {
		return NewPixelGrid(0, 0)
	}
	c := &PixelGrid{Width: g.Width, Height: g.Height}
	if g.Pix != nil {
		c.Pix = append([]uint8(nil), g.Pix...)
	}
	return c
}

func (g *PixelGrid) offset(x, y int) int {
	return (y*g.Width + x) * 4
}

// RGBAAt returns the sample at (x, y).
func (g *PixelGrid) RGBAAt(x, y int) color.NRGBA {
	i := g.offset(x, y)
	s := g.Pix[i : i+4 : i+4]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// SetRGBA stores c at (x, y).
func (g *PixelGrid) SetRGBA(x, y int, c color.NRGBA) {
	i := g.offset(x, y)
	s := g.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
}

// Image wraps a copy of the grid as an image, mostly for previews.
func (g *PixelGrid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	copy(img.Pix, g.Pix)
	return img
}

// average is the plain channel mean used by the binarizing modes.
func average(r, g, b uint8) float64 {
	return float64(int(r)+int(g)+int(b)) / 3
}

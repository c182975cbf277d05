package glyphart

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("unknown processing mode")

// Mode selects the brightness remapping applied to the sampled grid.
type Mode int

const (
	ModeThreshold Mode = iota
	ModeEdge
	ModeDither
	// ModeAdaptive is reserved. It passes samples through untouched.
	ModeAdaptive
)

var modeNames = [...]string{"threshold", "edge", "dither", "adaptive"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return ModeAdaptive, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ProcessingOptions parameterize Process. Threshold is read by the threshold
// and dither modes, Sensitivity by edge detection; other fields are ignored.
type ProcessingOptions struct {
	Mode         Mode
	Threshold    int
	Sensitivity  int
	TargetWidth  int
	SourceHeight int
}

// Process applies opts.Mode to grid and returns a new grid. The input is
// never modified.
func Process(grid *PixelGrid, opts ProcessingOptions) *PixelGrid {
	out := grid.Clone()
	if out.Empty() {
		return out
	}
	switch opts.Mode {
	case ModeThreshold:
		threshold(out, opts.Threshold)
	case ModeEdge:
		sobel(out, opts.Sensitivity)
	case ModeDither:
		floydSteinberg(out, opts.Threshold)
	}
	return out
}

func threshold(g *PixelGrid, t int) {
	for i := 0; i < len(g.Pix); i += 4 {
		v := uint8(255)
		if average(g.Pix[i], g.Pix[i+1], g.Pix[i+2]) < float64(t) {
			v = 0
		}
		g.Pix[i], g.Pix[i+1], g.Pix[i+2] = v, v, v
	}
}

var (
	sobelX = [9]float64{-1, 0, 1, -2, 0, 2, -1, 0, 1}
	sobelY = [9]float64{-1, -2, -1, 0, 0, 0, 1, 2, 1}
)

// sobel marks pixels whose gradient magnitude exceeds sensitivity as ink (0)
// and everything else as paper (255). Neighbours past the border replicate the
// nearest edge pixel.
func sobel(g *PixelGrid, sensitivity int) {
	w, h := g.Width, g.Height
	gray := make([]float64, w*h)
	for i := range gray {
		p := g.Pix[i*4:]
		gray[i] = average(p[0], p[1], p[2])
	}
	at := func(x, y int) float64 {
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		return gray[y*w+x]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := at(x+kx, y+ky)
					k := (ky+1)*3 + (kx + 1)
					gx += v * sobelX[k]
					gy += v * sobelY[k]
				}
			}
			v := uint8(255)
			if math.Sqrt(gx*gx+gy*gy) > float64(sensitivity) {
				v = 0
			}
			i := g.offset(x, y)
			g.Pix[i], g.Pix[i+1], g.Pix[i+2], g.Pix[i+3] = v, v, v, 255
		}
	}
}

// floydSteinberg diffuses quantization error forward through a single working
// buffer in one row-major pass, so later pixels see already-adjusted values.
// The buffer holds the channel mean; adding the error to all three channels
// shifts the mean by exactly the error.
func floydSteinberg(g *PixelGrid, t int) {
	w, h := g.Width, g.Height
	buf := make([]float64, w*h)
	for i := range buf {
		p := g.Pix[i*4:]
		buf[i] = average(p[0], p[1], p[2])
	}
	spread := func(x, y int, e float64) {
		if x < 0 || x >= w || y >= h {
			return
		}
		buf[y*w+x] += e
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			old := buf[y*w+x]
			v := 255.0
			if old < float64(t) {
				v = 0
			}
			e := old - v
			i := g.offset(x, y)
			g.Pix[i], g.Pix[i+1], g.Pix[i+2] = uint8(v), uint8(v), uint8(v)

			spread(x+1, y, e*7/16)
			spread(x-1, y+1, e*3/16)
			spread(x, y+1, e*5/16)
			spread(x+1, y+1, e*1/16)
		}
	}
}

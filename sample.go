package glyphart

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Kernel selects the resampling filter used by the sampler.
type Kernel int

const (
	KernelBox Kernel = iota
	KernelBilinear
	KernelCatmullRom
	KernelNearest
	KernelLanczos
)

var kernelNames = map[Kernel]string{
	KernelBox:        "box",
	KernelBilinear:   "bilinear",
	KernelCatmullRom: "catmullrom",
	KernelNearest:    "nearest",
	KernelLanczos:    "lanczos",
}

func (k Kernel) String() string {
	if name, ok := kernelNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kernel(%d)", int(k))
}

// ParseKernel accepts the names printed by Kernel.String.
func ParseKernel(s string) (Kernel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kernelNames {
		if name == s {
			return k, nil
		}
	}
	return KernelBox, fmt.Errorf("unknown resampling kernel %q", s)
}

// Adjustments are optional tone corrections applied to the downscaled image
// before it becomes a grid. The zero value changes nothing.
type Adjustments struct {
	Gamma      float64 // 1.0 or 0 keeps the image
	Brightness float64 // -100..100
	Contrast   float64 // -100..100
	Sharpen    float64 // sigma, 0 disables
	Midpoint   float64 // sigmoid midpoint, 0..1
	Factor     float64 // sigmoid factor, 0 disables
	Invert     bool
}

func (a Adjustments) apply(img *image.NRGBA) *image.NRGBA {
	if a.Gamma > 0 && a.Gamma != 1 {
		img = imaging.AdjustGamma(img, a.Gamma)
	}
	if a.Brightness != 0 {
		img = imaging.AdjustBrightness(img, a.Brightness)
	}
	if a.Sharpen > 0 {
		img = imaging.Sharpen(img, a.Sharpen)
	}
	if a.Contrast != 0 {
		img = imaging.AdjustContrast(img, a.Contrast)
	}
	if a.Factor != 0 {
		img = imaging.AdjustSigmoid(img, a.Midpoint, a.Factor)
	}
	if a.Invert {
		img = imaging.Invert(img)
	}
	return img
}

// SampleSize returns the grid dimensions for a source of srcW×srcH pixels
// scaled to targetWidth columns. Rows are halved because glyph cells are
// about twice as tall as they are wide.
func SampleSize(srcW, srcH, targetWidth int) (width, height int) {
	if srcW <= 0 || srcH <= 0 || targetWidth <= 0 {
		return 0, 0
	}
	scale := float64(targetWidth) / float64(srcW)
	return targetWidth, int(math.Floor(float64(srcH) * scale * 0.5))
}

// Sample downscales img to targetWidth columns and returns the samples.
// A zero-area source, or one too flat to yield a single row, gives an empty grid.
func Sample(img image.Image, targetWidth int, kernel Kernel, adj Adjustments) *PixelGrid {
	if img == nil {
		return NewPixelGrid(0, 0)
	}
	b := img.Bounds()
	w, h := SampleSize(b.Dx(), b.Dy(), targetWidth)
	if w == 0 || h == 0 {
		return NewPixelGrid(w, h)
	}
	return GridFromNRGBA(adj.apply(scale(img, w, h, kernel)))
}

func scale(img image.Image, w, h int, kernel Kernel) *image.NRGBA {
	switch kernel {
	case KernelBilinear, KernelCatmullRom:
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		var s draw.Scaler = draw.BiLinear
		if kernel == KernelCatmullRom {
			s = draw.CatmullRom
		}
		s.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		return dst
	case KernelNearest:
		return imaging.Clone(resize.Resize(uint(w), uint(h), img, resize.NearestNeighbor))
	case KernelLanczos:
		return imaging.Clone(resize.Resize(uint(w), uint(h), img, resize.Lanczos3))
	default:
		return imaging.Resize(img, w, h, imaging.Box)
	}
}

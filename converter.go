package glyphart

import (
	"image"
)

// Variant selects how glyphs are chosen.
type Variant int

const (
	// VariantCharset picks glyphs from a fixed character ramp.
	VariantCharset Variant = iota
	// VariantText streams caller text over the dark parts of the image.
	VariantText
)

// Default settings.
const (
	DefaultCharsetWidth = 65
	DefaultTextWidth    = 100
	DefaultThreshold    = 128
	DefaultSensitivity  = 30
	DefaultSampleSize   = 2
)

type Option func(c *Converter)

// WithWidth sets the number of glyph columns.
func WithWidth(cols int) Option {
	return func(c *Converter) {
		c.processing.TargetWidth = cols
	}
}

func WithMode(m Mode) Option {
	return func(c *Converter) {
		c.processing.Mode = m
	}
}

// WithThreshold sets the 0-255 cut-off used by threshold and dither modes.
func WithThreshold(t int) Option {
	return func(c *Converter) {
		c.processing.Threshold = t
	}
}

// WithSensitivity sets the gradient magnitude above which edge mode draws ink.
func WithSensitivity(s int) Option {
	return func(c *Converter) {
		c.processing.Sensitivity = s
	}
}

// WithCharset switches to the charset variant using cs.
func WithCharset(cs Charset) Option {
	return func(c *Converter) {
		c.variant = VariantCharset
		c.charset = cs
	}
}

// WithText switches to the text variant. The text is used as given; see
// NormalizeText for cleaning up raw input.
func WithText(text string) Option {
	return func(c *Converter) {
		c.variant = VariantText
		c.text = []rune(text)
	}
}

func WithColoring(col Coloring) Option {
	return func(c *Converter) {
		c.coloring = col
	}
}

// WithDarkMode selects the dark-background gradient.
func WithDarkMode(dark bool) Option {
	return func(c *Converter) {
		c.dark = dark
	}
}

func WithHue(hue float64) Option {
	return func(c *Converter) {
		c.hue = hue
	}
}

func WithKernel(k Kernel) Option {
	return func(c *Converter) {
		c.kernel = k
	}
}

func WithAdjustments(adj Adjustments) Option {
	return func(c *Converter) {
		c.adjust = adj
	}
}

// WithSampleSize sets the side of the block averaged for original colors.
func WithSampleSize(n int) Option {
	return func(c *Converter) {
		c.sampleSize = n
	}
}

// Converter runs the image to glyph pipeline. It holds no derived state:
// every call to Convert recomputes everything from the image.
type Converter struct {
	processing ProcessingOptions
	variant    Variant
	charset    Charset
	text       []rune
	coloring   Coloring
	dark       bool
	hue        float64
	kernel     Kernel
	adjust     Adjustments
	sampleSize int
}

// NewConverter returns a charset converter with the defaults, then applies opts.
func NewConverter(opts ...Option) *Converter {
	c := Converter{
		processing: ProcessingOptions{
			Mode:        ModeAdaptive,
			Threshold:   DefaultThreshold,
			Sensitivity: DefaultSensitivity,
			TargetWidth: DefaultCharsetWidth,
		},
		charset:    Basic,
		coloring:   ColorGradient,
		hue:        Hues["blue"],
		sampleSize: DefaultSampleSize,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// NewTextConverter returns a text-stream converter with the defaults, then
// applies opts.
func NewTextConverter(text string, opts ...Option) *Converter {
	base := []Option{
		WithText(text),
		WithWidth(DefaultTextWidth),
		WithMode(ModeThreshold),
		WithColoring(ColorOriginal),
	}
	return NewConverter(append(base, opts...)...)
}

// With returns a copy of c with opts applied.
func (c *Converter) With(opts ...Option) *Converter {
	cc := *c
	cc.text = append([]rune(nil), c.text...)
	for _, opt := range opts {
		opt(&cc)
	}
	return &cc
}

func (c *Converter) Variant() Variant {
	return c.variant
}

func (c *Converter) Processing() ProcessingOptions {
	return c.processing
}

// Palette returns the gradient for the active charset.
func (c *Converter) Palette() Palette {
	return Gradient(c.charset.Len(), c.dark, c.hue)
}

// Mapper returns the glyph mapper for the active variant.
func (c *Converter) Mapper() Mapper {
	if c.variant == VariantText {
		return TextMapper{Text: c.text, Coloring: c.coloring, SampleSize: c.sampleSize}
	}
	return CharsetMapper{
		Charset:    c.charset,
		Palette:    c.Palette(),
		Coloring:   c.coloring,
		SampleSize: c.sampleSize,
	}
}

// Result holds every stage's output for one run.
type Result struct {
	Sampled   *PixelGrid
	Processed *PixelGrid
	Glyphs    Glyphs
}

// Empty reports whether the run produced no glyphs.
func (r *Result) Empty() bool {
	return r == nil || len(r.Glyphs) == 0
}

// Convert runs img through sampling, mode processing and glyph mapping. A
// zero-area image yields an empty result.
func (c *Converter) Convert(img image.Image) *Result {
	opts := c.processing
	if img != nil {
		opts.SourceHeight = img.Bounds().Dy()
	}
	sampled := Sample(img, opts.TargetWidth, c.kernel, c.adjust)
	processed := Process(sampled, opts)
	return &Result{
		Sampled:   sampled,
		Processed: processed,
		Glyphs:    c.Mapper().Map(processed, sampled),
	}
}

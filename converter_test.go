package glyphart_test

import (
	"image"
	"image/color"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/glyphart"
)

// split is black on the left half and white on the right.
func split(w, h int) *image.NRGBA {
	img := uniform(w, h, gray(255))
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			img.SetNRGBA(x, y, gray(0))
		}
	}
	return img
}

var _ = Describe("Converter", func() {
	It("runs the charset pipeline with defaults", func() {
		res := glyphart.NewConverter().Convert(split(130, 260))
		cols, rows := res.Glyphs.Extents()
		Expect(cols).To(Equal(glyphart.DefaultCharsetWidth))
		Expect(rows).To(Equal(65))
		Expect(res.Glyphs[10][0].Char).To(Equal('@'))
		Expect(res.Glyphs[10][64].Char).To(Equal(' '))
		Expect(res.Sampled.Width).To(Equal(65))
		Expect(res.Processed).To(Equal(res.Sampled))
	})

	It("streams text with the text converter defaults", func() {
		res := glyphart.NewTextConverter("xy").Convert(split(200, 100))
		cols, rows := res.Glyphs.Extents()
		Expect(cols).To(Equal(glyphart.DefaultTextWidth))
		Expect(rows).To(Equal(25))
		Expect(string(res.Glyphs[0][0].Char) + string(res.Glyphs[0][1].Char)).To(Equal("xy"))
		Expect(res.Glyphs[0][0].Color).To(Equal(color.RGBA{A: 255}))
		Expect(res.Glyphs[0][99].Char).To(Equal(' '))
	})

	It("returns an empty result for a zero-area image", func() {
		res := glyphart.NewConverter().Convert(image.NewNRGBA(image.Rectangle{}))
		Expect(res.Empty()).To(BeTrue())
		Expect(res.Glyphs).To(BeEmpty())
	})

	It("is a pure function of image and options", func() {
		img := split(64, 64)
		conv := glyphart.NewTextConverter("deterministic", glyphart.WithMode(glyphart.ModeDither), glyphart.WithWidth(32))
		Expect(conv.Convert(img)).To(Equal(conv.Convert(img)))
	})

	It("derives copies with With", func() {
		base := glyphart.NewConverter(glyphart.WithWidth(10))
		wide := base.With(glyphart.WithWidth(20), glyphart.WithMode(glyphart.ModeEdge))
		Expect(base.Processing().TargetWidth).To(Equal(10))
		Expect(base.Processing().Mode).To(Equal(glyphart.ModeAdaptive))
		Expect(wide.Processing().TargetWidth).To(Equal(20))
		Expect(wide.Processing().Mode).To(Equal(glyphart.ModeEdge))
	})

	It("builds the palette for the active charset", func() {
		conv := glyphart.NewConverter(glyphart.WithCharset(glyphart.Extended), glyphart.WithDarkMode(true))
		Expect(conv.Palette()).To(HaveLen(70))
		Expect(conv.Mapper()).To(BeAssignableToTypeOf(glyphart.CharsetMapper{}))
		Expect(glyphart.NewTextConverter("x").Mapper()).To(BeAssignableToTypeOf(glyphart.TextMapper{}))
	})

	It("records the source height", func() {
		conv := glyphart.NewConverter(glyphart.WithWidth(8))
		Expect(conv.Convert(split(16, 16)).Sampled.Height).To(Equal(4))
		Expect(conv.Processing().SourceHeight).To(Equal(0))
	})
})

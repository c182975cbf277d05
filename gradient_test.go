package glyphart_test

import (
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/glyphart"
)

func lightness(p glyphart.Palette, i int) float64 {
	return p[i].(glyphart.Swatch).Lightness
}

var _ = Describe("Gradient", func() {
	table.DescribeTable("runs from brightest to dimmest",
		func(n int, dark bool, first, last float64) {
			p := glyphart.Gradient(n, dark, 220)
			Expect(p).To(HaveLen(n))
			Expect(lightness(p, 0)).To(BeNumerically("~", first, 1e-9))
			Expect(lightness(p, n-1)).To(BeNumerically("~", last, 1e-9))
			for i := 1; i < n; i++ {
				Expect(lightness(p, i)).To(BeNumerically("<", lightness(p, i-1)))
			}
		},
		table.Entry("light basic", 10, false, 80.0, 26.0),
		table.Entry("dark basic", 10, true, 90.0, 45.0),
		table.Entry("light extended", 70, false, 80.0, 80-69*60/70.0),
		table.Entry("dark pair", 2, true, 90.0, 65.0),
	)

	It("has a single entry for a single glyph", func() {
		Expect(lightness(glyphart.Gradient(1, false, 0), 0)).To(Equal(80.0))
		Expect(lightness(glyphart.Gradient(1, true, 0), 0)).To(Equal(90.0))
	})

	It("is empty for no glyphs", func() {
		Expect(glyphart.Gradient(0, true, 0)).To(BeEmpty())
	})

	It("uses the hue at fixed saturation", func() {
		s := glyphart.Gradient(4, false, 150)[2].(glyphart.Swatch)
		Expect(s.Hue).To(Equal(150.0))
		Expect(s.Saturation).To(Equal(70.0))
		Expect(s.Lightness).To(Equal(50.0))
		Expect(s.CSS()).To(Equal("hsl(150, 70%, 50%)"))
	})

	It("converts to RGB", func() {
		s := glyphart.Swatch{Hue: 0, Saturation: 70, Lightness: 50}
		Expect(s.Hex()).To(Equal("#d92626"))
		_, _, _, a := s.RGBA()
		Expect(a).To(Equal(uint32(0xffff)))
	})

	table.DescribeTable("ParseHue",
		func(s string, want float64) {
			h, err := glyphart.ParseHue(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(h).To(Equal(want))
		},
		table.Entry("blue", "blue", 220.0),
		table.Entry("purple", "Purple", 270.0),
		table.Entry("pink", "pink", 330.0),
		table.Entry("red", "red", 0.0),
		table.Entry("orange", "orange", 30.0),
		table.Entry("green", "green", 150.0),
		table.Entry("teal", "teal", 180.0),
		table.Entry("cyan", "cyan", 195.0),
		table.Entry("degrees", "42.5", 42.5),
	)

	It("rejects unknown colors and out of range hues", func() {
		for _, s := range []string{"mauve", "360", "-1", ""} {
			_, err := glyphart.ParseHue(s)
			Expect(err).To(MatchError(glyphart.ErrUnknownColor), s)
		}
	})

	It("lists preset names in order", func() {
		Expect(glyphart.HueNames()).To(Equal([]string{"blue", "cyan", "green", "orange", "pink", "purple", "red", "teal"}))
	})
})

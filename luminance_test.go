package glyphart_test

import (
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/glyphart"
)

var _ = Describe("Luminance", func() {
	table.DescribeTable("weights channels 0.21/0.72/0.07 and rounds down",
		func(r, g, b, want int) {
			Expect(glyphart.Luminance(uint8(r), uint8(g), uint8(b))).To(Equal(uint8(want)))
		},
		table.Entry("black", 0, 0, 0, 0),
		table.Entry("red", 255, 0, 0, 53),
		table.Entry("green", 0, 255, 0, 183),
		table.Entry("blue", 0, 0, 255, 17),
	)

	It("never decreases when a channel increases", func() {
		for _, other := range []uint8{0, 17, 128, 255} {
			prevR, prevG, prevB := uint8(0), uint8(0), uint8(0)
			for v := 0; v <= 255; v++ {
				c := uint8(v)
				r := glyphart.Luminance(c, other, other)
				g := glyphart.Luminance(other, c, other)
				b := glyphart.Luminance(other, other, c)
				Expect(r).To(BeNumerically(">=", prevR))
				Expect(g).To(BeNumerically(">=", prevG))
				Expect(b).To(BeNumerically(">=", prevB))
				prevR, prevG, prevB = r, g, b
			}
		}
	})

	It("inverts for ink", func() {
		Expect(glyphart.Ink(0, 0, 0)).To(Equal(uint8(255)))
		Expect(glyphart.Ink(0, 255, 0)).To(Equal(uint8(255 - 183)))
	})
})

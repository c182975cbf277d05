package glyphart

// Luminance is the standard-ish weighting for human eyes:
// 0.21 R + 0.72 G + 0.07 B, rounded down.
func Luminance(r, g, b uint8) uint8 {
	return uint8(0.21*float64(r) + 0.72*float64(g) + 0.07*float64(b))
}

// Ink is the inverted luminance used to pick glyphs, so dark areas map to
// dense glyphs.
func Ink(r, g, b uint8) uint8 {
	return 255 - Luminance(r, g, b)
}

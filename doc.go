/*
Package glyphart turns images into grids of text glyphs.

An image is downscaled to one sample per character cell, optionally remapped
by a processing Mode (threshold, Sobel edges or Floyd-Steinberg dithering),
then mapped to glyphs: either from a fixed character ramp, colored from an HSL
gradient, or by streaming caller text over the dark parts of the picture.
Medium.Fit computes the font size that packs the result into a screen or a
printed page.

	conv := glyphart.NewConverter(glyphart.WithWidth(80), glyphart.WithMode(glyphart.ModeDither))
	res := conv.Convert(img)
	fmt.Println(res.Glyphs)
*/
package glyphart

package glyphart

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor is returned by ParseHue.
var ErrUnknownColor = errors.New("unknown color")

// Saturation is the fixed saturation, in percent, of every gradient swatch.
const Saturation = 70

// Hues are the named color presets.
var Hues = map[string]float64{
	"blue":   220,
	"purple": 270,
	"pink":   330,
	"red":    0,
	"orange": 30,
	"green":  150,
	"teal":   180,
	"cyan":   195,
}

// HueNames lists the presets in alphabetical order.
func HueNames() []string {
	names := make([]string, 0, len(Hues))
	for name := range Hues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseHue accepts a preset name or a hue in degrees within [0, 360).
func ParseHue(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if h, ok := Hues[s]; ok {
		return h, nil
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil || h < 0 || h >= 360 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return h, nil
}

// Swatch is an HSL color with saturation and lightness in percent.
type Swatch struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

func (s Swatch) colorful() colorful.Color {
	return colorful.Hsl(s.Hue, s.Saturation/100, s.Lightness/100).Clamped()
}

// RGBA implements color.Color.
func (s Swatch) RGBA() (r, g, b, a uint32) {
	return s.colorful().RGBA()
}

// Hex returns the swatch as #rrggbb.
func (s Swatch) Hex() string {
	return s.colorful().Hex()
}

// CSS returns the swatch in CSS hsl() notation.
func (s Swatch) CSS() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", s.Hue, s.Saturation, s.Lightness)
}

// Palette is an ordered color ramp, brightest first.
type Palette []color.Color

// Gradient builds n swatches of the given hue. Dark mode spans lightness
// 90% down towards 40%, light mode 80% down towards 20%.
func Gradient(n int, dark bool, hue float64) Palette {
	if n <= 0 {
		return Palette{}
	}
	p := make(Palette, n)
	for i := range p {
		l := 80 - float64(i*60)/float64(n)
		if dark {
			l = 90 - float64(i*50)/float64(n)
		}
		p[i] = Swatch{Hue: hue, Saturation: Saturation, Lightness: l}
	}
	return p
}

// hexColor renders any color as #rrggbb. ok is false for transparent colors.
func hexColor(c color.Color) (hex string, ok bool) {
	if c == nil {
		return "", false
	}
	if s, isSwatch := c.(Swatch); isSwatch {
		return s.Hex(), true
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "", false
	}
	return cf.Hex(), true
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/codegangsta/cli"
	"golang.org/x/term"

	"github.com/kevin-cantwell/glyphart"
	"github.com/kevin-cantwell/glyphart/internal/config"
)

func conversionFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "width,w",
			Usage: "`COLS` of output. Defaults to the terminal width, or 65 for ascii and 100 for script.",
		},
		cli.StringFlag{
			Name:  "mode,m",
			Usage: "`MODE` is one of threshold, edge, dither or adaptive.",
		},
		cli.IntFlag{
			Name:  "threshold,t",
			Usage: "`THRESHOLD` from 0 to 255 used by the threshold and dither modes.",
			Value: glyphart.DefaultThreshold,
		},
		cli.IntFlag{
			Name:  "sensitivity",
			Usage: "`SENSITIVITY` from 1 to 255; lower values find more edges in edge mode.",
			Value: glyphart.DefaultSensitivity,
		},
		cli.StringFlag{
			Name:  "color",
			Usage: "Gradient `HUE`: one of " + strings.Join(glyphart.HueNames(), ", ") + ", or degrees.",
			Value: "blue",
		},
		cli.BoolFlag{
			Name:  "dark",
			Usage: "Use the gradient for dark backgrounds.",
		},
		cli.StringFlag{
			Name:  "coloring",
			Usage: "`SOURCE` of glyph colors: gradient, original or none.",
		},
		cli.StringFlag{
			Name:  "resample",
			Usage: "`KERNEL` is one of box, bilinear, catmullrom, nearest or lanczos.",
			Value: "box",
		},
		cli.IntFlag{
			Name:  "sample-size",
			Usage: "`N`×N block averaged when coloring from the original image.",
			Value: glyphart.DefaultSampleSize,
		},
		cli.Float64Flag{
			Name:  "gamma",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
		},
		cli.Float64Flag{
			Name:  "contrast",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
		},
		cli.Float64Flag{
			Name:  "sharpen",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
		},
		cli.Float64Flag{
			Name:  "sigmoid-midpoint",
			Usage: "`MIDPOINT` of contrast that must be between 0 and 1.",
			Value: 0.5,
		},
		cli.Float64Flag{
			Name:  "sigmoid-factor",
			Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast. FACTOR less than 0 decreases contrast.",
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the image.",
		},
	}
}

// resolver applies flag, then config file, then default precedence.
type resolver struct {
	c   *cli.Context
	cfg config.Config
}

func (r resolver) string(flag, fromConfig string) string {
	if r.c.IsSet(flag) || fromConfig == "" {
		return r.c.String(flag)
	}
	return fromConfig
}

func (r resolver) int(flag string, fromConfig int) int {
	if r.c.IsSet(flag) || fromConfig == 0 {
		return r.c.Int(flag)
	}
	return fromConfig
}

// converter builds the converter for a conversion command.
func (r resolver) converter(variant glyphart.Variant) (*glyphart.Converter, error) {
	var opts []glyphart.Option

	mode := r.string("mode", r.cfg.Mode)
	if mode != "" {
		m, err := glyphart.ParseMode(mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, glyphart.WithMode(m))
	}

	threshold := r.c.Int("threshold")
	if !r.c.IsSet("threshold") && r.cfg.Threshold != nil {
		threshold = *r.cfg.Threshold
	}
	if threshold < 0 || threshold > 255 {
		return nil, fmt.Errorf("threshold %d out of range 0-255", threshold)
	}
	sensitivity := r.int("sensitivity", r.cfg.Sensitivity)
	if sensitivity < 1 || sensitivity > 255 {
		return nil, fmt.Errorf("sensitivity %d out of range 1-255", sensitivity)
	}
	opts = append(opts, glyphart.WithThreshold(threshold), glyphart.WithSensitivity(sensitivity))

	if width := r.width(); width > 0 {
		opts = append(opts, glyphart.WithWidth(width))
	} else if width < 0 {
		return nil, fmt.Errorf("width %d must be positive", width)
	}

	hue, err := glyphart.ParseHue(r.string("color", r.cfg.Color))
	if err != nil {
		return nil, err
	}
	opts = append(opts, glyphart.WithHue(hue), glyphart.WithDarkMode(r.c.Bool("dark") || r.cfg.Dark))

	if coloring := r.string("coloring", r.cfg.Coloring); coloring != "" {
		col, err := glyphart.ParseColoring(coloring)
		if err != nil {
			return nil, err
		}
		if variant == glyphart.VariantText && col == glyphart.ColorGradient {
			return nil, fmt.Errorf("script output is colored from the image; use original or none")
		}
		opts = append(opts, glyphart.WithColoring(col))
	}

	kernel, err := glyphart.ParseKernel(r.string("resample", r.cfg.Resample))
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		glyphart.WithKernel(kernel),
		glyphart.WithSampleSize(r.c.Int("sample-size")),
		glyphart.WithAdjustments(r.adjustments()),
	)

	if variant == glyphart.VariantText {
		text, err := r.text()
		if err != nil {
			return nil, err
		}
		return glyphart.NewTextConverter(text, opts...), nil
	}
	charset, err := glyphart.ParseCharset(r.string("charset", r.cfg.Charset))
	if err != nil {
		return nil, err
	}
	return glyphart.NewConverter(append(opts, glyphart.WithCharset(charset))...), nil
}

// width is the flag, the config value, or the terminal width when stdout is
// a terminal. Zero leaves the converter's default.
func (r resolver) width() int {
	if w := r.int("width", r.cfg.Width); w != 0 {
		return w
	}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 1 {
		return 0
	}
	return cols - 1
}

func (r resolver) adjustments() glyphart.Adjustments {
	adj := glyphart.Adjustments{
		Gamma:      r.c.Float64("gamma"),
		Brightness: r.c.Float64("brightness"),
		Contrast:   r.c.Float64("contrast"),
		Sharpen:    r.c.Float64("sharpen"),
		Invert:     r.c.Bool("invert"),
	}
	if r.c.IsSet("sigmoid-midpoint") || r.c.IsSet("sigmoid-factor") {
		adj.Midpoint = r.c.Float64("sigmoid-midpoint")
		adj.Factor = r.c.Float64("sigmoid-factor")
	}
	return adj
}

// text resolves the script text: --srt, --text-file, --text, then the config
// file, then the default paragraph.
func (r resolver) text() (string, error) {
	if path := r.c.String("srt"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		return glyphart.ParseSRT(f)
	}
	path := r.string("text-file", r.cfg.TextFile)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		return glyphart.ReadText(f)
	}
	if text := glyphart.NormalizeText(r.string("text", r.cfg.Text)); text != "" {
		return text, nil
	}
	return glyphart.DefaultText, nil
}

// parseBox reads "WxH".
func parseBox(s string) (w, h int, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("box %q must look like 800x600", s)
	}
	if w, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("box %q: %w", s, err)
	}
	if h, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("box %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("box %q must be positive", s)
	}
	return w, h, nil
}

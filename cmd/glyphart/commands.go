package main

import (
	"bufio"
	"context"
	"fmt"
	"image/gif"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/muesli/termenv"

	"github.com/kevin-cantwell/glyphart"
)

func outputFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "format,f",
			Usage: "`FORMAT` is one of text, ansi, html or png.",
			Value: "ansi",
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "Write to `FILE` instead of stdout.",
		},
		cli.StringFlag{
			Name:  "box",
			Usage: "Canvas `SIZE` for png output, as WIDTHxHEIGHT pixels.",
			Value: "1920x1080",
		},
		cli.StringFlag{
			Name:  "color-profile",
			Usage: "`PROFILE` for ansi output: auto, truecolor, 256, 16 or none.",
			Value: "auto",
		},
	}
}

func asciiCommand() cli.Command {
	flags := append(conversionFlags(), cli.StringFlag{
		Name:  "charset",
		Usage: "`CHARSET` is basic or extended.",
		Value: "basic",
	})
	return cli.Command{
		Name:      "ascii",
		Usage:     "Draw an image with a character ramp.",
		ArgsUsage: "[file|url]",
		Flags:     append(flags, outputFlags()...),
		Action: func(c *cli.Context) error {
			return exit(convert(c, glyphart.VariantCharset))
		},
	}
}

func scriptCommand() cli.Command {
	flags := append(conversionFlags(),
		cli.StringFlag{
			Name:  "text",
			Usage: "`TEXT` to write the image with.",
		},
		cli.StringFlag{
			Name:  "text-file",
			Usage: "Read the text from `FILE`.",
		},
		cli.StringFlag{
			Name:  "srt",
			Usage: "Use the dialogue of a SubRip subtitle `FILE` as the text.",
		},
	)
	return cli.Command{
		Name:      "script",
		Usage:     "Draw an image with your own text.",
		ArgsUsage: "[file|url]",
		Flags:     append(flags, outputFlags()...),
		Action: func(c *cli.Context) error {
			return exit(convert(c, glyphart.VariantText))
		},
	}
}

func playCommand() cli.Command {
	flags := append(conversionFlags(), cli.StringFlag{
		Name:  "charset",
		Usage: "`CHARSET` is basic or extended.",
		Value: "basic",
	}, cli.StringFlag{
		Name:  "color-profile",
		Usage: "`PROFILE`: auto, truecolor, 256, 16 or none.",
		Value: "auto",
	})
	return cli.Command{
		Name:      "play",
		Usage:     "Animate a gif in the terminal. CTRL-C to quit.",
		ArgsUsage: "[file|url]",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			return exit(play(c))
		},
	}
}

func streamCommand() cli.Command {
	flags := append(conversionFlags(), cli.StringFlag{
		Name:  "charset",
		Usage: "`CHARSET` is basic or extended.",
		Value: "basic",
	}, cli.StringFlag{
		Name:  "color-profile",
		Usage: "`PROFILE`: auto, truecolor, 256, 16 or none.",
		Value: "auto",
	}, cli.IntFlag{
		Name:  "fps",
		Usage: "Maximum `FRAMES` per second.",
		Value: 12,
	})
	return cli.Command{
		Name:      "stream",
		Usage:     "Play a motion JPEG stream in the terminal. CTRL-C to quit.",
		ArgsUsage: "[file|url]",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			return exit(stream(c))
		},
	}
}

func fitCommand() cli.Command {
	return cli.Command{
		Name:      "fit",
		Usage:     "Print the font size and orientation that fit a grid, or a text file, into a medium.",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "cols", Usage: "Grid `COLS`."},
			cli.IntFlag{Name: "rows", Usage: "Grid `ROWS`."},
			cli.StringFlag{
				Name:  "medium",
				Usage: "`MEDIUM` is print (A4, points) or screen (pixels).",
				Value: "print",
			},
			cli.StringFlag{
				Name:  "box",
				Usage: "Screen `SIZE` as WIDTHxHEIGHT pixels.",
				Value: "1920x1080",
			},
		},
		Action: func(c *cli.Context) error {
			return exit(fit(c))
		},
	}
}

func convert(c *cli.Context, variant glyphart.Variant) error {
	conv, err := resolver{c: c, cfg: cfg}.converter(variant)
	if err != nil {
		return err
	}
	in, name, err := openInput(c.Args().First())
	if err != nil {
		return err
	}
	defer in.Close()
	data, err := glyphart.ReadSource(in)
	if err != nil {
		return err
	}

	ctx, cancel := interruptible()
	defer cancel()
	session := glyphart.NewSessionWith(logger, conv)
	res := <-session.Load(ctx, glyphart.NewImageID(data), glyphart.DecodeBytes(data))
	switch res.Status {
	case glyphart.Failed:
		return res.Err
	case glyphart.Discarded:
		return nil
	}

	return writeOutput(c.String("output"), func(w io.Writer) error {
		enc, err := newEncoder(c, w, name)
		if err != nil {
			return err
		}
		return enc.Encode(session.Result().Glyphs)
	})
}

func play(c *cli.Context) error {
	conv, err := resolver{c: c, cfg: cfg}.converter(glyphart.VariantCharset)
	if err != nil {
		return err
	}
	in, _, err := openInput(c.Args().First())
	if err != nil {
		return err
	}
	defer in.Close()
	giff, err := gif.DecodeAll(bufio.NewReader(in))
	if err != nil {
		return fmt.Errorf("failed to decode gif: %w", err)
	}

	ctx, cancel := interruptible()
	defer cancel()
	enc := glyphart.NewANSIEncoder(os.Stdout, colorProfile(c.String("color-profile"), os.Stdout))
	return glyphart.PlayGIF(ctx, giff, conv, enc, glyphart.NewXterm(os.Stdout))
}

func stream(c *cli.Context) error {
	conv, err := resolver{c: c, cfg: cfg}.converter(glyphart.VariantCharset)
	if err != nil {
		return err
	}
	in, _, err := openInput(c.Args().First())
	if err != nil {
		return err
	}
	defer in.Close()

	ctx, cancel := interruptible()
	defer cancel()
	enc := glyphart.NewANSIEncoder(os.Stdout, colorProfile(c.String("color-profile"), os.Stdout))
	a := glyphart.NewMJPEGAnimator(glyphart.NewSessionWith(logger, conv), enc, glyphart.NewXterm(os.Stdout), logger)
	return a.Animate(ctx, in, c.Int("fps"))
}

func fit(c *cli.Context) error {
	cols, rows := c.Int("cols"), c.Int("rows")
	if path := c.Args().First(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if cols, rows, err = textExtents(f); err != nil {
			return err
		}
	}
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("nothing to fit: %d cols × %d rows", cols, rows)
	}

	medium := glyphart.A4
	unit := "pt"
	if c.String("medium") == "screen" {
		w, h, err := parseBox(c.String("box"))
		if err != nil {
			return err
		}
		medium, unit = glyphart.Screen(float64(w), float64(h)), "px"
	} else if c.String("medium") != "print" {
		return fmt.Errorf("unknown medium %q", c.String("medium"))
	}
	layout := medium.Fit(cols, rows)
	fmt.Printf("%d×%d: %g%s %s\n", cols, rows, layout.FontSize, unit, layout.Orientation)
	return nil
}

func textExtents(r io.Reader) (cols, rows int, err error) {
	s := bufio.NewScanner(r)
	for s.Scan() {
		cols = max(cols, len([]rune(s.Text())))
		rows++
	}
	return cols, rows, s.Err()
}

func newEncoder(c *cli.Context, w io.Writer, title string) (glyphart.Encoder, error) {
	r := resolver{c: c, cfg: cfg}
	switch format := r.string("format", cfg.Format); format {
	case "text":
		return glyphart.NewTextEncoder(w), nil
	case "ansi":
		return glyphart.NewANSIEncoder(w, colorProfile(c.String("color-profile"), w)), nil
	case "html":
		return glyphart.NewPrintEncoder(w, title), nil
	case "png":
		bw, bh, err := parseBox(r.string("box", cfg.Box))
		if err != nil {
			return nil, err
		}
		return glyphart.NewPNGEncoder(w, bw, bh, c.Bool("dark") || cfg.Dark), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func colorProfile(name string, w io.Writer) termenv.Profile {
	switch name {
	case "truecolor":
		return termenv.TrueColor
	case "256":
		return termenv.ANSI256
	case "16":
		return termenv.ANSI
	case "none":
		return termenv.Ascii
	default:
		return termenv.NewOutput(w).EnvColorProfile()
	}
}

// openInput opens a file, falling back to a url, or stdin when input is
// empty. name is a display name for the input.
func openInput(input string) (rc io.ReadCloser, name string, err error) {
	if input == "" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	if file, err := os.Open(input); err == nil {
		return file, filepath.Base(input), nil
	}
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return nil, "", fmt.Errorf("no such file: %s", input)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, input, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", input, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", fmt.Errorf("failed to fetch %s: %s", input, resp.Status)
	}
	logger.Debug("fetched image", "url", input, "type", resp.Header.Get("Content-Type"))
	return resp.Body, filepath.Base(resp.Request.URL.Path), nil
}

// writeOutput runs write against the file at path, or stdout when path is
// empty. A failure to close the file is reported like a failed write.
func writeOutput(path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return write(f)
}

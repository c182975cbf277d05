package glyphart

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
)

var printPage = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4 {{.Orientation}}; margin: {{.Margin}}pt; }
body { margin: 0; background: #fff; }
pre { font-family: monospace; font-size: {{.FontSize}}pt; line-height: {{.LineHeight}}; margin: 0; }
</style>
</head>
<body>
<pre>{{range .Rows}}{{range .}}{{if .Color}}<span style="color: {{.Color}}">{{.Text}}</span>{{else}}{{.Text}}{{end}}{{end}}
{{end}}</pre>
</body>
</html>
`))

// ErrTooWide is returned when a grid cannot be printed at a usable font size.
var ErrTooWide = errors.New("glyph grid too large to print")

type printRun struct {
	Text  string
	Color template.CSS
}

// PrintEncoder writes an HTML page laid out for an A4 printer. Runs of cells
// sharing a color share a span.
type PrintEncoder struct {
	w      io.Writer
	title  string
	medium Medium
}

func NewPrintEncoder(w io.Writer, title string) *PrintEncoder {
	return &PrintEncoder{w: w, title: title, medium: A4}
}

func (enc *PrintEncoder) Encode(g Glyphs) error {
	layout := enc.medium.FitGlyphs(g)
	if cols, rows := g.Extents(); cols > 0 && layout.FontSize <= 0 {
		return fmt.Errorf("%w: %d×%d on A4", ErrTooWide, cols, rows)
	}
	rows := make([][]printRun, len(g))
	for y, row := range g {
		rows[y] = printRuns(row)
	}
	return printPage.Execute(enc.w, struct {
		Title       string
		Orientation string
		Margin      float64
		FontSize    float64
		LineHeight  float64
		Rows        [][]printRun
	}{
		Title:       enc.title,
		Orientation: layout.Orientation.String(),
		Margin:      enc.medium.Margin,
		FontSize:    layout.FontSize,
		LineHeight:  enc.medium.LineHeight,
		Rows:        rows,
	})
}

func printRuns(row []GlyphCell) []printRun {
	var runs []printRun
	var sb strings.Builder
	var current template.CSS
	flush := func() {
		if sb.Len() > 0 {
			runs = append(runs, printRun{Text: sb.String(), Color: current})
			sb.Reset()
		}
	}
	for _, cell := range row {
		var css template.CSS
		if s, ok := cell.Color.(Swatch); ok {
			css = template.CSS(s.CSS())
		} else if hex, ok := hexColor(cell.Color); ok {
			css = template.CSS(hex)
		}
		if css != current {
			flush()
			current = css
		}
		sb.WriteRune(cell.Char)
	}
	flush()
	return runs
}

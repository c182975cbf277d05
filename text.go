package glyphart

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyText is returned when text input has nothing left after cleanup.
var ErrEmptyText = errors.New("no text after normalization")

// DefaultText is used by the text variant when no text is given.
var DefaultText = strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "+
	"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. "+
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. ", 50)

var (
	htmlTag    = regexp.MustCompile(`<[^>]*>`)
	braceTag   = regexp.MustCompile(`\{[^}]*\}`)
	whitespace = regexp.MustCompile(`\s+`)
)

// NormalizeText strips <markup> and {override} tags, collapses whitespace
// runs to a single space and composes the result to NFC.
func NormalizeText(s string) string {
	s = htmlTag.ReplaceAllString(s, "")
	s = braceTag.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return norm.NFC.String(strings.TrimSpace(s))
}

// ReadText reads UTF-8 or BOM-marked UTF-16 text and normalizes it.
func ReadText(r io.Reader) (string, error) {
	raw, err := readUnicode(r)
	if err != nil {
		return "", err
	}
	text := NormalizeText(raw)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

// ParseSRT extracts the dialogue of a SubRip file as one normalized string.
// The first two lines of every cue, its index and timing, are dropped.
func ParseSRT(r io.Reader) (string, error) {
	raw, err := readUnicode(r)
	if err != nil {
		return "", err
	}
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var lines []string
	for _, block := range strings.Split(raw, "\n\n") {
		cue := strings.Split(strings.TrimSpace(block), "\n")
		if len(cue) > 2 {
			lines = append(lines, cue[2:]...)
		}
	}
	text := NormalizeText(strings.Join(lines, " "))
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

func readUnicode(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	return string(b), nil
}

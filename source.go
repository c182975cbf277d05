package glyphart

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/crypto/blake2b"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// MaxSourceBytes is the largest encoded image ReadSource accepts.
const MaxSourceBytes = 5 << 20

var (
	ErrTooLarge          = errors.New("image exceeds 5MB")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Formats are the accepted encodings, as named by image.Decode.
var Formats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
	"bmp":  true,
}

// ImageID identifies a source image by its content.
type ImageID [blake2b.Size256]byte

func NewImageID(data []byte) ImageID {
	return blake2b.Sum256(data)
}

func (id ImageID) IsZero() bool {
	return id == ImageID{}
}

func (id ImageID) String() string {
	return hex.EncodeToString(id[:6])
}

// ReadSource reads an encoded image, failing with ErrTooLarge past
// MaxSourceBytes.
func ReadSource(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSourceBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxSourceBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

// DecodeFunc produces a decoded image, possibly slowly.
type DecodeFunc func(ctx context.Context) (image.Image, error)

// DecodeBytes returns a DecodeFunc for an encoded image held in memory.
func DecodeBytes(data []byte) DecodeFunc {
	return func(ctx context.Context) (image.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(data) > MaxSourceBytes {
			return nil, ErrTooLarge
		}
		_, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			if errors.Is(err, image.ErrFormat) {
				return nil, ErrUnsupportedFormat
			}
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		if !Formats[format] {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		return img, nil
	}
}

package glyphart

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// MJPEGAnimator plays a motion JPEG stream in the terminal. Every frame is
// loaded through a Session, so cancelling leaves the session cleared rather
// than holding a half-finished frame.
type MJPEGAnimator struct {
	s      *Session
	enc    Encoder
	t      Terminal
	logger *slog.Logger
}

func NewMJPEGAnimator(s *Session, enc Encoder, t Terminal, logger *slog.Logger) *MJPEGAnimator {
	if logger == nil {
		logger = slog.Default()
	}
	return &MJPEGAnimator{s: s, enc: enc, t: t, logger: logger}
}

/*
Animate renders frames from r at most fps times a second until the stream
ends or ctx is cancelled.
*/
func (a *MJPEGAnimator) Animate(ctx context.Context, r io.Reader, fps int) error {
	if fps <= 0 {
		return fmt.Errorf("invalid frame rate %d", fps)
	}
	a.t.ShowCursor(false)
	defer a.t.ShowCursor(true)
	defer a.s.Clear()

	reader := MJPEGReader{Reader: r, Drop: true}
	for frame := range reader.ReadAll(ctx) {
		if frame.Err != nil {
			return frame.Err
		}

		delay := time.After(time.Second / time.Duration(fps))

		var res LoadResult
		select {
		case res = <-a.s.Load(ctx, NewImageID(frame.Data), DecodeBytes(frame.Data)):
		case <-ctx.Done():
			return nil
		}
		switch res.Status {
		case Failed:
			a.logger.Warn("skipping frame", "error", res.Err)
		case Applied:
			if err := flush(a.s.Result().Glyphs, a.enc, a.t); err != nil {
				return err
			}
		}

		select {
		case <-delay:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// Frame is one JPEG image cut from a motion JPEG stream.
type Frame struct {
	Data []byte
	Err  error
}

// MJPEGReader splits a stream of concatenated JPEGs on the end-of-image marker.
type MJPEGReader struct {
	Reader io.Reader
	// Drop discards frames that complete while another is still waiting
	// to be consumed.
	Drop bool
}

// ReadAll emits frames until the stream ends.
func (mjpeg *MJPEGReader) ReadAll(ctx context.Context) <-chan Frame {
	var frames chan Frame
	if mjpeg.Drop {
		frames = make(chan Frame, 1)
	} else {
		frames = make(chan Frame)
	}
	go func() {
		defer close(frames)

		br := bufio.NewReader(mjpeg.Reader)
		var buf bytes.Buffer
		var prev byte
		for {
			c, err := br.ReadByte()
			if err != nil {
				if err != io.EOF {
					select {
					case frames <- Frame{Err: err}:
					case <-ctx.Done():
					}
				}
				return
			}
			buf.WriteByte(c)

			if prev == 0xff && c == 0xd9 {
				data := append([]byte(nil), buf.Bytes()...)
				buf.Reset()
				if ctx.Err() != nil {
					return
				}
				if mjpeg.Drop {
					select {
					case frames <- Frame{Data: data}:
					default:
					}
				} else {
					select {
					case frames <- Frame{Data: data}:
					case <-ctx.Done():
						return
					}
				}
				prev = 0
				continue
			}
			prev = c
		}
	}()
	return frames
}

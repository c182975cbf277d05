package glyphart

import (
	"context"
	"image"
	"image/draw"
	"image/gif"
	"time"
)

/*
PlayGIF draws each frame of a gif through conv and enc, then moves the
terminal cursor back so the next frame overwrites it. Delays, disposal methods
and the loop count are respected. It returns when the animation ends or ctx is
cancelled.
*/
func PlayGIF(ctx context.Context, giff *gif.GIF, conv *Converter, enc Encoder, term Terminal) error {
	if len(giff.Image) == 0 {
		return nil
	}
	term.ShowCursor(false)
	defer term.ShowCursor(true)

	bounds := image.Rect(0, 0, giff.Config.Width, giff.Config.Height)
	if bounds.Empty() {
		bounds = giff.Image[0].Bounds()
	}

	// LoopCount 0 loops forever; -1 plays once; n plays n+1 times.
	plays := giff.LoopCount + 1
	if giff.LoopCount < 0 {
		plays = 1
	}
	for c := 0; giff.LoopCount == 0 || c < plays; c++ {
		screen := image.NewRGBA(bounds)
		for i, frame := range giff.Image {
			delay := time.After(frameDelay(giff, i))

			var previous *image.RGBA
			if disposal(giff, i) == gif.DisposalPrevious {
				previous = image.NewRGBA(bounds)
				copy(previous.Pix, screen.Pix)
			}

			// Transparent frame pixels leave what is underneath.
			draw.Draw(screen, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
			if err := flush(conv.Convert(screen).Glyphs, enc, term); err != nil {
				return err
			}

			select {
			case <-delay:
			case <-ctx.Done():
				return nil
			}

			switch disposal(giff, i) {
			// Dispose previous essentially means draw then undo
			case gif.DisposalPrevious:
				screen = previous
			// Dispose background clears the area the frame covered
			case gif.DisposalBackground:
				draw.Draw(screen, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
			}
		}
	}
	return nil
}

func frameDelay(giff *gif.GIF, i int) time.Duration {
	if i < len(giff.Delay) {
		return time.Duration(giff.Delay[i]) * time.Second / 100
	}
	return 0
}

func disposal(giff *gif.GIF, i int) byte {
	if i < len(giff.Disposal) {
		return giff.Disposal[i]
	}
	return gif.DisposalNone
}

func flush(g Glyphs, enc Encoder, term Terminal) error {
	if err := enc.Encode(g); err != nil {
		return err
	}
	term.ResetCursor(len(g))
	return nil
}

package glyphart_test

import (
	"context"
	"errors"
	"image"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/glyphart"
)

func ready(img image.Image) glyphart.DecodeFunc {
	return func(context.Context) (image.Image, error) { return img, nil }
}

// gated blocks until the gate is closed.
func gated(gate <-chan struct{}, img image.Image) glyphart.DecodeFunc {
	return func(ctx context.Context) (image.Image, error) {
		<-gate
		return img, nil
	}
}

var _ = Describe("Session", func() {
	var (
		s      *glyphart.Session
		ctx    context.Context
		idA    = glyphart.NewImageID([]byte("a"))
		idB    = glyphart.NewImageID([]byte("b"))
		imageA = split(40, 40)
		imageB = uniform(40, 80, gray(0))
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		s = glyphart.NewSession(logger, glyphart.WithWidth(20))
	})

	It("starts empty", func() {
		Expect(s.Result().Empty()).To(BeTrue())
		_, ok := s.Current()
		Expect(ok).To(BeFalse())
	})

	It("applies a decoded image", func() {
		res := <-s.Load(ctx, idA, ready(imageA))
		Expect(res.Status).To(Equal(glyphart.Applied))
		Expect(res.ID).To(Equal(idA))
		cols, rows := s.Result().Glyphs.Extents()
		Expect(cols).To(Equal(20))
		Expect(rows).To(Equal(10))
		id, ok := s.Current()
		Expect(ok).To(BeTrue())
		Expect(id).To(Equal(idA))
	})

	It("keeps the previous state when decoding fails", func() {
		Expect((<-s.Load(ctx, idA, ready(imageA))).Status).To(Equal(glyphart.Applied))
		before := s.Result()

		boom := errors.New("boom")
		res := <-s.Load(ctx, idB, func(context.Context) (image.Image, error) { return nil, boom })
		Expect(res.Status).To(Equal(glyphart.Failed))
		Expect(res.Err).To(MatchError(boom))
		Expect(s.Result()).To(BeIdenticalTo(before))
		id, _ := s.Current()
		Expect(id).To(Equal(idA))
	})

	It("discards a decode superseded by a newer load", func() {
		gate := make(chan struct{})
		slow := s.Load(ctx, idA, gated(gate, imageA))
		Expect((<-s.Load(ctx, idB, ready(imageB))).Status).To(Equal(glyphart.Applied))

		close(gate)
		Expect((<-slow).Status).To(Equal(glyphart.Discarded))
		id, _ := s.Current()
		Expect(id).To(Equal(idB))
		_, rows := s.Result().Glyphs.Extents()
		Expect(rows).To(Equal(20))
	})

	It("clears synchronously and drops decodes still in flight", func() {
		Expect((<-s.Load(ctx, idB, ready(imageB))).Status).To(Equal(glyphart.Applied))
		gate := make(chan struct{})
		slow := s.Load(ctx, idA, gated(gate, imageA))

		s.Clear()
		Expect(s.Result().Empty()).To(BeTrue())

		close(gate)
		Expect((<-slow).Status).To(Equal(glyphart.Discarded))
		Expect(s.Result().Empty()).To(BeTrue())
		_, ok := s.Current()
		Expect(ok).To(BeFalse())
	})

	It("discards decodes whose context was cancelled", func() {
		cctx, cancel := context.WithCancel(ctx)
		gate := make(chan struct{})
		slow := s.Load(cctx, idA, gated(gate, imageA))
		cancel()
		close(gate)
		Expect((<-slow).Status).To(Equal(glyphart.Discarded))
		Expect(s.Result().Empty()).To(BeTrue())
	})

	It("reruns the pipeline when options change", func() {
		<-s.Load(ctx, idA, ready(imageA))
		res := s.Update(glyphart.WithWidth(10), glyphart.WithMode(glyphart.ModeThreshold))
		cols, rows := res.Glyphs.Extents()
		Expect(cols).To(Equal(10))
		Expect(rows).To(Equal(5))
		Expect(s.Result()).To(BeIdenticalTo(res))
	})

	It("only records options while empty", func() {
		Expect(s.Update(glyphart.WithWidth(10)).Empty()).To(BeTrue())
		<-s.Load(ctx, idA, ready(imageA))
		cols, _ := s.Result().Glyphs.Extents()
		Expect(cols).To(Equal(10))
	})
})

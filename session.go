package glyphart

import (
	"context"
	"image"
	"log/slog"
	"sync"
)

// LoadStatus reports what happened to a Load.
type LoadStatus int

const (
	// Applied means the decoded image became current and was converted.
	Applied LoadStatus = iota
	// Discarded means a later Load or Clear superseded this one.
	Discarded
	// Failed means decoding failed and the previous state was kept.
	Failed
)

func (s LoadStatus) String() string {
	switch s {
	case Applied:
		return "applied"
	case Discarded:
		return "discarded"
	default:
		return "failed"
	}
}

type LoadResult struct {
	ID     ImageID
	Status LoadStatus
	Err    error
}

// Session holds the current image and everything derived from it. Decodes
// run in the background; each is tagged with a generation so a result that
// arrives after a newer Load or a Clear is dropped instead of applied.
type Session struct {
	mu     sync.Mutex
	conv   *Converter
	logger *slog.Logger

	gen    uint64
	id     ImageID
	img    image.Image
	result *Result
}

func NewSession(logger *slog.Logger, opts ...Option) *Session {
	return NewSessionWith(logger, NewConverter(opts...))
}

// NewSessionWith uses conv as the starting configuration.
func NewSessionWith(logger *slog.Logger, conv *Converter) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		conv:   conv,
		logger: logger,
		result: &Result{},
	}
}

// Load decodes a new current image in the background. The returned channel
// receives exactly one LoadResult.
func (s *Session) Load(ctx context.Context, id ImageID, decode DecodeFunc) <-chan LoadResult {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	done := make(chan LoadResult, 1)
	go func() {
		defer close(done)
		img, err := decode(ctx)
		done <- s.finish(ctx, gen, id, img, err)
	}()
	return done
}

func (s *Session) finish(ctx context.Context, gen uint64, id ImageID, img image.Image, err error) LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || ctx.Err() != nil {
		s.logger.Debug("discarding stale decode", "image", id)
		return LoadResult{ID: id, Status: Discarded}
	}
	if err != nil {
		s.logger.Warn("decode failed", "image", id, "error", err)
		return LoadResult{ID: id, Status: Failed, Err: err}
	}

	s.id, s.img = id, img
	s.result = s.conv.Convert(img)
	cols, rows := s.result.Glyphs.Extents()
	s.logger.Info("image converted", "image", id, "cols", cols, "rows", rows)
	return LoadResult{ID: id, Status: Applied}
}

// Clear drops the current image and all derived state. Any decode still in
// flight will be discarded when it completes.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.id, s.img = ImageID{}, nil
	s.result = &Result{}
	s.logger.Debug("session cleared")
}

// Update changes the conversion settings and reruns the pipeline against the
// current image, if any.
func (s *Session) Update(opts ...Option) *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conv = s.conv.With(opts...)
	if s.img != nil {
		s.result = s.conv.Convert(s.img)
	}
	return s.result
}

// Result returns the output of the latest run. It is never nil.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Current returns the identity of the current image.
func (s *Session) Current() (ImageID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id, s.img != nil
}

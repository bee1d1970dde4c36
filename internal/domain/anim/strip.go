// Package anim provides frame-strip playback for sprite sheets.
package anim

import "iter"

// Strip is a cyclic sequence of frames, each held for a number of calls.
// Frames may be split into equal-length sequences (one logical animation
// each, e.g. one sheet row). Playback loops inside the current sequence.
type Strip[T any] struct {
	frames []T
	hold   int
	seqLen int
	manual bool

	seq   int
	index int
	count int
}

// Option configures a Strip
type Option func(*strip)

type strip struct {
	seqLen int
	manual bool
}

// WithSequence splits the frames into sequences of n frames
func WithSequence(n int) Option {
	return func(s *strip) { s.seqLen = n }
}

// Manual allows RestartAtNextSequence to switch sequences
func Manual() Option {
	return func(s *strip) { s.manual = true }
}

// New creates a strip over frames, holding each for hold calls to Next.
// hold below 1 is treated as 1.
func New[T any](frames []T, hold int, opts ...Option) *Strip[T] {
	o := strip{seqLen: len(frames)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seqLen <= 0 || o.seqLen > len(frames) {
		o.seqLen = len(frames)
	}
	if hold < 1 {
		hold = 1
	}
	return &Strip[T]{
		frames: frames,
		hold:   hold,
		seqLen: o.seqLen,
		manual: o.manual,
	}
}

// Len returns the number of frames
func (s *Strip[T]) Len() int { return len(s.frames) }

// Sequences returns the number of logical sequences
func (s *Strip[T]) Sequences() int {
	if s.seqLen == 0 {
		return 0
	}
	return (len(s.frames) + s.seqLen - 1) / s.seqLen
}

// Index returns the absolute index of the current frame
func (s *Strip[T]) Index() int { return s.seq*s.seqLen + s.index }

// Sequence returns the current sequence number
func (s *Strip[T]) Sequence() int { return s.seq }

// Current returns the current frame without advancing
func (s *Strip[T]) Current() T {
	var zero T
	if len(s.frames) == 0 {
		return zero
	}
	return s.frames[s.Index()]
}

// Next returns the current frame and advances the hold counter.
// After hold calls the strip moves to the next frame, wrapping to the
// start of the current sequence.
func (s *Strip[T]) Next() T {
	f := s.Current()
	if len(s.frames) == 0 {
		return f
	}
	s.count++
	if s.count >= s.hold {
		s.count = 0
		s.index++
		if s.index >= s.currentLen() {
			s.index = 0
		}
	}
	return f
}

// RestartAtNextSequence jumps to the first frame of the next sequence.
// It does nothing unless the strip was created with Manual.
func (s *Strip[T]) RestartAtNextSequence() {
	if !s.manual || len(s.frames) == 0 {
		return
	}
	s.seq = (s.seq + 1) % s.Sequences()
	s.index = 0
	s.count = 0
}

// Reset restarts playback at frame 0
func (s *Strip[T]) Reset() {
	s.seq = 0
	s.index = 0
	s.count = 0
}

// All yields Next forever. Stop ranging to end playback.
func (s *Strip[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}

// currentLen is the length of the current sequence; the last one may be short
func (s *Strip[T]) currentLen() int {
	start := s.seq * s.seqLen
	if rest := len(s.frames) - start; rest < s.seqLen {
		return rest
	}
	return s.seqLen
}

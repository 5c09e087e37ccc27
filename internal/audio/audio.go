// Package audio synthesises the detent clicks played as the dial turns.
package audio

import (
	"math"
	"sync/atomic"

	"github.com/mjibson/go-dsp/window"
)

const (
	SampleRate = 44100
	BufferSize = 256

	clickLength = 0.006
	clickPitch  = 2400.0
)

// Synth renders queued clicks into stereo buffers. Click may be called from
// any goroutine; Process runs on the audio callback.
type Synth struct {
	Volume float64

	pending  atomic.Int32
	envelope []float64
	pos      int
	playing  bool
	phase    float64
}

func NewSynth() *Synth {
	return &Synth{
		Volume:   0.4,
		envelope: window.Hann(int(math.Floor(SampleRate * clickLength))),
	}
}

// Click queues one click. Clicks that arrive faster than they can play are
// merged.
func (s *Synth) Click() {
	if s.pending.Load() < 2 {
		s.pending.Add(1)
	}
}

// Process fills out with audio, one slice per channel.
func (s *Synth) Process(out [][]float32) {
	if len(out) == 0 {
		return
	}
	for i := range out[0] {
		v := s.next()
		for ch := range out {
			out[ch][i] = v
		}
	}
}

func (s *Synth) next() float32 {
	if !s.playing {
		if s.pending.Load() == 0 {
			return 0
		}
		s.pending.Add(-1)
		s.playing, s.pos, s.phase = true, 0, 0
	}

	v := math.Sin(2*math.Pi*s.phase) * s.envelope[s.pos] * s.Volume
	s.phase += clickPitch / SampleRate
	s.pos++
	if s.pos >= len(s.envelope) {
		s.playing = false
	}
	return float32(v)
}

// ClickSamples is the length of one click.
func (s *Synth) ClickSamples() int { return len(s.envelope) }

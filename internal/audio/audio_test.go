package audio

import (
	"math"
	"testing"
)

func render(s *Synth, n int) []float32 {
	out := [][]float32{make([]float32, n), make([]float32, n)}
	s.Process(out)
	for i := range out[0] {
		if out[0][i] != out[1][i] {
			panic("channels differ")
		}
	}
	return out[0]
}

func energy(buf []float32) float64 {
	sum := 0.0
	for _, v := range buf {
		sum += float64(v) * float64(v)
	}
	return sum
}

func TestSilentWithoutClicks(t *testing.T) {
	s := NewSynth()
	if e := energy(render(s, BufferSize)); e != 0 {
		t.Errorf("expected silence, got energy %f", e)
	}
}

func TestClickPlaysOnce(t *testing.T) {
	s := NewSynth()
	s.Click()

	n := s.ClickSamples()
	first := render(s, n)
	if energy(first) == 0 {
		t.Fatal("expected a click")
	}
	if first[0] != 0 {
		t.Errorf("expected the envelope to start at zero, got %f", first[0])
	}
	for _, v := range first {
		if math.Abs(float64(v)) > s.Volume+1e-6 {
			t.Fatalf("sample %f exceeds volume", v)
		}
	}

	if e := energy(render(s, n)); e != 0 {
		t.Errorf("expected silence after the click, got energy %f", e)
	}
}

func TestClicksMerge(t *testing.T) {
	s := NewSynth()
	for i := 0; i < 10; i++ {
		s.Click()
	}
	n := s.ClickSamples()
	played := 0
	for i := 0; i < 10; i++ {
		if energy(render(s, n)) > 0 {
			played++
		}
	}
	if played != 2 {
		t.Errorf("expected bursts to merge into 2 clicks, got %d", played)
	}
}

package automation

import "github.com/san-kum/dialnav/internal/mode"

// Sample is the dial state after one frame.
type Sample struct {
	Time  float64
	Menu  string
	Angle float64
	Index int
	Depth int
}

// ItemEvent is a selection change or activation.
type ItemEvent struct {
	Time  float64
	Menu  string
	Item  string
	Event string
}

type Trace struct {
	Name    string
	Dt      float64
	Samples []Sample
	Events  []ItemEvent
}

func (t *Trace) sample(m *mode.Mode) {
	ms := m.System()
	active := ms.ActiveMenu()
	t.Samples = append(t.Samples, Sample{
		Time:  m.Timeline().Now(),
		Menu:  active.Name,
		Angle: active.Rotation.Angle,
		Index: active.CurrentIndex(),
		Depth: ms.StackDepth(),
	})
}

func (t *Trace) Angles() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.Angle
	}
	return out
}

func (t *Trace) Indices() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = float64(s.Index)
	}
	return out
}

// Selections filters the events down to selects.
func (t *Trace) Selections() []ItemEvent {
	var out []ItemEvent
	for _, e := range t.Events {
		if e.Event == "select" {
			out = append(out, e)
		}
	}
	return out
}

func (t *Trace) Final() (Sample, bool) {
	if len(t.Samples) == 0 {
		return Sample{}, false
	}
	return t.Samples[len(t.Samples)-1], true
}

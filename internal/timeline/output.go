package timeline

// Tweenable values know how to interpolate toward another value of their type.
type Tweenable[T any] interface {
	Lerp(to T, t float64) T
}

// Float is a tweenable scalar.
type Float float64

func (f Float) Lerp(to Float, t float64) Float {
	return f + (to-f)*Float(t)
}

// Output is an animatable value. Motions write it; everything else reads it.
type Output[T Tweenable[T]] struct {
	value T
}

func NewOutput[T Tweenable[T]](v T) *Output[T] {
	return &Output[T]{value: v}
}

func (o *Output[T]) Get() T { return o.value }

// Set overwrites the value. A running motion keeps going from the new value
// on its next phase only, so callers normally Apply afterwards.
func (o *Output[T]) Set(v T) { o.value = v }

type phase[T any] struct {
	ramp   bool
	target T
	dur    float64
	ease   Ease
}

// Motion is a sequence of phases applied to one Output.
type Motion[T Tweenable[T]] struct {
	out      *Output[T]
	phases   []phase[T]
	idx      int
	elapsed  float64
	started  bool
	from     T
	onFinish func()
}

// Apply starts a new, empty motion on out, replacing any running one.
func Apply[T Tweenable[T]](tl *Timeline, out *Output[T]) *Motion[T] {
	m := &Motion[T]{out: out}
	tl.add(out, m)
	return m
}

// RampTo eases the output from wherever it is when the phase starts to target.
func (m *Motion[T]) RampTo(target T, dur float64, ease Ease) *Motion[T] {
	if ease == nil {
		ease = Linear
	}
	m.phases = append(m.phases, phase[T]{ramp: true, target: target, dur: dur, ease: ease})
	return m
}

// Hold keeps the output at target for dur seconds.
func (m *Motion[T]) Hold(target T, dur float64) *Motion[T] {
	m.phases = append(m.phases, phase[T]{target: target, dur: dur})
	return m
}

// OnFinish registers fn to run once all phases complete. It does not run if
// the motion is replaced or stopped first.
func (m *Motion[T]) OnFinish(fn func()) *Motion[T] {
	m.onFinish = fn
	return m
}

func (m *Motion[T]) advance(dt float64) bool {
	for m.idx < len(m.phases) {
		ph := m.phases[m.idx]
		if !m.started {
			m.from = m.out.value
			m.started = true
			if !ph.ramp {
				m.out.value = ph.target
			}
		}

		remaining := ph.dur - m.elapsed
		if dt < remaining {
			m.elapsed += dt
			if ph.ramp {
				m.out.value = m.from.Lerp(ph.target, ph.ease(m.elapsed/ph.dur))
			}
			return false
		}

		dt -= remaining
		m.out.value = ph.target
		m.idx++
		m.elapsed = 0
		m.started = false
	}
	return true
}

func (m *Motion[T]) finish() {
	if m.onFinish != nil {
		m.onFinish()
	}
}

package timeline

import (
	"errors"
	"math"
	"testing"
)

func TestScheduleFiresOnce(t *testing.T) {
	tl := New()
	count := 0
	tl.Schedule(0.5, func() { count++ })

	for i := 0; i < 4; i++ {
		tl.Step(0.1)
	}
	if count != 0 {
		t.Fatalf("fired early at t=%.2f", tl.Now())
	}

	for i := 0; i < 10; i++ {
		tl.Step(0.1)
	}
	if count != 1 {
		t.Errorf("expected 1 firing, got %d", count)
	}
	if tl.PendingCues() != 0 {
		t.Errorf("expected no pending cues, got %d", tl.PendingCues())
	}
}

func TestCueCancelIdempotent(t *testing.T) {
	tl := New()
	fired := false
	c := tl.Schedule(0.1, func() { fired = true })

	c.Cancel()
	c.Cancel()
	tl.Step(1)

	if fired {
		t.Error("cancelled cue fired")
	}
	if c.Pending() {
		t.Error("cancelled cue still pending")
	}

	var nilCue *Cue
	nilCue.Cancel()
}

func TestCueOrder(t *testing.T) {
	tl := New()
	var order []int
	tl.Schedule(0.3, func() { order = append(order, 3) })
	tl.Schedule(0.1, func() { order = append(order, 1) })
	tl.Schedule(0.2, func() { order = append(order, 2) })
	tl.Schedule(0.1, func() { order = append(order, 11) })

	tl.Step(1)

	expected := []int{1, 11, 2, 3}
	if len(order) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, order)
		}
	}
}

func TestCueCancelledByEarlierCallback(t *testing.T) {
	tl := New()
	fired := false
	var second *Cue
	tl.Schedule(0.1, func() { second.Cancel() })
	second = tl.Schedule(0.2, func() { fired = true })

	tl.Step(1)
	if fired {
		t.Error("expected second cue to be cancelled by the first")
	}
}

func TestTimerRearmSupersedes(t *testing.T) {
	tl := New()
	var timer Timer
	fires := 0

	timer.Arm(tl, 1.0, func() { fires++ })
	tl.Step(0.8)
	timer.Arm(tl, 1.0, func() { fires++ })
	tl.Step(0.8)

	if fires != 0 {
		t.Fatalf("expected first arm to be cancelled, got %d fires", fires)
	}

	tl.Step(0.3)
	if fires != 1 {
		t.Errorf("expected exactly 1 fire, got %d", fires)
	}
	if timer.Pending() {
		t.Error("timer should not be pending after firing")
	}

	timer.Cancel()
	timer.Cancel()
}

func TestRampTo(t *testing.T) {
	tl := New()
	out := NewOutput(Float(0))

	Apply(tl, out).RampTo(10, 1.0, Linear)

	tl.Step(0.5)
	if math.Abs(float64(out.Get())-5) > 1e-9 {
		t.Errorf("expected 5 at halfway, got %f", out.Get())
	}

	tl.Step(0.75)
	if out.Get() != 10 {
		t.Errorf("expected 10 after completion, got %f", out.Get())
	}
	if tl.Busy(out) {
		t.Error("motion should be finished")
	}
}

func TestRampHoldRampCarriesLeftover(t *testing.T) {
	tl := New()
	out := NewOutput(Float(0))
	finished := 0

	Apply(tl, out).
		RampTo(1, 0.2, Linear).
		Hold(1, 0.5).
		RampTo(0, 0.2, Linear).
		OnFinish(func() { finished++ })

	tl.Step(0.3)
	if out.Get() != 1 {
		t.Errorf("expected hold at 1, got %f", out.Get())
	}

	tl.Step(0.5)
	if math.Abs(float64(out.Get())-0.5) > 1e-9 {
		t.Errorf("expected 0.5 halfway down, got %f", out.Get())
	}

	tl.Step(1)
	if out.Get() != 0 || finished != 1 {
		t.Errorf("expected finished at 0 once, got %f after %d finishes", out.Get(), finished)
	}
}

func TestApplyReplacesWithoutFinishing(t *testing.T) {
	tl := New()
	out := NewOutput(Float(0))
	firstDone := false

	Apply(tl, out).RampTo(10, 1, Linear).OnFinish(func() { firstDone = true })
	tl.Step(0.5)
	Apply(tl, out).RampTo(0, 1, Linear)
	tl.Step(2)

	if firstDone {
		t.Error("replaced motion must not finish")
	}
	if out.Get() != 0 {
		t.Errorf("expected 0, got %f", out.Get())
	}
}

func TestFinishCanApplyAgain(t *testing.T) {
	tl := New()
	out := NewOutput(Float(0))

	Apply(tl, out).RampTo(1, 0.1, Linear).OnFinish(func() {
		Apply(tl, out).RampTo(2, 0.1, Linear)
	})

	tl.Step(0.1)
	if !tl.Busy(out) {
		t.Fatal("expected chained motion to be running")
	}
	tl.Step(0.1)
	if out.Get() != 2 {
		t.Errorf("expected 2, got %f", out.Get())
	}
}

func TestEase(t *testing.T) {
	for _, name := range EaseNames() {
		e, err := ParseEase(name)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		if math.Abs(e(0)) > 1e-9 || math.Abs(e(1)-1) > 1e-9 {
			t.Errorf("%s: expected endpoints 0 and 1, got %f and %f", name, e(0), e(1))
		}
	}

	if _, err := ParseEase("bounce"); !errors.Is(err, ErrUnknownEase) {
		t.Errorf("expected ErrUnknownEase, got %v", err)
	}

	if v := EaseInOutQuad(0.5); math.Abs(v-0.5) > 1e-9 {
		t.Errorf("expected in_out_quad midpoint 0.5, got %f", v)
	}
}

package menu

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/physics"
)

func TestNewMenuRejectsEmpty(t *testing.T) {
	m, err := NewMenu("empty")
	if !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
	if m != nil {
		t.Error("expected nil menu")
	}
}

func TestItemOwnership(t *testing.T) {
	shared := NewItem("shared")
	MustMenu("a", shared)

	if _, err := NewMenu("b", shared); !errors.Is(err, ErrItemOwned) {
		t.Errorf("expected ErrItemOwned, got %v", err)
	}

	parentA := NewItem("pa")
	parentB := NewItem("pb")
	root := MustMenu("root", parentA, parentB)
	sub := MustMenu("sub", NewItem("leaf"))

	if err := parentA.SetSubmenu(sub); err != nil {
		t.Fatalf("set submenu: %v", err)
	}
	if err := parentB.SetSubmenu(sub); !errors.Is(err, ErrSubmenuOwned) {
		t.Errorf("expected ErrSubmenuOwned, got %v", err)
	}
	if err := sub.Item(0).SetSubmenu(root); !errors.Is(err, ErrCycle) {
		t.Errorf("expected ErrCycle, got %v", err)
	}
	if sub.Owner() != parentA {
		t.Error("expected sub to stay owned by pa")
	}

	if err := parentA.SetSubmenu(nil); err != nil {
		t.Fatal(err)
	}
	if err := parentB.SetSubmenu(sub); err != nil {
		t.Errorf("expected detached submenu to be adoptable, got %v", err)
	}
	if root.Find("sub") != sub || root.Find("nope") != nil {
		t.Error("unexpected Find result")
	}
}

func TestCurrentIndexInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for n := 1; n <= 9; n++ {
		h := newHarness(DefaultOptions())
		m := MustMenu("m", make4(n)...)
		h.ms.ActivateMenu(m)

		for i := 0; i < 400; i++ {
			if rng.Intn(3) == 0 {
				h.ms.Turn((rng.Float64() - 0.5) * 30)
			}
			h.tick()
			if idx := m.CurrentIndex(); idx < 0 || idx >= n {
				t.Fatalf("n=%d tick %d: index %d out of range", n, i, idx)
			}
			if a := m.Rotation.Angle; a < 0 || a >= physics.TwoPi {
				t.Fatalf("n=%d tick %d: angle %f out of range", n, i, a)
			}
		}
	}
}

func make4(n int) []*Item {
	items := make([]*Item, n)
	for i := range items {
		items[i] = NewItem("it")
	}
	return items
}

func TestVisibleItems(t *testing.T) {
	m := MustMenu("m", make4(4)...)

	tests := []struct {
		slots    float64
		expected []int
	}{
		{1.0, []int{1}},
		{1.2, []int{1}},
		{1.3, []int{1, 2}},
		{0.7, []int{1, 0}},
		{0.2, []int{0}},
		{3.6, []int{0, 3}},
		{3.8, []int{0}},
	}

	for _, tt := range tests {
		m.Rotation.SetAngle(tt.slots / 4 * physics.TwoPi)
		m.updateIndex()
		got := m.VisibleItems()
		if len(got) != len(tt.expected) {
			t.Errorf("slots %.1f: expected %v, got %v", tt.slots, tt.expected, got)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("slots %.1f: expected %v, got %v", tt.slots, tt.expected, got)
			}
		}
	}
}

func TestRenderCullsToVisible(t *testing.T) {
	m := MustMenu("m", make4(6)...)
	rec := gfx.NewRecorder()

	m.Rotation.SetAngle(2.0 / 6 * physics.TwoPi)
	m.updateIndex()
	m.render(rec)
	if got := rec.Count("circle"); got != 1 {
		t.Errorf("expected 1 item drawn on a slot, got %d", got)
	}

	rec.Reset()
	m.Rotation.SetAngle(2.4 / 6 * physics.TwoPi)
	m.updateIndex()
	m.render(rec)
	if got := rec.Count("circle"); got != 2 {
		t.Errorf("expected 2 items drawn between slots, got %d", got)
	}
	if rec.Count("save") != rec.Count("restore") {
		t.Error("unbalanced save/restore")
	}
}

func TestDebounceNeverFiresWhileTurning(t *testing.T) {
	log := &eventLog{}
	opts := DefaultOptions()
	h := newHarness(opts)
	m := trackedMenu(log, "m", 5)
	h.ms.ActivateMenu(m)

	// gaps of 0.3s against a 0.35s window
	for turn := 0; turn < 12; turn++ {
		h.ms.Turn(0.05)
		for i := 0; i < 19; i++ {
			h.tick()
		}
	}
	if n := log.countEvent("select"); n != 0 {
		t.Fatalf("expected no selection while turning, got %d", n)
	}

	h.run(opts.DebounceWindow + 0.2)
	if n := log.countEvent("select"); n != 1 {
		t.Fatalf("expected exactly one selection after going quiet, got %d", n)
	}
	active := m.ActiveItem()
	if active == nil || active != m.Item(m.CurrentIndex()) {
		t.Fatalf("expected active item at current index %d, got %v", m.CurrentIndex(), active)
	}
	if log.count("select", active.Name) != 1 {
		t.Errorf("expected the selection on %s", active.Name)
	}

	h.run(2)
	if n := log.countEvent("select"); n != 1 {
		t.Errorf("expected selection to stay committed once, got %d", n)
	}
}

func TestDebounceBoundary(t *testing.T) {
	log := &eventLog{}
	opts := DefaultOptions()
	opts.DebounceWindow = 16 * frame
	h := newHarness(opts)
	m := trackedMenu(log, "m", 5)
	h.ms.ActivateMenu(m)

	// a quiet gap of exactly the window does not commit
	for turn := 0; turn < 5; turn++ {
		h.ms.Turn(0.05)
		for i := 0; i < 16; i++ {
			h.tick()
		}
	}
	if n := log.countEvent("select"); n != 0 {
		t.Fatalf("expected no selection on gaps of exactly the window, got %d", n)
	}

	h.tick()
	if n := log.countEvent("select"); n != 1 {
		t.Fatalf("expected one selection once the gap exceeds the window, got %d", n)
	}
}

func TestSelectDeselectAlternate(t *testing.T) {
	log := &eventLog{}
	h := newHarness(DefaultOptions())
	m := trackedMenu(log, "m", 3)
	h.ms.ActivateMenu(m)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 3000; i++ {
		if rng.Intn(40) == 0 {
			h.ms.Turn((rng.Float64() - 0.5) * 4)
		}
		h.tick()
	}

	selected := false
	for _, e := range log.events {
		switch e[:6] {
		case "select":
			if selected {
				t.Fatalf("two selects without a deselect: %v", log.events)
			}
			selected = true
		case "desele":
			if !selected {
				t.Fatalf("deselect without a select: %v", log.events)
			}
			selected = false
		}
	}
	if log.countEvent("select") == 0 {
		t.Error("expected at least one selection")
	}
}

func TestEndToEndOneSlot(t *testing.T) {
	tests := []struct {
		name     string
		friction float64
	}{
		{"fully damped", 1},
		{"default friction", 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &eventLog{}
			opts := DefaultOptions()
			opts.FrictionIdle = tt.friction
			h := newHarness(opts)
			m := trackedMenu(log, "m", 4)
			h.ms.ActivateMenu(m)

			// total travel of an impulse d under friction f is d/f
			h.ms.Turn(physics.TwoPi * tt.friction)
			h.run(opts.DebounceWindow + 0.25)

			if m.CurrentIndex() != 1 {
				t.Fatalf("expected index 1, got %d (angle %f)", m.CurrentIndex(), m.Rotation.Angle)
			}
			if n := log.count("select", "m1"); n != 1 {
				t.Errorf("expected one select on item 1, got %d", n)
			}
			if n := log.count("select", "m0"); n != 0 {
				t.Errorf("expected no select on item 0, got %d", n)
			}

			h.run(1)
			if math.Abs(m.Rotation.Angle-math.Pi/2) > 1e-3 {
				t.Errorf("expected rotation to settle on π/2, got %f", m.Rotation.Angle)
			}
		})
	}
}

func TestTurnDeselectsAndHidesLabel(t *testing.T) {
	log := &eventLog{}
	h := newHarness(DefaultOptions())
	m := trackedMenu(log, "m", 3)
	m.Item(0).Label = StaticLabel("zero")
	h.ms.ActivateMenu(m)

	h.run(0.6)
	if text, opacity := h.ms.Label(); text != "zero" || opacity <= 0 {
		t.Fatalf("expected label zero to be showing, got %q at %.2f", text, opacity)
	}

	h.ms.Turn(0.01)
	h.ms.Turn(0.01)
	if m.ActiveItem() != nil {
		t.Error("expected turn to clear the selection")
	}
	if n := log.count("deselect", "m0"); n != 1 {
		t.Errorf("expected one deselect, got %d", n)
	}

	h.run(0.25)
	if _, opacity := h.ms.Label(); opacity != 0 {
		t.Errorf("expected label hidden, opacity %.2f", opacity)
	}
}

func TestTurnReleasesPressedItem(t *testing.T) {
	log := &eventLog{}
	h := newHarness(DefaultOptions())
	m := trackedMenu(log, "m", 3)
	h.ms.ActivateMenu(m)
	h.run(0.5)

	h.ms.PressItem()
	if m.PressedItem() != m.Item(0) {
		t.Fatal("expected item 0 pressed")
	}
	h.ms.Turn(0.1)

	if m.PressedItem() != nil {
		t.Error("expected press to be released by the turn")
	}
	if log.count("release", "m0") != 1 || log.count("deselect", "m0") != 1 {
		t.Errorf("expected release then deselect, got %v", log.events)
	}
	rel, des := -1, -1
	for i, e := range log.events {
		switch e {
		case "release:m0":
			rel = i
		case "deselect:m0":
			des = i
		}
	}
	if rel > des {
		t.Errorf("expected release before deselect, got %v", log.events)
	}
}

func TestDefaultHandlersAnimate(t *testing.T) {
	h := newHarness(DefaultOptions())
	it := NewItem("a")
	it.ActiveTint = gfx.Hex(0xff0000)
	m := MustMenu("m", it, NewItem("b"))
	h.ms.ActivateMenu(m)

	h.run(0.8)
	if s := float64(it.Scale.Get()); s != selectedScale {
		t.Errorf("expected selected scale, got %f", s)
	}
	if it.Color.Get() != it.ActiveTint {
		t.Errorf("expected active tint, got %v", it.Color.Get())
	}

	h.ms.PressItem()
	h.run(0.3)
	if s := float64(it.Scale.Get()); s != deselectedScale {
		t.Errorf("expected pressed scale, got %f", s)
	}
}

func TestHoldToConfirm(t *testing.T) {
	h := newHarness(DefaultOptions())
	d := NewDetailView(1.0)

	d.Press(h.tl)
	for h.tl.Now() < 0.2 {
		h.tick()
	}
	d.Release(h.tl)

	if !d.Expanded() || d.Collapses() != 0 {
		t.Fatal("expected detail view to stay open after an early release")
	}

	for h.tl.Now() < 1.0-frame {
		h.tick()
	}
	if !d.Expanded() {
		t.Fatal("collapsed before the minimum duration")
	}

	h.tick() // t = 1.0, auto-release fires
	if d.Expanded() || d.Collapses() != 1 {
		t.Fatalf("expected one collapse at t=1.0, expanded=%v collapses=%d", d.Expanded(), d.Collapses())
	}

	h.run(2)
	d.Release(h.tl)
	if d.Collapses() != 1 {
		t.Errorf("expected collapse exactly once, got %d", d.Collapses())
	}
	if float64(d.Detail.Get()) != 0 || float64(d.General.Get()) != 1 {
		t.Error("expected views back in the general pose")
	}
}

func TestHoldToConfirmLongPress(t *testing.T) {
	h := newHarness(DefaultOptions())
	d := NewDetailView(1.0)

	d.Press(h.tl)
	h.run(1.5)
	if !d.Expanded() {
		t.Fatal("expected detail view to stay open while held")
	}

	d.Release(h.tl)
	if d.Expanded() || d.Collapses() != 1 {
		t.Fatal("expected immediate collapse after a long hold")
	}
	if h.tl.PendingCues() != 0 {
		t.Error("expected no auto-release left pending")
	}
}

func TestHoldToConfirmRepress(t *testing.T) {
	h := newHarness(DefaultOptions())
	d := NewDetailView(1.0)

	d.Press(h.tl)
	h.run(0.1)
	d.Release(h.tl)
	h.run(0.3)
	d.Press(h.tl)
	h.run(0.8)

	if !d.Expanded() {
		t.Fatal("re-press must re-arm and cancel the earlier auto-release")
	}
	if d.Collapses() != 0 {
		t.Errorf("expected no collapse yet, got %d", d.Collapses())
	}
}

func TestDetailViewOnItem(t *testing.T) {
	h := newHarness(DefaultOptions())
	it := NewItem("stats")
	d := NewDetailView(0.5)
	var drawn []string
	d.Install(it,
		func(p gfx.Painter, _ *Item) { drawn = append(drawn, "general") },
		func(p gfx.Painter, _ *Item) { drawn = append(drawn, "detail") },
	)
	m := MustMenu("m", it)
	h.ms.ActivateMenu(m)
	h.run(0.5)

	h.ms.PressItem()
	h.run(0.3)
	drawn = nil
	h.ms.Draw(gfx.NewRecorder())
	if len(drawn) != 1 || drawn[0] != "detail" {
		t.Errorf("expected only the detail view drawn while held, got %v", drawn)
	}

	h.ms.ReleaseItem()
	if !d.Expanded() {
		t.Error("expected early release to keep detail open")
	}
	h.run(0.5)
	if d.Expanded() {
		t.Error("expected auto-release to close detail")
	}
}

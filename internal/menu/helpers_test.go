package menu

import (
	"fmt"

	"github.com/san-kum/dialnav/internal/timeline"
)

const frame = 1.0 / 64

// eventLog records handler invocations as "event:item".
type eventLog struct {
	events []string
}

func (l *eventLog) count(event, item string) int {
	n := 0
	want := event + ":" + item
	for _, e := range l.events {
		if e == want {
			n++
		}
	}
	return n
}

func (l *eventLog) countEvent(event string) int {
	n := 0
	for _, e := range l.events {
		if len(e) > len(event) && e[:len(event)+1] == event+":" {
			n++
		}
	}
	return n
}

// tracked wraps an item's default handlers so every dispatch is logged.
func tracked(log *eventLog, it *Item) *Item {
	h := it.Handlers
	wrap := func(event string, next HandlerFunc) HandlerFunc {
		return func(ms *System, it *Item) {
			log.events = append(log.events, event+":"+it.Name)
			if next != nil {
				next(ms, it)
			}
		}
	}
	it.Handlers.Select = wrap("select", h.Select)
	it.Handlers.Deselect = wrap("deselect", h.Deselect)
	it.Handlers.Press = wrap("press", h.Press)
	it.Handlers.Release = wrap("release", h.Release)
	it.Handlers.Activate = wrap("activate", h.Activate)
	return it
}

func trackedMenu(log *eventLog, name string, n int) *Menu {
	items := make([]*Item, n)
	for i := range items {
		items[i] = tracked(log, NewItem(fmt.Sprintf("%s%d", name, i)))
	}
	return MustMenu(name, items...)
}

type harness struct {
	tl *timeline.Timeline
	ms *System
}

func newHarness(opts Options) *harness {
	tl := timeline.New()
	return &harness{tl: tl, ms: NewSystem(tl, opts)}
}

func (h *harness) tick() {
	h.tl.Step(frame)
	h.ms.Update()
}

func (h *harness) run(seconds float64) {
	for end := h.tl.Now() + seconds; h.tl.Now() < end; {
		h.tick()
	}
}

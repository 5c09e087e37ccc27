package timeline

import "sort"

// Clock reports the current mode time in seconds.
type Clock interface {
	Now() float64
}

type Timeline struct {
	now    float64
	seq    uint64
	cues   []*Cue
	tracks []*entry
}

type track interface {
	advance(dt float64) bool
	finish()
}

type entry struct {
	key  any
	t    track
	dead bool
}

func New() *Timeline {
	return &Timeline{}
}

func (tl *Timeline) Now() float64 { return tl.now }

// Step advances the clock by dt, runs all motions, then fires due cues in
// schedule order. Callbacks may schedule or apply further work; anything due
// at the new time that was scheduled during this step waits for the next one.
func (tl *Timeline) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	tl.now += dt

	var finished []track
	live := tl.tracks[:0]
	for _, e := range tl.tracks {
		if e.dead {
			continue
		}
		if e.t.advance(dt) {
			e.dead = true
			finished = append(finished, e.t)
			continue
		}
		live = append(live, e)
	}
	for i := len(live); i < len(tl.tracks); i++ {
		tl.tracks[i] = nil
	}
	tl.tracks = live

	for _, t := range finished {
		t.finish()
	}

	tl.fireDue()
}

func (tl *Timeline) fireDue() {
	if len(tl.cues) == 0 {
		return
	}
	var due []*Cue
	pending := tl.cues[:0]
	for _, c := range tl.cues {
		switch {
		case c.cancelled:
		case c.at <= tl.now:
			due = append(due, c)
		default:
			pending = append(pending, c)
		}
	}
	for i := len(pending); i < len(tl.cues); i++ {
		tl.cues[i] = nil
	}
	tl.cues = pending

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, c := range due {
		// an earlier callback in this batch may have cancelled it
		if c.cancelled {
			continue
		}
		c.fired = true
		c.fn()
	}
}

// Schedule runs fn once, delay seconds from now.
func (tl *Timeline) Schedule(delay float64, fn func()) *Cue {
	if delay < 0 {
		delay = 0
	}
	tl.seq++
	c := &Cue{at: tl.now + delay, seq: tl.seq, fn: fn}
	tl.cues = append(tl.cues, c)
	return c
}

// Busy reports whether key has a running motion.
func (tl *Timeline) Busy(key any) bool {
	for _, e := range tl.tracks {
		if e.key == key && !e.dead {
			return true
		}
	}
	return false
}

// Stop drops the motion running on key, if any, without finishing it.
func (tl *Timeline) Stop(key any) {
	for _, e := range tl.tracks {
		if e.key == key {
			e.dead = true
		}
	}
}

// PendingCues counts cues that have neither fired nor been cancelled.
func (tl *Timeline) PendingCues() int {
	n := 0
	for _, c := range tl.cues {
		if !c.cancelled {
			n++
		}
	}
	return n
}

func (tl *Timeline) add(key any, t track) {
	tl.Stop(key)
	tl.tracks = append(tl.tracks, &entry{key: key, t: t})
}

// Cue is a scheduled one-shot callback.
type Cue struct {
	at        float64
	seq       uint64
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel prevents the cue from firing. Safe to call repeatedly, after it
// fired, or on a nil cue.
func (c *Cue) Cancel() {
	if c == nil {
		return
	}
	c.cancelled = true
}

func (c *Cue) Pending() bool {
	return c != nil && !c.cancelled && !c.fired
}

func (c *Cue) Fired() bool {
	return c != nil && c.fired
}

// Timer holds at most one armed cue. Arming again cancels the previous cue
// first, so each arm cycle fires at most once.
type Timer struct {
	cue *Cue
}

func (t *Timer) Arm(tl *Timeline, delay float64, fn func()) {
	t.cue.Cancel()
	t.cue = tl.Schedule(delay, fn)
}

func (t *Timer) Cancel() {
	t.cue.Cancel()
	t.cue = nil
}

func (t *Timer) Pending() bool {
	return t.cue.Pending()
}

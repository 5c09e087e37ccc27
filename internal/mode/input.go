package mode

import "github.com/san-kum/dialnav/internal/timeline"

// Every input wakes the display. Input that arrives while daydreaming only
// wakes it and is otherwise dropped.

func (m *Mode) Turn(amount float64) {
	if m.wake() {
		m.ms.Turn(amount)
	}
}

// TurnSteps turns by n detents of the configured step.
func (m *Mode) TurnSteps(n int) {
	m.Turn(float64(n) * m.cfg.Dial.TurnStep)
}

func (m *Mode) Press() {
	if m.wake() {
		m.ms.PressItem()
	}
}

func (m *Mode) Release() {
	if m.wake() {
		m.ms.ReleaseItem()
	}
}

func (m *Mode) Activate() {
	if m.wake() {
		m.ms.ActivateItem()
	}
}

func (m *Mode) ReleaseAndActivate() {
	if m.wake() {
		m.ms.ReleaseAndActivateItem()
	}
}

// Click is a full press and release of the confirm button.
func (m *Mode) Click() {
	if m.wake() {
		m.ms.PressItem()
		m.ms.ReleaseAndActivateItem()
	}
}

func (m *Mode) Back() {
	if m.wake() {
		m.ms.ActivatePreviousMenu()
	}
}

func (m *Mode) IndicateBack() {
	if m.wake() {
		m.ms.IndicatePreviousMenu()
	}
}

// wake re-arms the idle timer and reports whether the input should be
// acted on.
func (m *Mode) wake() bool {
	m.armDaydream()
	if !m.daydreaming {
		return true
	}
	m.daydreaming = false
	timeline.Apply(m.tl, m.dim).RampTo(0, daydreamFade/2, timeline.EaseOutQuad)
	m.log.Debug("waking")
	return false
}

func (m *Mode) armDaydream() {
	if m.cfg.DaydreamTimeout <= 0 {
		return
	}
	m.daydream.Arm(m.tl, m.cfg.DaydreamTimeout, m.enterDaydream)
}

func (m *Mode) enterDaydream() {
	if m.daydreaming {
		return
	}
	m.daydreaming = true
	timeline.Apply(m.tl, m.dim).RampTo(1, daydreamFade, timeline.EaseInOutQuad)
	m.log.Debug("daydreaming", "idle", m.cfg.DaydreamTimeout)
	if m.daydreamer != nil {
		m.daydreamer.Daydreamed()
	}
}

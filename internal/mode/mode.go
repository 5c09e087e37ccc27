package mode

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/san-kum/dialnav/internal/config"
	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/logger"
	"github.com/san-kum/dialnav/internal/menu"
	"github.com/san-kum/dialnav/internal/timeline"
)

const daydreamFade = 0.5

// Daydreamer is notified when the display goes idle.
type Daydreamer interface {
	Daydreamed()
}

type Deps struct {
	Log      *slog.Logger
	Observer menu.Observer
	Registry *Registry
}

// Mode owns one running menu: its timeline, menu system and idle timer.
// Front-ends feed it input and call Update and Draw once per frame.
type Mode struct {
	// OnAction runs after an action item fires.
	OnAction func(name string)

	cfg     *config.Config
	log     *slog.Logger
	session uuid.UUID

	tl   *timeline.Timeline
	ms   *menu.System
	root *menu.Menu

	daydreamer  Daydreamer
	daydream    timeline.Timer
	daydreaming bool
	dim         *timeline.Output[timeline.Float]

	frames int
}

// New builds the menu tree described by cfg.
func New(cfg *config.Config, deps Deps) (*Mode, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	if deps.Log == nil {
		deps.Log = logger.Discard()
	}
	if deps.Registry == nil {
		deps.Registry = NewRegistry()
	}

	session := uuid.New()
	m := &Mode{
		cfg:     cfg,
		log:     deps.Log.With("session", session.String()),
		session: session,
		tl:      timeline.New(),
		dim:     timeline.NewOutput(timeline.Float(0)),
	}
	m.ms = menu.NewSystem(m.tl, opts)
	m.ms.SetObserver(menu.Observers(&logObserver{log: m.log}, deps.Observer))
	if d, ok := deps.Observer.(Daydreamer); ok {
		m.daydreamer = d
	}

	b := &Builder{mode: m, reg: deps.Registry}
	m.root, err = b.Menu(cfg.Menu.Name, cfg.Menu.Items)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Init shows the root menu and starts the idle timer.
func (m *Mode) Init() {
	m.ms.ActivateMenu(m.root)
	m.armDaydream()
	m.log.Info("mode started", "items", m.cfg.Menu.Count())
}

// Update advances animation by dt seconds and runs one physics tick.
func (m *Mode) Update(dt float64) {
	m.tl.Step(dt)
	m.ms.Update()
	m.frames++
}

func (m *Mode) Draw(p gfx.Painter) {
	m.ms.Draw(p)

	if dim := float64(m.dim.Get()); dim > 0 {
		p.BeginPath()
		p.Rect(gfx.Vec2{}, m.ms.Options().Viewport)
		p.FillColor(gfx.Black.WithAlpha(dim * 0.8))
		p.Fill()
	}
}

// Shutdown stops the idle timer. The mode must not be used afterwards.
func (m *Mode) Shutdown() {
	m.daydream.Cancel()
	m.log.Info("mode stopped", "frames", m.frames, "seconds", m.tl.Now())
}

func (m *Mode) Config() *config.Config       { return m.cfg }
func (m *Mode) System() *menu.System         { return m.ms }
func (m *Mode) Timeline() *timeline.Timeline { return m.tl }
func (m *Mode) Root() *menu.Menu             { return m.root }
func (m *Mode) Session() string              { return m.session.String() }
func (m *Mode) Daydreaming() bool            { return m.daydreaming }
func (m *Mode) Frames() int                  { return m.frames }

// Dim is how far the idle fade has progressed, 0 awake and 1 asleep.
func (m *Mode) Dim() float64 { return float64(m.dim.Get()) }

package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dialnav/internal/config"
	"github.com/san-kum/dialnav/internal/menu"
	"github.com/san-kum/dialnav/internal/mode"
)

var ErrUnknownAction = errors.New("automation: unknown action")

// Actions a scenario event may perform.
const (
	ActionTurn            = "turn"
	ActionSteps           = "steps"
	ActionPress           = "press"
	ActionRelease         = "release"
	ActionClick           = "click"
	ActionActivate        = "activate"
	ActionReleaseActivate = "release_activate"
	ActionBack            = "back"
	ActionIndicate        = "indicate"
)

// Scenario is a scripted input sequence replayed against a fresh mode.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Preset      string  `yaml:"preset,omitempty"`
	Duration    float64 `yaml:"duration"`
	Events      []Event `yaml:"events"`
}

// Event is one input at a point in simulated time.
type Event struct {
	At     float64 `yaml:"at"`
	Action string  `yaml:"action"`
	Amount float64 `yaml:"amount,omitempty"`
	Steps  int     `yaml:"steps,omitempty"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &scenario, nil
}

// Validate checks actions and orders events by time.
func (s *Scenario) Validate() error {
	for i, ev := range s.Events {
		switch ev.Action {
		case ActionTurn, ActionSteps, ActionPress, ActionRelease, ActionClick,
			ActionActivate, ActionReleaseActivate, ActionBack, ActionIndicate:
		default:
			return fmt.Errorf("%w: event %d: %q", ErrUnknownAction, i+1, ev.Action)
		}
		if ev.At < 0 {
			return fmt.Errorf("automation: event %d at negative time %g", i+1, ev.At)
		}
	}
	sort.SliceStable(s.Events, func(i, j int) bool { return s.Events[i].At < s.Events[j].At })
	return nil
}

// End is the scenario duration, or one second past the last event.
func (s *Scenario) End() float64 {
	if s.Duration > 0 {
		return s.Duration
	}
	if len(s.Events) == 0 {
		return 1
	}
	return s.Events[len(s.Events)-1].At + 1
}

func apply(m *mode.Mode, ev Event) {
	switch ev.Action {
	case ActionTurn:
		m.Turn(ev.Amount)
	case ActionSteps:
		m.TurnSteps(ev.Steps)
	case ActionPress:
		m.Press()
	case ActionRelease:
		m.Release()
	case ActionClick:
		m.Click()
	case ActionActivate:
		m.Activate()
	case ActionReleaseActivate:
		m.ReleaseAndActivate()
	case ActionBack:
		m.Back()
	case ActionIndicate:
		m.IndicateBack()
	}
}

// Run replays the scenario frame by frame at the configured frame rate and
// records the dial and every item event.
func Run(ctx context.Context, cfg *config.Config, scenario *Scenario, log *slog.Logger) (*Trace, error) {
	rec := &recorder{}
	m, err := mode.New(cfg, mode.Deps{Log: log, Observer: rec})
	if err != nil {
		return nil, err
	}
	m.Init()
	defer m.Shutdown()

	trace := &Trace{Name: scenario.Name, Dt: cfg.FrameDt()}
	rec.trace = trace
	rec.mode = m

	end := scenario.End()
	next := 0
	for frame := 0; m.Timeline().Now() < end; frame++ {
		if frame%64 == 0 {
			if err := ctx.Err(); err != nil {
				return trace, err
			}
		}
		for next < len(scenario.Events) && scenario.Events[next].At <= m.Timeline().Now() {
			apply(m, scenario.Events[next])
			next++
		}
		m.Update(cfg.FrameDt())
		trace.sample(m)
	}

	return trace, nil
}

// RandomScenario generates rate input events per second of random turns and
// button presses.
func RandomScenario(seed int64, duration, rate float64) *Scenario {
	rng := rand.New(rand.NewSource(seed))
	actions := []string{ActionTurn, ActionTurn, ActionTurn, ActionClick, ActionBack, ActionPress, ActionReleaseActivate}

	s := &Scenario{
		Name:     fmt.Sprintf("random-%d", seed),
		Duration: duration,
	}
	for t := 0.0; t < duration; t += rng.ExpFloat64() / rate {
		ev := Event{At: t, Action: actions[rng.Intn(len(actions))]}
		if ev.Action == ActionTurn {
			ev.Amount = (rng.Float64() - 0.5) * 8
		}
		s.Events = append(s.Events, ev)
	}
	return s
}

// recorder copies item events into the trace.
type recorder struct {
	menu.NopObserver
	trace *Trace
	mode  *mode.Mode
}

func (r *recorder) event(m *menu.Menu, it *menu.Item, kind string) {
	if r.trace == nil {
		return
	}
	r.trace.Events = append(r.trace.Events, ItemEvent{
		Time:  r.mode.Timeline().Now(),
		Menu:  m.Name,
		Item:  it.Name,
		Event: kind,
	})
}

func (r *recorder) ItemSelected(m *menu.Menu, it *menu.Item)   { r.event(m, it, "select") }
func (r *recorder) ItemDeselected(m *menu.Menu, it *menu.Item) { r.event(m, it, "deselect") }
func (r *recorder) ItemActivated(m *menu.Menu, it *menu.Item)  { r.event(m, it, "activate") }

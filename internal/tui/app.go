// Package tui runs a mode in the terminal with bubbletea.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/mode"
)

// Clicker gives feedback each time the dial passes a detent.
type Clicker interface {
	Click()
}

type TickMsg time.Time

type Options struct {
	Theme   string
	Clicker Clicker
}

type Model struct {
	mode    *mode.Mode
	canvas  *gfx.Canvas
	theme   Theme
	clicker Clicker

	frameDt   time.Duration
	lastIndex int
	lastMenu  string
	paused    bool

	width, height int
}

// New sizes a braille canvas so one dot is one viewport unit.
func New(m *mode.Mode, opts Options) Model {
	cfg := m.Config()
	cols := int(cfg.Viewport.Width+1) / 2
	rows := int(cfg.Viewport.Height+3) / 4
	return Model{
		mode:     m,
		canvas:   gfx.NewCanvas(cols, rows),
		theme:    GetTheme(opts.Theme),
		clicker:  opts.Clicker,
		frameDt:  time.Duration(cfg.FrameDt() * float64(time.Second)),
		lastMenu: m.Root().Name,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frameDt, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.mode.TurnSteps(-1)
		case tea.MouseButtonWheelDown:
			m.mode.TurnSteps(1)
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case TickMsg:
		if !m.paused {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.mode.Update(m.mode.Config().FrameDt())

	active := m.mode.System().ActiveMenu()
	if active.Name == m.lastMenu && active.CurrentIndex() != m.lastIndex && m.clicker != nil {
		m.clicker.Click()
	}
	m.lastMenu, m.lastIndex = active.Name, active.CurrentIndex()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "right", "l":
		m.mode.TurnSteps(1)
	case "left", "h":
		m.mode.TurnSteps(-1)
	case "L":
		m.mode.TurnSteps(4)
	case "H":
		m.mode.TurnSteps(-4)
	case " ", "enter":
		m.mode.Click()
	case "p":
		m.mode.Press()
	case "r":
		m.mode.ReleaseAndActivate()
	case "backspace", "esc":
		m.mode.Back()
	case "b":
		m.mode.IndicateBack()
	case "tab":
		m.paused = !m.paused
	}
	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	m.mode.Draw(m.canvas)

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Frame).
		Render(RenderCanvas(m.canvas))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.title(),
		frame,
		m.status(),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("←/→ turn  space select  p/r hold  esc back  q quit"),
	)
}

func (m Model) title() string {
	ms := m.mode.System()
	crumbs := []string{m.mode.Root().Name}
	if active := ms.ActiveMenu(); active != m.mode.Root() {
		if ms.StackDepth() > 1 {
			crumbs = append(crumbs, "…")
		}
		crumbs = append(crumbs, active.Name)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(m.theme.Title).Render(strings.Join(crumbs, " › "))
}

func (m Model) status() string {
	ms := m.mode.System()
	active := ms.ActiveMenu()
	text := lipgloss.NewStyle().Foreground(m.theme.Text)
	accent := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)

	item := "-"
	if it := ms.ActiveItem(); it != nil {
		item = it.Name
	}
	line := fmt.Sprintf("%s %d/%d  %s",
		text.Render("slot"), active.CurrentIndex()+1, active.Len(), accent.Render(item))

	if label, opacity := ms.Label(); opacity > 0 && label != "" {
		line += "  " + text.Render(label)
	}
	if m.mode.Daydreaming() {
		line += "  " + lipgloss.NewStyle().Foreground(m.theme.Muted).Render("zz")
	}
	if m.paused {
		line += "  " + accent.Render("PAUSED")
	}
	return line
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, m *mode.Mode, opts Options) error {
	p := tea.NewProgram(New(m, opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

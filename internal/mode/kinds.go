package mode

import (
	"github.com/san-kum/dialnav/internal/config"
	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/menu"
)

var (
	toggleOn  = gfx.Hex(0x3ad57b)
	toggleOff = gfx.Hex(0x808080)
)

// newItem applies the fields every kind shares: label, tint and tile glyph.
func newItem(def config.ItemDef) *menu.Item {
	it := menu.NewItem(def.Name)
	label := displayName(def)
	it.Label = menu.StaticLabel(label)
	if def.Color != "" {
		// validated by config
		c, _ := gfx.ParseHex(def.Color)
		it.ActiveTint = c
		it.Tint = gfx.Black.Lerp(c, 0.4)
		it.Color.Set(it.Tint)
	}
	it.Handlers.Draw = glyphDraw(label)
	return it
}

func displayName(def config.ItemDef) string {
	if def.Label != "" {
		return def.Label
	}
	return def.Name
}

// glyphDraw paints the default disc with the label's first letter on top.
func glyphDraw(label string) menu.DrawFunc {
	glyph := ""
	for _, r := range label {
		glyph = string(r)
		break
	}
	return func(p gfx.Painter, it *menu.Item) {
		menu.DefaultDraw(p, it)
		if glyph == "" {
			return
		}
		p.TextAlign(gfx.AlignCenter | gfx.AlignMiddle)
		p.FontSize(24)
		p.FillColor(gfx.White)
		if it.Color.Get().Luma() > 0.6 {
			p.FillColor(gfx.Black)
		}
		p.FillText(glyph)
	}
}

func buildSubmenu(b *Builder, def config.ItemDef) (*menu.Item, error) {
	child, err := b.Menu(def.Name, def.Items)
	if err != nil {
		return nil, err
	}
	it := newItem(def)
	if err := it.SetSubmenu(child); err != nil {
		return nil, err
	}
	return it, nil
}

// Toggle is the state behind a toggle item.
type Toggle struct {
	Label string
	On    bool
}

func (t *Toggle) text() string {
	if t.On {
		return t.Label + ": on"
	}
	return t.Label + ": off"
}

func (t *Toggle) tint() gfx.Color {
	if t.On {
		return toggleOn
	}
	return toggleOff
}

func buildToggle(b *Builder, def config.ItemDef) (*menu.Item, error) {
	it := newItem(def)
	state := &Toggle{Label: displayName(def), On: def.Value}
	it.Data = state
	it.Label = func(*menu.Item) string { return state.text() }
	it.ActiveTint = state.tint()

	it.Handlers.Activate = func(ms *menu.System, it *menu.Item) {
		state.On = !state.On
		it.ActiveTint = state.tint()
		menu.DefaultRelease(ms, it)
		ms.DisplayLabel(state.text(), ms.Options().LabelDuration)
		b.mode.log.Debug("toggle", "item", it.Name, "on", state.On)
	}
	return it, nil
}

func buildDetail(b *Builder, def config.ItemDef) (*menu.Item, error) {
	it := newItem(def)
	view := menu.NewDetailView(b.mode.cfg.MinimumHold)
	view.OnCollapse = func() {
		b.mode.log.Debug("detail collapsed", "item", def.Name)
	}
	it.Data = view

	text := def.Detail
	view.Install(it, it.Handlers.Draw, func(p gfx.Painter, it *menu.Item) {
		menu.DefaultDraw(p, it)
		p.TextAlign(gfx.AlignCenter | gfx.AlignMiddle)
		p.FontSize(12)
		p.FillColor(gfx.White)
		p.FillText(text)
	})
	// the hold itself is the interaction
	it.Handlers.Activate = nil
	return it, nil
}

func buildAction(b *Builder, def config.ItemDef) (*menu.Item, error) {
	it := newItem(def)
	done := "✓ " + displayName(def)
	it.Handlers.Activate = func(ms *menu.System, it *menu.Item) {
		ms.DisplayLabel(done, ms.Options().LabelDuration)
		b.mode.log.Info("action", "item", it.Name)
		if b.mode.OnAction != nil {
			b.mode.OnAction(it.Name)
		}
	}
	return it, nil
}

func buildInfo(b *Builder, def config.ItemDef) (*menu.Item, error) {
	it := newItem(def)
	it.Handlers.Press = nil
	it.Handlers.Release = nil
	it.Handlers.Activate = nil
	return it, nil
}

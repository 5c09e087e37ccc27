package mode

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/dialnav/internal/config"
	"github.com/san-kum/dialnav/internal/menu"
)

var ErrUnknownKind = errors.New("mode: unknown item kind")

// KindFunc builds the item for one definition. Submenu kinds call back into
// the builder for their children.
type KindFunc func(b *Builder, def config.ItemDef) (*menu.Item, error)

type Registry struct {
	kinds map[string]KindFunc
}

func NewRegistry() *Registry {
	r := &Registry{kinds: make(map[string]KindFunc)}

	r.kinds[config.KindSubmenu] = buildSubmenu
	r.kinds[config.KindToggle] = buildToggle
	r.kinds[config.KindDetail] = buildDetail
	r.kinds[config.KindAction] = buildAction
	r.kinds[config.KindInfo] = buildInfo

	return r
}

// Register adds or replaces a kind.
func (r *Registry) Register(kind string, fn KindFunc) {
	r.kinds[kind] = fn
}

func (r *Registry) Get(kind string) (KindFunc, error) {
	fn, ok := r.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return fn, nil
}

func (r *Registry) ListKinds() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builder turns item definitions into menus for one Mode.
type Builder struct {
	mode *Mode
	reg  *Registry
}

func (b *Builder) Mode() *Mode { return b.mode }

// NewItem is the base item every built-in kind starts from.
func (b *Builder) NewItem(def config.ItemDef) *menu.Item { return newItem(def) }

// Menu builds a menu from defs.

func (b *Builder) Menu(name string, defs []config.ItemDef) (*menu.Menu, error) {
	items := make([]*menu.Item, 0, len(defs))
	for _, def := range defs {
		fn, err := b.reg.Get(def.Kind)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", def.Name, err)
		}
		it, err := fn(b, def)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", def.Name, err)
		}
		items = append(items, it)
	}
	m, err := menu.NewMenu(name, items...)
	if err != nil {
		return nil, err
	}
	m.TileRadius = b.mode.cfg.TileRadius
	return m, nil
}

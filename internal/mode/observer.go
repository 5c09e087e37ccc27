package mode

import (
	"log/slog"

	"github.com/san-kum/dialnav/internal/menu"
)

// logObserver writes navigation to the debug log.
type logObserver struct {
	menu.NopObserver
	log *slog.Logger
}

func (o *logObserver) MenuActivated(m *menu.Menu, push bool) {
	o.log.Debug("menu activated", "menu", m.Name, "push", push)
}

func (o *logObserver) ItemSelected(m *menu.Menu, it *menu.Item) {
	o.log.Debug("item selected", "menu", m.Name, "item", it.Name)
}

func (o *logObserver) ItemActivated(m *menu.Menu, it *menu.Item) {
	o.log.Debug("item activated", "menu", m.Name, "item", it.Name)
}

package menu

// Observer is told about navigation as it happens. Dropped input (a second
// activation mid-transition, a press with nothing selected) is never
// reported.
type Observer interface {
	MenuActivated(m *Menu, push bool)
	Turned(m *Menu, amount float64)
	ItemSelected(m *Menu, it *Item)
	ItemDeselected(m *Menu, it *Item)
	ItemPressed(m *Menu, it *Item)
	ItemReleased(m *Menu, it *Item)
	ItemActivated(m *Menu, it *Item)
}

type NopObserver struct{}

func (NopObserver) MenuActivated(*Menu, bool)   {}
func (NopObserver) Turned(*Menu, float64)       {}
func (NopObserver) ItemSelected(*Menu, *Item)   {}
func (NopObserver) ItemDeselected(*Menu, *Item) {}
func (NopObserver) ItemPressed(*Menu, *Item)    {}
func (NopObserver) ItemReleased(*Menu, *Item)   {}
func (NopObserver) ItemActivated(*Menu, *Item)  {}

// Observers fans events out to every non-nil observer, in order.
func Observers(obs ...Observer) Observer {
	var out multiObserver
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

type multiObserver []Observer

func (m multiObserver) MenuActivated(menu *Menu, push bool) {
	for _, o := range m {
		o.MenuActivated(menu, push)
	}
}

func (m multiObserver) Turned(menu *Menu, amount float64) {
	for _, o := range m {
		o.Turned(menu, amount)
	}
}

func (m multiObserver) ItemSelected(menu *Menu, it *Item) {
	for _, o := range m {
		o.ItemSelected(menu, it)
	}
}

func (m multiObserver) ItemDeselected(menu *Menu, it *Item) {
	for _, o := range m {
		o.ItemDeselected(menu, it)
	}
}

func (m multiObserver) ItemPressed(menu *Menu, it *Item) {
	for _, o := range m {
		o.ItemPressed(menu, it)
	}
}

func (m multiObserver) ItemReleased(menu *Menu, it *Item) {
	for _, o := range m {
		o.ItemReleased(menu, it)
	}
}

func (m multiObserver) ItemActivated(menu *Menu, it *Item) {
	for _, o := range m {
		o.ItemActivated(menu, it)
	}
}

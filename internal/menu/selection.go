package menu

// commit turns a quiet dial into a confirmed selection. Select fires once
// per quiet period; the spring toward the slot runs every tick after that.
func (m *Menu) commit(ms *System) {
	if ms.tl.Now()-m.lastInputTime <= ms.opts.DebounceWindow {
		return
	}

	if m.activeItem == nil {
		it := m.items[m.currentIndex]
		m.activeItem = it
		ms.observer.ItemSelected(m, it)
		if it.Handlers.Select != nil {
			it.Handlers.Select(ms, it)
		}
		if it.Label != nil {
			if text := it.Label(it); text != "" {
				ms.DisplayLabel(text, ms.opts.LabelDuration)
			}
		}
	}

	m.Rotation.Lerp(m.SlotAngle(m.currentIndex), ms.opts.SettleFactor)
}

// dropSelection releases a held item and deselects the active one. The
// debounce clock restarts through lastInputTime, set by the caller.
func (m *Menu) dropSelection(ms *System) {
	if m.pressedItem != nil {
		ms.release(m)
	}
	if m.activeItem == nil {
		return
	}
	it := m.activeItem
	m.activeItem = nil
	ms.observer.ItemDeselected(m, it)
	if it.Handlers.Deselect != nil {
		it.Handlers.Deselect(ms, it)
	}
	ms.HideLabel()
}

package config

import "github.com/san-kum/dialnav/internal/gfx"

// Item kinds understood by the mode registry.
const (
	KindSubmenu = "submenu"
	KindToggle  = "toggle"
	KindDetail  = "detail"
	KindAction  = "action"
	KindInfo    = "info"
)

// Tree is the root menu definition.
type Tree struct {
	Name  string    `yaml:"name"`
	Items []ItemDef `yaml:"items"`
}

// ItemDef describes one carousel item. Items is only used by submenus,
// Detail by detail items and Value by toggles.
type ItemDef struct {
	Name   string    `yaml:"name"`
	Kind   string    `yaml:"kind"`
	Label  string    `yaml:"label,omitempty"`
	Color  string    `yaml:"color,omitempty"`
	Items  []ItemDef `yaml:"items,omitempty"`
	Detail string    `yaml:"detail,omitempty"`
	Value  bool      `yaml:"value,omitempty"`
}

func DefaultTree() Tree {
	return Tree{
		Name: "home",
		Items: []ItemDef{
			{Name: "settings", Kind: KindSubmenu, Label: "Settings", Color: "#3a7bd5", Items: []ItemDef{
				{Name: "wifi", Kind: KindToggle, Label: "Wi-Fi", Value: true},
				{Name: "bluetooth", Kind: KindToggle, Label: "Bluetooth"},
				{Name: "dnd", Kind: KindToggle, Label: "Do not disturb"},
			}},
			{Name: "stats", Kind: KindDetail, Label: "Stats", Color: "#d53a7b", Detail: "42 turns today"},
			{Name: "timer", Kind: KindSubmenu, Label: "Timer", Color: "#7bd53a", Items: []ItemDef{
				{Name: "t1", Kind: KindAction, Label: "1 min"},
				{Name: "t5", Kind: KindAction, Label: "5 min"},
				{Name: "t10", Kind: KindAction, Label: "10 min"},
			}},
			{Name: "about", Kind: KindInfo, Label: "dialnav"},
		},
	}
}

func (t Tree) Validate() error {
	if len(t.Items) == 0 {
		return invalid("menu %q has no items", t.Name)
	}
	return validateItems(t.Name, t.Items)
}

func validateItems(menuName string, items []ItemDef) error {
	for _, it := range items {
		if it.Name == "" {
			return invalid("menu %q: item without a name", menuName)
		}
		if it.Color != "" {
			if _, err := gfx.ParseHex(it.Color); err != nil {
				return invalid("item %q: %v", it.Name, err)
			}
		}
		if it.Kind == KindSubmenu {
			if len(it.Items) == 0 {
				return invalid("submenu %q has no items", it.Name)
			}
			if err := validateItems(it.Name, it.Items); err != nil {
				return err
			}
		} else if len(it.Items) > 0 {
			return invalid("item %q of kind %q cannot have items", it.Name, it.Kind)
		}
	}
	return nil
}

// Count returns the number of items in the tree, submenus included.
func (t Tree) Count() int {
	return countItems(t.Items)
}

func countItems(items []ItemDef) int {
	n := len(items)
	for _, it := range items {
		n += countItems(it.Items)
	}
	return n
}

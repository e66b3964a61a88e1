package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	toggle  key.Binding
	enter   key.Binding
	commit  key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	save    key.Binding
	reload  key.Binding
	copy    key.Binding
	preset  key.Binding
	reset   key.Binding
	info    key.Binding
	yes     key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	toggle:  key.NewBinding(key.WithKeys(" ")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	commit:  key.NewBinding(key.WithKeys("ctrl+s")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	save:    key.NewBinding(key.WithKeys("s")),
	reload:  key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	preset:  key.NewBinding(key.WithKeys("p")),
	reset:   key.NewBinding(key.WithKeys("x")),
	info:    key.NewBinding(key.WithKeys("v")),
	yes:     key.NewBinding(key.WithKeys("y")),
}

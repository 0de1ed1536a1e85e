package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	addField    key.Binding
	removeField key.Binding
	dropdown    key.Binding
	connect     key.Binding
	disconnect  key.Binding
	submit      key.Binding
	copy        key.Binding
	buildInfo   key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up")),
	down:        key.NewBinding(key.WithKeys("down")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("ctrl+c")),
	addField:    key.NewBinding(key.WithKeys("ctrl+n")),
	removeField: key.NewBinding(key.WithKeys("ctrl+d")),
	dropdown:    key.NewBinding(key.WithKeys("ctrl+p")),
	connect:     key.NewBinding(key.WithKeys("ctrl+w")),
	disconnect:  key.NewBinding(key.WithKeys("ctrl+x")),
	submit:      key.NewBinding(key.WithKeys("enter", "ctrl+s")),
	copy:        key.NewBinding(key.WithKeys("ctrl+y")),
	buildInfo:   key.NewBinding(key.WithKeys("f1")),
}

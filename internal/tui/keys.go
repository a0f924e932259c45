package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	newDoc  key.Binding
	delete  key.Binding
	sync    key.Binding
	signIn  key.Binding
	about   key.Binding
	dismiss key.Binding
	save    key.Binding
	title   key.Binding
	copy    key.Binding
	pop     key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newDoc:  key.NewBinding(key.WithKeys("n")),
	delete:  key.NewBinding(key.WithKeys("d")),
	sync:    key.NewBinding(key.WithKeys("s")),
	signIn:  key.NewBinding(key.WithKeys("i")),
	about:   key.NewBinding(key.WithKeys("?")),
	dismiss: key.NewBinding(key.WithKeys("x")),
	save:    key.NewBinding(key.WithKeys("ctrl+s")),
	title:   key.NewBinding(key.WithKeys("ctrl+t")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y")),
	pop:     key.NewBinding(key.WithKeys("backspace")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}

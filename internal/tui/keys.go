package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit     key.Binding
	focus      key.Binding
	esc        key.Binding
	decrypt    key.Binding
	copyJobID  key.Binding
	copyCipher key.Binding
	buildInfo  key.Binding
	quit       key.Binding
}

var keys = keyMap{
	submit:     key.NewBinding(key.WithKeys("enter")),
	focus:      key.NewBinding(key.WithKeys("tab")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	decrypt:    key.NewBinding(key.WithKeys("d")),
	copyJobID:  key.NewBinding(key.WithKeys("c")),
	copyCipher: key.NewBinding(key.WithKeys("x")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
}

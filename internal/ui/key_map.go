package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	next     key.Binding
	prev     key.Binding
	submit   key.Binding
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	dismiss  key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search/pick")),
		up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "suggestion up")),
		down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "suggestion down")),
		left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "algorithm")),
		right:    key.NewBinding(key.WithKeys("right", " "), key.WithHelp("→", "algorithm")),
		dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		pageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		pageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.next, k.submit, k.dismiss, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.next, k.prev, k.submit},
		{k.up, k.down, k.left, k.right},
		{k.dismiss, k.pageUp, k.pageDown, k.quit},
	}
}

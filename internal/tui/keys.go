package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	reload    key.Binding
	search    key.Binding
	mood      key.Binding
	sortKey   key.Binding
	sortOrder key.Binding
	publish   key.Binding
	unpublish key.Binding
	friends   key.Binding
	feed      key.Binding
	findUsers key.Binding
	profile   key.Binding
	adminU    key.Binding
	adminJ    key.Binding
	addFiles  key.Binding
	dropFile  key.Binding
	accept    key.Binding
	reject    key.Binding
	hide      key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	reload:    key.NewBinding(key.WithKeys("r")),
	search:    key.NewBinding(key.WithKeys("/")),
	mood:      key.NewBinding(key.WithKeys("m")),
	sortKey:   key.NewBinding(key.WithKeys("s")),
	sortOrder: key.NewBinding(key.WithKeys("o")),
	publish:   key.NewBinding(key.WithKeys("p")),
	unpublish: key.NewBinding(key.WithKeys("u")),
	friends:   key.NewBinding(key.WithKeys("f")),
	feed:      key.NewBinding(key.WithKeys("g")),
	findUsers: key.NewBinding(key.WithKeys("w")),
	profile:   key.NewBinding(key.WithKeys("t")),
	adminU:    key.NewBinding(key.WithKeys("a")),
	adminJ:    key.NewBinding(key.WithKeys("z")),
	addFiles:  key.NewBinding(key.WithKeys("a")),
	dropFile:  key.NewBinding(key.WithKeys("x")),
	accept:    key.NewBinding(key.WithKeys("y")),
	reject:    key.NewBinding(key.WithKeys("x")),
	hide:      key.NewBinding(key.WithKeys("h")),
	info:      key.NewBinding(key.WithKeys("i")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}

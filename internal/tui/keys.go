package tui

import (
	"github.com/charmbracelet/bubbles/key"

	help "pullrefresh/internal/tui/widgets/helpoverlay"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	EndAll   key.Binding
	Copy     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Notices  key.Binding
	Search   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Save     key.Binding
	Sound    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up (pull past the top)")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down (pull past the bottom)")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp", "scroll up fast")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("PgDn", "scroll down fast")),
		EndAll:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end refresh on both edges")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy first visible line")),
		Top:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle top accessory")),
		Bottom:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "toggle bottom accessory")),
		Notices:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "notifications panel")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search notifications")),
		Next:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
		Prev:     key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "previous match")),
		Save:     key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "save notifications")),
		Sound:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sound on/off")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) sections() []help.Section {
	return []help.Section{
		{Title: "Scrolling", Keys: []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown}},
		{Title: "Refresh", Keys: []key.Binding{k.EndAll, k.Top, k.Bottom}},
		{Title: "Notifications", Keys: []key.Binding{k.Notices, k.Search, k.Next, k.Prev, k.Save}},
		{Title: "General", Keys: []key.Binding{k.Copy, k.Sound, k.Help, k.Quit}},
	}
}

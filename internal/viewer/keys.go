package viewer

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the viewer.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Like     key.Binding
	Share    key.Binding
	Autoplay key.Binding
	Retry    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("j", "down", "right", "n"),
			key.WithHelp("j/→", "Next quote"),
		),
		Prev: key.NewBinding(
			key.WithKeys("k", "up", "left", "p"),
			key.WithHelp("k/←", "Previous quote"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Like"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Copy to clipboard"),
		),
		Autoplay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle auto-play"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Retry"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Like, k.Share, k.Autoplay, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Like, k.Share, k.Autoplay},
		{k.Retry, k.Quit},
	}
}

package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Pane focus
	FocusNext key.Binding

	// Editor tabs (form / issue output)
	TabForm   key.Binding
	TabOutput key.Binding

	// Split divider
	GrowEditor   key.Binding
	ShrinkEditor key.Binding

	// Preview controls
	ToggleViewMode key.Binding
	TogglePastDue  key.Binding
	ResetSettings  key.Binding
	EditDates      key.Binding

	// Form actions
	ResetForm key.Binding

	// Issue output
	Copy key.Binding

	// Scrolling in the preview/output viewports
	Down key.Binding
	Up   key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Help toggle
	Help key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		FocusNext: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "switch pane"),
		),
		TabForm: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "form tab"),
		),
		TabOutput: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "issue tab"),
		),
		GrowEditor: key.NewBinding(
			key.WithKeys(">", "ctrl+right"),
			key.WithHelp(">", "widen editor"),
		),
		ShrinkEditor: key.NewBinding(
			key.WithKeys("<", "ctrl+left"),
			key.WithHelp("<", "narrow editor"),
		),
		ToggleViewMode: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "first/third party"),
		),
		TogglePastDue: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "simulate past due"),
		),
		ResetSettings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "reset settings"),
		),
		EditDates: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "edit dates"),
		),
		ResetForm: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset form"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy issue text"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.FocusNext, k.TabForm, k.TabOutput,
		k.Copy, k.Help, k.Quit,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.TabForm, k.TabOutput, k.Back, k.Quit},
		{k.GrowEditor, k.ShrinkEditor, k.Up, k.Down},
		{k.ToggleViewMode, k.TogglePastDue, k.ResetSettings, k.EditDates, k.ResetForm},
		{k.Copy, k.Help},
	}
}

package tui

// Mode represents the TUI interaction mode.
type Mode int

const (
	// ModeNormal is the default list-browsing mode.
	ModeNormal Mode = iota
	// ModeAdding is active while the add-task input has focus.
	ModeAdding
	// ModeConfirmDelete is active while a delete awaits confirmation.
	ModeConfirmDelete
)

// Package types contains shared types used across the UI shell.
package types

// Mode represents the current interaction mode of the grid.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit
	ModeConfirmDelete
	ModeConfirmQuit
	ModeHelp
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeEdit:
		return "EDIT"
	case ModeConfirmDelete:
		return "DELETE?"
	case ModeConfirmQuit:
		return "QUIT?"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// Package statusbar renders the bottom bar: mode badge, dirty
// marker, task counts, and key hints.
package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/taskdeck/internal/types"
	"github.com/riordanpawley/taskdeck/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode    types.Mode
	dirty   bool
	shown   int
	total   int
	width   int
	styles  *styles.Styles
}

// New creates a StatusBar for the given frame.
func New(mode types.Mode, dirty bool, shown, total, width int, s *styles.Styles) StatusBar {
	return StatusBar{mode: mode, dirty: dirty, shown: shown, total: total, width: width, styles: s}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	counts := fmt.Sprintf(" %d/%d tasks ", sb.shown, sb.total)
	if sb.dirty {
		counts += sb.styles.StatusDirty.Render("● unsaved ")
	}

	parts := []string{modeBadge, sb.styles.StatusHint.Render(counts)}
	if hints := Hints(sb.mode); hints != "" {
		parts = append(parts, sb.styles.StatusHint.Render("│ "+hints))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}

// Hints returns the keybinding hints for the given mode
func Hints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "hjkl: move  a: add  d: delete  s: save  c: completed  Enter: edit  Space: cycle  ?: help  q: quit"
	case types.ModeEdit:
		return "Enter: apply  Esc: cancel"
	case types.ModeConfirmDelete:
		return "y: delete  n/Esc: keep"
	case types.ModeConfirmQuit:
		return "s: save & quit  d: discard  Esc: stay"
	case types.ModeHelp:
		return "any key: back"
	default:
		return ""
	}
}

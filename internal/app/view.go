package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/taskdeck/internal/types"
	"github.com/riordanpawley/taskdeck/internal/ui/grid"
	"github.com/riordanpawley/taskdeck/internal/ui/statusbar"
)

// View implements tea.Model.
func (m Model) View() string {
	view := m.tracker.View()

	cursorRow := m.cursorRow
	if len(view) == 0 {
		cursorRow = -1
	}

	sections := []string{
		m.styles.OverlayTitle.Render(" taskdeck "),
		m.grid.Render(view, cursorRow, m.cursorCol, m.now()),
	}

	if overlay := m.renderOverlay(); overlay != "" {
		sections = append(sections, overlay)
	}
	if toasts := m.toastbox.Render(m.toasts, m.width); toasts != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toasts))
	}

	sb := statusbar.New(m.mode, m.tracker.Dirty(), len(view), m.tracker.Len(), m.width, m.styles)
	sections = append(sections, sb.Render())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderOverlay draws the mode-specific prompt below the grid.
func (m Model) renderOverlay() string {
	switch m.mode {
	case types.ModeEdit:
		title := "edit " + grid.Columns[m.cursorCol].Title + " of " + m.editID
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.OverlayTitle.Render(title),
			m.input.View(),
		)
		return m.styles.Overlay.Render(body)

	case types.ModeConfirmDelete:
		prompt := fmt.Sprintf("delete task %s? %s / %s",
			m.deleteID,
			m.styles.PromptKey.Render("y"),
			m.styles.PromptKey.Render("n"))
		return m.styles.Overlay.Render(prompt)

	case types.ModeConfirmQuit:
		prompt := fmt.Sprintf("unsaved changes. %s save & quit / %s discard / %s stay",
			m.styles.PromptKey.Render("s"),
			m.styles.PromptKey.Render("d"),
			m.styles.PromptKey.Render("Esc"))
		return m.styles.Overlay.Render(prompt)

	case types.ModeHelp:
		return m.styles.Overlay.Render(helpText())
	}
	return ""
}

func helpText() string {
	lines := []string{
		"hjkl / arrows   move the cell cursor",
		"a               add a task",
		"Enter           edit the selected cell",
		"Space           cycle Status or Priority in place",
		"i               edit the selected task's ID",
		"d               delete the selected task (asks first)",
		"s               save to CSV",
		"r               reload from CSV",
		"c               toggle hiding completed tasks",
		"q / ctrl+c      quit (asks when unsaved)",
	}
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

// Package grid renders the task table: one row per task, one column
// per field, with heat-map tinting and a cell cursor.
package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/taskdeck/internal/domain"
	"github.com/riordanpawley/taskdeck/internal/store"
	"github.com/riordanpawley/taskdeck/internal/ui/styles"
)

// Column describes one grid column.
type Column struct {
	Field string // store field name, "" for the read-only ID column
	Title string
	Width int
}

// Columns is the fixed grid layout. The ID column is edited through
// SetID rather than SetField, so its Field is empty.
var Columns = []Column{
	{Field: "", Title: "ID", Width: 6},
	{Field: store.FieldName, Title: "Task", Width: 24},
	{Field: store.FieldStatus, Title: "Status", Width: 13},
	{Field: store.FieldAssignedUser, Title: "Assigned", Width: 12},
	{Field: store.FieldDueDate, Title: "Due", Width: 12},
	{Field: store.FieldPriority, Title: "Priority", Width: 9},
	{Field: store.FieldNotes, Title: "Notes", Width: 28},
}

// Grid renders the task table.
type Grid struct {
	styles *styles.Styles
}

// New creates a grid renderer with the given styles.
func New(s *styles.Styles) *Grid {
	return &Grid{styles: s}
}

// Render draws the header and one row per task. cursorRow/cursorCol
// select the highlighted cell; a negative cursorRow hides the
// cursor. Heat tinting is computed against today.
func (g *Grid) Render(tasks []domain.Task, cursorRow, cursorCol int, today time.Time) string {
	var rows []string

	var header []string
	for _, col := range Columns {
		header = append(header, g.styles.Header.Width(col.Width+2).Render(pad(col.Title, col.Width)))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for i, t := range tasks {
		heat := g.styles.Heat(domain.Heat(t, today))
		var cells []string
		for j, col := range Columns {
			style := g.styles.Cell
			if i == cursorRow && j == cursorCol {
				style = g.styles.CellSelected
			}
			value := pad(CellValue(t, col.Field), col.Width)
			cells = append(cells, style.Render(heat.Render(value)))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		if i == cursorRow {
			row = g.styles.RowCursor.Render(row)
		}
		rows = append(rows, row)
	}

	if len(tasks) == 0 {
		rows = append(rows, g.styles.StatusHint.Render("  no tasks, press a to add one"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// CellValue extracts the display text of one field. Notes collapse
// to their first line so multi-line notes keep the grid rectangular.
func CellValue(t domain.Task, field string) string {
	switch field {
	case "":
		return t.ID
	case store.FieldName:
		return t.Name
	case store.FieldStatus:
		return t.Status.String()
	case store.FieldAssignedUser:
		return t.AssignedUser
	case store.FieldDueDate:
		return t.DueDateString()
	case store.FieldPriority:
		return t.Priority.String()
	case store.FieldNotes:
		return firstLine(t.Notes)
	}
	return ""
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "…"
	}
	return s
}

// pad truncates or right-pads a value to the column width.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return fmt.Sprintf("%-*s", width, s)
}

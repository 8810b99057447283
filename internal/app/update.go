package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/taskdeck/internal/domain"
	"github.com/riordanpawley/taskdeck/internal/store"
	"github.com/riordanpawley/taskdeck/internal/tracker"
	"github.com/riordanpawley/taskdeck/internal/types"
	"github.com/riordanpawley/taskdeck/internal/ui/grid"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastTickMsg:
		m.pruneToasts()
		if len(m.toasts) > 0 {
			return m, m.toastTick()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case types.ModeNormal:
			return m.updateNormal(msg)
		case types.ModeEdit:
			return m.updateEdit(msg)
		case types.ModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case types.ModeConfirmQuit:
			return m.updateConfirmQuit(msg)
		case types.ModeHelp:
			m.mode = types.ModeNormal
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.tracker.Dirty() {
			m.mode = types.ModeConfirmQuit
			return m, nil
		}
		return m, tea.Quit

	case "j", "down":
		if m.cursorRow < len(m.tracker.View())-1 {
			m.cursorRow++
		}
		return m, nil
	case "k", "up":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
		return m, nil
	case "h", "left":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
		return m, nil
	case "l", "right":
		if m.cursorCol < len(grid.Columns)-1 {
			m.cursorCol++
		}
		return m, nil
	case "g", "home":
		m.cursorRow = 0
		return m, nil
	case "G", "end":
		m.cursorRow = len(m.tracker.View()) - 1
		m.clampCursor()
		return m, nil

	case "a":
		t, status := m.tracker.Add()
		m.pushToast(types.ToastSuccess, status)
		m.moveCursorTo(t.ID)
		return m, m.toastTick()

	case "d":
		if id := m.selectedID(); id != "" {
			m.deleteID = id
			m.mode = types.ModeConfirmDelete
		}
		return m, nil

	case "s":
		status, err := m.tracker.Save()
		m.pushResult(status, err)
		return m, m.toastTick()

	case "c":
		status := m.tracker.SetHideCompleted(!m.tracker.HideCompleted())
		m.pushToast(types.ToastInfo, status)
		m.clampCursor()
		return m, m.toastTick()

	case "enter":
		return m.beginEdit(m.cursorCol), nil
	case "i":
		return m.beginEdit(0), nil

	case " ":
		return m.cycleCell()

	case "r":
		status, err := m.tracker.Load()
		m.pushResult(status, err)
		m.clampCursor()
		return m, m.toastTick()

	case "?":
		m.mode = types.ModeHelp
		return m, nil
	}
	return m, nil
}

// cycleCell advances Status or Priority to the next enum value when
// the cursor sits on one of those columns.
func (m Model) cycleCell() (tea.Model, tea.Cmd) {
	id := m.selectedID()
	if id == "" {
		return m, nil
	}
	t, ok := m.tracker.Get(id)
	if !ok {
		return m, nil
	}

	field := grid.Columns[m.cursorCol].Field
	var next string
	switch field {
	case store.FieldStatus:
		all := domain.Statuses()
		next = all[(int(t.Status)+1)%len(all)].String()
	case store.FieldPriority:
		all := domain.Priorities()
		next = all[(int(t.Priority)+1)%len(all)].String()
	default:
		return m, nil
	}

	status, err := m.tracker.FieldEdit(id, field, next)
	m.pushResult(status, err)
	return m, m.toastTick()
}

// beginEdit switches to edit mode on the given column, seeding the
// input with the cell's current text.
func (m Model) beginEdit(col int) Model {
	id := m.selectedID()
	if id == "" {
		return m
	}
	t, ok := m.tracker.Get(id)
	if !ok {
		return m
	}

	m.cursorCol = col
	m.editID = id
	m.editField = grid.Columns[col].Field
	m.input.SetValue(grid.CellValue(t, m.editField))
	m.input.CursorEnd()
	m.input.Focus()
	m.mode = types.ModeEdit
	return m
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.input.Value()
		var status string
		var err error
		if m.editField == "" {
			status, err = m.tracker.SetID(m.editID, value)
		} else {
			status, err = m.tracker.FieldEdit(m.editID, m.editField, value)
		}
		m.pushResult(status, err)
		m.input.Blur()
		m.mode = types.ModeNormal
		return m, m.toastTick()

	case "esc":
		m.input.Blur()
		m.mode = types.ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		status, err := m.tracker.Delete(m.deleteID)
		m.pushResult(status, err)
		m.deleteID = ""
		m.mode = types.ModeNormal
		m.clampCursor()
		return m, m.toastTick()
	case "n", "esc":
		m.deleteID = ""
		m.mode = types.ModeNormal
	}
	return m, nil
}

func (m Model) updateConfirmQuit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		status, err := m.tracker.Save()
		if err != nil {
			m.pushToast(types.ToastError, status)
			m.mode = types.ModeNormal
			return m, m.toastTick()
		}
		return m, tea.Quit
	case "d":
		return m, tea.Quit
	case "esc", "n":
		m.mode = types.ModeNormal
	}
	return m, nil
}

// moveCursorTo places the row cursor on the task with the given ID.
// Falls back to the last row when the ID is filtered out.
func (m *Model) moveCursorTo(id string) {
	view := m.tracker.View()
	for i, t := range view {
		if t.ID == id {
			m.cursorRow = i
			return
		}
	}
	m.cursorRow = len(view) - 1
	m.clampCursor()
}

// Tracker exposes the underlying facade, mainly for tests.
func (m Model) Tracker() *tracker.Tracker {
	return m.tracker
}

// Mode returns the current input mode.
func (m Model) Mode() types.Mode {
	return m.mode
}

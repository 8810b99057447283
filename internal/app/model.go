// Package app contains the main application model and TEA implementation.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/taskdeck/internal/tracker"
	"github.com/riordanpawley/taskdeck/internal/types"
	"github.com/riordanpawley/taskdeck/internal/ui/grid"
	"github.com/riordanpawley/taskdeck/internal/ui/styles"
	"github.com/riordanpawley/taskdeck/internal/ui/toast"
)

const toastTTL = 4 * time.Second

// toastTickMsg prunes expired toasts.
type toastTickMsg time.Time

// Model is the main application state. The tracker owns the data;
// the model owns cursor, mode, and transient presentation state.
type Model struct {
	tracker *tracker.Tracker
	logger  *slog.Logger

	mode      types.Mode
	cursorRow int
	cursorCol int

	// Edit mode
	input     textinput.Model
	editField string // store field being edited, "" for the ID cell
	editID    string

	// Pending delete confirmation
	deleteID string

	toasts []types.Toast

	width  int
	height int

	styles   *styles.Styles
	grid     *grid.Grid
	toastbox *toast.Renderer

	now func() time.Time
}

// New creates the application model. initialStatus (normally the
// load result) is surfaced as the first toast; a non-nil initialErr
// marks it as an error so a failed startup load is visible without
// killing the session.
func New(tr *tracker.Tracker, logger *slog.Logger, initialStatus string, initialErr error) Model {
	s := styles.New()

	ti := textinput.New()
	ti.CharLimit = 0

	m := Model{
		tracker:  tr,
		logger:   logger,
		mode:     types.ModeNormal,
		input:    ti,
		styles:   s,
		grid:     grid.New(s),
		toastbox: toast.New(s),
		now:      time.Now,
	}
	if initialStatus != "" {
		level := types.ToastInfo
		if initialErr != nil {
			level = types.ToastError
		}
		m.pushToast(level, initialStatus)
	}
	for _, w := range tr.Warnings() {
		m.pushToast(types.ToastWarning, w)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if len(m.toasts) > 0 {
		return m.toastTick()
	}
	return nil
}

func (m Model) toastTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

func (m *Model) pushToast(level types.ToastLevel, msg string) {
	m.toasts = append(m.toasts, types.Toast{
		Level:   level,
		Message: msg,
		Expires: m.now().Add(toastTTL),
	})
}

// pushResult maps a tracker (message, error) pair onto a toast level.
func (m *Model) pushResult(msg string, err error) {
	if err != nil {
		m.pushToast(types.ToastError, msg)
		return
	}
	m.pushToast(types.ToastSuccess, msg)
}

func (m *Model) pruneToasts() {
	now := m.now()
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.Expires.After(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// clampCursor keeps the cursor inside the current filtered view.
func (m *Model) clampCursor() {
	n := len(m.tracker.View())
	if m.cursorRow >= n {
		m.cursorRow = n - 1
	}
	if m.cursorRow < 0 && n > 0 {
		m.cursorRow = 0
	}
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
	if m.cursorCol >= len(grid.Columns) {
		m.cursorCol = len(grid.Columns) - 1
	}
}

// selectedID returns the ID under the cursor, or "" when the view is
// empty.
func (m Model) selectedID() string {
	view := m.tracker.View()
	if m.cursorRow < 0 || m.cursorRow >= len(view) {
		return ""
	}
	return view[m.cursorRow].ID
}

// HasSelection reports whether the cursor rests on a task.
func (m Model) HasSelection() bool {
	return m.selectedID() != ""
}

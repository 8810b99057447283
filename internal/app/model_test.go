package app

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/taskdeck/internal/tracker"
	"github.com/riordanpawley/taskdeck/internal/types"
)

// stubGateway keeps everything in memory so model tests never touch
// the filesystem.
type stubGateway struct {
	loadText string
	loadErr  error
	saveErr  error
	saves    int
}

func (g *stubGateway) Load() (string, string, error) {
	return g.loadText, "stub.csv", g.loadErr
}

func (g *stubGateway) Save(text string) (string, error) {
	if g.saveErr != nil {
		return "stub.csv", g.saveErr
	}
	g.saves++
	g.loadText = text
	return "stub.csv", nil
}

func newModel(t *testing.T, gw *stubGateway) Model {
	t.Helper()
	tr := tracker.New(gw, slog.Default())
	if gw.loadText != "" {
		_, err := tr.Load()
		require.NoError(t, err)
	}
	return New(tr, slog.Default(), "", nil)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press feeds key strings through Update and returns the final model
// and the last command.
func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(Model)
	}
	return m, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = press(t, m, string(r))
	}
	return m
}

const boardCSV = `"TaskID","Task","Status","AssignedUser","DueDate","Priority","Notes"
"1","Write report","In Progress","ana","2026-09-01","High",""
"2","File expenses","Completed","ana","","Low",""
`

func TestModel_AddMovesCursorToNewTask(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})

	m, _ = press(t, m, "a")

	require.Equal(t, 3, m.Tracker().Len())
	view := m.Tracker().View()
	assert.Equal(t, view[m.cursorRow].ID, "3")
	assert.Equal(t, types.ModeNormal, m.Mode())
	assert.True(t, m.Tracker().Dirty())
}

func TestModel_QuitCleanStore(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_QuitDirtyAsksFirst(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})
	m, _ = press(t, m, "a")

	m, cmd := press(t, m, "q")
	assert.Equal(t, types.ModeConfirmQuit, m.Mode())
	assert.Nil(t, cmd)

	// Esc stays in the app.
	m, _ = press(t, m, "esc")
	assert.Equal(t, types.ModeNormal, m.Mode())

	// d discards and quits.
	m, cmd = press(t, m, "q", "d")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_QuitDirtySaveAndQuit(t *testing.T) {
	gw := &stubGateway{loadText: boardCSV}
	m := newModel(t, gw)
	m, _ = press(t, m, "a")

	_, cmd := press(t, m, "q", "s")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 1, gw.saves)
}

func TestModel_QuitDirtySaveFailureStays(t *testing.T) {
	gw := &stubGateway{loadText: boardCSV}
	m := newModel(t, gw)
	m, _ = press(t, m, "a")

	gw.saveErr = assert.AnError
	m, cmd := press(t, m, "q", "s")
	assert.Equal(t, types.ModeNormal, m.Mode())
	assert.True(t, m.Tracker().Dirty(), "failed save must keep unsaved work")
	if cmd != nil {
		assert.IsType(t, toastTickMsg{}, cmd(), "must not quit on failed save")
	}
}

func TestModel_DeleteConfirmFlow(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})

	m, _ = press(t, m, "d")
	require.Equal(t, types.ModeConfirmDelete, m.Mode())

	// n keeps the task.
	m, _ = press(t, m, "n")
	assert.Equal(t, 2, m.Tracker().Len())

	// y removes it.
	m, _ = press(t, m, "d", "y")
	assert.Equal(t, 1, m.Tracker().Len())
	_, ok := m.Tracker().Get("1")
	assert.False(t, ok)
}

func TestModel_DeleteWithEmptyBoardIsNoop(t *testing.T) {
	m := newModel(t, &stubGateway{})

	m, _ = press(t, m, "d")
	assert.Equal(t, types.ModeNormal, m.Mode())
}

func TestModel_EditCellApply(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})

	// Move to the Task column and rewrite the name.
	m, _ = press(t, m, "l", "enter")
	require.Equal(t, types.ModeEdit, m.Mode())
	m, _ = press(t, m, "ctrl+u")
	m = typeText(t, m, "Ship v2")
	m, _ = press(t, m, "enter")

	assert.Equal(t, types.ModeNormal, m.Mode())
	got, ok := m.Tracker().Get("1")
	require.True(t, ok)
	assert.Equal(t, "Ship v2", got.Name)
	assert.True(t, m.Tracker().Dirty())
}

func TestModel_EditCancelKeepsValue(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})

	m, _ = press(t, m, "l", "enter", "ctrl+u")
	m = typeText(t, m, "scrapped")
	m, _ = press(t, m, "esc")

	assert.Equal(t, types.ModeNormal, m.Mode())
	got, _ := m.Tracker().Get("1")
	assert.Equal(t, "Write report", got.Name)
}

func TestModel_EditRejectedValueLeavesRecord(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})

	// Column 4 is DueDate.
	m, _ = press(t, m, "l", "l", "l", "l", "enter", "ctrl+u")
	m = typeText(t, m, "someday")
	m, _ = press(t, m, "enter")

	assert.Equal(t, types.ModeNormal, m.Mode())
	got, _ := m.Tracker().Get("1")
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2026-09-01", got.DueDateString())

	var sawError bool
	for _, toast := range m.toasts {
		if toast.Level == types.ToastError {
			sawError = true
		}
	}
	assert.True(t, sawError, "rejected edit must surface an error toast")
}

func TestModel_EditID(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})

	m, _ = press(t, m, "i", "ctrl+u")
	m = typeText(t, m, "EPIC-1")
	m, _ = press(t, m, "enter")

	_, ok := m.Tracker().Get("EPIC-1")
	assert.True(t, ok)
	_, ok = m.Tracker().Get("1")
	assert.False(t, ok)
}

func TestModel_SpaceCyclesStatus(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})

	// Column 2 is Status; task 1 starts In Progress.
	m, _ = press(t, m, "l", "l", " ")
	got, _ := m.Tracker().Get("1")
	assert.Equal(t, "Completed", got.Status.String())

	m, _ = press(t, m, " ")
	got, _ = m.Tracker().Get("1")
	assert.Equal(t, "Not Started", got.Status.String())

	// Space elsewhere is a no-op.
	m, _ = press(t, m, "h", " ")
	after, _ := m.Tracker().Get("1")
	assert.Equal(t, got, after)
}

func TestModel_ToggleHideCompleted(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})
	require.Len(t, m.Tracker().View(), 2)

	m, _ = press(t, m, "c")
	assert.True(t, m.Tracker().HideCompleted())
	assert.Len(t, m.Tracker().View(), 1)

	m, _ = press(t, m, "c")
	assert.Len(t, m.Tracker().View(), 2)
}

func TestModel_CursorClampsToFilteredView(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})
	m, _ = press(t, m, "j") // second row
	require.Equal(t, 1, m.cursorRow)

	m, _ = press(t, m, "c") // hides the completed task
	assert.Equal(t, 0, m.cursorRow)
}

func TestModel_SaveFromNormalMode(t *testing.T) {
	gw := &stubGateway{loadText: boardCSV}
	m := newModel(t, gw)
	m, _ = press(t, m, "a", "s")

	assert.Equal(t, 1, gw.saves)
	assert.False(t, m.Tracker().Dirty())
	assert.Contains(t, gw.loadText, `"3"`)
}

func TestModel_HelpMode(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})

	m, _ = press(t, m, "?")
	require.Equal(t, types.ModeHelp, m.Mode())
	assert.Contains(t, m.View(), "add a task")

	m, _ = press(t, m, "x")
	assert.Equal(t, types.ModeNormal, m.Mode())
}

func TestModel_ViewShowsBoard(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	out := m.View()
	for _, want := range []string{"Write report", "File expenses", "NORMAL", "2/2 tasks"} {
		assert.Contains(t, out, want)
	}
}

func TestModel_ViewEmptyBoardHint(t *testing.T) {
	m := newModel(t, &stubGateway{})
	assert.Contains(t, m.View(), "no tasks")
}

func TestModel_ToastPruning(t *testing.T) {
	m := newModel(t, &stubGateway{loadText: boardCSV})
	m, _ = press(t, m, "s")
	require.NotEmpty(t, m.toasts)

	// Jump the clock past every expiry, then tick.
	m.now = func() time.Time { return time.Now().Add(toastTTL + time.Second) }
	next, _ := m.Update(toastTickMsg(m.now()))
	m = next.(Model)
	assert.Empty(t, m.toasts)
}

func TestModel_InitialStatusBecomesToast(t *testing.T) {
	tr := tracker.New(&stubGateway{}, slog.Default())
	m := New(tr, slog.Default(), "loaded 0 tasks", nil)

	require.Len(t, m.toasts, 1)
	assert.True(t, strings.Contains(m.toasts[0].Message, "loaded"))
	assert.Equal(t, types.ToastInfo, m.toasts[0].Level)
}

func TestModel_FailedStartupLoadStillRuns(t *testing.T) {
	// A broken CSV at startup leaves the store empty and the session
	// alive, with the failure shown as an error toast.
	tr := tracker.New(&stubGateway{loadText: `"TaskID","Task"` + "\n"}, slog.Default())
	status, loadErr := tr.Load()
	require.Error(t, loadErr)

	m := New(tr, slog.Default(), status, loadErr)
	require.Len(t, m.toasts, 1)
	assert.Equal(t, types.ToastError, m.toasts[0].Level)
	assert.Contains(t, m.toasts[0].Message, "load failed")

	// The board still responds to input.
	m, _ = press(t, m, "a")
	assert.Equal(t, 1, m.Tracker().Len())
}

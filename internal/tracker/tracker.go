// Package tracker is the facade the UI shell talks to. It wires the
// task store, the CSV codec, and the persistence gateway together
// and turns every operation's outcome into a short status string for
// the caller to surface.
package tracker

import (
	"errors"
	"fmt"
	"log/slog"
	"os/user"

	"github.com/riordanpawley/taskdeck/internal/csvio"
	"github.com/riordanpawley/taskdeck/internal/domain"
	"github.com/riordanpawley/taskdeck/internal/services/csvfile"
	"github.com/riordanpawley/taskdeck/internal/store"
)

// Tracker owns the observable application state: the ordered task
// list, the filtered view, and the dirty flag. All operations run
// synchronously on the caller's goroutine.
type Tracker struct {
	store         *store.Store
	gateway       csvfile.Gateway
	logger        *slog.Logger
	user          string
	hideCompleted bool
	warnings      []string
}

// New creates a tracker. The default assigned user for added tasks
// is resolved from the host OS identity once, at construction.
func New(gateway csvfile.Gateway, logger *slog.Logger) *Tracker {
	return &Tracker{
		store:   store.New(),
		gateway: gateway,
		logger:  logger,
		user:    currentUser(),
	}
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "unknown"
}

// OnChange registers a callback fired after every successful store
// mutation; the UI re-reads View() when it fires.
func (tr *Tracker) OnChange(fn func()) {
	tr.store.OnChange(fn)
}

// Load pulls the current CSV source through the codec into the
// store. Row-level problems become warnings (see Warnings); a
// missing source or a fatal parse problem leaves the store untouched
// and is reported in the returned message.
func (tr *Tracker) Load() (string, error) {
	tr.warnings = nil

	text, path, err := tr.gateway.Load()
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return tr.missingSourceStatus(fmt.Sprintf("%s not found", path)), nil
	case errors.Is(err, domain.ErrNoCSVFiles):
		return tr.missingSourceStatus(fmt.Sprintf("no CSV files found in %s", path)), nil
	case err != nil:
		tr.logger.Error("load failed", "path", path, "error", err)
		return "load failed: " + err.Error(), err
	}

	res, err := csvio.Decode(text)
	if err != nil {
		tr.logger.Error("decode failed", "path", path, "error", err)
		return "load failed: " + err.Error(), err
	}
	tr.warnings = res.Warnings

	count, notes := tr.store.Load(res.Tasks)
	tr.warnings = append(tr.warnings, notes...)

	// A header-only file is a clean empty load; ErrNoValidRows is
	// reserved for sources whose every data row failed.
	if count == 0 && res.Skipped > 0 {
		tr.logger.Warn("no valid rows", "path", path, "skipped", res.Skipped)
		return fmt.Sprintf("no valid rows in %s", path), domain.ErrNoValidRows
	}

	tr.logger.Info("tasks loaded", "path", path, "count", count, "warnings", len(tr.warnings))
	if n := len(tr.warnings); n > 0 {
		return fmt.Sprintf("loaded %d tasks from %s (%d warnings)", count, path, n), nil
	}
	return fmt.Sprintf("loaded %d tasks from %s", count, path), nil
}

// missingSourceStatus words a missing-source load for the current
// store state: a reload keeps the in-memory tasks, a first load
// starts empty.
func (tr *Tracker) missingSourceStatus(reason string) string {
	if n := tr.store.Len(); n > 0 {
		return fmt.Sprintf("%s, keeping %d tasks in memory", reason, n)
	}
	return reason + ", starting empty"
}

// Add creates a task with defaults and the next auto-assigned ID.
func (tr *Tracker) Add() (domain.Task, string) {
	t := tr.store.Add(tr.user)
	tr.logger.Info("task added", "id", t.ID)
	return t, "added task " + t.ID
}

// Save encodes the whole store and hands it to the gateway. The
// dirty flag clears only when the write succeeded.
func (tr *Tracker) Save() (string, error) {
	text := csvio.Encode(tr.store.Tasks())
	path, err := tr.gateway.Save(text)
	if err != nil {
		tr.logger.Error("save failed", "path", path, "error", err)
		return "save failed: " + err.Error(), err
	}
	tr.store.MarkSaved()
	tr.logger.Info("tasks saved", "path", path, "count", tr.store.Len())
	return fmt.Sprintf("saved %d tasks to %s", tr.store.Len(), path), nil
}

// Delete removes a task. The UI confirms with the user first.
func (tr *Tracker) Delete(id string) (string, error) {
	if err := tr.store.Remove(id); err != nil {
		return fmt.Sprintf("task %s not found", id), err
	}
	tr.logger.Info("task deleted", "id", id)
	return "deleted task " + id, nil
}

// FieldEdit applies one cell edit with validation.
func (tr *Tracker) FieldEdit(id, field, value string) (string, error) {
	if err := tr.store.SetField(id, field, value); err != nil {
		return err.Error(), err
	}
	return fmt.Sprintf("updated %s of task %s", field, id), nil
}

// SetID renames a task, enforcing non-empty unique IDs.
func (tr *Tracker) SetID(oldID, newID string) (string, error) {
	if err := tr.store.SetID(oldID, newID); err != nil {
		return err.Error(), err
	}
	return fmt.Sprintf("task %s renamed to %s", oldID, newID), nil
}

// SetHideCompleted switches the filtered view.
func (tr *Tracker) SetHideCompleted(hide bool) string {
	tr.hideCompleted = hide
	if hide {
		return "hiding completed tasks"
	}
	return "showing all tasks"
}

// View returns the current filtered projection in stable order.
func (tr *Tracker) View() []domain.Task {
	return tr.store.Filtered(tr.hideCompleted)
}

// Get returns one task by ID.
func (tr *Tracker) Get(id string) (domain.Task, bool) {
	return tr.store.Get(id)
}

// Dirty reports whether unsaved mutations exist.
func (tr *Tracker) Dirty() bool {
	return tr.store.Dirty()
}

// HideCompleted reports the current filter setting.
func (tr *Tracker) HideCompleted() bool {
	return tr.hideCompleted
}

// Len returns the unfiltered task count.
func (tr *Tracker) Len() int {
	return tr.store.Len()
}

// Warnings returns the row-level warnings from the last Load.
func (tr *Tracker) Warnings() []string {
	return tr.warnings
}

// User returns the default assignee for new tasks.
func (tr *Tracker) User() string {
	return tr.user
}

// Package store holds the ordered task collection and its invariants:
// one record per ID, a numeric ID counter that always exceeds every
// numeric ID present, and a dirty flag tracking unsaved mutations.
package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/riordanpawley/taskdeck/internal/domain"
)

// Field names accepted by SetField.
const (
	FieldName         = "Name"
	FieldStatus       = "Status"
	FieldAssignedUser = "AssignedUser"
	FieldDueDate      = "DueDate"
	FieldPriority     = "Priority"
	FieldNotes        = "Notes"
)

// Store owns all task records. It is not safe for concurrent use;
// the application drives it from a single control thread.
type Store struct {
	tasks    []domain.Task
	nextID   int
	dirty    bool
	onChange func()
}

// New creates an empty store.
func New() *Store {
	return &Store{nextID: 1}
}

// OnChange registers a callback fired after every successful
// mutation and after Load. Presentation layers recompute their
// projections on the next read rather than receiving deltas.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Load replaces the store contents with decoded rows in file order,
// skipping rows whose ID is already present. It recomputes the ID
// counter, applies the default ID-ascending sort, and clears the
// dirty flag. Returns the number of records loaded plus notes for
// any skipped duplicates.
func (s *Store) Load(tasks []domain.Task) (int, []string) {
	s.tasks = s.tasks[:0]
	var notes []string

	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			notes = append(notes, fmt.Sprintf("duplicate TaskID %q dropped", t.ID))
			continue
		}
		seen[t.ID] = true
		s.tasks = append(s.tasks, t)
	}

	s.SortByID()
	s.recomputeNextID()
	s.dirty = false
	s.notify()
	return len(s.tasks), notes
}

// Add appends a task with the next auto-assigned numeric ID and the
// documented field defaults, and marks the store dirty.
func (s *Store) Add(user string) domain.Task {
	t := domain.NewTask(strconv.Itoa(s.nextID), user)
	s.tasks = append(s.tasks, t)
	s.nextID++
	s.dirty = true
	s.notify()
	return t
}

// Remove deletes the record with the given ID. The caller is
// expected to have confirmed the delete with the user.
func (s *Store) Remove(id string) error {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.recomputeNextID()
			s.dirty = true
			s.notify()
			return nil
		}
	}
	return domain.ErrNotFound
}

// SetField applies one field mutation. The store is marked dirty
// only when the mutation is accepted and actually changes the value.
// Unlike loads, edits of Status and Priority reject unrecognized
// values instead of coercing them.
func (s *Store) SetField(id, field, value string) error {
	t := s.find(id)
	if t == nil {
		return domain.ErrNotFound
	}

	changed := false
	switch field {
	case FieldName:
		changed = t.Name != value
		t.Name = value
	case FieldAssignedUser:
		changed = t.AssignedUser != value
		t.AssignedUser = value
	case FieldNotes:
		changed = t.Notes != value
		t.Notes = value
	case FieldStatus:
		status, ok := domain.ParseStatus(value)
		if !ok {
			return &domain.RejectError{ID: id, Field: field,
				Reason: fmt.Errorf("unknown status %q", value)}
		}
		changed = t.Status != status
		t.Status = status
	case FieldPriority:
		prio, ok := domain.ParsePriority(value)
		if !ok {
			return &domain.RejectError{ID: id, Field: field,
				Reason: fmt.Errorf("unknown priority %q", value)}
		}
		changed = t.Priority != prio
		t.Priority = prio
	case FieldDueDate:
		if strings.TrimSpace(value) == "" {
			changed = t.DueDate != nil
			t.DueDate = nil
			break
		}
		due, err := time.Parse(domain.DateLayout, strings.TrimSpace(value))
		if err != nil {
			return &domain.RejectError{ID: id, Field: field,
				Reason: fmt.Errorf("date must be %s", domain.DateLayout)}
		}
		changed = t.DueDate == nil || !t.DueDate.Equal(due)
		t.DueDate = &due
	default:
		return &domain.RejectError{ID: id, Field: field,
			Reason: fmt.Errorf("unknown field")}
	}

	if changed {
		s.dirty = true
		s.notify()
	}
	return nil
}

// SetID renames a record. Empty or whitespace-only IDs and IDs held
// by a different record are rejected with both records left
// untouched.
func (s *Store) SetID(oldID, newID string) error {
	t := s.find(oldID)
	if t == nil {
		return domain.ErrNotFound
	}
	if strings.TrimSpace(newID) == "" {
		return &domain.RejectError{ID: oldID, Reason: domain.ErrEmptyID}
	}
	if newID == oldID {
		return nil
	}
	if s.find(newID) != nil {
		return &domain.RejectError{ID: oldID, Reason: domain.ErrDuplicateID}
	}

	t.ID = newID
	s.recomputeNextID()
	s.dirty = true
	s.notify()
	return nil
}

// Filtered returns the current records in stable insertion/sort
// order, excluding Completed tasks when hideCompleted is set. The
// projection is computed fresh on every call.
func (s *Store) Filtered(hideCompleted bool) []domain.Task {
	out := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if hideCompleted && t.Status == domain.StatusCompleted {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Tasks returns a copy of all records in current order.
func (s *Store) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (domain.Task, bool) {
	if t := s.find(id); t != nil {
		return *t, true
	}
	return domain.Task{}, false
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Dirty reports whether unsaved mutations exist.
func (s *Store) Dirty() bool {
	return s.dirty
}

// MarkSaved clears the dirty flag after a successful save.
func (s *Store) MarkSaved() {
	s.dirty = false
}

// NextID exposes the auto-assignment counter, mainly for tests.
func (s *Store) NextID() int {
	return s.nextID
}

// SortByID applies the default presentation ordering: numeric-aware
// ascending ID compare.
func (s *Store) SortByID() {
	sort.SliceStable(s.tasks, func(i, j int) bool {
		return domain.CompareIDs(s.tasks[i].ID, s.tasks[j].ID)
	})
}

func (s *Store) find(id string) *domain.Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i]
		}
	}
	return nil
}

// recomputeNextID keeps the counter strictly above every numeric-
// parseable ID in the store, never below 1.
func (s *Store) recomputeNextID() {
	next := 1
	for _, t := range s.tasks {
		if n, err := strconv.Atoi(t.ID); err == nil && n >= next {
			next = n + 1
		}
	}
	s.nextID = next
}

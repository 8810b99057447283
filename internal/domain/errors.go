package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("duplicate task id")
	ErrEmptyID     = errors.New("task id is empty")
	ErrNoCSVFiles  = errors.New("no CSV files found")
	ErrNoValidRows = errors.New("no valid rows")
)

// PersistError represents a failed file-system operation in the
// persistence gateway. Save failures must leave the store's dirty
// flag untouched; callers surface the message and carry on.
type PersistError struct {
	Op   string // "load", "save", "scan"
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("csvfile %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("csvfile %s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// RejectError reports a mutation the store refused to apply. The
// record state is unchanged; only the reason is surfaced.
type RejectError struct {
	ID     string
	Field  string
	Reason error
}

func (e *RejectError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("edit rejected [%s.%s]: %v", e.ID, e.Field, e.Reason)
	}
	return fmt.Sprintf("edit rejected [%s]: %v", e.ID, e.Reason)
}

func (e *RejectError) Unwrap() error {
	return e.Reason
}

// Package csvio encodes and decodes the taskdeck CSV dialect.
//
// The dialect is deliberately simpler than RFC 4180: every written
// field is double-quoted, embedded newlines are legal only inside
// quoted fields, and a literal `"` inside a value is written as two
// single quotes (''). That escape is one-way; decoding leaves ''
// untouched. The only quote escape the reader honors is a backslash
// immediately before a quote, which keeps the quote from toggling
// field mode.
package csvio

import (
	"fmt"
	"strings"
	"time"

	"github.com/riordanpawley/taskdeck/internal/domain"
)

// Header names, in write order. Reads are order-independent.
const (
	HeaderTaskID       = "TaskID"
	HeaderTask         = "Task"
	HeaderStatus       = "Status"
	HeaderAssignedUser = "AssignedUser"
	HeaderDueDate      = "DueDate"
	HeaderPriority     = "Priority"
	HeaderNotes        = "Notes"
)

var writeOrder = []string{
	HeaderTaskID, HeaderTask, HeaderStatus, HeaderAssignedUser,
	HeaderDueDate, HeaderPriority, HeaderNotes,
}

// requiredHeaders must all be present for a decode to proceed.
// Priority is tolerated as optional (lenient header policy): files
// written before the column existed still load, with every row
// defaulting to Medium.
var requiredHeaders = []string{
	HeaderTaskID, HeaderTask, HeaderStatus, HeaderAssignedUser,
	HeaderDueDate, HeaderNotes,
}

// DecodeError aborts a whole load: missing required headers or an
// empty/blank source. Row-level problems never produce one.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "decode csv: " + e.Reason
}

// Result is the outcome of a decode. Skipped counts data rows that
// were present but dropped, so callers can tell an empty source (zero
// rows, zero skips) apart from one where every row failed.
type Result struct {
	Tasks    []domain.Task
	Skipped  int
	Warnings []string
}

// Decode parses CSV text into tasks. Row-level problems (too few
// fields, empty ID, unparseable date) skip the row and append a
// human-readable warning; unrecognized status or priority values
// coerce to their defaults with a warning. The returned error is
// non-nil only for whole-load failures.
func Decode(text string) (Result, error) {
	var res Result

	if strings.TrimSpace(text) == "" {
		return res, &DecodeError{Reason: "source is empty"}
	}

	records := splitRecords(text)
	if len(records) == 0 {
		return res, &DecodeError{Reason: "source is empty"}
	}

	cols, err := mapHeaders(records[0])
	if err != nil {
		return res, err
	}

	_, hasPriority := cols[HeaderPriority]
	if !hasPriority {
		res.Warnings = append(res.Warnings, "Priority column missing; defaulting all rows to Medium")
	}

	// Rows must carry at least enough fields to reach every mapped
	// column position, Priority included when its header is present.
	minFields := 0
	for _, h := range requiredHeaders {
		if cols[h]+1 > minFields {
			minFields = cols[h] + 1
		}
	}
	if hasPriority && cols[HeaderPriority]+1 > minFields {
		minFields = cols[HeaderPriority] + 1
	}

	for i, raw := range records[1:] {
		row := i + 1
		if strings.TrimSpace(raw) == "" {
			continue // trailing newline artifact
		}

		fields := splitFields(raw)
		if len(fields) < minFields {
			res.Skipped++
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("row %d skipped: %d fields, need %d: %s", row, len(fields), minFields, raw))
			continue
		}
		for j, f := range fields {
			fields[j] = unquote(f)
		}

		id := strings.TrimSpace(fields[cols[HeaderTaskID]])
		if id == "" {
			res.Skipped++
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("row %d skipped: empty TaskID: %s", row, raw))
			continue
		}

		task := domain.Task{
			ID:           id,
			Name:         fields[cols[HeaderTask]],
			AssignedUser: fields[cols[HeaderAssignedUser]],
			Notes:        fields[cols[HeaderNotes]],
			Priority:     domain.PriorityMedium,
		}

		if raw := fields[cols[HeaderDueDate]]; strings.TrimSpace(raw) != "" {
			due, err := time.Parse(domain.DateLayout, strings.TrimSpace(raw))
			if err != nil {
				res.Skipped++
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("row %d skipped: invalid due date %q", row, raw))
				continue
			}
			task.DueDate = &due
		}

		status, ok := domain.ParseStatus(fields[cols[HeaderStatus]])
		if !ok {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("row %d: unknown status %q, using %s", row, fields[cols[HeaderStatus]], domain.StatusNotStarted))
		}
		task.Status = status

		if hasPriority {
			prio, ok := domain.ParsePriority(fields[cols[HeaderPriority]])
			if !ok {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("row %d: unknown priority %q, using %s", row, fields[cols[HeaderPriority]], domain.PriorityMedium))
			}
			task.Priority = prio
		}

		res.Tasks = append(res.Tasks, task)
	}

	return res, nil
}

// Encode serializes tasks with a fixed header line. Every field is
// double-quoted; literal quotes become ''.
func Encode(tasks []domain.Task) string {
	var b strings.Builder
	writeRecord(&b, writeOrder)
	for _, t := range tasks {
		writeRecord(&b, []string{
			t.ID,
			t.Name,
			t.Status.String(),
			t.AssignedUser,
			t.DueDateString(),
			t.Priority.String(),
			t.Notes,
		})
	}
	return b.String()
}

func writeRecord(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, "''"))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// mapHeaders maps header names to column positions from the first
// record. Names are matched exactly after trimming and quote
// stripping.
func mapHeaders(record string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, f := range splitFields(record) {
		name := strings.TrimSpace(unquote(f))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	var missing []string
	for _, h := range requiredHeaders {
		if _, ok := cols[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, &DecodeError{Reason: "missing headers: " + strings.Join(missing, ", ")}
	}
	return cols, nil
}

// splitRecords cuts text into logical records. A newline separates
// records only outside a quoted field, so quoted fields may span
// physical lines. A quote preceded by a backslash does not toggle
// quote mode.
func splitRecords(text string) []string {
	var records []string
	var cur strings.Builder
	inQuote := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"' && (i == 0 || text[i-1] != '\\'):
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == '\n' && !inQuote:
			records = append(records, strings.TrimSuffix(cur.String(), "\r"))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		records = append(records, strings.TrimSuffix(cur.String(), "\r"))
	}
	return records
}

// splitFields cuts one record on commas outside quoted fields, using
// the same quote-toggle rule as splitRecords.
func splitFields(record string) []string {
	var fields []string
	var cur strings.Builder
	inQuote := false

	for i := 0; i < len(record); i++ {
		c := record[i]
		switch {
		case c == '"' && (i == 0 || record[i-1] != '\\'):
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == ',' && !inQuote:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// unquote trims whitespace and strips a single layer of surrounding
// double quotes.
func unquote(field string) string {
	s := strings.TrimSpace(field)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}

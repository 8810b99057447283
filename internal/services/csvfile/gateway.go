// Package csvfile reads and writes the task CSV files on disk. Two
// policies exist: a single fixed file that is overwritten in place,
// and a timestamped archive that writes a fresh file per save and
// loads the newest one back.
package csvfile

import (
	"fmt"
	"log/slog"
)

// Persistence policies.
const (
	PolicyFixed   = "fixed"
	PolicyArchive = "archive"
)

// Gateway loads and saves the encoded task table. Load and Save
// return the file path acted on so callers can name it in status
// messages. File-system failures come back as *domain.PersistError;
// a missing source is domain.ErrNotFound (fixed) or
// domain.ErrNoCSVFiles (archive), both recoverable.
type Gateway interface {
	Load() (text string, path string, err error)
	Save(text string) (path string, err error)
}

// New selects a gateway for the configured policy.
func New(policy, fixedPath, archiveDir string, logger *slog.Logger) (Gateway, error) {
	switch policy {
	case PolicyFixed:
		return NewFixed(fixedPath, logger), nil
	case PolicyArchive:
		return NewArchive(archiveDir, logger), nil
	}
	return nil, fmt.Errorf("unknown persistence policy %q", policy)
}

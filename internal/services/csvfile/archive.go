package csvfile

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/riordanpawley/taskdeck/internal/domain"
)

const (
	archivePrefix = "tasks_"
	archiveLayout = "2006-01-02_15-04-05"
	archiveSuffix = ".csv"
)

// Timestamped names sort lexicographically in chronological order,
// so the greatest matching name is the newest save.
var archivePattern = regexp.MustCompile(`^tasks_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.csv$`)

// Archive writes a new timestamped file per save into a dedicated
// subdirectory and never overwrites an earlier save.
type Archive struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

// NewArchive creates an archive gateway rooted at dir (the CSV
// subdirectory).
func NewArchive(dir string, logger *slog.Logger) *Archive {
	return &Archive{dir: dir, logger: logger, now: time.Now}
}

// Load scans the archive directory and reads the newest file
// matching the tasks_<timestamp>.csv pattern. An absent directory or
// one with no matching names is domain.ErrNoCSVFiles.
func (g *Archive) Load() (string, string, error) {
	entries, err := os.ReadDir(g.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", g.dir, domain.ErrNoCSVFiles
	}
	if err != nil {
		return "", g.dir, &domain.PersistError{Op: "scan", Path: g.dir, Err: err}
	}

	newest := ""
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !archivePattern.MatchString(name) {
			continue
		}
		if name > newest {
			newest = name
		}
	}
	if newest == "" {
		return "", g.dir, domain.ErrNoCSVFiles
	}

	path := filepath.Join(g.dir, newest)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", path, &domain.PersistError{Op: "load", Path: path, Err: err}
	}
	g.logger.Debug("archive loaded", "path", path, "bytes", len(data))
	return string(data), path, nil
}

// Save writes a fresh tasks_<timestamp>.csv. O_EXCL guards the
// second-resolution timestamp against clobbering an earlier save.
func (g *Archive) Save(text string) (string, error) {
	if err := os.MkdirAll(g.dir, 0755); err != nil {
		return g.dir, &domain.PersistError{Op: "save", Path: g.dir, Err: err}
	}

	path := filepath.Join(g.dir, archivePrefix+g.now().Format(archiveLayout)+archiveSuffix)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return path, &domain.PersistError{Op: "save", Path: path, Err: err}
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return path, &domain.PersistError{Op: "save", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return path, &domain.PersistError{Op: "save", Path: path, Err: err}
	}
	g.logger.Debug("archive saved", "path", path, "bytes", len(text))
	return path, nil
}
